// Package setup implements the pre-turn-1 positioning phase.
package setup

import (
	"time"

	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/engineerr"
	"github.com/jruiznavarro/skirmishcore/internal/event"
	"github.com/jruiznavarro/skirmishcore/internal/phase"
	"github.com/jruiznavarro/skirmishcore/internal/phasectx"
	"github.com/jruiznavarro/skirmishcore/internal/view"
)

// Module implements phase.Module for the setup phase.
type Module struct {
	Now func() time.Time
}

var supported = phase.EventSet(event.SelectWarrior, event.Deselect, event.ConfirmPosition)

func (m Module) Phase() core.PhaseTag { return core.PhaseSetup }

func (m Module) SupportedEvents() map[event.Type]bool { return supported }

// ProcessEvent handles warrior selection and positioning confirmation.
// Positioning is bookkeeping only: the system does not enforce that
// every warrior is placed before the phase advances.
func (m Module) ProcessEvent(evt event.GameEvent, state *core.GameState, ctx *phasectx.Context) (phase.Outcome, error) {
	if err := phase.RequireSupported(supported, evt); err != nil {
		return phase.Outcome{}, err
	}

	switch evt.Type {
	case event.SelectWarrior:
		p, ok := evt.Payload.(event.SelectWarriorPayload)
		if !ok {
			return phase.Outcome{}, engineerr.Precondition("malformed SELECT_WARRIOR payload")
		}
		warrior, warband, _ := state.FindWarrior(p.WarriorID)
		if warrior == nil {
			return phase.Outcome{}, engineerr.NotFound("no such warrior")
		}
		if warband.PlayerNumber != state.CurrentPlayer {
			return phase.Outcome{}, engineerr.Precondition("warrior is not owned by the active player")
		}
		return phase.Outcome{Delta: &phasectx.Delta{SelectedWarriorID: &p.WarriorID}}, nil

	case event.Deselect:
		return phase.Outcome{Delta: &phasectx.Delta{ClearSelectedWarrior: true}}, nil

	case event.ConfirmPosition:
		if ctx.SelectedWarriorID == nil {
			return phase.Outcome{}, engineerr.Precondition("no warrior selected")
		}
		warrior, _, _ := state.FindWarrior(*ctx.SelectedWarriorID)
		if warrior == nil {
			return phase.Outcome{}, engineerr.NotFound("no such warrior")
		}
		warrior.Flags.HasActed = true
		state.AppendLog(state.CurrentPlayer, warrior.Name+" took position", m.now())
		return phase.Outcome{StateChanged: true, Delta: &phasectx.Delta{ClearSelectedWarrior: true}}, nil
	}

	return phase.Outcome{}, engineerr.UnsupportedEvent("unreachable")
}

func (m Module) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// BuildScreen projects the setup screen.
func (m Module) BuildScreen(state *core.GameState, ctx *phasectx.Context) view.Command {
	warband := state.WarbandOf(state.CurrentPlayer)
	data := struct {
		Warriors   []view.WarriorSummary
		PositionedCount int
	}{
		Warriors: view.SummarizeAll(warband),
	}
	for _, w := range warband.Warriors {
		if w.Flags.HasActed {
			data.PositionedCount++
		}
	}
	return view.Command{
		Screen:          view.ScreenGameSetup,
		Data:            data,
		AvailableEvents: []event.Type{event.SelectWarrior, event.Deselect, event.ConfirmPosition, event.AdvancePhase},
		Turn:            state.Turn,
		Phase:           state.Phase,
		CurrentPlayer:   state.CurrentPlayer,
		GameID:          state.GameID,
	}
}

// OnEnter does nothing. The reset of Player 1's hasActed flags on the
// setup→setup transition is applied by statemachine.Apply before this
// hook runs.
func (m Module) OnEnter(state *core.GameState, ctx *phasectx.Context) *phasectx.Delta {
	return nil
}

func (m Module) OnExit(state *core.GameState, ctx *phasectx.Context) {}
