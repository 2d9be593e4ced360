// Package movement implements the movement phase: move, run, and charge.
package movement

import (
	"time"

	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/engineerr"
	"github.com/jruiznavarro/skirmishcore/internal/event"
	"github.com/jruiznavarro/skirmishcore/internal/phase"
	"github.com/jruiznavarro/skirmishcore/internal/phasectx"
	"github.com/jruiznavarro/skirmishcore/internal/view"
)

// Module implements phase.Module for the movement phase.
type Module struct {
	Now func() time.Time
}

var supported = phase.EventSet(event.SelectWarrior, event.Deselect, event.ConfirmMove, event.ConfirmCharge)

func (m Module) Phase() core.PhaseTag { return core.PhaseMovement }

func (m Module) SupportedEvents() map[event.Type]bool { return supported }

func (m Module) ProcessEvent(evt event.GameEvent, state *core.GameState, ctx *phasectx.Context) (phase.Outcome, error) {
	if err := phase.RequireSupported(supported, evt); err != nil {
		return phase.Outcome{}, err
	}

	switch evt.Type {
	case event.SelectWarrior:
		p := evt.Payload.(event.SelectWarriorPayload)
		if w, _, _ := state.FindWarrior(p.WarriorID); w == nil {
			return phase.Outcome{}, engineerr.NotFound("no such warrior")
		}
		return phase.Outcome{Delta: &phasectx.Delta{SelectedWarriorID: &p.WarriorID}}, nil

	case event.Deselect:
		return phase.Outcome{Delta: &phasectx.Delta{ClearSelectedWarrior: true}}, nil

	case event.ConfirmMove:
		return m.confirmMove(evt, state, ctx)

	case event.ConfirmCharge:
		return m.confirmCharge(evt, state, ctx)
	}
	return phase.Outcome{}, engineerr.UnsupportedEvent("unreachable")
}

func selectedActor(state *core.GameState, ctx *phasectx.Context, currentPlayer int) (*core.Warrior, error) {
	if ctx.SelectedWarriorID == nil {
		return nil, engineerr.Precondition("no warrior selected")
	}
	warrior, warband, _ := state.FindWarrior(*ctx.SelectedWarriorID)
	if warrior == nil {
		return nil, engineerr.NotFound("no such warrior")
	}
	if warband.PlayerNumber != currentPlayer {
		return nil, engineerr.Precondition("warrior is not owned by the active player")
	}
	if warrior.Status != core.StatusStanding {
		return nil, engineerr.Precondition("warrior is not standing")
	}
	if warrior.Flags.HasMoved {
		return nil, engineerr.Precondition("warrior has already moved")
	}
	return warrior, nil
}

func (m Module) confirmMove(evt event.GameEvent, state *core.GameState, ctx *phasectx.Context) (phase.Outcome, error) {
	p, ok := evt.Payload.(event.ConfirmMovePayload)
	if !ok {
		return phase.Outcome{}, engineerr.Precondition("malformed CONFIRM_MOVE payload")
	}
	warrior, err := selectedActor(state, ctx, state.CurrentPlayer)
	if err != nil {
		return phase.Outcome{}, err
	}

	if warrior.Combat.InCombat {
		lookup := warriorLookup(state)
		for _, id := range warrior.Combat.EngagedWith {
			enemy := lookup[id]
			if enemy == nil {
				continue
			}
			if enemy.Status != core.StatusKnockedDown && enemy.Status != core.StatusStunned {
				return phase.Outcome{}, engineerr.Precondition("cannot move away from a standing engaged enemy")
			}
		}
		core.DisengageAll(warrior, lookup)
	}

	warrior.Flags.HasMoved = true
	action := "moves"
	if p.MoveType == event.MoveTypeRun {
		warrior.Flags.HasRun = true
		action = "runs"
	}
	state.AppendLog(state.CurrentPlayer, warrior.Name+" "+action, m.now())

	return phase.Outcome{StateChanged: true, Delta: &phasectx.Delta{ClearSelectedWarrior: true}}, nil
}

func (m Module) confirmCharge(evt event.GameEvent, state *core.GameState, ctx *phasectx.Context) (phase.Outcome, error) {
	p, ok := evt.Payload.(event.ConfirmChargePayload)
	if !ok {
		return phase.Outcome{}, engineerr.Precondition("malformed CONFIRM_CHARGE payload")
	}
	warrior, err := selectedActor(state, ctx, state.CurrentPlayer)
	if err != nil {
		return phase.Outcome{}, err
	}

	target, targetWarband, _ := state.FindWarrior(p.TargetID)
	if target == nil {
		return phase.Outcome{}, engineerr.NotFound("no such target")
	}
	if targetWarband.PlayerNumber == state.CurrentPlayer {
		return phase.Outcome{}, engineerr.Precondition("cannot charge a warrior in your own warband")
	}
	if target.Status != core.StatusStanding && target.Status != core.StatusKnockedDown {
		return phase.Outcome{}, engineerr.Precondition("target cannot be charged in its current state")
	}

	core.Engage(warrior, target)
	warrior.Flags.HasMoved = true
	warrior.Flags.HasCharged = true
	state.AppendLog(state.CurrentPlayer, warrior.Name+" charges "+target.Name, m.now())

	return phase.Outcome{StateChanged: true, Delta: &phasectx.Delta{ClearSelectedWarrior: true}}, nil
}

func warriorLookup(state *core.GameState) map[core.WarriorID]*core.Warrior {
	lookup := make(map[core.WarriorID]*core.Warrior)
	for _, b := range state.Warbands {
		if b == nil {
			continue
		}
		for _, w := range b.Warriors {
			lookup[w.ID] = w
		}
	}
	return lookup
}

func (m Module) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// BuildScreen lists warriors still able to act and, when one is
// selected, the warriors they may charge.
func (m Module) BuildScreen(state *core.GameState, ctx *phasectx.Context) view.Command {
	warband := state.WarbandOf(state.CurrentPlayer)
	data := struct {
		Actable       []view.WarriorSummary
		ChargeTargets []view.WarriorSummary
	}{}
	for _, w := range warband.Warriors {
		if w.Status == core.StatusStanding && !w.Flags.HasMoved {
			data.Actable = append(data.Actable, view.Summarize(w))
		}
	}
	if ctx.SelectedWarriorID != nil {
		enemy := state.OpponentOf(state.CurrentPlayer)
		for _, w := range enemy.Warriors {
			if w.Status == core.StatusStanding || w.Status == core.StatusKnockedDown {
				data.ChargeTargets = append(data.ChargeTargets, view.Summarize(w))
			}
		}
	}
	return view.Command{
		Screen:          view.ScreenMovementPhase,
		Data:            data,
		AvailableEvents: []event.Type{event.SelectWarrior, event.Deselect, event.ConfirmMove, event.ConfirmCharge, event.AdvancePhase},
		Turn:            state.Turn,
		Phase:           state.Phase,
		CurrentPlayer:   state.CurrentPlayer,
		GameID:          state.GameID,
	}
}

func (m Module) OnEnter(state *core.GameState, ctx *phasectx.Context) *phasectx.Delta { return nil }

func (m Module) OnExit(state *core.GameState, ctx *phasectx.Context) {}
