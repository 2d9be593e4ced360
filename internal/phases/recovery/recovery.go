// Package recovery implements the recovery phase: rallying fleeing
// warriors, recovering from stunned, and standing up from knocked down.
package recovery

import (
	"time"

	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/engineerr"
	"github.com/jruiznavarro/skirmishcore/internal/event"
	"github.com/jruiznavarro/skirmishcore/internal/phase"
	"github.com/jruiznavarro/skirmishcore/internal/phasectx"
	"github.com/jruiznavarro/skirmishcore/internal/rules"
	"github.com/jruiznavarro/skirmishcore/internal/view"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
)

// Module implements phase.Module for the recovery phase.
type Module struct {
	Roller *dice.Roller
	Now    func() time.Time
}

var supported = phase.EventSet(event.SelectWarrior, event.Deselect, event.RecoveryAction)

func (m Module) Phase() core.PhaseTag { return core.PhaseRecovery }

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

	case event.RecoveryAction:
		return m.recoveryAction(evt, state)
	}
	return phase.Outcome{}, engineerr.UnsupportedEvent("unreachable")
}

func (m Module) recoveryAction(evt event.GameEvent, state *core.GameState) (phase.Outcome, error) {
	p, ok := evt.Payload.(event.RecoveryActionPayload)
	if !ok {
		return phase.Outcome{}, engineerr.Precondition("malformed RECOVERY_ACTION payload")
	}
	warrior, warband, _ := state.FindWarrior(p.WarriorID)
	if warrior == nil {
		return phase.Outcome{}, engineerr.NotFound("no such warrior")
	}
	if warband.PlayerNumber != state.CurrentPlayer {
		return phase.Outcome{}, engineerr.Precondition("warrior is not owned by the active player")
	}

	switch p.Action {
	case event.Rally:
		if warrior.Status != core.StatusFleeing {
			return phase.Outcome{}, engineerr.Precondition("only fleeing warriors may rally")
		}
		test := rules.LeadershipTest(m.Roller, warrior.Profile.Ld)
		if test.Success {
			warrior.Status = core.StatusStanding
		}
		warrior.Flags.HasRecovered = true
		state.AppendLog(state.CurrentPlayer, rallyLogText(warrior, test.Success), m.now())

	case event.RecoverFromStunned:
		if warrior.Status != core.StatusStunned {
			return phase.Outcome{}, engineerr.Precondition("warrior is not stunned")
		}
		warrior.Status = core.StatusKnockedDown
		warrior.Flags.HasRecovered = true
		state.AppendLog(state.CurrentPlayer, warrior.Name+" recovers from being stunned", m.now())

	case event.StandUp:
		if warrior.Status != core.StatusKnockedDown {
			return phase.Outcome{}, engineerr.Precondition("warrior is not knocked down")
		}
		if warrior.Combat.InCombat && len(warrior.Combat.EngagedWith) > 0 {
			return phase.Outcome{}, engineerr.Precondition("cannot stand up while engaged in combat")
		}
		warrior.Status = core.StatusStanding
		warrior.Modifiers.HalfMovement = true
		warrior.Modifiers.StrikesLast = true
		warrior.Flags.HasRecovered = true
		state.AppendLog(state.CurrentPlayer, warrior.Name+" stands up", m.now())

	default:
		return phase.Outcome{}, engineerr.Precondition("unknown recovery action")
	}

	return phase.Outcome{StateChanged: true, Delta: &phasectx.Delta{ClearSelectedWarrior: true}}, nil
}

func rallyLogText(w *core.Warrior, success bool) string {
	if success {
		return w.Name + " rallies"
	}
	return w.Name + " fails to rally"
}

func (m Module) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// BuildScreen lists fleeing/stunned/knocked-down warriors still needing
// a recovery action this turn.
func (m Module) BuildScreen(state *core.GameState, ctx *phasectx.Context) view.Command {
	warband := state.WarbandOf(state.CurrentPlayer)
	data := struct {
		Fleeing     []view.WarriorSummary
		Stunned     []view.WarriorSummary
		KnockedDown []view.WarriorSummary
	}{}
	for _, w := range warband.Warriors {
		if w.Flags.HasRecovered {
			continue
		}
		switch w.Status {
		case core.StatusFleeing:
			data.Fleeing = append(data.Fleeing, view.Summarize(w))
		case core.StatusStunned:
			data.Stunned = append(data.Stunned, view.Summarize(w))
		case core.StatusKnockedDown:
			data.KnockedDown = append(data.KnockedDown, view.Summarize(w))
		}
	}
	return view.Command{
		Screen:          view.ScreenRecoveryPhase,
		Data:            data,
		AvailableEvents: []event.Type{event.SelectWarrior, event.Deselect, event.RecoveryAction, event.AdvancePhase},
		Turn:            state.Turn,
		Phase:           state.Phase,
		CurrentPlayer:   state.CurrentPlayer,
		GameID:          state.GameID,
	}
}

func (m Module) OnEnter(state *core.GameState, ctx *phasectx.Context) *phasectx.Delta { return nil }

func (m Module) OnExit(state *core.GameState, ctx *phasectx.Context) {}
