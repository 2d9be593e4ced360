// Package aistrategy implements a simple heuristic AI that picks the
// next event to submit from the screen command the mediator feeds it.
// Adapted from the source's unit-position-chasing AI, stripped of all
// geometry: the core has no board, so "nearest enemy" becomes "first
// available warrior/target" in list order.
package aistrategy

import (
	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/event"
	"github.com/jruiznavarro/skirmishcore/internal/phasectx"
	"github.com/jruiznavarro/skirmishcore/internal/view"
)

// Strategy picks the next event to submit given the current screen.
type Strategy interface {
	NextEvent(screen view.Command, playerID string) event.GameEvent
}

// Heuristic is a basic "act on the first available option" AI: it
// never passes up an action it is offered, and falls back to
// ADVANCE_PHASE once nothing else is left to do.
type Heuristic struct{}

func (Heuristic) NextEvent(screen view.Command, playerID string) event.GameEvent {
	switch screen.Screen {
	case view.ScreenGameSetup:
		return setupEvent(screen, playerID)
	case view.ScreenRecoveryPhase:
		return recoveryEvent(screen, playerID)
	case view.ScreenMovementPhase:
		return movementEvent(screen, playerID)
	case view.ScreenShootingPhase, view.ScreenShootingTargetSelect, view.ScreenShootingConfirm:
		return shootingEvent(screen, playerID)
	case view.ScreenCombatPhase:
		return combatEvent(screen, playerID)
	case view.ScreenCombatResolution, view.ScreenRoutTest:
		return acknowledgeOrRoutEvent(screen, playerID)
	default:
		return advancePhase(playerID)
	}
}

func advancePhase(playerID string) event.GameEvent {
	return event.GameEvent{PlayerID: playerID, Type: event.AdvancePhase, Payload: event.AdvancePhasePayload{}}
}

func setupEvent(screen view.Command, playerID string) event.GameEvent {
	data, ok := screen.Data.(struct {
		Warriors        []view.WarriorSummary
		PositionedCount int
	})
	if !ok || len(data.Warriors) == 0 {
		return advancePhase(playerID)
	}
	return event.GameEvent{PlayerID: playerID, Type: event.SelectWarrior, Payload: event.SelectWarriorPayload{WarriorID: data.Warriors[0].ID}}
}

func recoveryEvent(screen view.Command, playerID string) event.GameEvent {
	data, ok := screen.Data.(struct {
		Fleeing     []view.WarriorSummary
		Stunned     []view.WarriorSummary
		KnockedDown []view.WarriorSummary
	})
	if !ok {
		return advancePhase(playerID)
	}
	if len(data.Fleeing) > 0 {
		return recoveryAction(playerID, event.Rally, data.Fleeing[0].ID)
	}
	if len(data.Stunned) > 0 {
		return recoveryAction(playerID, event.RecoverFromStunned, data.Stunned[0].ID)
	}
	if len(data.KnockedDown) > 0 {
		return recoveryAction(playerID, event.StandUp, data.KnockedDown[0].ID)
	}
	return advancePhase(playerID)
}

func recoveryAction(playerID string, kind event.RecoveryActionKind, id core.WarriorID) event.GameEvent {
	return event.GameEvent{PlayerID: playerID, Type: event.RecoveryAction, Payload: event.RecoveryActionPayload{Action: kind, WarriorID: id}}
}

func movementEvent(screen view.Command, playerID string) event.GameEvent {
	data, ok := screen.Data.(struct {
		Actable       []view.WarriorSummary
		ChargeTargets []view.WarriorSummary
	})
	if !ok {
		return advancePhase(playerID)
	}
	if len(data.ChargeTargets) > 0 {
		return event.GameEvent{PlayerID: playerID, Type: event.ConfirmCharge, Payload: event.ConfirmChargePayload{TargetID: data.ChargeTargets[0].ID}}
	}
	if len(data.Actable) > 0 {
		return event.GameEvent{PlayerID: playerID, Type: event.SelectWarrior, Payload: event.SelectWarriorPayload{WarriorID: data.Actable[0].ID}}
	}
	return advancePhase(playerID)
}

func shootingEvent(screen view.Command, playerID string) event.GameEvent {
	data, ok := screen.Data.(struct {
		Shooters  []view.WarriorSummary
		Targets   []view.WarriorSummary
		Modifiers phasectx.ShootingModifiers
	})
	if !ok {
		return advancePhase(playerID)
	}
	switch screen.Screen {
	case view.ScreenShootingConfirm:
		if len(data.Targets) > 0 {
			return event.GameEvent{PlayerID: playerID, Type: event.ConfirmShot, Payload: event.ConfirmShotPayload{TargetID: data.Targets[0].ID}}
		}
	case view.ScreenShootingTargetSelect:
		if len(data.Targets) > 0 {
			return event.GameEvent{PlayerID: playerID, Type: event.SelectTarget, Payload: event.SelectTargetPayload{TargetID: data.Targets[0].ID}}
		}
	default:
		if len(data.Shooters) > 0 {
			return event.GameEvent{PlayerID: playerID, Type: event.SelectWarrior, Payload: event.SelectWarriorPayload{WarriorID: data.Shooters[0].ID}}
		}
	}
	return advancePhase(playerID)
}

func combatEvent(screen view.Command, playerID string) event.GameEvent {
	data, ok := screen.Data.(struct {
		Fighter          *view.WarriorSummary
		AttacksRemaining int
		Targets          []view.WarriorSummary
	})
	if !ok || data.Fighter == nil || len(data.Targets) == 0 {
		return advancePhase(playerID)
	}
	weaponKey := "dagger"
	return event.GameEvent{PlayerID: playerID, Type: event.ConfirmMelee, Payload: event.ConfirmMeleePayload{TargetID: data.Targets[0].ID, WeaponKey: weaponKey}}
}

func acknowledgeOrRoutEvent(screen view.Command, playerID string) event.GameEvent {
	if screen.Screen == view.ScreenRoutTest {
		return event.GameEvent{PlayerID: playerID, Type: event.ConfirmRoutTest, Payload: event.ConfirmRoutTestPayload{}}
	}
	return event.GameEvent{PlayerID: playerID, Type: event.Acknowledge, Payload: event.AcknowledgePayload{}}
}
