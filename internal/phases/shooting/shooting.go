// Package shooting implements the shooting phase: selecting a shooter
// and target, toggling modifiers, and confirming a ranged attack
// through the combat resolution pipeline.
package shooting

import (
	"time"

	"github.com/jruiznavarro/skirmishcore/internal/combat"
	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/engineerr"
	"github.com/jruiznavarro/skirmishcore/internal/event"
	"github.com/jruiznavarro/skirmishcore/internal/phase"
	"github.com/jruiznavarro/skirmishcore/internal/phasectx"
	"github.com/jruiznavarro/skirmishcore/internal/rout"
	"github.com/jruiznavarro/skirmishcore/internal/rules"
	"github.com/jruiznavarro/skirmishcore/internal/static"
	"github.com/jruiznavarro/skirmishcore/internal/view"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
)

// Module implements phase.Module for the shooting phase.
type Module struct {
	Roller *dice.Roller
	Now    func() time.Time
}

var supported = phase.EventSet(event.SelectWarrior, event.Deselect, event.SelectTarget, event.SetModifier, event.ConfirmShot, event.Acknowledge)

func (m Module) Phase() core.PhaseTag { return core.PhaseShooting }

func (m Module) SupportedEvents() map[event.Type]bool { return supported }

func (m Module) ProcessEvent(evt event.GameEvent, state *core.GameState, ctx *phasectx.Context) (phase.Outcome, error) {
	if ctx.SubState == phasectx.SubStateResolution {
		if evt.Type != event.Acknowledge {
			return phase.Outcome{}, engineerr.Precondition("only ACKNOWLEDGE is accepted while a resolution is displayed")
		}
		return m.acknowledge(ctx)
	}
	if err := phase.RequireSupported(supported, evt); err != nil {
		return phase.Outcome{}, err
	}

	switch evt.Type {
	case event.SelectWarrior:
		return m.selectShooter(evt, state)
	case event.Deselect:
		return phase.Outcome{Delta: &phasectx.Delta{ClearSelectedWarrior: true, ClearSelectedTarget: true}}, nil
	case event.SelectTarget:
		return m.selectTarget(evt, state)
	case event.SetModifier:
		return m.setModifier(evt, ctx)
	case event.ConfirmShot:
		return m.confirmShot(evt, state, ctx)
	}
	return phase.Outcome{}, engineerr.UnsupportedEvent("unreachable")
}

func (m Module) selectShooter(evt event.GameEvent, state *core.GameState) (phase.Outcome, error) {
	p := evt.Payload.(event.SelectWarriorPayload)
	warrior, warband, _ := state.FindWarrior(p.WarriorID)
	if warrior == nil {
		return phase.Outcome{}, engineerr.NotFound("no such warrior")
	}
	if warband.PlayerNumber != state.CurrentPlayer {
		return phase.Outcome{}, engineerr.Precondition("warrior is not owned by the active player")
	}
	if err := shooterEligible(warrior); err != nil {
		return phase.Outcome{}, err
	}
	return phase.Outcome{Delta: &phasectx.Delta{SelectedWarriorID: &p.WarriorID}}, nil
}

func shooterEligible(w *core.Warrior) error {
	switch {
	case w.Status != core.StatusStanding:
		return engineerr.Precondition("shooter must be standing")
	case w.Flags.HasShot:
		return engineerr.Precondition("shooter has already shot")
	case w.Flags.HasRun:
		return engineerr.Precondition("shooter ran this turn")
	case w.Flags.HasCharged:
		return engineerr.Precondition("shooter charged this turn")
	case w.Flags.HasFailedCharge:
		return engineerr.Precondition("shooter failed a charge this turn")
	case w.Combat.InCombat:
		return engineerr.Precondition("shooter is locked in combat")
	case len(w.Equipment.RangedWeapons) == 0:
		return engineerr.Precondition("shooter has no ranged weapon")
	}
	return nil
}

func (m Module) selectTarget(evt event.GameEvent, state *core.GameState) (phase.Outcome, error) {
	p := evt.Payload.(event.SelectTargetPayload)
	target, targetWarband, _ := state.FindWarrior(p.TargetID)
	if target == nil {
		return phase.Outcome{}, engineerr.NotFound("no such target")
	}
	if targetWarband.PlayerNumber == state.CurrentPlayer {
		return phase.Outcome{}, engineerr.Precondition("cannot target your own warband")
	}
	if target.Status == core.StatusOutOfAction {
		return phase.Outcome{}, engineerr.Precondition("target is out of action")
	}
	if target.Hidden {
		return phase.Outcome{}, engineerr.Precondition("target is hidden")
	}
	if target.Combat.InCombat {
		return phase.Outcome{}, engineerr.Precondition("target is locked in combat")
	}
	return phase.Outcome{Delta: &phasectx.Delta{SelectedTargetID: &p.TargetID}}, nil
}

func (m Module) setModifier(evt event.GameEvent, ctx *phasectx.Context) (phase.Outcome, error) {
	p, ok := evt.Payload.(event.SetModifierPayload)
	if !ok || p.Category != event.ModifierCategoryShooting {
		return phase.Outcome{}, engineerr.Precondition("malformed SET_MODIFIER payload for shooting")
	}
	mods := ctx.ShootingModifiers
	switch p.Modifier {
	case "cover":
		mods.Cover = p.Value
	case "longRange":
		mods.LongRange = p.Value
	case "moved":
		mods.Moved = p.Value
	case "largeTarget":
		mods.LargeTarget = p.Value
	default:
		return phase.Outcome{}, engineerr.Precondition("unknown shooting modifier " + p.Modifier)
	}
	return phase.Outcome{Delta: &phasectx.Delta{ShootingModifiers: &mods}}, nil
}

func (m Module) confirmShot(evt event.GameEvent, state *core.GameState, ctx *phasectx.Context) (phase.Outcome, error) {
	p, ok := evt.Payload.(event.ConfirmShotPayload)
	if !ok {
		return phase.Outcome{}, engineerr.Precondition("malformed CONFIRM_SHOT payload")
	}
	if ctx.SelectedWarriorID == nil {
		return phase.Outcome{}, engineerr.Precondition("no shooter selected")
	}
	shooter, _, _ := state.FindWarrior(*ctx.SelectedWarriorID)
	if shooter == nil {
		return phase.Outcome{}, engineerr.NotFound("no such warrior")
	}
	if err := shooterEligible(shooter); err != nil {
		return phase.Outcome{}, err
	}
	target, targetWarband, _ := state.FindWarrior(p.TargetID)
	if target == nil {
		return phase.Outcome{}, engineerr.NotFound("no such target")
	}
	if targetWarband.PlayerNumber == state.CurrentPlayer {
		return phase.Outcome{}, engineerr.Precondition("cannot target your own warband")
	}

	weaponKey := shooter.Equipment.RangedWeapons[0]
	shootingMods := rules.ShootingModifiers{
		Cover:       ctx.ShootingModifiers.Cover,
		LongRange:   ctx.ShootingModifiers.LongRange,
		Moved:       ctx.ShootingModifiers.Moved,
		LargeTarget: ctx.ShootingModifiers.LargeTarget,
		AccuracyMod: static.GetWeaponAccuracyBonus(weaponKey),
	}

	lookup := warriorLookup(state)
	res := combat.Resolve(m.Roller, shooter, target, targetWarband, lookup, weaponKey, true, shootingMods)

	wasHidden := shooter.Hidden
	shooter.Hidden = false
	if wasHidden {
		state.AppendLog(state.CurrentPlayer, shooter.Name+" reveals position to fire", m.now())
	}
	state.AppendLog(state.CurrentPlayer, shooter.Name+" fires on "+target.Name+": "+string(res.FinalOutcome), m.now())

	delta := &phasectx.Delta{
		PendingResolution: res,
		SubState:          subStatePtr(phasectx.SubStateResolution),
		ShootingModifiers: &phasectx.ShootingModifiers{},
	}
	if pending := rout.Pending(state); pending >= 0 {
		delta.PendingRoutTest = &pending
	}

	return phase.Outcome{StateChanged: true, Delta: delta}, nil
}

func (m Module) acknowledge(ctx *phasectx.Context) (phase.Outcome, error) {
	next := phasectx.SubStateMain
	if ctx.PendingRoutTest != nil {
		next = phasectx.SubStateRoutTest
	}
	return phase.Outcome{Delta: &phasectx.Delta{
		SubState:               subStatePtr(next),
		ClearPendingResolution: true,
		ClearSelectedWarrior:   true,
		ClearSelectedTarget:    true,
		ShootingModifiers:      &phasectx.ShootingModifiers{},
	}}, nil
}

func subStatePtr(s phasectx.SubState) *phasectx.SubState { return &s }

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

// BuildScreen projects the active sub-state's screen.
func (m Module) BuildScreen(state *core.GameState, ctx *phasectx.Context) view.Command {
	base := view.Command{
		Turn:          state.Turn,
		Phase:         state.Phase,
		CurrentPlayer: state.CurrentPlayer,
		GameID:        state.GameID,
	}
	if ctx.SubState == phasectx.SubStateResolution && ctx.PendingResolution != nil {
		base.Screen = view.ScreenCombatResolution
		base.Data = ctx.PendingResolution
		base.AvailableEvents = []event.Type{event.Acknowledge}
		return base
	}

	warband := state.WarbandOf(state.CurrentPlayer)
	data := struct {
		Shooters []view.WarriorSummary
		Targets  []view.WarriorSummary
		Modifiers phasectx.ShootingModifiers
	}{Modifiers: ctx.ShootingModifiers}
	for _, w := range warband.Warriors {
		if shooterEligible(w) == nil {
			data.Shooters = append(data.Shooters, view.Summarize(w))
		}
	}
	if ctx.SelectedWarriorID != nil {
		enemy := state.OpponentOf(state.CurrentPlayer)
		for _, w := range enemy.Warriors {
			if w.Status != core.StatusOutOfAction && !w.Hidden && !w.Combat.InCombat {
				data.Targets = append(data.Targets, view.Summarize(w))
			}
		}
	}

	base.Screen = view.ScreenShootingPhase
	base.Data = data
	events := []event.Type{event.SelectWarrior, event.Deselect, event.SetModifier, event.AdvancePhase}
	if ctx.SelectedWarriorID != nil {
		events = append(events, event.SelectTarget)
	}
	if ctx.SelectedWarriorID != nil && ctx.SelectedTargetID != nil {
		events = append(events, event.ConfirmShot)
		base.Screen = view.ScreenShootingConfirm
	} else if ctx.SelectedWarriorID != nil {
		base.Screen = view.ScreenShootingTargetSelect
	}
	base.AvailableEvents = events
	return base
}

func (m Module) OnEnter(state *core.GameState, ctx *phasectx.Context) *phasectx.Delta { return nil }

func (m Module) OnExit(state *core.GameState, ctx *phasectx.Context) {}
