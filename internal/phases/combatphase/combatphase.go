// Package combatphase implements the combat phase: strike-order
// construction and per-fighter melee resolution. Named combatphase (not
// combat) to avoid colliding with the shared resolution pipeline
// package it depends on.
package combatphase

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
	"github.com/jruiznavarro/skirmishcore/internal/view"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
)

// Module implements phase.Module for the combat phase.
type Module struct {
	Roller *dice.Roller
	Now    func() time.Time
}

var supported = phase.EventSet(event.SelectTarget, event.ConfirmMelee, event.Acknowledge)

func (m Module) Phase() core.PhaseTag { return core.PhaseCombat }

func (m Module) SupportedEvents() map[event.Type]bool { return supported }

// OnEnter builds the strike order once: every warrior in combat and
// standing, sorted charged-first, stood-up-last, higher initiative
// first, ties broken by a die roll-off under the shared RNG.
func (m Module) OnEnter(state *core.GameState, ctx *phasectx.Context) *phasectx.Delta {
	var entries []phasectx.StrikeEntry
	for idx, b := range state.Warbands {
		if b == nil {
			continue
		}
		for _, w := range b.Warriors {
			if w.Status == core.StatusStanding && w.Combat.InCombat {
				entries = append(entries, phasectx.StrikeEntry{
					WarriorID:    w.ID,
					WarbandIndex: idx,
					Initiative:   w.Profile.I,
					Charged:      w.Flags.HasCharged,
					StoodUp:      w.Modifiers.StrikesLast,
					Attacks:      maxInt(w.Profile.A, 1),
				})
			}
		}
	}
	sortStrikeOrder(entries, m.Roller)
	order := entries
	return &phasectx.Delta{StrikeOrder: &order, CurrentFighterIndex: intPtr(0)}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func intPtr(v int) *int { return &v }

// sortStrikeOrder applies spec.md §4.4.5's ordering in place: charged
// first, stood-up last, higher initiative first, ties broken by a
// deterministic roll-off (insertion sort so roll-off comparisons happen
// exactly once per adjacent tie, keeping RNG consumption order stable).
func sortStrikeOrder(entries []phasectx.StrikeEntry, roller *dice.Roller) {
	for i := 1; i < len(entries); i++ {
		j := i
		for j > 0 && strikeLess(entries[j], entries[j-1], roller) {
			entries[j], entries[j-1] = entries[j-1], entries[j]
			j--
		}
	}
}

func strikeLess(a, b phasectx.StrikeEntry, roller *dice.Roller) bool {
	if a.Charged != b.Charged {
		return a.Charged
	}
	if a.StoodUp != b.StoodUp {
		return !a.StoodUp
	}
	if a.Initiative != b.Initiative {
		return a.Initiative > b.Initiative
	}
	return roller.RollD6() > roller.RollD6()
}

func (m Module) OnExit(state *core.GameState, ctx *phasectx.Context) {}

func (m Module) ProcessEvent(evt event.GameEvent, state *core.GameState, ctx *phasectx.Context) (phase.Outcome, error) {
	if ctx.SubState == phasectx.SubStateResolution {
		if evt.Type != event.Acknowledge {
			return phase.Outcome{}, engineerr.Precondition("only ACKNOWLEDGE is accepted while a resolution is displayed")
		}
		return m.acknowledge(state, ctx)
	}
	if err := phase.RequireSupported(supported, evt); err != nil {
		return phase.Outcome{}, err
	}

	switch evt.Type {
	case event.SelectTarget:
		return m.selectTarget(evt, state, ctx)
	case event.ConfirmMelee:
		return m.confirmMelee(evt, state, ctx)
	}
	return phase.Outcome{}, engineerr.UnsupportedEvent("unreachable")
}

func currentFighter(state *core.GameState, ctx *phasectx.Context) (*phasectx.StrikeEntry, *core.Warrior, error) {
	if ctx.CurrentFighterIndex >= len(ctx.StrikeOrder) {
		return nil, nil, engineerr.Precondition("combat phase has no remaining fighters")
	}
	entry := &ctx.StrikeOrder[ctx.CurrentFighterIndex]
	warrior, _, _ := state.FindWarrior(entry.WarriorID)
	if warrior == nil {
		return nil, nil, engineerr.NotFound("no such warrior")
	}
	return entry, warrior, nil
}

func (m Module) selectTarget(evt event.GameEvent, state *core.GameState, ctx *phasectx.Context) (phase.Outcome, error) {
	p := evt.Payload.(event.SelectTargetPayload)
	_, fighter, err := currentFighter(state, ctx)
	if err != nil {
		return phase.Outcome{}, err
	}
	if !engagedWith(fighter, p.TargetID) {
		return phase.Outcome{}, engineerr.Precondition("target is not engaged with the current fighter")
	}
	return phase.Outcome{Delta: &phasectx.Delta{SelectedTargetID: &p.TargetID}}, nil
}

func (m Module) confirmMelee(evt event.GameEvent, state *core.GameState, ctx *phasectx.Context) (phase.Outcome, error) {
	p, ok := evt.Payload.(event.ConfirmMeleePayload)
	if !ok {
		return phase.Outcome{}, engineerr.Precondition("malformed CONFIRM_MELEE payload")
	}
	entry, fighter, err := currentFighter(state, ctx)
	if err != nil {
		return phase.Outcome{}, err
	}
	if entry.AttacksUsed >= entry.Attacks {
		return phase.Outcome{}, engineerr.Precondition("current fighter has no attacks remaining")
	}
	if !engagedWith(fighter, p.TargetID) {
		return phase.Outcome{}, engineerr.Precondition("target is not engaged with the current fighter")
	}
	target, targetWarband, _ := state.FindWarrior(p.TargetID)
	if target == nil {
		return phase.Outcome{}, engineerr.NotFound("no such target")
	}

	lookup := warriorLookup(state)
	res := combat.Resolve(m.Roller, fighter, target, targetWarband, lookup, p.WeaponKey, false, rules.ShootingModifiers{})

	warband := state.WarbandOf(ownerOf(state, fighter.ID))
	state.AppendLog(warband.PlayerNumber, fighter.Name+" strikes "+target.Name+": "+string(res.FinalOutcome), m.now())

	order := append([]phasectx.StrikeEntry(nil), ctx.StrikeOrder...)
	updated := *entry
	updated.AttacksUsed++
	order[ctx.CurrentFighterIndex] = updated

	delta := &phasectx.Delta{
		PendingResolution: res,
		SubState:          subStatePtr(phasectx.SubStateResolution),
		StrikeOrder:       &order,
	}
	if pending := rout.Pending(state); pending >= 0 {
		delta.PendingRoutTest = &pending
	}
	return phase.Outcome{StateChanged: true, Delta: delta}, nil
}

func engagedWith(fighter *core.Warrior, targetID core.WarriorID) bool {
	for _, id := range fighter.Combat.EngagedWith {
		if id == targetID {
			return true
		}
	}
	return false
}

func ownerOf(state *core.GameState, id core.WarriorID) int {
	_, b, _ := state.FindWarrior(id)
	if b == nil {
		return state.CurrentPlayer
	}
	return b.PlayerNumber
}

func (m Module) acknowledge(state *core.GameState, ctx *phasectx.Context) (phase.Outcome, error) {
	next := advanceFighterIndex(state, ctx)
	subState := phasectx.SubStateMain
	if ctx.PendingRoutTest != nil {
		subState = phasectx.SubStateRoutTest
	}
	return phase.Outcome{Delta: &phasectx.Delta{
		SubState:               subStatePtr(subState),
		ClearPendingResolution: true,
		ClearSelectedTarget:    true,
		CurrentFighterIndex:    &next,
	}}, nil
}

// advanceFighterIndex walks past the current fighter once its attacks
// are spent, skipping any fighter no longer standing and in combat.
func advanceFighterIndex(state *core.GameState, ctx *phasectx.Context) int {
	idx := ctx.CurrentFighterIndex
	if idx >= len(ctx.StrikeOrder) {
		return idx
	}
	if ctx.StrikeOrder[idx].AttacksUsed < ctx.StrikeOrder[idx].Attacks {
		return idx
	}
	idx++
	for idx < len(ctx.StrikeOrder) {
		w, _, _ := state.FindWarrior(ctx.StrikeOrder[idx].WarriorID)
		if w != nil && w.Status == core.StatusStanding && w.Combat.InCombat {
			break
		}
		idx++
	}
	return idx
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

// BuildScreen projects the current fighter, remaining attacks, and
// valid targets; once the strike order is exhausted only ADVANCE_PHASE
// is offered.
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
	if ctx.CurrentFighterIndex >= len(ctx.StrikeOrder) {
		base.Screen = view.ScreenCombatPhase
		base.Data = struct{ Done bool }{true}
		base.AvailableEvents = []event.Type{event.AdvancePhase}
		return base
	}

	entry := ctx.StrikeOrder[ctx.CurrentFighterIndex]
	fighter, _, _ := state.FindWarrior(entry.WarriorID)
	lookup := warriorLookup(state)
	var targets []view.WarriorSummary
	if fighter != nil {
		for _, id := range fighter.Combat.EngagedWith {
			if w := lookup[id]; w != nil {
				targets = append(targets, view.Summarize(w))
			}
		}
	}
	data := struct {
		Fighter          *view.WarriorSummary
		AttacksRemaining int
		Targets          []view.WarriorSummary
	}{AttacksRemaining: entry.Attacks - entry.AttacksUsed, Targets: targets}
	if fighter != nil {
		s := view.Summarize(fighter)
		data.Fighter = &s
	}

	base.Screen = view.ScreenCombatPhase
	base.Data = data
	base.AvailableEvents = []event.Type{event.SelectTarget, event.ConfirmMelee}
	return base
}
