package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/rules"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
)

// rollerWithSequence finds a seed whose first len(want) D6 rolls match
// want exactly, then returns a fresh roller positioned at the start of
// that sequence. Used to pin down specific scenarios from spec.md §8
// without threading a fake RNG through the production dice.Roller type.
func rollerWithSequence(t *testing.T, want []int) *dice.Roller {
	t.Helper()
	for seed := int64(0); seed < 2_000_000; seed++ {
		r := dice.NewRoller(seed)
		ok := true
		for _, w := range want {
			if r.RollD6() != w {
				ok = false
				break
			}
		}
		if ok {
			return dice.NewRoller(seed)
		}
	}
	t.Fatalf("no seed found producing sequence %v", want)
	return nil
}

func newWarrior(id core.WarriorID, name string, profile core.Profile, equip core.Equipment) *core.Warrior {
	return core.NewWarrior(id, name, core.ArchetypeHenchman, profile, equip, nil)
}

// Scenario B: charge + attack resolution ending in outOfAction.
func TestResolve_ScenarioB_ChargeAttackEndsOutOfAction(t *testing.T) {
	attacker := newWarrior(1, "A", core.Profile{WS: 4, S: 4}, core.Equipment{MeleeWeapons: []string{"axe"}})
	attacker.Flags.HasCharged = true
	defender := newWarrior(2, "B", core.Profile{WS: 3, T: 3, W: 1}, core.Equipment{})
	defender.WoundsRemaining = 1

	warband := &core.Warband{Warriors: []*core.Warrior{defender}}
	lookup := map[core.WarriorID]*core.Warrior{1: attacker, 2: defender}

	// needed to-hit: attacker WS4 >= defender WS3 -> 3+. Roll 5 hits.
	// to-wound: S4 vs T3 diff+1 -> needed 3. Roll 4 hits, not natural6 so no crit.
	// armor save: defender has no armor -> baseSave 7 -> NoSave, skip straight through.
	// wound applied: WoundsRemaining 1->0, injury roll with roll=5 -> outOfAction.
	roller := rollerWithSequence(t, []int{5, 4, 5})

	res := Resolve(roller, attacker, defender, warband, lookup, "axe", false, rules.ShootingModifiers{})

	assert.Equal(t, OutcomeOutOfAction, res.FinalOutcome)
	assert.Equal(t, core.StatusOutOfAction, defender.Status)
	assert.Equal(t, 0, defender.WoundsRemaining)
	assert.Equal(t, 1, warband.OutOfActionCount)
	assert.Empty(t, attacker.Combat.EngagedWith)
	assert.Empty(t, defender.Combat.EngagedWith)
}

// Scenario C: parry stops the attack; no wound/save/injury; attacker
// still consumed the attack (caller's responsibility to decrement
// attacksUsed, this test only checks the pipeline's own side effects).
func TestResolve_ScenarioC_ParryStopsAttack(t *testing.T) {
	attacker := newWarrior(1, "A", core.Profile{WS: 4}, core.Equipment{MeleeWeapons: []string{"sword"}})
	defender := newWarrior(2, "B", core.Profile{WS: 4}, core.Equipment{MeleeWeapons: []string{"swordbuckler"}})

	lookup := map[core.WarriorID]*core.Warrior{1: attacker, 2: defender}

	// to-hit needed: WS4 vs WS4 -> attacker>=defender -> 3+. Roll 4 hits.
	// parry: defender rolls 5, success since 5 > 4.
	roller := rollerWithSequence(t, []int{4, 5})

	res := Resolve(roller, attacker, defender, nil, lookup, "sword", false, rules.ShootingModifiers{})

	assert.Equal(t, OutcomeParried, res.FinalOutcome)
	assert.True(t, res.Parry.Attempted)
	assert.True(t, res.Parry.Success)
	assert.Zero(t, res.ToWound.Roll)
	assert.False(t, res.InjuryRolled)
}

func TestResolve_Natural6OnToHitCannotBeParried(t *testing.T) {
	attacker := newWarrior(1, "A", core.Profile{WS: 4, S: 3}, core.Equipment{MeleeWeapons: []string{"sword"}})
	defender := newWarrior(2, "B", core.Profile{WS: 4, T: 3, W: 2}, core.Equipment{MeleeWeapons: []string{"swordbuckler"}})
	defender.WoundsRemaining = 2

	lookup := map[core.WarriorID]*core.Warrior{1: attacker, 2: defender}

	roller := rollerWithSequence(t, []int{6})
	res := Resolve(roller, attacker, defender, nil, lookup, "sword", false, rules.ShootingModifiers{})

	assert.True(t, res.ToHit.CriticalHit)
	assert.NotEqual(t, OutcomeParried, res.FinalOutcome)
}

func TestResolve_KnockedDownWoundSaveFailIsImmediateOutOfAction(t *testing.T) {
	attacker := newWarrior(1, "A", core.Profile{WS: 4, S: 4}, core.Equipment{MeleeWeapons: []string{"sword"}})
	defender := newWarrior(2, "B", core.Profile{WS: 3, T: 3, W: 2}, core.Equipment{})
	defender.Status = core.StatusKnockedDown
	defender.WoundsRemaining = 2

	warband := &core.Warband{Warriors: []*core.Warrior{defender}}
	lookup := map[core.WarriorID]*core.Warrior{1: attacker, 2: defender}

	// Knocked-down target auto-hits; only to-wound and armor-save rolls remain.
	// to-wound: S4 vs T3 -> needed 3, roll 4 succeeds, no crit since not 6.
	// armor save: no armor -> NoSave, automatically fails -> outOfAction.
	roller := rollerWithSequence(t, []int{4})
	res := Resolve(roller, attacker, defender, warband, lookup, "sword", false, rules.ShootingModifiers{})

	require.True(t, res.AutoHit)
	assert.Equal(t, OutcomeOutOfAction, res.FinalOutcome)
	assert.False(t, res.InjuryRolled, "knocked-down save-fail skips the injury roll")
	assert.Equal(t, core.StatusOutOfAction, defender.Status)
}

func TestResolve_CannotWoundSkipsDownstreamSteps(t *testing.T) {
	attacker := newWarrior(1, "A", core.Profile{WS: 3, S: 1}, core.Equipment{MeleeWeapons: []string{"dagger"}})
	defender := newWarrior(2, "B", core.Profile{WS: 3, T: 5, W: 1}, core.Equipment{})
	defender.WoundsRemaining = 1

	lookup := map[core.WarriorID]*core.Warrior{1: attacker, 2: defender}
	roller := rollerWithSequence(t, []int{4})

	res := Resolve(roller, attacker, defender, nil, lookup, "dagger", false, rules.ShootingModifiers{})
	assert.Equal(t, OutcomeNoWound, res.FinalOutcome)
	assert.True(t, res.ToWound.CannotWound)
	assert.Equal(t, 1, defender.WoundsRemaining)
}
