package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngageDisengageSymmetry(t *testing.T) {
	a := NewWarrior(1, "Gotrek", ArchetypeHero, Profile{W: 3}, Equipment{}, nil)
	b := NewWarrior(2, "Felix", ArchetypeHero, Profile{W: 2}, Equipment{}, nil)

	Engage(a, b)
	assert.True(t, a.Combat.InCombat)
	assert.True(t, b.Combat.InCombat)
	assert.Contains(t, a.Combat.EngagedWith, b.ID)
	assert.Contains(t, b.Combat.EngagedWith, a.ID)

	Disengage(a, b)
	assert.False(t, a.Combat.InCombat)
	assert.False(t, b.Combat.InCombat)
	assert.NotContains(t, a.Combat.EngagedWith, b.ID)
	assert.NotContains(t, b.Combat.EngagedWith, a.ID)
}

func TestDisengageAllMaintainsSymmetry(t *testing.T) {
	a := NewWarrior(1, "A", ArchetypeHenchman, Profile{}, Equipment{}, nil)
	b := NewWarrior(2, "B", ArchetypeHenchman, Profile{}, Equipment{}, nil)
	c := NewWarrior(3, "C", ArchetypeHenchman, Profile{}, Equipment{}, nil)
	Engage(a, b)
	Engage(a, c)

	lookup := map[WarriorID]*Warrior{2: b, 3: c}
	DisengageAll(a, lookup)

	assert.False(t, a.Combat.InCombat)
	assert.Empty(t, a.Combat.EngagedWith)
	assert.Empty(t, b.Combat.EngagedWith)
	assert.Empty(t, c.Combat.EngagedWith)
}

func TestResetTurnStateClearsFlagsAndModifiers(t *testing.T) {
	w := NewWarrior(1, "A", ArchetypeHenchman, Profile{}, Equipment{}, nil)
	w.Flags.HasMoved = true
	w.Flags.HasShot = true
	w.Modifiers.HalfMovement = true

	w.ResetTurnState()

	assert.Equal(t, Flags{}, w.Flags)
	assert.Equal(t, Modifiers{}, w.Modifiers)
}

func TestLeaderFlagTakesPriorityOverSubstringMatch(t *testing.T) {
	b := &Warband{Warriors: []*Warrior{
		{ID: 1, Race: "ratman", IsLeader: false},
		{ID: 2, Race: "chieftain-kin", IsLeader: false},
		{ID: 3, Race: "elder", IsLeader: true},
	}}
	assert.Equal(t, WarriorID(3), b.Leader().ID)
}

func TestLeaderFallsBackToSubstringThenFirst(t *testing.T) {
	withTitle := &Warband{Warriors: []*Warrior{
		{ID: 1, Race: "ratman"},
		{ID: 2, Race: "Chieftain"},
	}}
	assert.Equal(t, WarriorID(2), withTitle.Leader().ID)

	noTitle := &Warband{Warriors: []*Warrior{
		{ID: 5, Race: "ratman"},
		{ID: 6, Race: "ratman"},
	}}
	assert.Equal(t, WarriorID(5), noTitle.Leader().ID)
}

func TestSnapshotRebuildIsIndependentPerCall(t *testing.T) {
	w := NewWarrior(1, "A", ArchetypeHenchman, Profile{W: 3}, Equipment{MeleeWeapons: []string{"sword"}}, []string{"strongman"})
	b := &Warband{PlayerNumber: 1, Warriors: []*Warrior{w}}
	snap := NewSnapshot("skirmish", 42, b, &Warband{PlayerNumber: 2})

	rebuilt1, _ := snap.Rebuild()
	rebuilt1.Warriors[0].WoundsRemaining = 0
	rebuilt1.Warriors[0].Status = StatusOutOfAction

	rebuilt2, _ := snap.Rebuild()
	assert.Equal(t, 3, rebuilt2.Warriors[0].WoundsRemaining)
	assert.Equal(t, StatusStanding, rebuilt2.Warriors[0].Status)
}
