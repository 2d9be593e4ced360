package recovery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/event"
	"github.com/jruiznavarro/skirmishcore/internal/phasectx"
	"github.com/jruiznavarro/skirmishcore/internal/view"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
)

func recoveryState(status core.Status) (*core.GameState, *core.Warrior) {
	w := core.NewWarrior(1, "A", core.ArchetypeHenchman, core.Profile{Ld: 10}, core.Equipment{}, nil)
	w.Status = status
	p1 := &core.Warband{PlayerNumber: 1, Warriors: []*core.Warrior{w}}
	p2 := &core.Warband{PlayerNumber: 2, Warriors: []*core.Warrior{
		core.NewWarrior(2, "B", core.ArchetypeHenchman, core.Profile{}, core.Equipment{}, nil),
	}}
	state := core.NewGameState("g1", "skirmish", 5, time.Time{}, p1, p2)
	state.Phase = core.PhaseRecovery
	return state, w
}

func TestRally_SuccessStandsWarriorUp(t *testing.T) {
	state, w := recoveryState(core.StatusFleeing)
	m := Module{Roller: dice.NewRoller(5), Now: func() time.Time { return time.Time{} }}

	outcome, err := m.ProcessEvent(event.GameEvent{Type: event.RecoveryAction, Payload: event.RecoveryActionPayload{Action: event.Rally, WarriorID: 1}}, state, phasectx.New())
	require.NoError(t, err)
	assert.True(t, outcome.StateChanged)
	assert.Equal(t, core.StatusStanding, w.Status)
	assert.True(t, w.Flags.HasRecovered)
}

func TestRally_RejectsNonFleeingWarrior(t *testing.T) {
	state, _ := recoveryState(core.StatusStanding)
	m := Module{Roller: dice.NewRoller(5)}

	_, err := m.ProcessEvent(event.GameEvent{Type: event.RecoveryAction, Payload: event.RecoveryActionPayload{Action: event.Rally, WarriorID: 1}}, state, phasectx.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only fleeing warriors may rally")
}

func TestRecoverFromStunned_MovesToKnockedDown(t *testing.T) {
	state, w := recoveryState(core.StatusStunned)
	m := Module{Roller: dice.NewRoller(5), Now: func() time.Time { return time.Time{} }}

	_, err := m.ProcessEvent(event.GameEvent{Type: event.RecoveryAction, Payload: event.RecoveryActionPayload{Action: event.RecoverFromStunned, WarriorID: 1}}, state, phasectx.New())
	require.NoError(t, err)
	assert.Equal(t, core.StatusKnockedDown, w.Status)
}

func TestStandUp_RejectsWhileEngagedInCombat(t *testing.T) {
	state, w := recoveryState(core.StatusKnockedDown)
	w.Combat.InCombat = true
	w.Combat.EngagedWith = []core.WarriorID{2}
	m := Module{Roller: dice.NewRoller(5)}

	_, err := m.ProcessEvent(event.GameEvent{Type: event.RecoveryAction, Payload: event.RecoveryActionPayload{Action: event.StandUp, WarriorID: 1}}, state, phasectx.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engaged in combat")
}

func TestStandUp_SetsHalfMovementAndStrikesLast(t *testing.T) {
	state, w := recoveryState(core.StatusKnockedDown)
	m := Module{Roller: dice.NewRoller(5), Now: func() time.Time { return time.Time{} }}

	_, err := m.ProcessEvent(event.GameEvent{Type: event.RecoveryAction, Payload: event.RecoveryActionPayload{Action: event.StandUp, WarriorID: 1}}, state, phasectx.New())
	require.NoError(t, err)
	assert.Equal(t, core.StatusStanding, w.Status)
	assert.True(t, w.Modifiers.HalfMovement)
	assert.True(t, w.Modifiers.StrikesLast)
}

func TestBuildScreen_SkipsWarriorsAlreadyRecoveredThisTurn(t *testing.T) {
	state, w := recoveryState(core.StatusFleeing)
	w.Flags.HasRecovered = true
	m := Module{}

	screen := m.BuildScreen(state, phasectx.New())
	data, ok := screen.Data.(struct {
		Fleeing     []view.WarriorSummary
		Stunned     []view.WarriorSummary
		KnockedDown []view.WarriorSummary
	})
	require.True(t, ok)
	assert.Empty(t, data.Fleeing)
	assert.Empty(t, data.Stunned)
	assert.Empty(t, data.KnockedDown)
}

func TestBuildScreen_BucketsByStatus(t *testing.T) {
	state, w := recoveryState(core.StatusStunned)
	_ = w
	m := Module{}

	screen := m.BuildScreen(state, phasectx.New())
	data, ok := screen.Data.(struct {
		Fleeing     []view.WarriorSummary
		Stunned     []view.WarriorSummary
		KnockedDown []view.WarriorSummary
	})
	require.True(t, ok)
	assert.Empty(t, data.Fleeing)
	assert.Len(t, data.Stunned, 1)
	assert.Empty(t, data.KnockedDown)
}
