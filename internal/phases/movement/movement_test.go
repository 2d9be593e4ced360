package movement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/event"
	"github.com/jruiznavarro/skirmishcore/internal/phasectx"
)

func newWarrior(id core.WarriorID, name string) *core.Warrior {
	return core.NewWarrior(id, name, core.ArchetypeHenchman, core.Profile{M: 4}, core.Equipment{}, nil)
}

func newState(p1, p2 *core.Warrior) *core.GameState {
	warbandA := &core.Warband{PlayerNumber: 1, Warriors: []*core.Warrior{p1}}
	warbandB := &core.Warband{PlayerNumber: 2, Warriors: []*core.Warrior{p2}}
	state := core.NewGameState("g1", "skirmish", 1, time.Time{}, warbandA, warbandB)
	state.Phase = core.PhaseMovement
	state.CurrentPlayer = 1
	return state
}

func selectEvt(id core.WarriorID) event.GameEvent {
	return event.GameEvent{Type: event.SelectWarrior, Payload: event.SelectWarriorPayload{WarriorID: id}}
}

func TestConfirmMove_ScenarioF_BlockedWhileEngagedWithStandingEnemy(t *testing.T) {
	w1 := newWarrior(1, "W1")
	w2 := newWarrior(2, "W2")
	core.Engage(w1, w2)
	state := newState(w1, w2)
	ctx := phasectx.New()
	m := Module{}

	_, err := m.ProcessEvent(selectEvt(1), state, ctx)
	require.NoError(t, err)
	ctx.SelectedWarriorID = &w1.ID

	_, err = m.ProcessEvent(event.GameEvent{Type: event.ConfirmMove, Payload: event.ConfirmMovePayload{MoveType: event.MoveTypeMove}}, state, ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot move away from a standing engaged enemy")
	assert.False(t, w1.Flags.HasMoved)
	assert.True(t, w1.Combat.InCombat)
}

func TestConfirmMove_DisengagesWhenEngagedEnemyIsKnockedDown(t *testing.T) {
	w1 := newWarrior(1, "W1")
	w2 := newWarrior(2, "W2")
	w2.Status = core.StatusKnockedDown
	core.Engage(w1, w2)
	state := newState(w1, w2)
	ctx := phasectx.New()
	ctx.SelectedWarriorID = &w1.ID
	m := Module{}

	outcome, err := m.ProcessEvent(event.GameEvent{Type: event.ConfirmMove, Payload: event.ConfirmMovePayload{MoveType: event.MoveTypeMove}}, state, ctx)
	require.NoError(t, err)
	assert.True(t, outcome.StateChanged)
	assert.True(t, w1.Flags.HasMoved)
	assert.False(t, w1.Combat.InCombat)
	assert.False(t, w2.Combat.InCombat)
}

func TestConfirmMove_RunSetsHasRun(t *testing.T) {
	w1 := newWarrior(1, "W1")
	w2 := newWarrior(2, "W2")
	state := newState(w1, w2)
	ctx := phasectx.New()
	ctx.SelectedWarriorID = &w1.ID
	m := Module{}

	_, err := m.ProcessEvent(event.GameEvent{Type: event.ConfirmMove, Payload: event.ConfirmMovePayload{MoveType: event.MoveTypeRun}}, state, ctx)
	require.NoError(t, err)
	assert.True(t, w1.Flags.HasMoved)
	assert.True(t, w1.Flags.HasRun)
}

func TestConfirmMove_RejectsWhenAlreadyMoved(t *testing.T) {
	w1 := newWarrior(1, "W1")
	w2 := newWarrior(2, "W2")
	w1.Flags.HasMoved = true
	state := newState(w1, w2)
	ctx := phasectx.New()
	ctx.SelectedWarriorID = &w1.ID
	m := Module{}

	_, err := m.ProcessEvent(event.GameEvent{Type: event.ConfirmMove, Payload: event.ConfirmMovePayload{MoveType: event.MoveTypeMove}}, state, ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already moved")
}

func TestConfirmCharge_EngagesWarriorsAndSetsFlags(t *testing.T) {
	w1 := newWarrior(1, "W1")
	w2 := newWarrior(2, "W2")
	state := newState(w1, w2)
	ctx := phasectx.New()
	ctx.SelectedWarriorID = &w1.ID
	m := Module{}

	outcome, err := m.ProcessEvent(event.GameEvent{Type: event.ConfirmCharge, Payload: event.ConfirmChargePayload{TargetID: 2}}, state, ctx)
	require.NoError(t, err)
	assert.True(t, outcome.StateChanged)
	assert.True(t, w1.Flags.HasCharged)
	assert.True(t, w1.Combat.InCombat)
	assert.True(t, w2.Combat.InCombat)
}

func TestConfirmCharge_RejectsOwnWarband(t *testing.T) {
	w1 := newWarrior(1, "W1")
	w1b := newWarrior(3, "W1b")
	state := newState(w1, newWarrior(2, "W2"))
	state.Warbands[0].Warriors = append(state.Warbands[0].Warriors, w1b)
	ctx := phasectx.New()
	ctx.SelectedWarriorID = &w1.ID
	m := Module{}

	_, err := m.ProcessEvent(event.GameEvent{Type: event.ConfirmCharge, Payload: event.ConfirmChargePayload{TargetID: 3}}, state, ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "own warband")
}

func TestConfirmCharge_RejectsOutOfActionTarget(t *testing.T) {
	w1 := newWarrior(1, "W1")
	w2 := newWarrior(2, "W2")
	w2.Status = core.StatusOutOfAction
	state := newState(w1, w2)
	ctx := phasectx.New()
	ctx.SelectedWarriorID = &w1.ID
	m := Module{}

	_, err := m.ProcessEvent(event.GameEvent{Type: event.ConfirmCharge, Payload: event.ConfirmChargePayload{TargetID: 2}}, state, ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be charged")
}
