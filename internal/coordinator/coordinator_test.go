package coordinator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/enginelog"
	"github.com/jruiznavarro/skirmishcore/internal/event"
	"github.com/jruiznavarro/skirmishcore/internal/phase"
	"github.com/jruiznavarro/skirmishcore/internal/phases/setup"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
	"github.com/sirupsen/logrus"
)

func twoWarriorWarband(playerNumber int, base core.WarriorID) *core.Warband {
	return &core.Warband{PlayerNumber: playerNumber, Warriors: []*core.Warrior{
		core.NewWarrior(base, "A", core.ArchetypeHenchman, core.Profile{}, core.Equipment{}, nil),
		core.NewWarrior(base+1, "B", core.ArchetypeHenchman, core.Profile{}, core.Equipment{}, nil),
	}}
}

func newTestCoordinator() *Coordinator {
	p1 := twoWarriorWarband(1, 1)
	p2 := twoWarriorWarband(2, 10)
	snapshot := core.NewSnapshot("skirmish", 1, p1, p2)
	state := core.NewGameState("g1", "skirmish", 1, time.Time{}, p1, p2)
	roller := dice.NewRoller(1)
	modules := []phase.Module{setup.Module{Now: func() time.Time { return time.Time{} }}}
	return New(state, snapshot, roller, modules, enginelog.New(logrus.ErrorLevel))
}

func selectEvt(id string, warriorID core.WarriorID) event.GameEvent {
	return event.GameEvent{ID: id, Type: event.SelectWarrior, PlayerID: "p1", Payload: event.SelectWarriorPayload{WarriorID: warriorID}}
}

func confirmEvt(id string) event.GameEvent {
	return event.GameEvent{ID: id, Type: event.ConfirmPosition, PlayerID: "p1", Payload: event.ConfirmPositionPayload{}}
}

func advanceEvt(id string) event.GameEvent {
	return event.GameEvent{ID: id, Type: event.AdvancePhase, PlayerID: "p1", Payload: event.AdvancePhasePayload{}}
}

// Scenario E: undo to an earlier event reproduces the state at that
// point, and reapplying the undone tail reproduces the original state.
func TestUndo_ScenarioE_RoundTrip(t *testing.T) {
	c := newTestCoordinator()

	events := []event.GameEvent{
		selectEvt("e1", 1),
		confirmEvt("e2"),
		selectEvt("e3", 2),
		confirmEvt("e4"),
		advanceEvt("e5"),
	}
	for _, evt := range events {
		res := c.ProcessEvent(evt)
		require.True(t, res.Success, "event %s should succeed", evt.ID)
	}

	wantPlayerAfterE5 := c.State.CurrentPlayer
	wantWarrior1ActedAfterE5 := c.State.Warbands[0].Warriors[0].Flags.HasActed
	wantWarrior2ActedAfterE5 := c.State.Warbands[0].Warriors[1].Flags.HasActed

	undoRes := c.ProcessEvent(event.GameEvent{ID: "u1", Type: event.Undo, Payload: event.UndoPayload{ToEventID: "e4"}})
	require.True(t, undoRes.Success)

	assert.Equal(t, 1, c.State.CurrentPlayer, "undo to e4 should leave player 1 still active")
	assert.True(t, c.State.Warbands[0].Warriors[0].Flags.HasActed)
	assert.True(t, c.State.Warbands[0].Warriors[1].Flags.HasActed)
	assert.Len(t, c.History, 4)

	reapply := c.ProcessEvent(advanceEvt("e5"))
	require.True(t, reapply.Success)

	assert.Equal(t, wantPlayerAfterE5, c.State.CurrentPlayer)
	assert.Equal(t, wantWarrior1ActedAfterE5, c.State.Warbands[0].Warriors[0].Flags.HasActed)
	assert.Equal(t, wantWarrior2ActedAfterE5, c.State.Warbands[0].Warriors[1].Flags.HasActed)
}

func TestProcessEvent_UnsupportedEventRejectedWithoutAppendingHistory(t *testing.T) {
	c := newTestCoordinator()
	res := c.ProcessEvent(event.GameEvent{ID: "e1", Type: event.ConfirmMelee, Payload: event.ConfirmMeleePayload{}})

	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Empty(t, c.History)
}
