package rout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
)

func fourWarriorWarband(playerNumber int) *core.Warband {
	b := &core.Warband{PlayerNumber: playerNumber}
	for i := 0; i < 4; i++ {
		w := core.NewWarrior(core.WarriorID(i+1), "Warrior", core.ArchetypeHenchman, core.Profile{Ld: 7}, core.Equipment{}, nil)
		if i == 0 {
			w.IsLeader = true
		}
		b.Warriors = append(b.Warriors, w)
	}
	return b
}

func newState() *core.GameState {
	p1 := fourWarriorWarband(1)
	p2 := fourWarriorWarband(2)
	return core.NewGameState("g1", "skirmish", 1, time.Now(), p1, p2)
}

// Scenario D: a 4-warrior warband with 1 out of action triggers a rout
// test (ceil(4/4)=1). A passing leadership test leaves the game running;
// a failing one ends it with the opposite player as winner.
func TestPending_TriggersAtCasualtyThreshold(t *testing.T) {
	state := newState()
	state.Warbands[0].OutOfActionCount = 1

	assert.Equal(t, 0, Pending(state))
}

func TestPending_NoneBelowThreshold(t *testing.T) {
	state := newState()
	assert.Equal(t, -1, Pending(state))
}

func TestPending_SkipsAlreadyRoutedWarband(t *testing.T) {
	state := newState()
	state.Warbands[0].OutOfActionCount = 1
	state.Warbands[0].RoutFailed = true

	assert.Equal(t, -1, Pending(state))
}

func TestResolve_LeadershipSuccessLeavesGameRunning(t *testing.T) {
	state := newState()
	state.Warbands[0].OutOfActionCount = 1

	var seed int64
	for seed = 0; seed < 10000; seed++ {
		if dice.NewRoller(seed).Roll2D6() == 6 {
			break
		}
	}
	roller := dice.NewRoller(seed)

	res := Resolve(roller, state, 0)

	require.True(t, res.Success)
	assert.False(t, res.GameEnded)
	assert.False(t, state.Ended)
	assert.False(t, state.Warbands[0].RoutFailed)
}

func TestResolve_LeadershipFailureEndsGameOppositeWinner(t *testing.T) {
	state := newState()
	state.Warbands[0].OutOfActionCount = 1

	var seed int64
	for seed = 0; seed < 10000; seed++ {
		if dice.NewRoller(seed).Roll2D6() == 10 {
			break
		}
	}
	roller := dice.NewRoller(seed)

	res := Resolve(roller, state, 0)

	require.True(t, res.GameEnded)
	assert.False(t, res.Success)
	assert.True(t, state.Ended)
	assert.True(t, state.Warbands[0].RoutFailed)
	require.NotNil(t, state.Winner)
	assert.Equal(t, 2, *state.Winner)
	assert.Equal(t, "rout", state.EndReason)
}

func TestResolve_UsesIsLeaderFlagForLd(t *testing.T) {
	state := newState()
	state.Warbands[1].OutOfActionCount = 1
	state.Warbands[1].Warriors[0].IsLeader = false
	state.Warbands[1].Warriors[2].IsLeader = true
	state.Warbands[1].Warriors[2].Profile.Ld = 9

	roller := dice.NewRoller(42)
	res := Resolve(roller, state, 1)

	assert.Equal(t, state.Warbands[1].Warriors[2].ID, res.LeaderID)
}
