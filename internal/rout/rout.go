// Package rout implements the casualty-threshold check and leadership
// test that can end a battle outright (spec.md §4.6).
package rout

import (
	"math"

	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/rules"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
)

// Pending reports the warband index (0|1) whose out-of-action count has
// reached the casualty threshold and has not already routed, or -1 if
// neither warband is due a rout test. Called after every attack
// resolution per spec.md §4.6.
func Pending(state *core.GameState) int {
	for i, b := range state.Warbands {
		if b == nil || b.RoutFailed || len(b.Warriors) == 0 {
			continue
		}
		threshold := int(math.Ceil(float64(len(b.Warriors)) / 4))
		if b.OutOfActionCount >= threshold {
			return i
		}
	}
	return -1
}

// Result is the outcome of a resolved rout test.
type Result struct {
	LeaderID   core.WarriorID
	LeaderName string
	rules.LeadershipResult
	GameEnded bool
}

// Resolve rolls the leadership test for the warband at warbandIndex's
// leader. On failure it marks the warband routed and ends the game with
// the opposite player as winner; on success the game continues
// unchanged.
func Resolve(roller *dice.Roller, state *core.GameState, warbandIndex int) Result {
	warband := state.Warbands[warbandIndex]
	leader := warband.Leader()

	test := rules.LeadershipTest(roller, leader.Profile.Ld)
	res := Result{
		LeaderID:         leader.ID,
		LeaderName:       leader.Name,
		LeadershipResult: test,
	}
	if test.Success {
		return res
	}

	warband.RoutFailed = true
	winner := opponentPlayerNumber(warbandIndex)
	state.End(&winner, "rout")
	res.GameEnded = true
	return res
}

func opponentPlayerNumber(routedWarbandIndex int) int {
	if routedWarbandIndex == 0 {
		return 2
	}
	return 1
}
