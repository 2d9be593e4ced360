// Package statemachine implements the turn/phase transition table
// (spec.md §4.2) and its flag-reset policy. It deliberately implements
// the "full turn per player" variant -- each player completes all of
// their own phases before the other begins -- rather than the earlier,
// alternating-per-phase variant; see DESIGN.md.
package statemachine

import "github.com/jruiznavarro/skirmishcore/internal/core"

// Transition is the result of advancing the turn/phase state machine:
// the next (turn, phase, currentPlayer) plus which flag-reset policy to
// apply.
type Transition struct {
	Turn          int
	Phase         core.PhaseTag
	CurrentPlayer int

	ResetBothWarbands  bool
	ResetPlayer1Acted  bool
}

// Advance computes the next state from the current one.
func Advance(turn int, phaseTag core.PhaseTag, currentPlayer int) Transition {
	switch phaseTag {
	case core.PhaseSetup:
		if currentPlayer == 1 {
			return Transition{Turn: turn, Phase: core.PhaseSetup, CurrentPlayer: 2, ResetPlayer1Acted: true}
		}
		return Transition{Turn: turn, Phase: core.PhaseRecovery, CurrentPlayer: 1, ResetBothWarbands: true}

	case core.PhaseCombat:
		if currentPlayer == 1 {
			return Transition{Turn: turn, Phase: core.PhaseRecovery, CurrentPlayer: 2, ResetBothWarbands: true}
		}
		return Transition{Turn: turn + 1, Phase: core.PhaseRecovery, CurrentPlayer: 1, ResetBothWarbands: true}

	default:
		return Transition{Turn: turn, Phase: nextNonCombatPhase(phaseTag), CurrentPlayer: currentPlayer}
	}
}

func nextNonCombatPhase(current core.PhaseTag) core.PhaseTag {
	switch current {
	case core.PhaseRecovery:
		return core.PhaseMovement
	case core.PhaseMovement:
		return core.PhaseShooting
	case core.PhaseShooting:
		return core.PhaseCombat
	default:
		return current
	}
}

// Apply mutates state to the transition's target and runs its
// flag-reset policy.
func Apply(state *core.GameState, t Transition) {
	state.Turn = t.Turn
	state.Phase = t.Phase
	state.CurrentPlayer = t.CurrentPlayer

	if t.ResetBothWarbands {
		state.ResetTurnState()
	}
	if t.ResetPlayer1Acted {
		if b := state.WarbandOf(1); b != nil {
			for _, w := range b.Warriors {
				w.Flags.HasActed = false
			}
		}
	}
}
