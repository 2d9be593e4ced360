package rules

import (
	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
)

// InjuryModifiers are the contextual adjustments to an injury roll.
type InjuryModifiers struct {
	InjuryBonus int  // carried forward from a critical hit (e.g. masterStrike +2)
	Concussion  bool // weapon rule collapses a 2-4 result down to stunned
}

// InjuryResult is the outcome of an injury roll.
type InjuryResult struct {
	Result core.Status
	Roll   int
}

// RollInjury resolves the injury table: 1-2 knocked down, 3-4 stunned,
// 5+ out of action. A concussion weapon collapses 2-4 to stunned.
func RollInjury(roller *dice.Roller, mods InjuryModifiers) InjuryResult {
	roll := roller.RollD6() + mods.InjuryBonus

	var status core.Status
	switch {
	case roll <= 2:
		status = core.StatusKnockedDown
	case roll <= 4:
		status = core.StatusStunned
	default:
		status = core.StatusOutOfAction
	}

	if mods.Concussion && roll >= 2 && roll <= 4 {
		status = core.StatusStunned
	}

	return InjuryResult{Result: status, Roll: roll}
}
