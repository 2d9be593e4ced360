package rules

import (
	"github.com/jruiznavarro/skirmishcore/internal/static"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
)

// WoundResult is the outcome of a to-wound roll.
type WoundResult struct {
	Success     bool
	Roll        int
	Needed      int
	CriticalHit bool
	CannotWound bool
}

// RollToWound resolves a to-wound roll for the given effective Strength
// against the defender's Toughness. When S cannot wound T at all, the
// roll is never made: CannotWound is set and Success is false.
func RollToWound(roller *dice.Roller, strength, toughness int) WoundResult {
	needed, ok := static.NeededToWound(strength, toughness)
	if !ok {
		return WoundResult{CannotWound: true}
	}
	roll := roller.RollD6()
	return WoundResult{
		Success:     roll >= needed,
		Roll:        roll,
		Needed:      needed,
		CriticalHit: roll == 6 && needed <= 5,
	}
}
