package rules

import "github.com/jruiznavarro/skirmishcore/pkg/dice"

// ParryResult is the outcome of a parry attempt.
type ParryResult struct {
	Success      bool
	Roll         int
	Needed       int
	CannotParry  bool
	RerollUsed   bool
}

// AttemptParry resolves a parry attempt against the attacker's to-hit
// roll: success iff the parry roll beats it. A natural 6 on the
// attacker's to-hit roll can never be parried. Sword-and-buckler grants
// one reroll of a failed parry.
func AttemptParry(roller *dice.Roller, opponentRoll int, hasBuckler bool) ParryResult {
	if opponentRoll == 6 {
		return ParryResult{CannotParry: true}
	}

	roll := roller.RollD6()
	success := roll > opponentRoll
	if !success && hasBuckler {
		roll = roller.RollD6()
		success = roll > opponentRoll
		return ParryResult{Success: success, Roll: roll, Needed: opponentRoll + 1, RerollUsed: true}
	}
	return ParryResult{Success: success, Roll: roll, Needed: opponentRoll + 1}
}
