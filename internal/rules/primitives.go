// Package rules implements the stateless dice-math primitives of
// spec.md §4.1: characteristic tests, leadership tests, to-hit/to-wound/
// armor-save/injury/parry resolution, and weapon attribute lookups. Every
// function is parameterized by an injectable *dice.Roller so a replay
// with the same seed reproduces identical outcomes.
package rules

import "github.com/jruiznavarro/skirmishcore/pkg/dice"

// CharacteristicResult is the outcome of a characteristic test.
type CharacteristicResult struct {
	Success  bool
	Roll     int
	AutoFail bool
}

// CharacteristicTest rolls a D6 against a characteristic value; success
// iff the roll is <= value. A natural 6 always fails, even against a
// value of 6 or higher.
func CharacteristicTest(roller *dice.Roller, value int) CharacteristicResult {
	roll := roller.RollD6()
	if roll == 6 {
		return CharacteristicResult{Roll: roll, AutoFail: true}
	}
	return CharacteristicResult{Roll: roll, Success: roll <= value}
}

// LeadershipResult is the outcome of a leadership test.
type LeadershipResult struct {
	Success bool
	Roll    int
}

// LeadershipTest rolls 2D6 against a Leadership value; success iff the
// sum is <= Ld.
func LeadershipTest(roller *dice.Roller, ld int) LeadershipResult {
	roll := roller.Roll2D6()
	return LeadershipResult{Roll: roll, Success: roll <= ld}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
