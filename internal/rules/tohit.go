package rules

import (
	"github.com/jruiznavarro/skirmishcore/internal/static"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
)

// HitResult is the outcome of a to-hit roll.
type HitResult struct {
	Success     bool
	Roll        int
	Needed      int
	CriticalHit bool
}

// ShootingModifiers are the context-dependent adjustments to a shot's
// to-hit number.
type ShootingModifiers struct {
	Cover        bool
	LongRange    bool
	Moved        bool
	LargeTarget  bool
	AccuracyMod  int // weapon-accuracy bonus/penalty; positive eases the roll
}

// RollToHitShooting resolves a ranged to-hit roll. The needed number is
// clamped to [2, 6]; a natural 6 is always a critical hit.
func RollToHitShooting(roller *dice.Roller, bs int, mods ShootingModifiers) HitResult {
	needed := static.NeededToHitShooting(bs)
	if mods.Cover {
		needed++
	}
	if mods.LongRange {
		needed++
	}
	if mods.Moved {
		needed++
	}
	if mods.LargeTarget {
		needed--
	}
	needed -= mods.AccuracyMod
	needed = clamp(needed, 2, 6)

	roll := roller.RollD6()
	return HitResult{
		Success:     roll >= needed,
		Roll:        roll,
		Needed:      needed,
		CriticalHit: roll == 6,
	}
}

// RollToHitMelee resolves a close-combat to-hit roll from the combatants'
// Weapon Skill.
func RollToHitMelee(roller *dice.Roller, attackerWS, defenderWS int) HitResult {
	needed := clamp(static.NeededToHitMelee(attackerWS, defenderWS), 2, 6)
	roll := roller.RollD6()
	return HitResult{
		Success:     roll >= needed,
		Roll:        roll,
		Needed:      needed,
		CriticalHit: roll == 6,
	}
}
