package rules

import "github.com/jruiznavarro/skirmishcore/pkg/dice"

// ArmorSaveResult is the outcome of an armor save roll.
type ArmorSaveResult struct {
	Success bool
	Roll    int
	Needed  int
	NoSave  bool
}

// ArmorSaveModifiers are the contextual adjustments to the needed save.
// StrengthMod and WeaponMod add to the needed roll (worsening the save);
// EnemyBonus subtracts from it (easing the save).
type ArmorSaveModifiers struct {
	StrengthMod int // weapon strength's effect, worsens the save
	WeaponMod   int // melee weapon's ArmorModifier, worsens the save (negative eases, e.g. a shield)
	EnemyBonus  int // weapon rule (e.g. dagger) that eases the enemy's save
}

// RollArmorSave resolves an armor save roll. The needed number is
// clamped so a save can never beat 2+; a needed value above 6 means no
// save is possible.
func RollArmorSave(roller *dice.Roller, baseSave int, mods ArmorSaveModifiers) ArmorSaveResult {
	needed := baseSave + mods.StrengthMod + mods.WeaponMod - mods.EnemyBonus
	if needed < 2 {
		needed = 2
	}
	if needed > 6 {
		return ArmorSaveResult{Needed: needed, NoSave: true}
	}
	roll := roller.RollD6()
	return ArmorSaveResult{
		Success: roll >= needed,
		Roll:    roll,
		Needed:  needed,
	}
}

// StrengthArmorModifier returns how much a weapon's Strength worsens the
// defender's needed armor save: +1 at S4+, +2 at S6+, +3 at S8+.
func StrengthArmorModifier(strength int) int {
	switch {
	case strength >= 8:
		return 3
	case strength >= 6:
		return 2
	case strength >= 4:
		return 1
	default:
		return 0
	}
}
