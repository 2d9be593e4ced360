package static

// WeaponRule is a boolean special rule a weapon can carry.
type WeaponRule string

const (
	RuleParry              WeaponRule = "parry"
	RuleBuckler            WeaponRule = "buckler"
	RuleConcussion         WeaponRule = "concussion"
	RuleFirstRoundBonus    WeaponRule = "first_round_bonus" // flail/morningstar: +1S on the charge round only
	RuleDaggerArmorBonus   WeaponRule = "dagger_armor_bonus" // enemy's needed armor save is 1 lower (easier)
)

// MeleeWeapon describes a melee weapon's static profile.
type MeleeWeapon struct {
	Name            string
	StrengthExpr    string // "user", "user+1"
	ArmorModifier   int    // added to the defender's needed armor save (worsens; negative eases)
	AccuracyBonus   int    // subtracted from the needed to-hit roll (negative = harder)
	Rules           []WeaponRule
}

// RangedWeapon describes a ranged weapon's static profile.
type RangedWeapon struct {
	Name          string
	StrengthExpr  string
	ArmorModifier int
	AccuracyBonus int
	Rules         []WeaponRule
}

// MeleeWeapons is the read-only table of melee weapon profiles, keyed by
// the equipment key stored on a warrior.
var MeleeWeapons = map[string]MeleeWeapon{
	"dagger":      {Name: "Dagger", StrengthExpr: "user", ArmorModifier: 0, Rules: []WeaponRule{RuleDaggerArmorBonus}},
	"sword":       {Name: "Sword", StrengthExpr: "user", ArmorModifier: 0, Rules: []WeaponRule{RuleParry}},
	"swordbuckler": {Name: "Sword & Buckler", StrengthExpr: "user", ArmorModifier: 0, Rules: []WeaponRule{RuleParry, RuleBuckler}},
	"axe":         {Name: "Axe", StrengthExpr: "user", ArmorModifier: 1},
	"mace":        {Name: "Mace", StrengthExpr: "user", ArmorModifier: 0, Rules: []WeaponRule{RuleConcussion}},
	"flail":       {Name: "Flail", StrengthExpr: "user+1", ArmorModifier: 1, Rules: []WeaponRule{RuleFirstRoundBonus}},
	"morningstar": {Name: "Morning Star", StrengthExpr: "user+1", ArmorModifier: 1, Rules: []WeaponRule{RuleFirstRoundBonus, RuleConcussion}},
	"spear":       {Name: "Spear", StrengthExpr: "user", ArmorModifier: 0},
	"halberd":     {Name: "Halberd", StrengthExpr: "user+1", ArmorModifier: 0},
}

// RangedWeapons is the read-only table of ranged weapon profiles.
var RangedWeapons = map[string]RangedWeapon{
	"bow":        {Name: "Bow", StrengthExpr: "user", ArmorModifier: 0},
	"crossbow":   {Name: "Crossbow", StrengthExpr: "user+1", ArmorModifier: 1},
	"longbow":    {Name: "Longbow", StrengthExpr: "user", ArmorModifier: 0, Rules: []WeaponRule{RuleDaggerArmorBonus}},
	"pistol":     {Name: "Pistol", StrengthExpr: "user+1", ArmorModifier: 2, AccuracyBonus: -1},
	"handgun":    {Name: "Handgun", StrengthExpr: "user+2", ArmorModifier: 2, AccuracyBonus: -1},
	"sling":      {Name: "Sling", StrengthExpr: "user", ArmorModifier: 0},
}

func hasRule(rules []WeaponRule, target WeaponRule) bool {
	for _, r := range rules {
		if r == target {
			return true
		}
	}
	return false
}

// CanWeaponParry reports whether the melee weapon key grants a parry
// attempt.
func CanWeaponParry(key string) bool {
	w, ok := MeleeWeapons[key]
	return ok && hasRule(w.Rules, RuleParry)
}

// HasBuckler reports whether the melee weapon key grants the
// sword-and-buckler reroll-one-failed-parry rule.
func HasBuckler(key string) bool {
	w, ok := MeleeWeapons[key]
	return ok && hasRule(w.Rules, RuleBuckler)
}

// WeaponCausesConcussion reports whether a hit from this melee weapon
// collapses an injury roll of 2-4 down to stunned.
func WeaponCausesConcussion(key string) bool {
	w, ok := MeleeWeapons[key]
	return ok && hasRule(w.Rules, RuleConcussion)
}

// GetWeaponArmorModifier returns the weapon's armor-save modifier
// (added to the defender's needed save; negative eases it).
func GetWeaponArmorModifier(key string) int {
	if w, ok := MeleeWeapons[key]; ok {
		return w.ArmorModifier
	}
	if w, ok := RangedWeapons[key]; ok {
		return w.ArmorModifier
	}
	return 0
}

// GetWeaponEnemyArmorBonus returns the bonus subtracted from the
// defender's needed armor save roll (easier to save) for weapons like
// the dagger that grant the enemy an easier save.
func GetWeaponEnemyArmorBonus(key string) int {
	var rules []WeaponRule
	if w, ok := MeleeWeapons[key]; ok {
		rules = w.Rules
	} else if w, ok := RangedWeapons[key]; ok {
		rules = w.Rules
	}
	if hasRule(rules, RuleDaggerArmorBonus) {
		return 1
	}
	return 0
}

// GetWeaponAccuracyBonus returns the ranged weapon's to-hit accuracy
// bonus (subtracted from the needed roll: positive eases the shot, and a
// penalty such as the pistol's or handgun's is negative).
func GetWeaponAccuracyBonus(key string) int {
	if w, ok := RangedWeapons[key]; ok {
		return w.AccuracyBonus
	}
	return 0
}

// GetWeaponStrength resolves a melee or ranged weapon's effective
// Strength for this attack, honoring "user", "user+N", and the
// first-round-only bonus carried by weapons like the flail and morning
// star (firstRound is true only on the charging warrior's first combat
// activation after the charge).
func GetWeaponStrength(key string, userS int, firstRound bool) int {
	expr, rules := lookupExpr(key)
	bonus := strengthExprBonus(expr)
	if hasRule(rules, RuleFirstRoundBonus) && !firstRound {
		bonus = 0
	}
	return userS + bonus
}

func lookupExpr(key string) (string, []WeaponRule) {
	if w, ok := MeleeWeapons[key]; ok {
		return w.StrengthExpr, w.Rules
	}
	if w, ok := RangedWeapons[key]; ok {
		return w.StrengthExpr, w.Rules
	}
	return "user", nil
}

func strengthExprBonus(expr string) int {
	switch expr {
	case "user+1":
		return 1
	case "user+2":
		return 2
	default:
		return 0
	}
}
