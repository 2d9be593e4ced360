// Package static holds the read-only reference tables the rules
// primitives consult: weapon strength/rend expressions, the ballistic
// skill and close-combat to-hit tables, the wound matrix, and armor base
// saves. These are data, not behavior — supplied by external roster
// tooling in a full installation and baked in here as the engine's
// default table set.
package static

// BSToHit maps a shooter's Ballistic Skill to the unmodified dice roll
// needed to hit. NeededToHitShooting resolves BS values the table does
// not list: above 7 needs 2, below 1 needs 6.
var BSToHit = map[int]int{
	1: 6, 2: 5, 3: 4, 4: 3, 5: 3, 6: 2, 7: 2,
}

// NeededToHitShooting resolves the unmodified to-hit number for a given
// Ballistic Skill: 2 for BS above the table, 6 for BS below it.
func NeededToHitShooting(bs int) int {
	if v, ok := BSToHit[bs]; ok {
		return v
	}
	if bs > 7 {
		return 2
	}
	return 6
}

// NeededToHitMelee resolves the close-combat to-hit number from the
// attacker's and defender's Weapon Skill.
func NeededToHitMelee(attackerWS, defenderWS int) int {
	switch {
	case defenderWS > 0 && attackerWS*2 <= defenderWS:
		return 5
	case attackerWS >= defenderWS:
		return 3
	default:
		return 4
	}
}

// NeededToWound resolves the to-wound number for the given effective
// Strength against the defender's Toughness. Returns ok=false when S
// cannot wound T at all (S <= T-4).
func NeededToWound(strength, toughness int) (needed int, ok bool) {
	diff := strength - toughness
	switch {
	case diff <= -4:
		return 0, false
	case diff == -3:
		return 6, true
	case diff == -2:
		return 6, true
	case diff == -1:
		return 5, true
	case diff == 0:
		return 4, true
	case diff == 1:
		return 3, true
	case diff == 2:
		return 2, true
	default: // diff >= 3
		return 2, true
	}
}

// ArmorBaseSave maps an armor key to the base save number it grants
// (lower is better; 7 means no save).
var ArmorBaseSave = map[string]int{
	"":            7,
	"none":        7,
	"lightArmor":  6,
	"heavyArmor":  5,
	"gromril":     4,
}

// BaseSaveFor resolves the best (lowest) base save among the armor keys a
// warrior carries, plus whether a shield is present.
func BaseSaveFor(armorKeys []string) (base int, hasShield bool) {
	base = 7
	for _, key := range armorKeys {
		if key == "shield" {
			hasShield = true
			continue
		}
		if v, ok := ArmorBaseSave[key]; ok && v < base {
			base = v
		}
	}
	return base, hasShield
}
