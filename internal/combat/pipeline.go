package combat

import (
	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/rules"
	"github.com/jruiznavarro/skirmishcore/internal/static"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
)

// Resolve threads a single attack (ranged when isShooting, melee
// otherwise) through the ordered resolution pipeline of spec.md §4.5,
// mutating attacker and defender in place and returning the full audit
// trail. lookup must contain every warrior the defender could be
// engaged with, so a knockout can clear engagement bidirectionally.
func Resolve(roller *dice.Roller, attacker, defender *core.Warrior, defenderWarband *core.Warband, lookup map[core.WarriorID]*core.Warrior, weaponKey string, isShooting bool, shootingMods rules.ShootingModifiers) *Resolution {
	// Step 1: setup.
	res := &Resolution{
		AttackerID:   attacker.ID,
		AttackerName: attacker.Name,
		DefenderID:   defender.ID,
		DefenderName: defender.Name,
		FinalOutcome: OutcomeMiss,
	}

	firstRound := attacker.Flags.HasCharged
	weaponStrength := static.GetWeaponStrength(weaponKey, attacker.Profile.S, firstRound)
	res.EffectiveStrength = weaponStrength
	if w, ok := static.MeleeWeapons[weaponKey]; ok {
		res.WeaponName = w.Name
	} else if w, ok := static.RangedWeapons[weaponKey]; ok {
		res.WeaponName = w.Name
	} else {
		res.WeaponName = weaponKey
	}

	if isShooting {
		attacker.Flags.HasShot = true
	}

	// Step 2: auto-hit check (melee only).
	defenderDownOrStunned := !isShooting && (defender.Status == core.StatusKnockedDown || defender.Status == core.StatusStunned)
	if defenderDownOrStunned {
		res.AutoHit = true
	} else {
		// Step 3: to-hit roll.
		if isShooting {
			res.ToHit = rules.RollToHitShooting(roller, attacker.Profile.BS, shootingMods)
		} else {
			res.ToHit = rules.RollToHitMelee(roller, attacker.Profile.WS, defender.Profile.WS)
		}
		if !res.ToHit.Success {
			res.FinalOutcome = OutcomeMiss
			return res
		}
	}

	// Step 4: parry (melee only, after a hit the defender could have
	// avoided). A knocked-down/stunned defender never rolled to be hit,
	// so there is no to-hit roll to beat and no parry to attempt.
	if !isShooting && !res.AutoHit {
		parryCapable := static.CanWeaponParry(firstParryKey(defender)) || hasAnyBuckler(defender)
		if parryCapable {
			opponentRoll := res.ToHit.Roll
			parryResult := rules.AttemptParry(roller, opponentRoll, hasAnyBuckler(defender))
			res.Parry.Attempted = !parryResult.CannotParry
			res.Parry.Roll = parryResult.Roll
			res.Parry.Success = parryResult.Success
			if parryResult.Success {
				res.FinalOutcome = OutcomeParried
				return res
			}
		}
	}

	// Step 5: to-wound roll.
	res.ToWound = rules.RollToWound(roller, weaponStrength, defender.Profile.T)
	if res.ToWound.CannotWound || !res.ToWound.Success {
		res.FinalOutcome = OutcomeNoWound
		return res
	}

	// Step 6: critical hit.
	noArmorSave := false
	injuryBonus := 0
	if res.ToWound.CriticalHit {
		crit := rules.RollCriticalHit(roller)
		res.Critical.Occurred = true
		res.Critical.Type = crit.Type
		res.Critical.Description = crit.Description
		res.Critical.IgnoresArmor = crit.IgnoresArmor
		res.Critical.InjuryBonus = crit.InjuryBonus
		if crit.IgnoresArmor {
			noArmorSave = true
		}
		injuryBonus = crit.InjuryBonus
	}

	// Step 7: target-state branch (melee only).
	wasStunned := !isShooting && defender.Status == core.StatusStunned
	wasKnockedDown := !isShooting && defender.Status == core.StatusKnockedDown
	if wasStunned {
		res.FinalOutcome = OutcomeOutOfAction
		applyOutOfAction(defender, defenderWarband, lookup)
		return res
	}

	// Step 8: armor save.
	if !noArmorSave {
		baseSave, hasShield := static.BaseSaveFor(defender.Equipment.Armor)
		shieldEase := 0
		if hasShield {
			shieldEase = -1 // shield eases the needed roll by 1 (spec.md §4.5 step 8)
		}
		mods := rules.ArmorSaveModifiers{
			StrengthMod: rules.StrengthArmorModifier(weaponStrength),
			WeaponMod:   static.GetWeaponArmorModifier(weaponKey) + shieldEase,
			EnemyBonus:  static.GetWeaponEnemyArmorBonus(weaponKey),
		}
		res.ArmorSave = rules.RollArmorSave(roller, baseSave, mods)
		if res.ArmorSave.Success {
			res.FinalOutcome = OutcomeSaved
			return res
		}
	} else {
		res.ArmorSaveSkipped = true
	}

	if wasKnockedDown {
		res.FinalOutcome = OutcomeOutOfAction
		applyOutOfAction(defender, defenderWarband, lookup)
		return res
	}

	// Step 9: apply wound.
	defender.WoundsRemaining--
	if defender.WoundsRemaining > 0 {
		res.FinalOutcome = OutcomeKnockedDown // wound taken, still standing: the defender's status is left unchanged
		return res
	}

	// Step 10: injury roll.
	res.InjuryRolled = true
	res.Injury = rules.RollInjury(roller, rules.InjuryModifiers{
		InjuryBonus: injuryBonus,
		Concussion:  static.WeaponCausesConcussion(weaponKey),
	})

	// Step 11: apply injury.
	defender.WoundsRemaining = 0
	defender.Status = res.Injury.Result
	switch res.Injury.Result {
	case core.StatusOutOfAction:
		res.FinalOutcome = OutcomeOutOfAction
		applyOutOfAction(defender, defenderWarband, lookup)
	case core.StatusStunned:
		res.FinalOutcome = OutcomeStunned
	default:
		res.FinalOutcome = OutcomeKnockedDown
	}
	return res
}

func applyOutOfAction(defender *core.Warrior, warband *core.Warband, lookup map[core.WarriorID]*core.Warrior) {
	if defender.Status != core.StatusOutOfAction {
		defender.Status = core.StatusOutOfAction
		defender.WoundsRemaining = 0
		if warband != nil {
			warband.OutOfActionCount++
		}
	}
	core.DisengageAll(defender, lookup)
}

// firstParryKey returns the first melee weapon key the defender carries,
// used to check parry-capability; a defender with multiple melee
// weapons parries with whichever grants the rule.
func firstParryKey(defender *core.Warrior) string {
	for _, key := range defender.Equipment.MeleeWeapons {
		if static.CanWeaponParry(key) {
			return key
		}
	}
	if len(defender.Equipment.MeleeWeapons) > 0 {
		return defender.Equipment.MeleeWeapons[0]
	}
	return ""
}

func hasAnyBuckler(defender *core.Warrior) bool {
	for _, key := range defender.Equipment.MeleeWeapons {
		if static.HasBuckler(key) {
			return true
		}
	}
	return false
}
