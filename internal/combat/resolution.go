// Package combat implements the shared, ordered resolution pipeline for
// a single attack (ranged or melee): to-hit, parry, to-wound, critical,
// armor save, injury. One invocation threads through spec.md §4.5's
// ordered steps and mutates attacker/defender state in the same pass
// that builds the audit trail.
package combat

import (
	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/rules"
)

// Outcome classifies how an attack ultimately resolved.
type Outcome string

const (
	OutcomeMiss          Outcome = "miss"
	OutcomeParried       Outcome = "parried"
	OutcomeNoWound       Outcome = "noWound"
	OutcomeSaved         Outcome = "saved"
	OutcomeKnockedDown   Outcome = "knockedDown"
	OutcomeStunned       Outcome = "stunned"
	OutcomeOutOfAction   Outcome = "outOfAction"
)

// Resolution is one attack's full audit trail.
type Resolution struct {
	AttackerID   core.WarriorID
	AttackerName string
	DefenderID   core.WarriorID
	DefenderName string

	WeaponName        string
	EffectiveStrength int

	ToHit    rules.HitResult
	AutoHit  bool

	Parry struct {
		Attempted bool
		Roll      int
		Success   bool
	}

	ToWound rules.WoundResult

	Critical struct {
		Occurred     bool
		Type         rules.CriticalType
		Description  string
		IgnoresArmor bool
		InjuryBonus  int
	}

	ArmorSave rules.ArmorSaveResult
	ArmorSaveSkipped bool

	Injury rules.InjuryResult
	InjuryRolled bool

	FinalOutcome Outcome
}
