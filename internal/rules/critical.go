package rules

import "github.com/jruiznavarro/skirmishcore/pkg/dice"

// CriticalType classifies a critical hit.
type CriticalType string

const (
	CriticalVitalPart   CriticalType = "vitalPart"
	CriticalExposedSpot CriticalType = "exposedSpot"
	CriticalMasterStrike CriticalType = "masterStrike"
)

// CriticalResult is the outcome of a critical-hit roll.
type CriticalResult struct {
	Type         CriticalType
	Description  string
	IgnoresArmor bool
	InjuryBonus  int
}

// RollCriticalHit resolves which kind of critical hit was scored.
func RollCriticalHit(roller *dice.Roller) CriticalResult {
	switch roller.RollD6() {
	case 1, 2:
		return CriticalResult{Type: CriticalVitalPart, Description: "A solid hit to a vital part."}
	case 3, 4:
		return CriticalResult{Type: CriticalExposedSpot, Description: "A telling blow finds an exposed spot.", IgnoresArmor: true}
	default:
		return CriticalResult{Type: CriticalMasterStrike, Description: "A master strike finds a weak point.", IgnoresArmor: true, InjuryBonus: 2}
	}
}
