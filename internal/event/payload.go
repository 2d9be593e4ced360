package event

import "github.com/jruiznavarro/skirmishcore/internal/core"

// RecoveryActionKind selects the recovery-phase sub-action.
type RecoveryActionKind string

const (
	Rally               RecoveryActionKind = "rally"
	RecoverFromStunned  RecoveryActionKind = "recoverFromStunned"
	StandUp             RecoveryActionKind = "standUp"
)

// MoveType selects move or run for CONFIRM_MOVE.
type MoveType string

const (
	MoveTypeMove MoveType = "move"
	MoveTypeRun  MoveType = "run"
)

// ModifierCategory scopes a SET_MODIFIER toggle.
type ModifierCategory string

const (
	ModifierCategoryShooting ModifierCategory = "shooting"
	ModifierCategoryCombat   ModifierCategory = "combat"
)

type SelectWarriorPayload struct {
	WarriorID core.WarriorID
}

type DeselectPayload struct{}

type SelectTargetPayload struct {
	TargetID core.WarriorID
}

type ConfirmPositionPayload struct{}

type ConfirmMovePayload struct {
	MoveType MoveType
}

type ConfirmChargePayload struct {
	TargetID core.WarriorID
}

type RecoveryActionPayload struct {
	Action    RecoveryActionKind
	WarriorID core.WarriorID
}

type SetModifierPayload struct {
	Category ModifierCategory
	Modifier string
	Value    bool
}

type ConfirmShotPayload struct {
	TargetID core.WarriorID
}

type ConfirmMeleePayload struct {
	TargetID  core.WarriorID
	WeaponKey string
}

type AcknowledgePayload struct{}

type ConfirmRoutTestPayload struct{}

type AdvancePhasePayload struct{}

type UndoPayload struct {
	ToEventID string
}
