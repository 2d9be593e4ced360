// Package phasectx defines the transient, never-serialized per-phase
// selection state carried alongside core.GameState.
package phasectx

import (
	"github.com/jruiznavarro/skirmishcore/internal/combat"
	"github.com/jruiznavarro/skirmishcore/internal/core"
)

// SubState is the nested mode inside a phase that restricts the
// accepted event set.
type SubState string

const (
	SubStateMain     SubState = "main"
	SubStateResolution SubState = "resolution"
	SubStateRoutTest SubState = "rout_test"
)

// ShootingModifiers are the shooting-phase modifier toggles, persisted
// between shots until a shot is confirmed, then reset.
type ShootingModifiers struct {
	Cover       bool
	LongRange   bool
	Moved       bool
	LargeTarget bool
}

// StrikeEntry is one fighter's slot in the combat phase's strike order.
type StrikeEntry struct {
	WarriorID     core.WarriorID
	WarbandIndex  int
	Initiative    int
	Charged       bool
	StoodUp       bool
	Attacks       int
	AttacksUsed   int
}

// Context is the mutable, transient per-phase state. It is reset on
// every phase transition and never serialized with the game state.
type Context struct {
	SelectedWarriorID *core.WarriorID
	SelectedTargetID  *core.WarriorID

	SubState SubState

	PendingResolution *combat.Resolution
	PendingRoutTest   *int // warband index (0|1) requiring a rout test

	ShootingModifiers ShootingModifiers

	StrikeOrder         []StrikeEntry
	CurrentFighterIndex int
}

// New returns a freshly reset Context.
func New() *Context {
	return &Context{SubState: SubStateMain}
}

// Reset clears selection, sub-state, and pendings. Called by the
// coordinator on every phase transition.
func (c *Context) Reset() {
	*c = Context{SubState: SubStateMain}
}

// Delta is a partial update a phase module's event handler returns; the
// coordinator merges only the fields that are non-nil/explicitly set.
type Delta struct {
	SelectedWarriorID *core.WarriorID
	ClearSelectedWarrior bool
	SelectedTargetID  *core.WarriorID
	ClearSelectedTarget bool

	SubState *SubState

	PendingResolution *combat.Resolution
	ClearPendingResolution bool
	PendingRoutTest   *int
	ClearPendingRoutTest bool

	ShootingModifiers *ShootingModifiers

	StrikeOrder         *[]StrikeEntry
	CurrentFighterIndex *int
}

// Merge applies a non-nil Delta onto the context in place.
func (c *Context) Merge(d *Delta) {
	if d == nil {
		return
	}
	if d.ClearSelectedWarrior {
		c.SelectedWarriorID = nil
	} else if d.SelectedWarriorID != nil {
		c.SelectedWarriorID = d.SelectedWarriorID
	}
	if d.ClearSelectedTarget {
		c.SelectedTargetID = nil
	} else if d.SelectedTargetID != nil {
		c.SelectedTargetID = d.SelectedTargetID
	}
	if d.SubState != nil {
		c.SubState = *d.SubState
	}
	if d.ClearPendingResolution {
		c.PendingResolution = nil
	} else if d.PendingResolution != nil {
		c.PendingResolution = d.PendingResolution
	}
	if d.ClearPendingRoutTest {
		c.PendingRoutTest = nil
	} else if d.PendingRoutTest != nil {
		c.PendingRoutTest = d.PendingRoutTest
	}
	if d.ShootingModifiers != nil {
		c.ShootingModifiers = *d.ShootingModifiers
	}
	if d.StrikeOrder != nil {
		c.StrikeOrder = *d.StrikeOrder
	}
	if d.CurrentFighterIndex != nil {
		c.CurrentFighterIndex = *d.CurrentFighterIndex
	}
}
