// Package view defines the screen-command projection: the only shape
// of authoritative state a renderer is permitted to see.
package view

import (
	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/event"
)

// ScreenType identifies which payload shape data carries.
type ScreenType string

const (
	ScreenGameSetup            ScreenType = "GAME_SETUP"
	ScreenRecoveryPhase        ScreenType = "RECOVERY_PHASE"
	ScreenMovementPhase        ScreenType = "MOVEMENT_PHASE"
	ScreenShootingPhase        ScreenType = "SHOOTING_PHASE"
	ScreenShootingTargetSelect ScreenType = "SHOOTING_TARGET_SELECT"
	ScreenShootingConfirm      ScreenType = "SHOOTING_CONFIRM"
	ScreenCombatPhase          ScreenType = "COMBAT_PHASE"
	ScreenCombatResolution     ScreenType = "COMBAT_RESOLUTION"
	ScreenRoutTest             ScreenType = "ROUT_TEST"
	ScreenRoutTestResult       ScreenType = "ROUT_TEST_RESULT"
	ScreenGameOver             ScreenType = "GAME_OVER"
	ScreenError                ScreenType = "ERROR"
)

// Command is the only output the engine hands to a renderer: a view
// model plus the set of events currently valid to submit.
type Command struct {
	Screen          ScreenType
	Data            any
	AvailableEvents []event.Type
	Turn            int
	Phase           core.PhaseTag
	CurrentPlayer   int
	GameID          string
}

// WarriorSummary is the read-only projection of a warrior for list views.
type WarriorSummary struct {
	ID       core.WarriorID
	Name     string
	Status   core.Status
	Wounds   int
	MaxWounds int
	InCombat bool
	Hidden   bool
}

// Summarize projects a warrior into its view model.
func Summarize(w *core.Warrior) WarriorSummary {
	return WarriorSummary{
		ID:        w.ID,
		Name:      w.Name,
		Status:    w.Status,
		Wounds:    w.WoundsRemaining,
		MaxWounds: w.Profile.W,
		InCombat:  w.Combat.InCombat,
		Hidden:    w.Hidden,
	}
}

// SummarizeAll projects every warrior in a warband.
func SummarizeAll(b *core.Warband) []WarriorSummary {
	out := make([]WarriorSummary, 0, len(b.Warriors))
	for _, w := range b.Warriors {
		out = append(out, Summarize(w))
	}
	return out
}

// ErrorData is the payload for an ERROR screen.
type ErrorData struct {
	Message string
	Kind    string
}

// GameOverData is the payload for a GAME_OVER screen.
type GameOverData struct {
	Winner           *int
	Reason           string
	Turn             int
	OutOfActionTally [2]int
}
