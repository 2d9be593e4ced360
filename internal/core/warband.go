package core

import "strings"

// Warband is one player's roster for a battle.
type Warband struct {
	ID          string
	DisplayName string
	Archetype   string
	PlayerNumber int // 1 or 2

	Warriors []*Warrior

	OutOfActionCount int
	RoutFailed       bool
}

// ByID returns the warrior with the given id, or nil if absent.
func (b *Warband) ByID(id WarriorID) *Warrior {
	for _, w := range b.Warriors {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// Owns reports whether the warband contains a warrior with the given id.
func (b *Warband) Owns(id WarriorID) bool {
	return b.ByID(id) != nil
}

// RecountOutOfAction recomputes OutOfActionCount from warrior statuses.
// Maintained incrementally by callers during play; this exists for
// invariant checks and tests.
func (b *Warband) RecountOutOfAction() int {
	n := 0
	for _, w := range b.Warriors {
		if w.Status == StatusOutOfAction {
			n++
		}
	}
	return n
}

// ResetTurnState clears per-turn flags/modifiers on every warrior.
func (b *Warband) ResetTurnState() {
	for _, w := range b.Warriors {
		w.ResetTurnState()
	}
}

// Leader returns the warband's leader: the first warrior flagged
// IsLeader, else the first whose type string substring-matches a
// known leader title (case-insensitive), else the first warrior.
// The substring match is retained for compatibility with warband data
// that predates the IsLeader field (see DESIGN.md open question on
// rout-test leader identification).
func (b *Warband) Leader() *Warrior {
	if len(b.Warriors) == 0 {
		return nil
	}
	for _, w := range b.Warriors {
		if w.IsLeader {
			return w
		}
	}
	for _, w := range b.Warriors {
		if hasLeaderTitle(w.Race) {
			return w
		}
	}
	return b.Warriors[0]
}

var leaderTitles = []string{"captain", "leader", "chieftain", "magister"}

func hasLeaderTitle(raceOrType string) bool {
	lower := strings.ToLower(raceOrType)
	for _, title := range leaderTitles {
		if strings.Contains(lower, title) {
			return true
		}
	}
	return false
}
