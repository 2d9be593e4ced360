package core

import "time"

// PhaseTag identifies the five battle phases plus the pre-turn-1 setup.
type PhaseTag string

const (
	PhaseSetup    PhaseTag = "setup"
	PhaseRecovery PhaseTag = "recovery"
	PhaseMovement PhaseTag = "movement"
	PhaseShooting PhaseTag = "shooting"
	PhaseCombat   PhaseTag = "combat"
)

// LogEntry is a human-readable, append-only record of something that
// happened during the battle.
type LogEntry struct {
	Turn      int
	Phase     PhaseTag
	Player    int
	Text      string
	Timestamp time.Time
}

// HistoryEntry is a legacy append-only record of an applied low-level
// mutation, retained for compatibility with older save files. The event
// log (see the coordinator package) is the authoritative source for
// replay.
type HistoryEntry struct {
	Description string
	Timestamp   time.Time
}

// GameState is the authoritative root of a battle.
type GameState struct {
	GameID    string
	Scenario  string
	StartedAt time.Time

	Turn          int
	Phase         PhaseTag
	CurrentPlayer int // 1 or 2

	Warbands [2]*Warband

	Log           []LogEntry
	ActionHistory []HistoryEntry

	Ended     bool
	Winner    *int // 1, 2, or nil
	EndReason string

	// Seed is the RNG seed the battle was created with. RollCount is
	// carried with the state but is neither updated nor read by the
	// engine.
	Seed      int64
	RollCount int64
}

// NewGameState creates the authoritative root for a fresh battle.
func NewGameState(gameID, scenario string, seed int64, startedAt time.Time, p1, p2 *Warband) *GameState {
	return &GameState{
		GameID:    gameID,
		Scenario:  scenario,
		StartedAt: startedAt,
		Turn:      1,
		Phase:     PhaseSetup,
		CurrentPlayer: 1,
		Warbands:  [2]*Warband{p1, p2},
		Seed:      seed,
	}
}

// WarbandOf returns the warband belonging to the given player number (1|2).
func (g *GameState) WarbandOf(player int) *Warband {
	if player == 1 {
		return g.Warbands[0]
	}
	if player == 2 {
		return g.Warbands[1]
	}
	return nil
}

// OpponentOf returns the warband belonging to the player opposing the
// given player number.
func (g *GameState) OpponentOf(player int) *Warband {
	if player == 1 {
		return g.Warbands[1]
	}
	return g.Warbands[0]
}

// FindWarrior locates a warrior by id across both warbands, returning the
// warrior, its warband, and the warband's index (0|1).
func (g *GameState) FindWarrior(id WarriorID) (*Warrior, *Warband, int) {
	for i, b := range g.Warbands {
		if w := b.ByID(id); w != nil {
			return w, b, i
		}
	}
	return nil, nil, -1
}

// AppendLog records a human-readable action.
func (g *GameState) AppendLog(player int, text string, at time.Time) {
	g.Log = append(g.Log, LogEntry{
		Turn:      g.Turn,
		Phase:     g.Phase,
		Player:    player,
		Text:      text,
		Timestamp: at,
	})
}

// End marks the battle over with the given winner (nil for a draw) and
// reason. No further mutation is permitted once Ended is true.
func (g *GameState) End(winner *int, reason string) {
	g.Ended = true
	g.Winner = winner
	g.EndReason = reason
}

// ResetTurnState clears per-turn flags/modifiers on both warbands.
func (g *GameState) ResetTurnState() {
	for _, b := range g.Warbands {
		if b != nil {
			b.ResetTurnState()
		}
	}
}
