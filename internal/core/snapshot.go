package core

// Snapshot is an immutable copy of the two warbands and the scenario key
// as they stood at battle creation, used to rebuild a fresh GameState for
// undo-by-replay (see the coordinator's UNDO handling, UndoLastEvents and
// ResetToInitialState). It is built once, when the battle is created,
// and never mutated afterwards.
type Snapshot struct {
	Scenario string
	Seed     int64
	Warbands [2]*Warband
}

// NewSnapshot deep-copies the given warbands into an immutable snapshot.
func NewSnapshot(scenario string, seed int64, p1, p2 *Warband) *Snapshot {
	return &Snapshot{
		Scenario: scenario,
		Seed:     seed,
		Warbands: [2]*Warband{cloneWarband(p1), cloneWarband(p2)},
	}
}

// Rebuild returns fresh warbands copied from the snapshot, ready to seed a
// new GameState. Each call produces independent warriors so replaying
// events never mutates the snapshot itself.
func (s *Snapshot) Rebuild() (p1, p2 *Warband) {
	return cloneWarband(s.Warbands[0]), cloneWarband(s.Warbands[1])
}

func cloneWarband(b *Warband) *Warband {
	if b == nil {
		return nil
	}
	clone := *b
	clone.Warriors = make([]*Warrior, len(b.Warriors))
	for i, w := range b.Warriors {
		clone.Warriors[i] = cloneWarrior(w)
	}
	return &clone
}

func cloneWarrior(w *Warrior) *Warrior {
	if w == nil {
		return nil
	}
	clone := *w
	clone.Equipment.MeleeWeapons = append([]string(nil), w.Equipment.MeleeWeapons...)
	clone.Equipment.RangedWeapons = append([]string(nil), w.Equipment.RangedWeapons...)
	clone.Equipment.Armor = append([]string(nil), w.Equipment.Armor...)
	clone.Skills = append([]string(nil), w.Skills...)
	clone.Combat.EngagedWith = append([]WarriorID(nil), w.Combat.EngagedWith...)
	return &clone
}
