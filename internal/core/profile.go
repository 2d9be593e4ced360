package core

// Profile holds a warrior's immutable-during-battle characteristics.
type Profile struct {
	M  int // Movement
	WS int // Weapon Skill
	BS int // Ballistic Skill
	S  int // Strength
	T  int // Toughness
	W  int // Wounds (max)
	I  int // Initiative
	A  int // Attacks
	Ld int // Leadership
}
