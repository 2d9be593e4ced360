package core

// Equipment is the set of static-table lookup keys a warrior carries.
// The keys index into the read-only weapon/armor tables in the static
// package; the engine never interprets the keys itself.
type Equipment struct {
	MeleeWeapons  []string
	RangedWeapons []string
	Armor         []string
}

// HasMeleeWeapon reports whether the warrior carries the named weapon.
func (e Equipment) HasMeleeWeapon(key string) bool {
	return contains(e.MeleeWeapons, key)
}

// HasRangedWeapon reports whether the warrior carries the named weapon.
func (e Equipment) HasRangedWeapon(key string) bool {
	return contains(e.RangedWeapons, key)
}

// HasArmor reports whether the warrior carries the named armor piece.
func (e Equipment) HasArmor(key string) bool {
	return contains(e.Armor, key)
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
