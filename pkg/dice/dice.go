// Package dice provides deterministic, seedable dice rolling shared by
// every part of the engine that needs randomness. Replay correctness
// depends on every roll in the engine going through one Roller.
package dice

import "math/rand/v2"

// Roller provides deterministic dice rolling using a seeded PCG source.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a new Roller seeded deterministically from seed.
func NewRoller(seed int64) *Roller {
	return &Roller{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed>>32)|1)),
	}
}

// Reseed resets the Roller's internal state in place, as if it had just
// been created with NewRoller(seed). Callers that hold a shared *Roller
// pointer (phase modules, the coordinator) stay valid across a reseed;
// only the stream of future rolls changes.
func (r *Roller) Reseed(seed int64) {
	r.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed>>32)|1))
}

// RollD6 returns a random number between 1 and 6.
func (r *Roller) RollD6() int {
	return r.rng.IntN(6) + 1
}

// RollD3 returns a random number between 1 and 3.
func (r *Roller) RollD3() int {
	return r.rng.IntN(3) + 1
}

// Roll2D6 returns the sum of two D6 rolls.
func (r *Roller) Roll2D6() int {
	return r.RollD6() + r.RollD6()
}

// RollD66 rolls two D6 and returns tens-digit*10 + units, e.g. a 4 then a
// 2 yields 42.
func (r *Roller) RollD66() int {
	tens := r.RollD6()
	units := r.RollD6()
	return tens*10 + units
}

// RollMultipleD6 rolls n D6s and returns all results in roll order.
func (r *Roller) RollMultipleD6(n int) []int {
	results := make([]int, n)
	for i := range results {
		results[i] = r.RollD6()
	}
	return results
}

// IntN returns a random integer in [0, n), drawn from the same
// replay-seeded source as the dice rolls instead of an unseeded global
// generator.
func (r *Roller) IntN(n int) int {
	return r.rng.IntN(n)
}
