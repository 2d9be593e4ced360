package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollD6_Deterministic(t *testing.T) {
	r1 := NewRoller(42)
	r2 := NewRoller(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, r1.RollD6(), r2.RollD6(), "roll %d diverged", i)
	}
}

func TestRollD6_Range(t *testing.T) {
	r := NewRoller(12345)
	for i := 0; i < 1000; i++ {
		roll := r.RollD6()
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, 6)
	}
}

func TestRoll2D6_Range(t *testing.T) {
	r := NewRoller(99999)
	for i := 0; i < 1000; i++ {
		roll := r.Roll2D6()
		assert.GreaterOrEqual(t, roll, 2)
		assert.LessOrEqual(t, roll, 12)
	}
}

func TestRollD3_Range(t *testing.T) {
	r := NewRoller(7777)
	for i := 0; i < 1000; i++ {
		roll := r.RollD3()
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, 3)
	}
}

func TestRollD66_TensAndUnits(t *testing.T) {
	r := NewRoller(2024)
	for i := 0; i < 1000; i++ {
		roll := r.RollD66()
		tens := roll / 10
		units := roll % 10
		assert.GreaterOrEqual(t, tens, 1)
		assert.LessOrEqual(t, tens, 6)
		assert.GreaterOrEqual(t, units, 1)
		assert.LessOrEqual(t, units, 6)
	}
}

func TestRollMultipleD6(t *testing.T) {
	r := NewRoller(55555)
	results := r.RollMultipleD6(5)
	assert.Len(t, results, 5)
	for _, roll := range results {
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, 6)
	}
}

func TestIntN_Range(t *testing.T) {
	r := NewRoller(9)
	for i := 0; i < 1000; i++ {
		n := r.IntN(4)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 4)
	}
}

func TestDifferentSeeds_DifferentResults(t *testing.T) {
	r1 := NewRoller(1)
	r2 := NewRoller(2)

	same := true
	for i := 0; i < 20; i++ {
		if r1.RollD6() != r2.RollD6() {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds should produce different sequences")
}
