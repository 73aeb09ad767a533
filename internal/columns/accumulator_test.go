package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulatorModeFirstSeenWins(t *testing.T) {
	acc := NewAccumulator(TypeString)
	for _, v := range []string{"a", "b", "a", "b"} {
		acc.Absorb(v)
	}
	assert.Equal(t, "a", acc.ModeValue)
	assert.Equal(t, 2, acc.ModeCount)

	acc.Absorb("b")
	assert.Equal(t, "b", acc.ModeValue)
	assert.Equal(t, 3, acc.ModeCount)
}

func TestAccumulatorCounts(t *testing.T) {
	acc := NewAccumulator(TypeNumber)
	values := []string{"10", "", "abc", "20%", "10", "", "-4"}
	for _, v := range values {
		acc.Absorb(v)
	}
	assert.Equal(t, 4, acc.Valid)
	assert.Equal(t, 2, acc.Missing)
	assert.Equal(t, 1, acc.WrongType)
	assert.Equal(t, len(values), acc.Processed())
	assert.Equal(t, acc.Valid, acc.Frequencies.Total())
	assert.InDelta(t, 16.2, acc.Sum, 1e-9)
	assert.InDelta(t, 10, acc.Max, 1e-9)
	assert.InDelta(t, -4, acc.Min, 1e-9)
}

func TestAccumulatorStringSkipsNumericAggregates(t *testing.T) {
	acc := NewAccumulator(TypeString)
	acc.Absorb("12")
	acc.Absorb("x.y")
	assert.Equal(t, 0.0, acc.Sum)
	assert.Equal(t, []string{"12", "x.y"}, acc.Frequencies.Keys())
}

func TestAccumulatorMaxBelowMinSentinel(t *testing.T) {
	acc := NewAccumulator(TypeNumber)
	acc.Absorb("-5000000000000")
	acc.Absorb("-2000000000000")
	assert.Equal(t, -2e12, acc.Max)
	assert.Equal(t, -5e12, acc.Min)
}
