package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanVarianceStdDev(t *testing.T) {
	// 2, 4, 4, 4, 5, 5, 7, 9
	ft := NewFrequencyTableFrom(Entry{"2", 1}, Entry{"4", 3}, Entry{"5", 2}, Entry{"7", 1}, Entry{"9", 1})
	mean := Mean(40, 8)
	assert.InDelta(t, 5.0, mean, 1e-9)
	v := Variance(ft, mean, 8)
	assert.InDelta(t, 4.0, v, 1e-9)
	assert.InDelta(t, 2.0, StdDev(v), 1e-9)
}

func TestMeanOfEmptyColumn(t *testing.T) {
	assert.Equal(t, 0.0, Mean(0, 0))
	assert.Equal(t, 0.0, Variance(NewFrequencyTable(), 0, 0))
}

func TestQuartile(t *testing.T) {
	cases := []struct {
		name    string
		entries []Entry
		p       int
		want    float64
	}{
		{"median at exact boundary", []Entry{{"1", 1}, {"2", 1}, {"3", 1}, {"4", 1}}, 50, 2.5},
		{"q1 at exact boundary", []Entry{{"1", 1}, {"2", 1}, {"3", 1}, {"4", 1}}, 25, 1.5},
		{"q3 at exact boundary", []Entry{{"1", 1}, {"2", 1}, {"3", 1}, {"4", 1}}, 75, 3.5},
		{"odd count nearest rank", []Entry{{"1", 1}, {"2", 1}, {"3", 1}, {"4", 1}, {"5", 1}}, 50, 3},
		{"fractional position", []Entry{{"1", 1}, {"2", 1}, {"3", 1}}, 25, 1},
		// position 2 is whole but the running count jumps from -1 to 2
		{"duplicates step over boundary", []Entry{{"1", 3}, {"2", 1}}, 50, 1},
		{"percent keys", []Entry{{"10%", 1}, {"30%", 1}}, 50, 0.2},
		{"single value", []Entry{{"7", 1}}, 75, 7},
		{"empty table", nil, 50, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ft := NewFrequencyTableFrom(tc.entries...)
			assert.InDelta(t, tc.want, Quartile(ft, ft.Total(), tc.p), 1e-9)
		})
	}
}

func TestComputeStatistics(t *testing.T) {
	ft := NewFrequencyTableFrom(Entry{"1", 1}, Entry{"2", 1}, Entry{"3", 1}, Entry{"4", 1})
	st := ComputeStatistics(ft, 4, 10, 1, 4)
	assert.InDelta(t, 2.5, st.Mean, 1e-9)
	assert.InDelta(t, 1.25, st.Variance, 1e-9)
	assert.InDelta(t, 1.12, st.StdDev, 1e-9)
	assert.Equal(t, Quartiles{Q1: 1.5, Q2: 2.5, Q3: 3.5}, st.Quartiles)
	assert.InDelta(t, 3, st.Range, 1e-9)

	assert.Equal(t, Statistics{}, ComputeStatistics(NewFrequencyTable(), 0, 0, minSentinel, -minSentinel))
}
