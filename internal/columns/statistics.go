package columns

import "math"

// Quartiles holds the 25th, 50th and 75th percentiles of a numeric column.
type Quartiles struct {
	Q1 float64 `json:"q1" yaml:"q1"`
	Q2 float64 `json:"q2" yaml:"q2"`
	Q3 float64 `json:"q3" yaml:"q3"`
}

// Statistics are the numeric figures derived from a sorted frequency table.
type Statistics struct {
	Mean      float64
	Variance  float64
	StdDev    float64
	Quartiles Quartiles
	Range     float64
	Min       float64
	Max       float64
}

// Mean is sum/valid rounded to two decimals, 0 for an empty column.
func Mean(sum float64, valid int) float64 {
	if valid == 0 {
		return 0
	}
	return Round2(sum / float64(valid))
}

// Variance is the population variance computed from the table's key/count
// pairs around the given mean.
func Variance(table *FrequencyTable, mean float64, valid int) float64 {
	if valid == 0 {
		return 0
	}
	var sum float64
	for _, e := range table.Entries() {
		d := Normalize(e.Key) - mean
		sum += d * d * float64(e.Count)
	}
	return Round2(sum / float64(valid))
}

// StdDev is the rounded square root of a variance.
func StdDev(variance float64) float64 {
	return Round2(math.Sqrt(variance))
}

// Quartile returns the value below which percentile percent of the valid
// observations fall. The table must be sorted with SortedNumeric.
//
// It walks the table keeping a running count minus one. When the position
// is a whole number and the running count lands exactly one short of it, the
// result is the midpoint between this key and the next one; otherwise it is
// the first key whose running count reaches the floor of the position.
// Duplicate-heavy tables can step over the exact boundary and fall through to
// the nearest-rank branch; that approximation is kept as is.
func Quartile(table *FrequencyTable, valid int, percentile int) float64 {
	entries := table.Entries()
	position := float64(percentile) / 100 * float64(valid)
	whole := position == math.Floor(position)
	cumulative := -1
	for i, e := range entries {
		cumulative += e.Count
		if whole && float64(cumulative) == position-1 {
			next := e.Key
			if i+1 < len(entries) {
				next = entries[i+1].Key
			}
			return Round2((Normalize(e.Key) + Normalize(next)) / 2)
		}
		if float64(cumulative) >= math.Floor(position) {
			return Round2(Normalize(e.Key))
		}
	}
	return 0
}

// ComputeStatistics derives every numeric figure of a column from its sorted
// frequency table and running aggregates. An empty column yields zeros.
func ComputeStatistics(table *FrequencyTable, valid int, sum, min, max float64) Statistics {
	if valid == 0 {
		return Statistics{}
	}
	mean := Mean(sum, valid)
	variance := Variance(table, mean, valid)
	return Statistics{
		Mean:     mean,
		Variance: variance,
		StdDev:   StdDev(variance),
		Quartiles: Quartiles{
			Q1: Quartile(table, valid, 25),
			Q2: Quartile(table, valid, 50),
			Q3: Quartile(table, valid, 75),
		},
		Range: max - min,
		Min:   min,
		Max:   max,
	}
}
