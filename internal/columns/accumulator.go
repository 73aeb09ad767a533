package columns

import "math"

// minSentinel is larger than any value a dataset column is expected to hold,
// so the first number absorbed always replaces it. Max starts at -Inf and has
// no such ceiling.
const minSentinel = 1e12

// Accumulator collects the counts of one column during the single pass over
// the rows. It is owned by one Analyze call and discarded afterwards.
type Accumulator struct {
	Type Type

	Valid     int
	Missing   int
	WrongType int

	Frequencies *FrequencyTable
	ModeValue   string
	ModeCount   int

	// numeric columns only
	Sum float64
	Max float64
	Min float64
}

// NewAccumulator returns an empty accumulator for a column of type t.
func NewAccumulator(t Type) *Accumulator {
	return &Accumulator{
		Type:        t,
		Frequencies: NewFrequencyTable(),
		Max:         math.Inf(-1),
		Min:         minSentinel,
	}
}

// Absorb records one raw value. Every call increments exactly one of Valid,
// Missing or WrongType.
func (a *Accumulator) Absorb(raw string) {
	switch Classify(raw, a.Type) {
	case Missing:
		a.Missing++
		return
	case WrongType:
		a.WrongType++
		return
	}
	a.Valid++
	n := a.Frequencies.Increment(raw)
	// strictly greater: the first value to reach a count keeps the mode
	if n > a.ModeCount {
		a.ModeValue = raw
		a.ModeCount = n
	}
	if a.Type != TypeNumber {
		return
	}
	x := Normalize(raw)
	a.Sum += x
	if x > a.Max {
		a.Max = x
	}
	if x < a.Min {
		a.Min = x
	}
}

// Processed is the number of values absorbed so far.
func (a *Accumulator) Processed() int {
	return a.Valid + a.Missing + a.WrongType
}
