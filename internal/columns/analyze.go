package columns

import (
	"errors"
	"fmt"
)

// ErrRowShape reports a row whose fields do not line up with the column
// descriptors.
var ErrRowShape = errors.New("row does not match column layout")

// Analysis is the profile of one column. For columns that are not NUMBER,
// or that hold no valid value, only the counts, Distinct, Frequencies and the
// mode fields carry information.
type Analysis struct {
	Valid       int             `json:"valid" yaml:"valid"`
	WrongType   int             `json:"wrongType" yaml:"wrongType"`
	Missing     int             `json:"missing" yaml:"missing"`
	Distinct    int             `json:"distinct" yaml:"distinct"`
	Frequencies *FrequencyTable `json:"frequencies" yaml:"frequencies"`
	Mode        string          `json:"mode" yaml:"mode"`
	ModeRatio   float64         `json:"modeRatio" yaml:"modeRatio"`
	Max         float64         `json:"max" yaml:"max"`
	Variance    float64         `json:"variance" yaml:"variance"`
	StdDev      float64         `json:"stdDev" yaml:"stdDev"`
	Mean        float64         `json:"mean" yaml:"mean"`
	Quartiles   *Quartiles      `json:"quartiles,omitempty" yaml:"quartiles,omitempty"`
	Range       float64         `json:"range" yaml:"range"`
	Min         float64         `json:"min" yaml:"min"`
}

// AnalyzedColumn is a descriptor together with its analysis.
type AnalyzedColumn struct {
	Column   `yaml:",inline"`
	Analysis Analysis `json:"analysis" yaml:"analysis"`
}

// Analyze profiles every column in one pass over rows and returns one
// Analysis per column, in column order. Rows must carry the columns in the
// same order as cols; a row that does not fails the whole call with
// ErrRowShape and nothing is returned.
func Analyze(cols []Column, rows []Row) ([]Analysis, error) {
	accs := make([]*Accumulator, len(cols))
	for i, c := range cols {
		accs[i] = NewAccumulator(c.Type)
	}

	for r, row := range rows {
		if len(row) != len(cols) {
			return nil, fmt.Errorf("row %d has %d fields, want %d: %w", r+1, len(row), len(cols), ErrRowShape)
		}
		for i, f := range row {
			if f.Column != cols[i].Name {
				return nil, fmt.Errorf("row %d field %d is %q, want %q: %w", r+1, i+1, f.Column, cols[i].Name, ErrRowShape)
			}
			accs[i].Absorb(f.Value)
		}
	}

	out := make([]Analysis, len(cols))
	for i, acc := range accs {
		out[i] = finish(acc)
	}
	return out, nil
}

func finish(acc *Accumulator) Analysis {
	table := acc.Frequencies
	a := Analysis{
		Valid:     acc.Valid,
		WrongType: acc.WrongType,
		Missing:   acc.Missing,
		Distinct:  table.Len(),
		Mode:      acc.ModeValue,
	}
	if acc.Valid > 0 {
		a.ModeRatio = Round2(float64(acc.ModeCount) / float64(acc.Valid))
	}
	if acc.Type == TypeNumber && acc.Valid > 0 {
		table = table.SortedNumeric()
		st := ComputeStatistics(table, acc.Valid, acc.Sum, acc.Min, acc.Max)
		a.Mean = st.Mean
		a.Variance = st.Variance
		a.StdDev = st.StdDev
		a.Quartiles = &st.Quartiles
		a.Range = st.Range
		a.Min = st.Min
		a.Max = st.Max
	}
	a.Frequencies = SanitizeKeys(table)
	return a
}

// Attach zips descriptors with the analyses returned by Analyze.
func Attach(cols []Column, analyses []Analysis) []AnalyzedColumn {
	n := len(cols)
	if len(analyses) < n {
		n = len(analyses)
	}
	out := make([]AnalyzedColumn, n)
	for i := 0; i < n; i++ {
		out[i] = AnalyzedColumn{Column: cols[i], Analysis: analyses[i]}
	}
	return out
}
