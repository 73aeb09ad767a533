package columns

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFrequencyTableKeepsFirstSeenOrder(t *testing.T) {
	ft := NewFrequencyTable()
	for _, v := range []string{"b", "a", "b", "c", "a", "b"} {
		ft.Increment(v)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ft.Keys())
	assert.Equal(t, 3, ft.Count("b"))
	assert.Equal(t, 0, ft.Count("zzz"))
	assert.Equal(t, 3, ft.Len())
	assert.Equal(t, 6, ft.Total())
}

func TestSortedNumeric(t *testing.T) {
	ft := NewFrequencyTableFrom(
		Entry{"10", 1},
		Entry{"0.5", 2},
		Entry{"2", 1},
		Entry{"50%", 1},
		Entry{"20%", 3},
	)
	sorted := ft.SortedNumeric()
	assert.Equal(t, []string{"20%", "0.5", "50%", "2", "10"}, sorted.Keys())
	// the source table is left alone
	assert.Equal(t, []string{"10", "0.5", "2", "50%", "20%"}, ft.Keys())
	assert.Equal(t, 3, sorted.Count("20%"))
}

func TestFrequencyTableMarshal(t *testing.T) {
	ft := NewFrequencyTableFrom(Entry{"z", 2}, Entry{"a", 1})

	b, err := json.Marshal(ft)
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":2,"a":1}`, string(b))
	assert.Equal(t, `{"z":2,"a":1}`, string(b))

	var back FrequencyTable
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, []Entry{{"z", 2}, {"a", 1}}, back.Entries())

	y, err := yaml.Marshal(ft)
	require.NoError(t, err)
	assert.Equal(t, "z: 2\na: 1\n", string(y))
}
