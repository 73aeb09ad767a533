package columns

import (
	"sort"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Entry is one key/count pair of a FrequencyTable.
type Entry struct {
	Key   string
	Count int
}

// FrequencyTable maps raw values to occurrence counts and remembers the order
// in which keys were first seen. It marshals as an ordered JSON/YAML mapping.
type FrequencyTable struct {
	m *orderedmap.OrderedMap[string, int]
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{m: orderedmap.New[string, int]()}
}

// NewFrequencyTableFrom builds a table holding entries in the given order.
// Repeated keys add up.
func NewFrequencyTableFrom(entries ...Entry) *FrequencyTable {
	t := NewFrequencyTable()
	for _, e := range entries {
		t.Add(e.Key, e.Count)
	}
	return t
}

// Increment adds one occurrence of key and returns the new count.
func (t *FrequencyTable) Increment(key string) int {
	return t.Add(key, 1)
}

// Add adds n occurrences of key and returns the new count.
func (t *FrequencyTable) Add(key string, n int) int {
	cur, _ := t.m.Get(key)
	cur += n
	t.m.Set(key, cur)
	return cur
}

// Count returns the occurrences recorded for key.
func (t *FrequencyTable) Count(key string) int {
	if t == nil {
		return 0
	}
	n, _ := t.m.Get(key)
	return n
}

// Len is the number of distinct keys.
func (t *FrequencyTable) Len() int {
	if t == nil {
		return 0
	}
	return t.m.Len()
}

// Total is the sum of all counts.
func (t *FrequencyTable) Total() int {
	total := 0
	for _, e := range t.Entries() {
		total += e.Count
	}
	return total
}

// Entries returns the pairs in table order.
func (t *FrequencyTable) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, t.m.Len())
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, Entry{Key: p.Key, Count: p.Value})
	}
	return out
}

// Keys returns the keys in table order.
func (t *FrequencyTable) Keys() []string {
	entries := t.Entries()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// SortedNumeric returns a copy ordered ascending by the normalized value of
// each key. Keys that normalize equally ("0.5" and "50%") stay distinct and
// keep their insertion order.
func (t *FrequencyTable) SortedNumeric() *FrequencyTable {
	entries := t.Entries()
	values := make(map[string]float64, len(entries))
	for _, e := range entries {
		values[e.Key] = Normalize(e.Key)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return values[entries[i].Key] < values[entries[j].Key]
	})
	return NewFrequencyTableFrom(entries...)
}

func (t *FrequencyTable) MarshalJSON() ([]byte, error) {
	return t.m.MarshalJSON()
}

func (t *FrequencyTable) UnmarshalJSON(b []byte) error {
	m := orderedmap.New[string, int]()
	if err := m.UnmarshalJSON(b); err != nil {
		return err
	}
	t.m = m
	return nil
}

func (t *FrequencyTable) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range t.Entries() {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(e.Count)},
		)
	}
	return n, nil
}
