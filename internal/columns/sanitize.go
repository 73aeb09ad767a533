package columns

import "strings"

// EscapedPeriod replaces '.' in frequency table keys. Document stores that
// use the keys as field names reject periods.
const EscapedPeriod = `\u002e`

// SanitizeKey escapes every period in key.
func SanitizeKey(key string) string {
	return strings.ReplaceAll(key, ".", EscapedPeriod)
}

// RestoreKey reverses SanitizeKey.
func RestoreKey(key string) string {
	return strings.ReplaceAll(key, EscapedPeriod, ".")
}

// SanitizeKeys returns a copy of t with every key passed through SanitizeKey.
// Order and counts are kept.
func SanitizeKeys(t *FrequencyTable) *FrequencyTable {
	out := NewFrequencyTable()
	for _, e := range t.Entries() {
		out.m.Set(SanitizeKey(e.Key), e.Count)
	}
	return out
}
