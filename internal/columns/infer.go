package columns

import "regexp"

// DefaultIDColumns are header names treated as identifiers.
var DefaultIDColumns = []string{"id", "ID", "_id", "_ID", "Rank"}

// leadingNumber matches a number at the start of a value, so "12kg" and
// "50%" both count as numeric samples.
var leadingNumber = regexp.MustCompile(`^\s*[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`)

// Infer builds column descriptors from a header and the first row of data.
// Header names listed in idNames become ID columns; the rest are NUMBER when
// the first row's value starts with a number and STRING otherwise. A nil
// idNames uses DefaultIDColumns.
func Infer(header []string, rows []Row, idNames []string) []Column {
	if idNames == nil {
		idNames = DefaultIDColumns
	}
	ids := make(map[string]struct{}, len(idNames))
	for _, n := range idNames {
		ids[n] = struct{}{}
	}
	var first Row
	if len(rows) > 0 {
		first = rows[0]
	}
	cols := make([]Column, len(header))
	for i, name := range header {
		c := Column{Name: name, Type: TypeString}
		if _, ok := ids[name]; ok {
			c.Type = TypeID
		} else if i < len(first) && leadingNumber.MatchString(first[i].Value) {
			c.Type = TypeNumber
		}
		cols[i] = c
	}
	return cols
}
