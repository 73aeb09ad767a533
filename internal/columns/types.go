// Package columns profiles the columns of an in-memory table: it classifies raw
// values against a declared type, accumulates frequency tables in one pass and
// derives the numeric statistics from those tables.
package columns

import (
	"fmt"
	"strings"
)

// Type is the declared semantic type of a column.
type Type string

const (
	TypeID     Type = "ID"
	TypeNumber Type = "NUMBER"
	TypeString Type = "STRING"
)

// ParseType accepts a type name in any letter case.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToUpper(strings.TrimSpace(s))) {
	case TypeID:
		return TypeID, nil
	case TypeNumber:
		return TypeNumber, nil
	case TypeString:
		return TypeString, nil
	}
	return "", fmt.Errorf("unknown column type %q (use ID, NUMBER or STRING)", s)
}

// Column is the declared identity of one column.
type Column struct {
	Name string `json:"name" yaml:"name"`
	Type Type   `json:"type" yaml:"type"`
}

// Field is one cell of a row record.
type Field struct {
	Column string
	Value  string
}

// Row is an ordered record of raw values. Fields line up with the column
// descriptors by position.
type Row []Field

// NewRow pairs header names with values. Missing trailing values become empty
// strings and surplus values are dropped.
func NewRow(header, values []string) Row {
	row := make(Row, len(header))
	for i, name := range header {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		row[i] = Field{Column: name, Value: v}
	}
	return row
}
