package columns

import (
	"regexp"
	"strconv"
	"strings"
)

// Class is the outcome of checking one raw value against a column type.
type Class int

const (
	Valid Class = iota
	Missing
	WrongType
)

func (c Class) String() string {
	switch c {
	case Valid:
		return "valid"
	case Missing:
		return "missing"
	case WrongType:
		return "wrong-type"
	}
	return "unknown"
}

var (
	plainNumber   = regexp.MustCompile(`^[-+]?\d+(\.\d+)?$`)
	percentNumber = regexp.MustCompile(`^\d+(\.\d+)?%$`)
)

// Accepts reports whether a non-empty raw value conforms to t. A NUMBER
// must also fit a float64. Unknown types accept nothing.
func (t Type) Accepts(raw string) bool {
	switch t {
	case TypeID, TypeString:
		return raw != ""
	case TypeNumber:
		switch {
		case plainNumber.MatchString(raw):
			return fitsFloat(raw)
		case percentNumber.MatchString(raw):
			return fitsFloat(strings.TrimSuffix(raw, "%"))
		}
	}
	return false
}

func fitsFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// Classify decides whether raw is missing, valid or of the wrong type for t.
func Classify(raw string, t Type) Class {
	if raw == "" {
		return Missing
	}
	if !t.Accepts(raw) {
		return WrongType
	}
	return Valid
}
