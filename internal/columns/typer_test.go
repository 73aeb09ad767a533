package columns

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		raw  string
		typ  Type
		want Class
	}{
		{"", TypeNumber, Missing},
		{"", TypeString, Missing},
		{"", TypeID, Missing},
		{"abc", TypeID, Valid},
		{"0001-x", TypeID, Valid},
		{"hello world", TypeString, Valid},
		{"42", TypeNumber, Valid},
		{"-3.75", TypeNumber, Valid},
		{"12.5%", TypeNumber, Valid},
		{"50%", TypeNumber, Valid},
		{"12,5", TypeNumber, WrongType},
		{"1e3", TypeNumber, WrongType},
		{"%50", TypeNumber, WrongType},
		{"5 %", TypeNumber, WrongType},
		{"-5%", TypeNumber, WrongType},
		{"abc", TypeNumber, WrongType},
		{"1.", TypeNumber, WrongType},
		{"1" + strings.Repeat("0", 400), TypeNumber, WrongType},
		{"1" + strings.Repeat("0", 400) + "%", TypeNumber, WrongType},
		{"x", Type("DATE"), WrongType},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.raw, tc.typ), "Classify(%q, %s)", tc.raw, tc.typ)
	}
}

func TestParseType(t *testing.T) {
	got, err := ParseType(" number ")
	require.NoError(t, err)
	assert.Equal(t, TypeNumber, got)

	got, err = ParseType("id")
	require.NoError(t, err)
	assert.Equal(t, TypeID, got)

	_, err = ParseType("date")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	cases := map[string]float64{
		"50%":     0.5,
		"12.5%":   0.13,
		"42":      42,
		"0.125":   0.13,
		"-0.125":  -0.13,
		"3.14159": 3.14,
		"100%":    1,
	}
	for raw, want := range cases {
		assert.InDelta(t, want, Normalize(raw), 1e-9, "Normalize(%q)", raw)
	}
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	assert.InDelta(t, 0.13, Round2(0.125), 1e-9)
	assert.InDelta(t, -0.13, Round2(-0.125), 1e-9)
	assert.InDelta(t, 5.1, Round2(10.2/2), 1e-9)
	assert.Equal(t, 0.0, Round2(0))
}
