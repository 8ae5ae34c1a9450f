package entities

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexFloat decodes numbers, numeric strings, empty strings and null.
// Anything that does not parse becomes 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	*f = FlexFloat(ParseAmount(string(unquote(b))))
	return nil
}

// FlexInt is the integer counterpart of FlexFloat. Fractions are truncated.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	*i = FlexInt(int(ParseAmount(string(unquote(b)))))
	return nil
}

// FlexBool accepts booleans and their common string spellings.
type FlexBool bool

func (v *FlexBool) UnmarshalJSON(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(unquote(b))))
	switch s {
	case "true", "1", "sim", "yes", "on":
		*v = true
	default:
		*v = false
	}
	return nil
}

// ParseAmount coerces user input into a float. Empty or malformed input is 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func unquote(b []byte) []byte {
	b = bytes.TrimSpace(b)
	if len(b) >= 2 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			return []byte(s)
		}
	}
	return b
}
