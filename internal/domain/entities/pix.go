package entities

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

type pixMask struct {
	groups []int
	seps   []string
	max    int
}

var pixMasks = map[string]pixMask{
	"CPF":     {groups: []int{3, 3, 3, 2}, seps: []string{"", ".", ".", "-"}, max: 14},
	"CNPJ":    {groups: []int{2, 3, 3, 4, 2}, seps: []string{"", ".", ".", "/", "-"}, max: 18},
	"Celular": {groups: []int{2, 5, 4}, seps: []string{"(", ") ", "-"}, max: 15},
}

// FormatPixKey masks document and phone keys once enough digits are present.
// Partial input is kept as bare digits. E-mail and random keys pass through.
func FormatPixKey(value, keyType string) string {
	m, ok := pixMasks[keyType]
	if !ok {
		return value
	}
	digits := nonDigits.ReplaceAllString(value, "")

	need := 0
	for _, g := range m.groups {
		need += g
	}
	out := digits
	if len(digits) >= need {
		var b strings.Builder
		pos := 0
		for i, g := range m.groups {
			b.WriteString(m.seps[i])
			b.WriteString(digits[pos : pos+g])
			pos += g
		}
		b.WriteString(digits[pos:])
		out = b.String()
	}
	if len(out) > m.max {
		out = out[:m.max]
	}
	return out
}
