package phone

import (
	"regexp"
	"strings"
	"unicode"
)

var e164 = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// Format keeps a leading '+' and the digits of raw, dropping spaces,
// dashes and other punctuation.
func Format(raw string) string {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	for i, r := range raw {
		switch {
		case r == '+' && i == 0:
			b.WriteRune(r)
		case unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValid reports whether raw is an international number with a country code.
func IsValid(raw string) bool {
	return e164.MatchString(Format(raw))
}
