package validation

import (
	"strings"
	"unicode"
)

// Digits strips every non-digit rune.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidKenyanPhone accepts 254XXXXXXXXX, 0XXXXXXXXX and bare 9-digit
// subscriber numbers after stripping non-digits.
func ValidKenyanPhone(phone string) bool {
	cleaned := Digits(phone)
	switch {
	case strings.HasPrefix(cleaned, "254") && len(cleaned) == 12:
		return true
	case strings.HasPrefix(cleaned, "0") && len(cleaned) == 10:
		return true
	case len(cleaned) == 9:
		return true
	}
	return false
}

// FormatKenyanPhone normalises a number to +254XXXXXXXXX. A leading 0 is
// the trunk prefix and is always dropped. Input that cannot be normalised
// is returned unchanged.
func FormatKenyanPhone(phone string) string {
	cleaned := Digits(phone)
	switch {
	case strings.HasPrefix(cleaned, "254") && len(cleaned) == 12:
		return "+" + cleaned
	case strings.HasPrefix(cleaned, "0") && (len(cleaned) == 10 || len(cleaned) == 9):
		return "+254" + cleaned[1:]
	case len(cleaned) == 9:
		return "+254" + cleaned
	}
	return phone
}
