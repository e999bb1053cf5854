package validation

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the local@domain.tld shape only.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
