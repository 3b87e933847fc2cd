package validators

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailFormatValid accepts anything shaped like local@domain.tld.
func IsEmailFormatValid(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
