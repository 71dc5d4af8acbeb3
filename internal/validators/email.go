package validators

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsEmailValid checks the basic name@domain.tld shape. Deliverability
// is not verified; a typo'd domain still passes.
func IsEmailValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > 254 {
		return false
	}
	return emailPattern.MatchString(email)
}
