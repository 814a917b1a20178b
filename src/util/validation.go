package util

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// NormalizeEmail is the single canonical form an email takes before it is
// stored or looked up. Registration and login must apply the same
// normalization or a mixed-case signup can never authenticate.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
