package validation

import "regexp"

// emailPattern is intentionally simple: the upstream system only needs to
// catch obviously broken addresses, not enforce full RFC 5322.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail reports whether an email address is structurally plausible.
// Empty strings are invalid; callers decide whether empty is acceptable.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
