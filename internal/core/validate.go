// AngelaMos | 2026
// validate.go

package core

import (
	"strings"
	"time"
)

// Password pair rule messages. These are catalog keys; features wrap them in
// their own error codes and localize at render time.
const (
	MsgPasswordMismatch   = "The passwords you entered do not match."
	MsgPasswordTooShort   = "Password length must be 8 characters or greater."
	MsgPasswordWhitespace = "Password cannot contain white spaces."
)

const MinPasswordLength = 8

// CheckPasswordPair validates a new-password pair and returns the first
// violated rule's message, or "" when the pair is acceptable.
func CheckPasswordPair(password1, password2 string) string {
	if password1 != password2 {
		return MsgPasswordMismatch
	}
	if len(password1) < MinPasswordLength {
		return MsgPasswordTooShort
	}
	if strings.ContainsAny(password1, " \t\n") {
		return MsgPasswordWhitespace
	}
	return ""
}

// NormalizeEmail coerces an address to its canonical stored form: trimmed
// and lowercased. Every lookup and uniqueness check runs on this form, so
// Mixed@Example.com and mixed@example.com are the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidTimezone reports whether name is a resolvable IANA timezone.
func ValidTimezone(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}
