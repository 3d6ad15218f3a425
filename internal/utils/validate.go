package utils

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/ly3848/task-manager/internal/constants"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(fmt.Sprintf(`^[a-zA-Z0-9_]{%d,%d}$`,
		constants.MinUsernameLength, constants.MaxUsernameLength))
)

// ValidEmail reports whether the address has a plausible mailbox@domain form.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidUsername reports whether the username is 3-20 word characters.
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// ValidPassword reports whether the password is at least
// constants.MinPasswordLength characters with an upper, a lower, and a
// digit. Used only at the front-end boundary; passwords are never stored.
func ValidPassword(password string) bool {
	if len(password) < constants.MinPasswordLength {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
