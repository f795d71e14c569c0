package utils

import "regexp"

var passwordPattern = regexp.MustCompile(`^[A-Za-z0-9]{6,}$`)

// ValidPassword reports whether the password matches the policy: at least
// six characters, ASCII letters and digits only.
func ValidPassword(password string) bool {
	return passwordPattern.MatchString(password)
}
