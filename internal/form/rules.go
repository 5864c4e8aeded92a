package form

import (
	"regexp"

	"github.com/dlclark/regexp2"
	"github.com/rivo/uniseg"
)

const minUsernameLength = 5

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)

// Uppercase and digit lookaheads over a restricted charset. Lowercase and
// special characters are allowed but not required.
// The match is anchored and runs without a timeout so any input length gets a
// verdict.
var passwordPattern = regexp2.MustCompile(`\A(?=.*[A-Z])(?=.*[0-9])[A-Za-z0-9@$!%*?&]{8,}\z`, regexp2.None)

// IsValidUsername reports whether s has at least five user-perceived characters.
func IsValidUsername(s string) bool {
	return uniseg.GraphemeClusterCount(s) >= minUsernameLength
}

// IsValidEmail reports whether the whole of s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPassword reports whether s is at least eight characters from
// [A-Za-z0-9@$!%*?&] with at least one uppercase letter and one digit.
func IsValidPassword(s string) bool {
	// errors only come from timeouts, which are disabled
	ok, _ := passwordPattern.MatchString(s)
	return ok
}

// PasswordsMatch is exact, case-sensitive equality.
func PasswordsMatch(a, b string) bool {
	return a == b
}
