package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces a simple length window; composition rules are left to
// the client, the server only refuses trivially short or absurd inputs.
func Password(s string) bool {
	// bcrypt truncates beyond 72 bytes
	return len(s) >= 8 && len(s) <= 72
}

// Name validates a displayable first/last name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, true
}

// ID parses a positive integer row identifier from a path parameter.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Qty parses a purchase quantity; zero/negative and garbage are rejected.
func Qty(n int) (int, bool) {
	if n < 1 || n > 1000 {
		return 0, false
	}
	return n, true
}
