// Package validate holds the syntactic guards applied to every request
// before any provider call is made. All predicates are pure and total.
package validate

import (
	"strings"
	"time"
)

// DateLayout is the only accepted date format across the API.
const DateLayout = "2006-01-02"

// Symbol reports whether s is a well-formed ticker symbol: non-empty and
// either fully alphanumeric, or a dot-separated sequence of alphanumeric
// segments (exchange-suffixed tickers like "BRK.B").
func Symbol(s string) bool {
	if s == "" {
		return false
	}
	if !strings.Contains(s, ".") {
		return alnum(s)
	}
	for _, part := range strings.Split(s, ".") {
		if !alnum(part) {
			return false
		}
	}
	return true
}

// Date reports whether s is a valid calendar date in YYYY-MM-DD form.
// Invalid dates such as "2024-02-30" fail even though they match the shape.
func Date(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD string. Callers should check Date first;
// the error is returned for the handler's message only.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// alnum reports whether s is non-empty and contains only ASCII letters
// and digits. An empty segment ("BRK..B", ".B") is not a valid ticker part.
func alnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}
