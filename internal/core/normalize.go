package core

import "strings"

// StripVersionConstraint cuts a trailing version comparison from a raw
// dependency token, e.g. "libfoo>=1.2" -> "libfoo". The split happens
// on the first occurrence of any of '>', '<', '='.
func StripVersionConstraint(token string) string {
	if i := strings.IndexAny(token, "><="); i >= 0 {
		token = token[:i]
	}
	return strings.TrimSpace(token)
}

// Normalize reduces a raw Arch dependency token to a bare package name:
// the version constraint is stripped first, then a literal ".so"
// suffix. Normalize is idempotent and maps empty input to empty output.
func Normalize(token string) string {
	return strings.TrimSuffix(StripVersionConstraint(token), ".so")
}
