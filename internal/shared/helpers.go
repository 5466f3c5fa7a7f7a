// Package shared provides common utility functions used across multiple
// packages in the rookery-deps codebase.
package shared

import (
	"fmt"
	"strings"
)

// kf6Prefix marks KDE Frameworks 6 packages, which Rookery names with
// the prefix while Arch does not.
const kf6Prefix = "kf6-"

// ArchLookupName returns the name to query the Arch catalog for a
// Rookery package: the kf6- prefix is stripped because Arch publishes
// KDE frameworks without it.
func ArchLookupName(name string) string {
	return strings.TrimPrefix(name, kf6Prefix)
}

// SpecFileCandidates lists the .rook file names a package may live
// under: the name itself, plus the kf6- variant (prefixed or stripped,
// whichever the name is not already).
func SpecFileCandidates(name string) []string {
	candidates := []string{name + ".rook"}
	if trimmed, ok := strings.CutPrefix(name, kf6Prefix); ok {
		candidates = append(candidates, trimmed+".rook")
	} else {
		candidates = append(candidates, kf6Prefix+name+".rook")
	}
	return candidates
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}
