package core

import (
	"fmt"
	"sort"
	"strings"
)

// SectionRegion locates one named section inside a spec file's raw
// text. Regions are computed fresh per patch invocation and never
// cached across files.
type SectionRegion struct {
	// Start is the line index of the [section] header.
	Start int
	// End is the line index one past the last body line (exclusive).
	End int
	// Keys holds the dependency names already declared in the section.
	Keys map[string]struct{}
}

// FindSection scans the raw text for a line equal to "[name]" after
// trimming, and the extent of its body: everything up to the next
// top-level "[" line (a "[[" array-of-tables line does not terminate
// the section) or end of text. found is false when the file has no
// such section.
func FindSection(raw string, name string) (SectionRegion, bool) {
	lines := strings.Split(raw, "\n")
	header := "[" + name + "]"
	start := -1
	end := len(lines)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if start < 0 {
			if trimmed == header {
				start = i
			}
			continue
		}
		if strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "[[") {
			end = i
			break
		}
	}
	if start < 0 {
		return SectionRegion{}, false
	}
	keys := map[string]struct{}{}
	for _, line := range lines[start+1 : end] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || !strings.Contains(trimmed, "=") {
			continue
		}
		key := strings.TrimSpace(strings.SplitN(trimmed, "=", 2)[0])
		keys[strings.Trim(key, `"`)] = struct{}{}
	}
	return SectionRegion{Start: start, End: end, Keys: keys}, true
}

// Patch inserts dependency entries into [section] of the raw text,
// immediately after the last non-blank, non-comment line of the section
// (or right after the header when the section is empty). Names already
// declared in the section are skipped, which makes patching idempotent.
// Every byte outside the single insertion point is preserved.
//
// Each inserted line has the shape `name = ">= version"` with the
// version taken from the known-version table, defaulting to "1.0".
//
// found is false when the file has no such section; the input is then
// returned unchanged and the caller surfaces a warning, not an error,
// so other sections and files can still be patched.
func Patch(raw string, section string, deps []string, versions map[string]string) (string, bool) {
	region, found := FindSection(raw, section)
	if !found {
		return raw, false
	}
	seen := map[string]struct{}{}
	var missing []string
	for _, dep := range deps {
		if _, exists := region.Keys[dep]; exists {
			continue
		}
		if _, dup := seen[dep]; dup {
			continue
		}
		seen[dep] = struct{}{}
		missing = append(missing, dep)
	}
	if len(missing) == 0 {
		return raw, true
	}
	sort.Strings(missing)

	lines := strings.Split(raw, "\n")
	insertAt := region.Start + 1
	for i := region.Start + 1; i < region.End; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			insertAt = i + 1
		}
	}

	patched := make([]string, 0, len(lines)+len(missing))
	patched = append(patched, lines[:insertAt]...)
	for _, dep := range missing {
		version, ok := versions[dep]
		if !ok {
			version = "1.0"
		}
		patched = append(patched, fmt.Sprintf(`%s = ">= %s"`, dep, version))
	}
	patched = append(patched, lines[insertAt:]...)
	return strings.Join(patched, "\n"), true
}
