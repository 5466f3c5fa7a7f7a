package core

import (
	"fmt"
	"sort"
	"strings"

	"rookery-deps/internal/types"
)

// The report text is a de facto protocol between the check and fix
// phases. ParseReport understands exactly the vocabulary FormatReport
// emits; do not restyle either side without the other.
const (
	ReportRule      = "============================================================"
	packagePrefix   = "Package: "
	archEquivPrefix = "Arch equivalent: "

	sectionRuntime  = "Missing runtime dependencies:"
	sectionBuild    = "Missing build dependencies:"
	sectionOptional = "Missing optional dependencies:"
)

// FormatReport renders diff entries as sectioned plain text.
func FormatReport(entries []types.ReportEntry) string {
	var b strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&b, "\n%s\n", ReportRule)
		fmt.Fprintf(&b, "%s%s\n", packagePrefix, entry.Name)
		fmt.Fprintf(&b, "%s%s (%s)\n", archEquivPrefix, entry.ArchName, entry.ArchVersion)
		writeReportSection(&b, sectionRuntime, entry.Diff.MissingDepends)
		writeReportSection(&b, sectionBuild, entry.Diff.MissingBuildDepends)
		writeReportSection(&b, sectionOptional, entry.Diff.MissingOptional)
	}
	return b.String()
}

func writeReportSection(b *strings.Builder, header string, deps []string) {
	if len(deps) == 0 {
		return
	}
	fmt.Fprintf(b, "\n  %s\n", header)
	for _, dep := range sortedCopy(deps) {
		fmt.Fprintf(b, "    - %s\n", dep)
	}
}

// FormatSuggestions renders the TOML snippet appended per entry when
// the check phase runs with suggestions enabled. The lines are indented
// so the report parser never mistakes them for real section headers or
// entry lines.
func FormatSuggestions(entry types.ReportEntry, versions map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  Suggested additions to %s.rook:\n", entry.Name)
	writeSuggestionSection(&b, types.DepCategoryRuntime, entry.Diff.MissingDepends, versions)
	writeSuggestionSection(&b, types.DepCategoryBuild, entry.Diff.MissingBuildDepends, versions)
	writeSuggestionSection(&b, types.DepCategoryOptional, entry.Diff.MissingOptional, versions)
	return b.String()
}

func writeSuggestionSection(b *strings.Builder, category types.DepCategory, deps []string, versions map[string]string) {
	if len(deps) == 0 {
		return
	}
	fmt.Fprintf(b, "  [%s]\n", category)
	for _, dep := range sortedCopy(deps) {
		version, ok := versions[dep]
		if !ok {
			version = "1.0"
		}
		fmt.Fprintf(b, "  %s = \">= %s\"\n", dep, version)
	}
}

// ParseReport re-parses report text into structured entries. It is a
// line state machine, not a general parser: "Package: " opens an entry,
// the three fixed section phrases select a category, "- token" lines
// append to the active category, and a run of '=' characters closes the
// active category while the entry stays open. Unrecognized lines are
// skipped.
func ParseReport(text string) []types.ReportEntry {
	var entries []types.ReportEntry
	var current *types.ReportEntry
	var section types.DepCategory

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, packagePrefix):
			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.ReportEntry{Name: strings.TrimSpace(line[len(packagePrefix):])}
			section = ""
		case strings.HasPrefix(line, archEquivPrefix):
			if current != nil {
				current.ArchName, current.ArchVersion = parseArchEquivalent(line[len(archEquivPrefix):])
			}
		case strings.Contains(line, sectionRuntime):
			section = types.DepCategoryRuntime
		case strings.Contains(line, sectionBuild):
			section = types.DepCategoryBuild
		case strings.Contains(line, sectionOptional):
			section = types.DepCategoryOptional
		case strings.HasPrefix(line, "===="):
			section = ""
		case strings.HasPrefix(trimmed, "- ") && current != nil && section != "":
			dep := strings.TrimSpace(trimmed[2:])
			switch section {
			case types.DepCategoryRuntime:
				current.Diff.MissingDepends = append(current.Diff.MissingDepends, dep)
			case types.DepCategoryBuild:
				current.Diff.MissingBuildDepends = append(current.Diff.MissingBuildDepends, dep)
			case types.DepCategoryOptional:
				current.Diff.MissingOptional = append(current.Diff.MissingOptional, dep)
			}
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// parseArchEquivalent splits "name (version)" into its parts. A missing
// version clause leaves the version empty.
func parseArchEquivalent(rest string) (string, string) {
	rest = strings.TrimSpace(rest)
	open := strings.LastIndex(rest, "(")
	if open < 0 || !strings.HasSuffix(rest, ")") {
		return rest, ""
	}
	name := strings.TrimSpace(rest[:open])
	version := strings.TrimSuffix(rest[open+1:], ")")
	return name, version
}

func sortedCopy(values []string) []string {
	ordered := append([]string(nil), values...)
	sort.Strings(ordered)
	return ordered
}
