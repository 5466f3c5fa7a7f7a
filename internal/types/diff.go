package types

// DepCategory identifies one of the three dependency sections of a
// .rook spec. The values are the literal section names.
type DepCategory string

const (
	DepCategoryRuntime  DepCategory = "depends"
	DepCategoryBuild    DepCategory = "build_depends"
	DepCategoryOptional DepCategory = "optional_depends"
)

// DiffResult lists, per category, the mapped Arch dependencies that the
// local spec does not declare.
type DiffResult struct {
	MissingDepends      []string
	MissingBuildDepends []string
	MissingOptional     []string
}

// Empty reports whether no category has missing entries.
func (d DiffResult) Empty() bool {
	return len(d.MissingDepends) == 0 &&
		len(d.MissingBuildDepends) == 0 &&
		len(d.MissingOptional) == 0
}

// Total returns the number of missing entries across all categories.
func (d DiffResult) Total() int {
	return len(d.MissingDepends) + len(d.MissingBuildDepends) + len(d.MissingOptional)
}

// ReportEntry is one package's section in the diff report. The report
// text is the protocol between the check and fix phases: entries are
// rendered by the formatter, persisted, and parsed back by the fix
// phase.
type ReportEntry struct {
	Name        string
	ArchName    string
	ArchVersion string
	Diff        DiffResult
}
