package app

import (
	"rookery-deps/internal/core"
	"rookery-deps/internal/types"
)

type CheckRequest struct {
	SpecsDir   string
	Package    string
	ReportPath string
	ShowFixes  bool
}

type CheckResult struct {
	PackagesChecked    int
	PackagesWithIssues int
	TotalMissing       int
	Skipped            int
	Entries            []types.ReportEntry
	Report             string
	ReportPath         string
}

type FixRequest struct {
	ReportPath   string
	SpecsDir     string
	Package      string
	DryRun       bool
	SkipBuild    bool
	SkipOptional bool
	Limit        int
}

type FixResult struct {
	PackagesProcessed int
	FilesModified     int
	Unchanged         int
	DryRun            bool
}

type VersionsRequest struct {
	SpecsDir string
	Package  string
}

// VersionDriftEntry records one spec whose declared version differs
// from the Arch catalog.
type VersionDriftEntry struct {
	Name         string
	LocalVersion string
	ArchVersion  string
	Drift        core.VersionDrift
}

type VersionsResult struct {
	Checked  int
	Skipped  int
	Outdated []VersionDriftEntry
	Ahead    []VersionDriftEntry
	Unknown  int
}

type ValidateRequest struct {
	SpecsDir string
	Package  string
}

type ValidateResult struct {
	FilesChecked int
	Problems     []string
}
