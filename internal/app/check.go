package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"rookery-deps/internal/core"
	"rookery-deps/internal/shared"
	"rookery-deps/internal/types"
)

// Check walks the specs directory, diffs every parseable spec against
// its Arch equivalent and renders the report. Individual lookup or
// parse failures skip the affected package; only a missing specs
// directory aborts the batch.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	specsDir, err := requireSpecsDir(req.SpecsDir)
	if err != nil {
		return CheckResult{}, err
	}
	assert.NotEmpty(ctx, specsDir, "specs directory must be resolved")

	table, err := s.Mapping.Load()
	if err != nil {
		return CheckResult{}, err
	}
	mapper := core.NewMapper(table)
	engine := core.NewDiffEngine(mapper)

	files, err := listSpecFiles(specsDir, req.Package)
	if err != nil {
		return CheckResult{}, err
	}

	result := CheckResult{PackagesChecked: len(files)}
	var report strings.Builder
	for _, path := range files {
		pkg, err := s.Specs.Load(path)
		if err != nil {
			log.Error().Err(err).Str("spec", filepath.Base(path)).Msg("skipping unparseable spec")
			result.Skipped++
			continue
		}
		foreign, err := s.Catalog.Fetch(ctx, shared.ArchLookupName(pkg.Name))
		if err != nil {
			log.Warn().Err(err).Str("package", pkg.Name).Msg("skipping package without arch metadata")
			result.Skipped++
			continue
		}
		diff := engine.Diff(pkg, foreign)
		if diff.Empty() {
			log.Debug().Str("package", pkg.Name).Msg("dependencies in sync")
			continue
		}
		entry := types.ReportEntry{
			Name:        pkg.Name,
			ArchName:    foreign.Name,
			ArchVersion: foreign.Version,
			Diff:        diff,
		}
		result.Entries = append(result.Entries, entry)
		result.PackagesWithIssues++
		result.TotalMissing += diff.Total()

		report.WriteString(core.FormatReport([]types.ReportEntry{entry}))
		if req.ShowFixes {
			report.WriteString(core.FormatSuggestions(entry, table.KnownVersions))
		}
	}

	fmt.Fprintf(&report, "\n%s\n", core.ReportRule)
	fmt.Fprintf(&report, "Summary:\n")
	fmt.Fprintf(&report, "  Packages checked: %d\n", result.PackagesChecked)
	fmt.Fprintf(&report, "  Packages with issues: %d\n", result.PackagesWithIssues)
	fmt.Fprintf(&report, "  Total missing dependencies: %d\n", result.TotalMissing)
	result.Report = report.String()

	if path := strings.TrimSpace(req.ReportPath); path != "" {
		if err := s.Reports.Write(path, result.Report); err != nil {
			return CheckResult{}, err
		}
		result.ReportPath = path
	}
	return result, nil
}
