package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rookery-deps/internal/core"
	"rookery-deps/internal/types"
)

// Fix re-reads a persisted diff report and patches the missing entries
// into each package's .rook file. Files are read, transformed and
// rewritten whole; a package whose file cannot be located or read is
// skipped with a warning.
func (s Service) Fix(ctx context.Context, req FixRequest) (FixResult, error) {
	specsDir, err := requireSpecsDir(req.SpecsDir)
	if err != nil {
		return FixResult{}, err
	}
	reportPath := strings.TrimSpace(req.ReportPath)
	if reportPath == "" {
		return FixResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is required")
	}
	text, err := s.Reports.Read(reportPath)
	if err != nil {
		return FixResult{}, err
	}
	table, err := s.Mapping.Load()
	if err != nil {
		return FixResult{}, err
	}
	mapper := core.NewMapper(table)

	entries := core.ParseReport(text)
	if name := strings.TrimSpace(req.Package); name != "" {
		entries = filterEntries(entries, name)
		if len(entries) == 0 {
			return FixResult{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("package not found in report: %s", name))
		}
	}
	if req.Limit > 0 && len(entries) > req.Limit {
		entries = entries[:req.Limit]
	}

	result := FixResult{DryRun: req.DryRun}
	for _, entry := range entries {
		result.PackagesProcessed++
		if req.SkipBuild {
			entry.Diff.MissingBuildDepends = nil
		}
		if req.SkipOptional {
			entry.Diff.MissingOptional = nil
		}
		changed, err := s.fixOne(ctx, specsDir, entry, mapper, table.KnownVersions, req.DryRun)
		if err != nil {
			log.Warn().Err(err).Str("package", entry.Name).Msg("skipping package")
			continue
		}
		if changed {
			result.FilesModified++
		} else {
			result.Unchanged++
			log.Info().Str("package", entry.Name).Msg("no change needed")
		}
	}
	return result, nil
}

func (s Service) fixOne(_ context.Context, specsDir string, entry types.ReportEntry, mapper core.Mapper, versions map[string]string, dryRun bool) (bool, error) {
	path, found := locateSpec(specsDir, entry.Name)
	if !found {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("spec file not found for %s", entry.Name))
	}
	raw, err := s.SpecText.ReadRaw(path)
	if err != nil {
		return false, err
	}

	// Names declared anywhere in the file satisfy the filter, whatever
	// category the report put them in.
	existing := map[string]struct{}{}
	for _, category := range []types.DepCategory{types.DepCategoryRuntime, types.DepCategoryBuild, types.DepCategoryOptional} {
		if region, ok := core.FindSection(raw, string(category)); ok {
			for key := range region.Keys {
				existing[key] = struct{}{}
			}
		}
	}
	filter := func(deps []string) []string {
		var kept []string
		for _, dep := range deps {
			if dep == entry.Name {
				continue
			}
			if _, declared := existing[dep]; declared {
				continue
			}
			// A soname entry is satisfied when the package providing it
			// is already declared under another name.
			if owner, ok := mapper.SharedLibOwner(dep); ok {
				if _, declared := existing[owner]; declared {
					continue
				}
			}
			kept = append(kept, dep)
		}
		return kept
	}

	patched := raw
	sections := []struct {
		category types.DepCategory
		deps     []string
	}{
		{types.DepCategoryRuntime, filter(entry.Diff.MissingDepends)},
		{types.DepCategoryBuild, filter(entry.Diff.MissingBuildDepends)},
		{types.DepCategoryOptional, filter(entry.Diff.MissingOptional)},
	}
	for _, section := range sections {
		if len(section.deps) == 0 {
			continue
		}
		next, found := core.Patch(patched, string(section.category), section.deps, versions)
		if !found {
			log.Warn().
				Str("package", entry.Name).
				Str("section", string(section.category)).
				Msg("section not found, entries not written")
			continue
		}
		patched = next
	}

	if patched == raw {
		return false, nil
	}
	if dryRun {
		log.Info().Str("spec", path).Msg("dry run, would update")
		return true, nil
	}
	if err := s.SpecText.WriteRaw(path, patched); err != nil {
		return false, err
	}
	log.Info().Str("spec", path).Msg("updated")
	return true, nil
}

func filterEntries(entries []types.ReportEntry, name string) []types.ReportEntry {
	var kept []types.ReportEntry
	for _, entry := range entries {
		if entry.Name == name {
			kept = append(kept, entry)
		}
	}
	return kept
}
