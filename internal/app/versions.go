package app

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"rookery-deps/internal/core"
	"rookery-deps/internal/shared"
)

// Versions compares every spec's declared version against the Arch
// catalog, stripping the Arch pkgrel before the comparison. Specs that
// fail to parse or have no Arch counterpart are skipped.
func (s Service) Versions(ctx context.Context, req VersionsRequest) (VersionsResult, error) {
	specsDir, err := requireSpecsDir(req.SpecsDir)
	if err != nil {
		return VersionsResult{}, err
	}
	files, err := listSpecFiles(specsDir, req.Package)
	if err != nil {
		return VersionsResult{}, err
	}

	result := VersionsResult{Checked: len(files)}
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
		archVersion := core.StripPkgrel(foreign.Version)
		entry := VersionDriftEntry{
			Name:         pkg.Name,
			LocalVersion: pkg.Version,
			ArchVersion:  archVersion,
			Drift:        core.CompareVersions(pkg.Version, archVersion),
		}
		switch entry.Drift {
		case core.VersionBehind:
			result.Outdated = append(result.Outdated, entry)
		case core.VersionAhead:
			result.Ahead = append(result.Ahead, entry)
		case core.VersionUnknown:
			result.Unknown++
			log.Debug().Str("package", pkg.Name).
				Str("local", pkg.Version).Str("arch", archVersion).
				Msg("versions not comparable")
		}
	}
	return result, nil
}
