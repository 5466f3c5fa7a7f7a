package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rookery-deps/internal/core"
	"rookery-deps/internal/types"
)

func TestVersions_ClassifiesDrift(t *testing.T) {
	dir := specsDirWith(t, "behind.rook", "ahead.rook", "current.rook", "odd.rook")
	svc := Service{
		Catalog: stubCatalog{packages: map[string]types.ArchPackage{
			"behind":  {Name: "behind", Version: "2.0-1"},
			"ahead":   {Name: "ahead", Version: "2.9-3"},
			"current": {Name: "current", Version: "1.0-2"},
			"odd":     {Name: "odd", Version: "not a version"},
		}},
		Specs: stubSpecs{packages: map[string]types.RookPackage{
			"behind.rook":  {Name: "behind", Version: "1.0"},
			"ahead.rook":   {Name: "ahead", Version: "3.0"},
			"current.rook": {Name: "current", Version: "1.0"},
			"odd.rook":     {Name: "odd", Version: "1.0"},
		}},
	}

	result, err := svc.Versions(context.Background(), VersionsRequest{SpecsDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Checked)
	require.Len(t, result.Outdated, 1)
	assert.Equal(t, "behind", result.Outdated[0].Name)
	assert.Equal(t, "2.0", result.Outdated[0].ArchVersion)
	assert.Equal(t, core.VersionBehind, result.Outdated[0].Drift)
	require.Len(t, result.Ahead, 1)
	assert.Equal(t, "ahead", result.Ahead[0].Name)
	assert.Equal(t, 1, result.Unknown)
}

func TestVersions_PkgrelIsStrippedBeforeComparison(t *testing.T) {
	// 1.0-5 is a rebuild of upstream 1.0, not a newer version.
	dir := specsDirWith(t, "foo.rook")
	svc := Service{
		Catalog: stubCatalog{packages: map[string]types.ArchPackage{
			"foo": {Name: "foo", Version: "1.0-5"},
		}},
		Specs: stubSpecs{packages: map[string]types.RookPackage{
			"foo.rook": {Name: "foo", Version: "1.0"},
		}},
	}

	result, err := svc.Versions(context.Background(), VersionsRequest{SpecsDir: dir})
	require.NoError(t, err)
	assert.Empty(t, result.Outdated)
	assert.Empty(t, result.Ahead)
	assert.Equal(t, 0, result.Unknown)
}

func TestVersions_SkipsPackagesWithoutArchMetadata(t *testing.T) {
	dir := specsDirWith(t, "rookery-only.rook")
	svc := Service{
		Catalog: stubCatalog{},
		Specs: stubSpecs{packages: map[string]types.RookPackage{
			"rookery-only.rook": {Name: "rookery-only", Version: "1.0"},
		}},
	}

	result, err := svc.Versions(context.Background(), VersionsRequest{SpecsDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
}
