package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rookery-deps/internal/adapters"
	"rookery-deps/internal/core"
	"rookery-deps/internal/types"
)

const fixableSpec = `[package]
name = "foo"
version = "1.0"

[[source]]
url = "https://example.org/foo-1.0.tar.gz"

[depends]
zlib = ">= 1.3"

[build_depends]

[optional_depends]
`

func fixService(reportText string) Service {
	spec := adapters.NewSpecFileAdapter()
	return Service{
		Specs:    spec,
		SpecText: spec,
		Mapping:  stubMapping{table: testTable()},
		Reports:  stubReports{files: map[string]string{"deps.txt": reportText}},
	}
}

func fooReport() string {
	return core.FormatReport([]types.ReportEntry{{
		Name:        "foo",
		ArchName:    "foo",
		ArchVersion: "2.0-1",
		Diff: types.DiffResult{
			MissingDepends:      []string{"openssl", "zlib"},
			MissingBuildDepends: []string{"cmake"},
			MissingOptional:     []string{"curl"},
		},
	}})
}

func TestFix_PatchesAllSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foo.rook")
	require.NoError(t, os.WriteFile(path, []byte(fixableSpec), 0644))

	svc := fixService(fooReport())
	result, err := svc.Fix(context.Background(), FixRequest{ReportPath: "deps.txt", SpecsDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.PackagesProcessed)
	assert.Equal(t, 1, result.FilesModified)
	assert.Equal(t, 0, result.Unchanged)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	patched := string(data)
	// zlib was already declared and must not be duplicated.
	assert.Equal(t, 1, strings.Count(patched, "zlib = "), patched)
	assert.Contains(t, patched, `openssl = ">= 3.0"`)
	assert.Contains(t, patched, `cmake = ">= 1.0"`)
	assert.Contains(t, patched, `curl = ">= 1.0"`)
	// Bytes outside the dependency sections survive untouched.
	assert.Contains(t, patched, `url = "https://example.org/foo-1.0.tar.gz"`)
}

func TestFix_DryRunLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foo.rook")
	require.NoError(t, os.WriteFile(path, []byte(fixableSpec), 0644))

	svc := fixService(fooReport())
	result, err := svc.Fix(context.Background(), FixRequest{ReportPath: "deps.txt", SpecsDir: dir, DryRun: true})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.FilesModified)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fixableSpec, string(data))
}

func TestFix_SkipBuildAndOptional(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foo.rook")
	require.NoError(t, os.WriteFile(path, []byte(fixableSpec), 0644))

	svc := fixService(fooReport())
	_, err := svc.Fix(context.Background(), FixRequest{
		ReportPath:   "deps.txt",
		SpecsDir:     dir,
		SkipBuild:    true,
		SkipOptional: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	patched := string(data)
	assert.Contains(t, patched, `openssl = ">= 3.0"`)
	assert.NotContains(t, patched, "cmake")
	assert.NotContains(t, patched, "curl")
}

func TestFix_AlreadyDeclaredIsUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foo.rook")
	require.NoError(t, os.WriteFile(path, []byte(fixableSpec), 0644))

	report := core.FormatReport([]types.ReportEntry{{
		Name: "foo", ArchName: "foo", ArchVersion: "2.0-1",
		Diff: types.DiffResult{MissingDepends: []string{"zlib"}},
	}})
	svc := fixService(report)
	result, err := svc.Fix(context.Background(), FixRequest{ReportPath: "deps.txt", SpecsDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 0, result.FilesModified)
	assert.Equal(t, 1, result.Unchanged)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fixableSpec, string(data))
}

func TestFix_SharedLibAliasAlreadySatisfied(t *testing.T) {
	// libpng16 maps to libpng, which the spec already declares under
	// [depends]; the alias must not be added back.
	dir := t.TempDir()
	spec := `[package]
name = "foo"
version = "1.0"

[depends]
libpng = ">= 1.6"
`
	path := filepath.Join(dir, "foo.rook")
	require.NoError(t, os.WriteFile(path, []byte(spec), 0644))

	report := core.FormatReport([]types.ReportEntry{{
		Name: "foo", ArchName: "foo", ArchVersion: "2.0-1",
		Diff: types.DiffResult{MissingDepends: []string{"libpng16"}},
	}})
	svc := fixService(report)
	result, err := svc.Fix(context.Background(), FixRequest{ReportPath: "deps.txt", SpecsDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Unchanged)
}

func TestFix_SelfReferenceIsDropped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foo.rook")
	require.NoError(t, os.WriteFile(path, []byte(fixableSpec), 0644))

	report := core.FormatReport([]types.ReportEntry{{
		Name: "foo", ArchName: "foo", ArchVersion: "2.0-1",
		Diff: types.DiffResult{MissingDepends: []string{"foo"}},
	}})
	svc := fixService(report)
	result, err := svc.Fix(context.Background(), FixRequest{ReportPath: "deps.txt", SpecsDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Unchanged)
}

func TestFix_PackageFilterNotInReport(t *testing.T) {
	dir := t.TempDir()
	svc := fixService(fooReport())
	_, err := svc.Fix(context.Background(), FixRequest{ReportPath: "deps.txt", SpecsDir: dir, Package: "bar"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package not found in report")
}

func TestFix_MissingReportPath(t *testing.T) {
	dir := t.TempDir()
	svc := fixService("")
	_, err := svc.Fix(context.Background(), FixRequest{SpecsDir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report path is required")
}

func TestFix_MissingSpecFileSkipsEntry(t *testing.T) {
	dir := t.TempDir()
	svc := fixService(fooReport())
	result, err := svc.Fix(context.Background(), FixRequest{ReportPath: "deps.txt", SpecsDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 1, result.PackagesProcessed)
	assert.Equal(t, 0, result.FilesModified)
	assert.Equal(t, 0, result.Unchanged)
}

func TestFix_LimitBoundsProcessedEntries(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"foo", "bar"} {
		spec := "[package]\nname = \"" + name + "\"\nversion = \"1.0\"\n\n[depends]\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".rook"), []byte(spec), 0644))
	}
	report := core.FormatReport([]types.ReportEntry{
		{Name: "foo", ArchName: "foo", Diff: types.DiffResult{MissingDepends: []string{"openssl"}}},
		{Name: "bar", ArchName: "bar", Diff: types.DiffResult{MissingDepends: []string{"openssl"}}},
	})
	svc := fixService(report)
	result, err := svc.Fix(context.Background(), FixRequest{ReportPath: "deps.txt", SpecsDir: dir, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, result.PackagesProcessed)
	assert.Equal(t, 1, result.FilesModified)
}
