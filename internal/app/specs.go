package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rookery-deps/internal/shared"
)

// requireSpecsDir validates the specs directory before any per-file
// work begins. This is the only class of failure that aborts a batch.
func requireSpecsDir(specsDir string) (string, error) {
	specsDir = strings.TrimSpace(specsDir)
	if specsDir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("specs directory is required")
	}
	info, err := os.Stat(specsDir)
	if err != nil || !info.IsDir() {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("specs directory not found: %s", specsDir)).
			WithCause(err)
	}
	return specsDir, nil
}

// listSpecFiles returns the .rook files to process, sorted by name.
// With a package filter only that package's file is returned, trying
// the kf6- name variant before giving up.
func listSpecFiles(specsDir string, packageFilter string) ([]string, error) {
	if name := strings.TrimSpace(packageFilter); name != "" {
		for _, candidate := range shared.SpecFileCandidates(name) {
			path := filepath.Join(specsDir, candidate)
			if _, err := os.Stat(path); err == nil {
				return []string{path}, nil
			}
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("package not found: %s", name))
	}
	matches, err := filepath.Glob(filepath.Join(specsDir, "*.rook"))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list spec files").
			WithCause(err)
	}
	sort.Strings(matches)
	return matches, nil
}

// locateSpec finds the .rook file for a report entry, tolerating the
// kf6- prefix difference between report names and file names.
func locateSpec(specsDir string, name string) (string, bool) {
	for _, candidate := range shared.SpecFileCandidates(name) {
		path := filepath.Join(specsDir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
