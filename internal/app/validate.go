package app

import (
	"context"
	"fmt"
	"path/filepath"

	"rookery-deps/internal/core"
)

// Validate runs structural checks over every spec file and collects
// the problems instead of failing on the first one, so a full tree can
// be linted in a single pass.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	specsDir, err := requireSpecsDir(req.SpecsDir)
	if err != nil {
		return ValidateResult{}, err
	}
	files, err := listSpecFiles(specsDir, req.Package)
	if err != nil {
		return ValidateResult{}, err
	}

	result := ValidateResult{FilesChecked: len(files)}
	for _, path := range files {
		name := filepath.Base(path)
		pkg, err := s.Specs.Load(path)
		if err != nil {
			result.Problems = append(result.Problems, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		if err := core.ValidateSpec(ctx, pkg); err != nil {
			result.Problems = append(result.Problems, fmt.Sprintf("%s: %v", name, err))
		}
	}
	return result, nil
}
