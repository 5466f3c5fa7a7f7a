package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"rookery-deps/internal/types"
)

// ValidateSpec checks the structural hygiene of a parsed .rook record:
// package name and version must be present, and every non-empty
// dependency constraint must parse as a version specifier.
func ValidateSpec(ctx context.Context, pkg types.RookPackage) error {
	if strings.TrimSpace(pkg.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package.name must be set")
	}
	if strings.TrimSpace(pkg.Version) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package.version must be set")
	}
	assert.NotEmpty(ctx, pkg.Name, "package.name must be set")
	assert.NotEmpty(ctx, pkg.Version, "package.version must be set")
	sections := []struct {
		category types.DepCategory
		deps     map[string]string
	}{
		{types.DepCategoryRuntime, pkg.Depends},
		{types.DepCategoryBuild, pkg.BuildDepends},
		{types.DepCategoryOptional, pkg.OptionalDepends},
	}
	for _, section := range sections {
		for dep, constraint := range section.deps {
			if strings.TrimSpace(constraint) == "" {
				continue
			}
			if _, err := pep440.NewSpecifiers(constraint); err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid constraint %q for %s in [%s]", constraint, dep, section.category)).
					WithCause(err)
			}
		}
	}
	return nil
}
