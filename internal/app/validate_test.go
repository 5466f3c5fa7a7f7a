package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rookery-deps/internal/types"
)

func TestValidate_CollectsAllProblems(t *testing.T) {
	dir := specsDirWith(t, "good.rook", "noversion.rook", "badconstraint.rook", "broken.rook")
	svc := Service{
		Specs: stubSpecs{
			packages: map[string]types.RookPackage{
				"good.rook": {
					Name:    "good",
					Version: "1.0",
					Depends: map[string]string{"zlib": ">= 1.3"},
				},
				"noversion.rook": {Name: "noversion"},
				"badconstraint.rook": {
					Name:    "badconstraint",
					Version: "1.0",
					Depends: map[string]string{"zlib": "not a constraint"},
				},
			},
			bad: map[string]struct{}{"broken.rook": {}},
		},
	}

	result, err := svc.Validate(context.Background(), ValidateRequest{SpecsDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 4, result.FilesChecked)
	require.Len(t, result.Problems, 3)
	assert.Contains(t, result.Problems[0], "badconstraint.rook")
	assert.Contains(t, result.Problems[1], "broken.rook")
	assert.Contains(t, result.Problems[2], "noversion.rook")
}

func TestValidate_CleanTree(t *testing.T) {
	dir := specsDirWith(t, "good.rook")
	svc := Service{
		Specs: stubSpecs{packages: map[string]types.RookPackage{
			"good.rook": {Name: "good", Version: "1.0"},
		}},
	}

	result, err := svc.Validate(context.Background(), ValidateRequest{SpecsDir: dir})
	require.NoError(t, err)
	assert.Empty(t, result.Problems)
}
