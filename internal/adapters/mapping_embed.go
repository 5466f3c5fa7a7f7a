package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"rookery-deps/internal/assets"
	"rookery-deps/internal/ports"
	"rookery-deps/internal/types"
)

// MappingAdapter loads the name-mapping tables, from the embedded asset
// by default or from an override file when a path is given.
type MappingAdapter struct {
	// Path optionally overrides the embedded table, for auditing table
	// changes without rebuilding.
	Path string
}

func NewMappingAdapter(path string) MappingAdapter {
	return MappingAdapter{Path: strings.TrimSpace(path)}
}

// mappingDocument is the on-disk shape of the mapping table.
type mappingDocument struct {
	Explicit      map[string]*string `yaml:"explicit"`
	Ignore        []string           `yaml:"ignore"`
	SharedLibs    map[string]*string `yaml:"shared_libs"`
	SplitPackages map[string]*string `yaml:"split_packages"`
	KnownVersions map[string]string  `yaml:"known_versions"`
}

func (a MappingAdapter) Load() (types.MappingTable, error) {
	data := assets.MappingYAML
	if a.Path != "" {
		fileData, err := os.ReadFile(a.Path)
		if err != nil {
			return types.MappingTable{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("mapping table file not found").
				WithCause(err)
		}
		data = fileData
	}
	var doc mappingDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.MappingTable{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse mapping table yaml").
			WithCause(err)
	}
	table := types.MappingTable{
		Explicit:      doc.Explicit,
		Ignore:        map[string]struct{}{},
		SharedLibs:    doc.SharedLibs,
		SplitPackages: doc.SplitPackages,
		KnownVersions: doc.KnownVersions,
	}
	for _, name := range doc.Ignore {
		table.Ignore[name] = struct{}{}
	}
	if len(table.Explicit) == 0 {
		return types.MappingTable{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("mapping table has no explicit entries")
	}
	return table, nil
}

var _ ports.MappingSourcePort = MappingAdapter{}
