package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	toml "github.com/pelletier/go-toml/v2"

	"rookery-deps/internal/ports"
	"rookery-deps/internal/types"
)

// SpecFileAdapter reads .rook spec files, both as structured records
// (for diffing) and as raw text (for patching). The two views are kept
// separate on purpose: the patcher must never round-trip the file
// through a document model.
type SpecFileAdapter struct{}

func NewSpecFileAdapter() SpecFileAdapter {
	return SpecFileAdapter{}
}

// rookDocument mirrors the sections of a .rook file this tool cares
// about; source, checksum and changelog sections are ignored by the
// decoder and untouched by the patcher.
type rookDocument struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Depends         map[string]string `toml:"depends"`
	BuildDepends    map[string]string `toml:"build_depends"`
	OptionalDepends map[string]string `toml:"optional_depends"`
}

func (a SpecFileAdapter) Load(path string) (types.RookPackage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RookPackage{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("spec file not found").
			WithCause(err)
	}
	var doc rookDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return types.RookPackage{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse spec toml: %s", path)).
			WithCause(err)
	}
	pkg := types.RookPackage{
		Name:            doc.Package.Name,
		Version:         doc.Package.Version,
		Depends:         doc.Depends,
		BuildDepends:    doc.BuildDepends,
		OptionalDepends: doc.OptionalDepends,
	}
	if pkg.Depends == nil {
		pkg.Depends = map[string]string{}
	}
	if pkg.BuildDepends == nil {
		pkg.BuildDepends = map[string]string{}
	}
	if pkg.OptionalDepends == nil {
		pkg.OptionalDepends = map[string]string{}
	}
	return pkg, nil
}

func (a SpecFileAdapter) ReadRaw(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("spec file not found").
			WithCause(err)
	}
	return string(data), nil
}

func (a SpecFileAdapter) WriteRaw(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write spec file").
			WithCause(err)
	}
	return nil
}

var _ ports.SpecReaderPort = SpecFileAdapter{}
var _ ports.SpecTextPort = SpecFileAdapter{}
