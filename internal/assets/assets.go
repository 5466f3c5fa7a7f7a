// Package assets carries static data files compiled into the binary.
package assets

import _ "embed"

// MappingYAML is the Arch-to-Rookery name-mapping table. It is pure
// data: the mapper algorithm lives in internal/core, the entries live
// here so they can be audited and extended independently.
//
//go:embed mapping.yaml
var MappingYAML []byte
