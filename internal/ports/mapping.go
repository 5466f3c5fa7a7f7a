package ports

import "rookery-deps/internal/types"

// MappingSourcePort loads the static name-mapping tables. The result is
// read-only for the rest of the process lifetime.
type MappingSourcePort interface {
	Load() (types.MappingTable, error)
}
