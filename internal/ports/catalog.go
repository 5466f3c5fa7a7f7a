package ports

import (
	"context"

	"rookery-deps/internal/types"
)

// ArchCatalogPort retrieves a package's metadata from the Arch Linux
// catalog, trying a fixed set of alternate sources before giving up.
type ArchCatalogPort interface {
	Fetch(ctx context.Context, name string) (types.ArchPackage, error)
}
