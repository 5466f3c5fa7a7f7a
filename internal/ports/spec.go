package ports

import "rookery-deps/internal/types"

// SpecReaderPort parses a .rook spec file into a structured record.
type SpecReaderPort interface {
	Load(path string) (types.RookPackage, error)
}

// SpecTextPort reads and rewrites a spec file's raw text. The patch
// phase works on raw text, never on the structured record, so that
// untouched formatting survives. Writes replace the whole file content
// in one operation.
type SpecTextPort interface {
	ReadRaw(path string) (string, error)
	WriteRaw(path string, content string) error
}
