package types

// ArchPackage is the Arch Linux catalog's view of one package. Records
// are immutable once fetched; optional-dependency tokens have their
// free-text descriptions stripped at decode time.
type ArchPackage struct {
	Name        string
	Version     string
	Depends     []string
	MakeDepends []string
	OptDepends  []string
	Provides    []string
}

// RookPackage is the structured form of one .rook spec file. Each
// dependency map associates a package name with its version constraint
// string. The patcher never consumes this record: it re-reads the raw
// file text so that unrelated formatting survives a patch.
type RookPackage struct {
	Name            string
	Version         string
	Depends         map[string]string
	BuildDepends    map[string]string
	OptionalDepends map[string]string
}
