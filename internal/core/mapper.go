package core

import (
	"strings"

	"rookery-deps/internal/types"
)

// ignoredPrefixes are Arch name prefixes with no Rookery counterpart:
// language bindings are tracked per-interpreter and lib32- compat
// packages do not exist on Rookery.
var ignoredPrefixes = []string{"python-", "perl-", "lib32-"}

// ignoredSuffixes mark VCS development builds and documentation split
// packages.
var ignoredSuffixes = []string{"-git", "-svn", "-bzr", "-hg", "-docs", "-doc"}

// Mapper translates Arch dependency tokens into Rookery package names.
// It is read-only after construction and safe to share.
type Mapper struct {
	table types.MappingTable
}

func NewMapper(table types.MappingTable) Mapper {
	return Mapper{table: table}
}

// Map resolves a raw Arch dependency token to a Rookery package name.
// ok is false when the token is definitively ignored: it has no Rookery
// counterpart and must never be reported missing.
//
// Rule order is fixed and first match wins: ignore set, explicit table,
// shared-library table, prefix rules, suffix rules, split-package
// table, identity fallback. An explicit-table hit is final even when
// its value is nil (ignore); only a genuine miss falls through.
//
// The shared-library branch tests the original token for the ".so"
// suffix while the tables are consulted with the normalized name.
// Collapsing that asymmetry changes which rule fires for names that are
// both in the explicit table and end in ".so", so it is preserved.
func (m Mapper) Map(token string) (string, bool) {
	name := Normalize(token)

	if _, ignored := m.table.Ignore[name]; ignored {
		return "", false
	}
	if target, hit := m.table.Explicit[name]; hit {
		return deref(target)
	}
	if strings.HasSuffix(token, ".so") {
		if target, hit := m.table.SharedLibs[name]; hit {
			return deref(target)
		}
		// Unknown sonames are assumed to be provided transitively by a
		// package the spec already declares.
		return "", false
	}
	for _, prefix := range ignoredPrefixes {
		if strings.HasPrefix(name, prefix) {
			return "", false
		}
	}
	for _, suffix := range ignoredSuffixes {
		if strings.HasSuffix(name, suffix) {
			return "", false
		}
	}
	if base, found := strings.CutSuffix(name, "-devel"); found {
		// -devel re-resolves through the explicit table only, not the
		// full rule chain.
		if target, hit := m.table.Explicit[base]; hit {
			return deref(target)
		}
		return base, true
	}
	if target, hit := m.table.SplitPackages[name]; hit {
		return deref(target)
	}
	return name, true
}

// KnownVersion returns the minimum version recorded for a Rookery
// package, defaulting to "1.0".
func (m Mapper) KnownVersion(name string) string {
	if version, ok := m.table.KnownVersions[name]; ok {
		return version
	}
	return "1.0"
}

// SharedLibOwner reports the Rookery package providing a shared-library
// stem, when the table knows one.
func (m Mapper) SharedLibOwner(name string) (string, bool) {
	target, hit := m.table.SharedLibs[name]
	if !hit || target == nil {
		return "", false
	}
	return *target, true
}

func deref(target *string) (string, bool) {
	if target == nil {
		return "", false
	}
	return *target, true
}
