package types

// MappingTable holds the static Arch-to-Rookery name-mapping data,
// loaded once at startup and treated as read-only afterwards.
//
// Map values are pointers so that "present with a nil value" (a
// definitive ignore: the foreign name has no Rookery counterpart) stays
// distinguishable from "absent" (no rule matched, fall through to the
// next rule).
type MappingTable struct {
	// Explicit maps normalized Arch package names to Rookery names.
	Explicit map[string]*string

	// Ignore lists foreign names that never map, regardless of any
	// version suffix on the token.
	Ignore map[string]struct{}

	// SharedLibs maps shared-library soname stems (libpng16, libssl)
	// to the Rookery package providing them. Consulted only when the
	// original token ends in ".so".
	SharedLibs map[string]*string

	// SplitPackages maps Arch-only split/config sub-packages to the
	// Rookery package that subsumes them.
	SplitPackages map[string]*string

	// KnownVersions supplies the minimum version the patcher writes
	// for well-known packages; absent entries default to "1.0".
	KnownVersions map[string]string
}
