package core

import (
	"strings"

	debversion "github.com/knqyf263/go-deb-version"
)

// VersionDrift classifies a spec's declared version against the Arch
// catalog version for the same package.
type VersionDrift string

const (
	VersionCurrent VersionDrift = "current"
	VersionBehind  VersionDrift = "behind"
	VersionAhead   VersionDrift = "ahead"
	VersionUnknown VersionDrift = "unknown"
)

// StripPkgrel removes the trailing Arch package-release component
// ("6.6.1-2" -> "6.6.1"). The release counts rebuilds of the same
// upstream version and has no Rookery counterpart.
func StripPkgrel(version string) string {
	if i := strings.LastIndex(version, "-"); i > 0 {
		return version[:i]
	}
	return version
}

// CompareVersions orders a spec's declared version against the Arch
// upstream version. Arch pkgver strings follow the same
// epoch:upstream-revision shape as Debian versions, so both sides go
// through Debian version ordering; a side that fails to parse yields
// VersionUnknown rather than a guess.
func CompareVersions(local string, foreign string) VersionDrift {
	local = strings.TrimSpace(local)
	foreign = strings.TrimSpace(foreign)
	if local == "" || foreign == "" {
		return VersionUnknown
	}
	lv, err := debversion.NewVersion(local)
	if err != nil {
		return VersionUnknown
	}
	fv, err := debversion.NewVersion(foreign)
	if err != nil {
		return VersionUnknown
	}
	switch {
	case lv.Equal(fv):
		return VersionCurrent
	case lv.LessThan(fv):
		return VersionBehind
	default:
		return VersionAhead
	}
}
