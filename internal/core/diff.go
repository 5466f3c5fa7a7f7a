package core

import (
	"sort"

	"rookery-deps/internal/types"
)

// DiffEngine compares the dependencies a .rook spec declares against
// the mapped dependency sets of the matching Arch package.
type DiffEngine struct {
	mapper Mapper
}

func NewDiffEngine(mapper Mapper) DiffEngine {
	return DiffEngine{mapper: mapper}
}

// Diff maps every Arch dependency token through the mapper, discards
// ignored tokens, and reports each remaining candidate that the spec
// does not declare. A dependency declared under depends or
// build_depends satisfies candidates in both of those categories;
// depends also satisfies optional candidates.
func (e DiffEngine) Diff(local types.RookPackage, foreign types.ArchPackage) types.DiffResult {
	var result types.DiffResult
	for _, dep := range e.mapSet(foreign.Depends) {
		if !declared(local.Depends, dep) && !declared(local.BuildDepends, dep) {
			result.MissingDepends = append(result.MissingDepends, dep)
		}
	}
	for _, dep := range e.mapSet(foreign.MakeDepends) {
		if !declared(local.BuildDepends, dep) && !declared(local.Depends, dep) {
			result.MissingBuildDepends = append(result.MissingBuildDepends, dep)
		}
	}
	for _, dep := range e.mapSet(foreign.OptDepends) {
		if !declared(local.OptionalDepends, dep) && !declared(local.Depends, dep) {
			result.MissingOptional = append(result.MissingOptional, dep)
		}
	}
	return result
}

// mapSet maps a token list and returns the deduplicated, sorted
// candidate names.
func (e DiffEngine) mapSet(tokens []string) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, token := range tokens {
		mapped, ok := e.mapper.Map(token)
		if !ok || mapped == "" {
			continue
		}
		if _, dup := seen[mapped]; dup {
			continue
		}
		seen[mapped] = struct{}{}
		names = append(names, mapped)
	}
	sort.Strings(names)
	return names
}

func declared(deps map[string]string, name string) bool {
	_, ok := deps[name]
	return ok
}
