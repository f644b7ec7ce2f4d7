package severity

import (
	"slices"
	"strings"
)

// Settings is a frozen Registry. The zero value has no checks, no excluded
// paths and does not suppress warnings in generated code; use
// NewRegistry().Freeze() for the defaults a project starts with.
type Settings struct {
	checks [3][]string

	suppressWarningsInGeneratedCode bool
	excludedPaths                   []string
}

// Checks returns the sorted names at the given level.
func (s Settings) Checks(level Level) []string {
	if int(level) >= len(s.checks) {
		return nil
	}
	return slices.Clone(s.checks[level])
}

// SuppressWarningsInGeneratedCode reports whether warnings in generated code are disabled.
func (s Settings) SuppressWarningsInGeneratedCode() bool {
	return s.suppressWarningsInGeneratedCode
}

// ExcludedPaths returns the excluded path patterns in insertion order.
func (s Settings) ExcludedPaths() []string {
	return slices.Clone(s.excludedPaths)
}

// Conflict is a check configured at more than one level.
type Conflict struct {
	Name   string
	Levels []Level
}

// Conflicts lists checks that appear in more than one bucket, sorted by name.
// Such checks still produce one flag per bucket; Error Prone decides which wins.
func (s Settings) Conflicts() []Conflict {
	levels := make(map[string][]Level)
	for _, level := range Levels {
		for _, name := range s.checks[level] {
			levels[name] = append(levels[name], level)
		}
	}

	var conflicts []Conflict
	for name, ls := range levels {
		if len(ls) > 1 {
			conflicts = append(conflicts, Conflict{Name: name, Levels: ls})
		}
	}
	slices.SortFunc(conflicts, func(a, b Conflict) int {
		return strings.Compare(a.Name, b.Name)
	})
	return conflicts
}
