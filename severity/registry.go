package severity

import (
	"slices"
	"sort"
)

// Registry collects check overrides while build scripts run.
//
// Names are opaque: nothing here checks that Error Prone knows them. Each
// level is a set, but a name may sit in several levels at once; Settings.Conflicts
// reports those.
type Registry struct {
	buckets [3]map[string]struct{}

	suppressWarningsInGeneratedCode bool
	excludedPaths                   []string
}

// NewRegistry returns an empty registry with warnings in generated code suppressed.
func NewRegistry() *Registry {
	r := &Registry{suppressWarningsInGeneratedCode: true}
	for i := range r.buckets {
		r.buckets[i] = make(map[string]struct{})
	}
	return r
}

// Error reports the check as a compile error.
func (r *Registry) Error(name string) { r.Mark(LevelError, name) }

// Warn reports the check as a warning.
func (r *Registry) Warn(name string) { r.Mark(LevelWarn, name) }

// Off disables the check.
func (r *Registry) Off(name string) { r.Mark(LevelOff, name) }

// Mark adds name to the bucket of the given level. Adding a name twice is a no-op.
func (r *Registry) Mark(level Level, name string) {
	if int(level) >= len(r.buckets) {
		return
	}
	r.buckets[level][name] = struct{}{}
}

// Seed marks every name as an error.
func (r *Registry) Seed(names ...string) {
	for _, name := range names {
		r.Error(name)
	}
}

// SeedDefaults marks DefaultErrorChecks as errors.
func (r *Registry) SeedDefaults() {
	r.Seed(DefaultErrorChecks...)
}

// SetSuppressWarningsInGeneratedCode toggles -XepDisableWarningsInGeneratedCode.
func (r *Registry) SetSuppressWarningsInGeneratedCode(suppress bool) {
	r.suppressWarningsInGeneratedCode = suppress
}

// AddExcludedPath appends a path pattern. Order is kept and duplicates are allowed.
func (r *Registry) AddExcludedPath(pattern string) {
	r.excludedPaths = append(r.excludedPaths, pattern)
}

// Checks returns the names at the given level in sorted order.
func (r *Registry) Checks(level Level) []string {
	if int(level) >= len(r.buckets) {
		return nil
	}
	return sortedKeys(r.buckets[level])
}

// SuppressWarningsInGeneratedCode reports the current generated-code setting.
func (r *Registry) SuppressWarningsInGeneratedCode() bool {
	return r.suppressWarningsInGeneratedCode
}

// ExcludedPaths returns the excluded path patterns in insertion order.
func (r *Registry) ExcludedPaths() []string {
	return slices.Clone(r.excludedPaths)
}

// Freeze snapshots the registry. Later changes to r do not affect the result.
func (r *Registry) Freeze() Settings {
	s := Settings{
		suppressWarningsInGeneratedCode: r.suppressWarningsInGeneratedCode,
		excludedPaths:                   slices.Clone(r.excludedPaths),
	}
	for _, level := range Levels {
		s.checks[level] = r.Checks(level)
	}
	return s
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
