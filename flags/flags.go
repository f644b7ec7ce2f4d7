// Package flags turns frozen severity settings into Error Prone compiler flags.
//
// See http://errorprone.info/docs/flags for the flag syntax.
package flags

import (
	"github.com/spechtlabs/errorprone-sl/severity"
)

const (
	// CheckPrefix starts a per-check severity flag: -Xep:<Check>:<LEVEL>.
	CheckPrefix = "-Xep"

	// DisableWarningsInGeneratedCode silences warnings in @Generated sources.
	DisableWarningsInGeneratedCode = "-XepDisableWarningsInGeneratedCode"

	// ExcludedPathsPrefix starts a path exclusion flag: -XepExcludedPaths:<pattern>.
	ExcludedPathsPrefix = "-XepExcludedPaths"
)

// Check renders the severity flag for a single check.
func Check(name string, level severity.Level) string {
	return CheckPrefix + ":" + name + ":" + level.String()
}

// ExcludedPath renders the exclusion flag for a single pattern.
func ExcludedPath(pattern string) string {
	return ExcludedPathsPrefix + ":" + pattern
}

// Build derives the full flag list: check overrides for ERROR, WARN and OFF
// (names sorted within each level), then the generated-code switch, then the
// excluded paths in insertion order. Every call returns a fresh slice.
func Build(s severity.Settings) []string {
	var out []string
	for _, level := range severity.Levels {
		for _, name := range s.Checks(level) {
			out = append(out, Check(name, level))
		}
	}

	if s.SuppressWarningsInGeneratedCode() {
		out = append(out, DisableWarningsInGeneratedCode)
	}

	for _, pattern := range s.ExcludedPaths() {
		out = append(out, ExcludedPath(pattern))
	}
	return out
}
