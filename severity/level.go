// Package severity holds the per-check severity overrides handed to Error Prone.
//
// A Registry is mutated while a project's build scripts run. Once evaluation
// finishes it is frozen into a Settings value, which is what every later
// stage reads.
package severity

import (
	"errors"
	"fmt"
	"strings"

	humane "github.com/sierrasoftworks/humane-errors-go"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised input.
var ErrUnknownLevel = errors.New("unknown severity level")

// Level is the severity a check is reported with.
type Level uint8

const (
	// LevelError reports violations as compile errors.
	LevelError Level = iota
	// LevelWarn reports violations as compiler warnings.
	LevelWarn
	// LevelOff disables the check.
	LevelOff
)

// Levels lists every level in flag emission order.
var Levels = []Level{LevelError, LevelWarn, LevelOff}

// String returns the level as Error Prone spells it on the command line.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelOff:
		return "OFF"
	}
	return "UNKNOWN"
}

// ParseLevel accepts the flag spelling of a level, case-insensitively.
// "disabled" is accepted as an alias for OFF.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "OFF", "DISABLED":
		return LevelOff, nil
	}
	return 0, humane.Wrap(ErrUnknownLevel,
		fmt.Sprintf("%q is not a severity level", s),
		"Use one of ERROR, WARN or OFF.",
	)
}
