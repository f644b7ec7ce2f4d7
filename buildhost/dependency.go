package buildhost

import (
	"fmt"
	"slices"
	"strings"

	humane "github.com/sierrasoftworks/humane-errors-go"
)

// Dependency is an external module coordinate.
type Dependency struct {
	Group   string
	Name    string
	Version string
}

// ParseDependency parses "group:name:version" notation.
func ParseDependency(notation string) (Dependency, error) {
	parts := strings.Split(notation, ":")
	if len(parts) != 3 || slices.Contains(parts, "") {
		return Dependency{}, humane.Wrap(ErrInvalidDependency,
			fmt.Sprintf("cannot parse dependency %q", notation),
			"Write dependencies as group:name:version, e.g. com.google.errorprone:error_prone_core:2.3.1.",
		)
	}
	return Dependency{Group: parts[0], Name: parts[1], Version: parts[2]}, nil
}

// String returns the dependency in group:name:version notation.
func (d Dependency) String() string {
	return d.Group + ":" + d.Name + ":" + d.Version
}
