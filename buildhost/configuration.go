package buildhost

import (
	"fmt"
	"slices"
	"sort"

	humane "github.com/sierrasoftworks/humane-errors-go"
)

// Configuration is a named bucket of dependencies.
type Configuration struct {
	Name         string
	dependencies []Dependency
}

// Add appends a dependency.
func (c *Configuration) Add(dep Dependency) {
	c.dependencies = append(c.dependencies, dep)
}

// Dependencies returns the declared dependencies in declaration order.
func (c *Configuration) Dependencies() []Dependency {
	return slices.Clone(c.dependencies)
}

// ConfigurationContainer holds a project's dependency configurations.
type ConfigurationContainer struct {
	byName map[string]*Configuration
}

// NewConfigurationContainer returns an empty container.
func NewConfigurationContainer() *ConfigurationContainer {
	return &ConfigurationContainer{byName: make(map[string]*Configuration)}
}

// Create adds a new, empty configuration.
func (c *ConfigurationContainer) Create(name string) (*Configuration, error) {
	if _, ok := c.byName[name]; ok {
		return nil, humane.Wrap(ErrDuplicateConfiguration,
			fmt.Sprintf("cannot create configuration %q", name),
			"Look the configuration up with GetAt instead of creating it again.",
		)
	}
	cfg := &Configuration{Name: name}
	c.byName[name] = cfg
	return cfg, nil
}

// Maybe returns the named configuration, creating it if needed.
func (c *ConfigurationContainer) Maybe(name string) *Configuration {
	if cfg, ok := c.byName[name]; ok {
		return cfg
	}
	cfg := &Configuration{Name: name}
	c.byName[name] = cfg
	return cfg
}

// GetAt returns the named configuration or ErrConfigurationNotFound.
func (c *ConfigurationContainer) GetAt(name string) (*Configuration, error) {
	cfg, ok := c.byName[name]
	if !ok {
		return nil, humane.Wrap(ErrConfigurationNotFound,
			fmt.Sprintf("configuration with name %q not found", name),
			"Apply the plugin that creates this configuration before using it.",
		)
	}
	return cfg, nil
}

// Names returns the configuration names in sorted order.
func (c *ConfigurationContainer) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
