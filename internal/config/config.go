// Package config provides build description file support for errorprone-sl.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	humane "github.com/sierrasoftworks/humane-errors-go"
	"gopkg.in/yaml.v3"

	errorpronesl "github.com/spechtlabs/errorprone-sl"
	"github.com/spechtlabs/errorprone-sl/buildhost"
	"github.com/spechtlabs/errorprone-sl/severity"
)

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = ".errorprone-sl.yaml"

	// TOMLConfigFileName is looked for next to ConfigFileName.
	TOMLConfigFileName = "errorprone-sl.toml"

	// DefaultProjectName is used when the file does not name the project.
	DefaultProjectName = "project"
)

// DefaultPlugins are applied when the file lists none.
var DefaultPlugins = []string{buildhost.JavaPluginID, errorpronesl.PluginID}

// ErrInvalidConfig is returned for configuration files that fail validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is a build description: the project to evaluate and the Error Prone
// overrides its build script applies.
type Config struct {
	Project    ProjectConfig    `yaml:"project" toml:"project"`
	ErrorProne ErrorProneConfig `yaml:"errorprone" toml:"errorprone"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-" toml:"-"`
}

// ProjectConfig describes the project itself.
type ProjectConfig struct {
	Name    string       `yaml:"name" toml:"name"`
	Plugins []string     `yaml:"plugins" toml:"plugins"`
	Tasks   []TaskConfig `yaml:"tasks" toml:"tasks"`
}

// TaskConfig adds a compile task, or adjusts one a plugin created.
type TaskConfig struct {
	Name string `yaml:"name" toml:"name"`

	// ToolChain is "javac" or "errorprone". Empty keeps what plugins chose.
	ToolChain string   `yaml:"toolchain" toml:"toolchain"`
	Args      []string `yaml:"args" toml:"args"`
}

// ErrorProneConfig mirrors the errorprone extension.
type ErrorProneConfig struct {
	Error []string `yaml:"error" toml:"error"`
	Warn  []string `yaml:"warn" toml:"warn"`
	Off   []string `yaml:"off" toml:"off"`

	// Checks maps a check name to its level (ERROR, WARN or OFF).
	Checks map[string]string `yaml:"checks" toml:"checks"`

	// SuppressWarningsInGeneratedCode is left at the plugin default when nil.
	SuppressWarningsInGeneratedCode *bool    `yaml:"suppressWarningsInGeneratedCode" toml:"suppressWarningsInGeneratedCode"`
	ExcludedPaths                   []string `yaml:"excludedPaths" toml:"excludedPaths"`
}

// IsZero reports whether the block sets nothing.
func (e ErrorProneConfig) IsZero() bool {
	return len(e.Error) == 0 && len(e.Warn) == 0 && len(e.Off) == 0 && len(e.Checks) == 0 &&
		e.SuppressWarningsInGeneratedCode == nil && len(e.ExcludedPaths) == 0
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load attempts to load configuration from .errorprone-sl.yaml or
// errorprone-sl.toml in the current directory or any parent directory up to
// the filesystem root.
func Load() (*Config, error) {
	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	if path == "" {
		// No config file found, return default config
		return Default(), nil
	}

	return LoadFrom(path)
}

// LoadFrom loads configuration from the specified path. Files ending in
// .toml are decoded as TOML, everything else as YAML.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, humane.Wrap(err,
			fmt.Sprintf("cannot read configuration %s", path),
			"Check that the file exists and is readable.",
		)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = decodeTOML(data, &cfg)
	} else {
		err = decodeYAML(data, &cfg)
	}
	if err != nil {
		return nil, humane.Wrap(err,
			fmt.Sprintf("cannot parse configuration %s", path),
			"Fix the syntax error; unknown keys are rejected.",
		)
	}

	cfg.Path = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Project.Name) == "" {
		c.Project.Name = DefaultProjectName
	}
	if c.Project.Plugins == nil {
		c.Project.Plugins = append([]string(nil), DefaultPlugins...)
	}
}

// findConfigFile searches for the configuration starting from the current
// directory and walking up to parent directories. Within one directory the
// YAML file wins over the TOML file.
func findConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, name := range []string{ConfigFileName, TOMLConfigFileName} {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// Validate rejects blank check names, blank excluded paths, unknown plugins,
// unknown toolchains and unnamed or repeated tasks. Check names are otherwise
// passed through untouched; Error Prone is the authority on which exist.
func (c *Config) Validate() error {
	var problems []string

	lists := []struct {
		key   string
		names []string
	}{
		{"errorprone.error", c.ErrorProne.Error},
		{"errorprone.warn", c.ErrorProne.Warn},
		{"errorprone.off", c.ErrorProne.Off},
		{"errorprone.excludedPaths", c.ErrorProne.ExcludedPaths},
	}
	for _, l := range lists {
		for i, name := range l.names {
			if strings.TrimSpace(name) == "" {
				problems = append(problems, fmt.Sprintf("%s[%d] is empty", l.key, i))
			}
		}
	}

	for _, name := range sortedCheckNames(c.ErrorProne.Checks) {
		if strings.TrimSpace(name) == "" {
			problems = append(problems, "errorprone.checks has an empty check name")
		}
		if _, err := severity.ParseLevel(c.ErrorProne.Checks[name]); err != nil {
			problems = append(problems, fmt.Sprintf("errorprone.checks.%s: unknown level %q", name, c.ErrorProne.Checks[name]))
		}
	}

	for _, id := range c.Project.Plugins {
		if _, ok := knownPlugins[id]; !ok {
			problems = append(problems, fmt.Sprintf("unknown plugin %q", id))
		}
	}

	seen := make(map[string]bool)
	for i, task := range c.Project.Tasks {
		switch {
		case strings.TrimSpace(task.Name) == "":
			problems = append(problems, fmt.Sprintf("project.tasks[%d] has no name", i))
		case seen[task.Name]:
			problems = append(problems, fmt.Sprintf("task %q is listed twice", task.Name))
		}
		seen[task.Name] = true

		switch buildhost.ToolChain(task.ToolChain) {
		case "", buildhost.ToolChainJavac, buildhost.ToolChainErrorProne:
		default:
			problems = append(problems, fmt.Sprintf("task %q has unknown toolchain %q", task.Name, task.ToolChain))
		}
	}

	if len(problems) == 0 {
		return nil
	}

	where := c.Path
	if where == "" {
		where = "configuration"
	}
	return humane.Wrap(ErrInvalidConfig,
		fmt.Sprintf("%s: %s", where, strings.Join(problems, "; ")),
		"Check names and excluded paths must be non-empty.",
		fmt.Sprintf("Known plugins: %s.", strings.Join(knownPluginIDs(), ", ")),
		`Toolchains are "javac" or "errorprone".`,
	)
}

// Evaluate builds the described project, applies its plugins and evaluates
// it with the script from Script.
func (c *Config) Evaluate(ctx context.Context) (*buildhost.Project, error) {
	project := buildhost.NewProject(c.Project.Name)
	for _, id := range c.Project.Plugins {
		plugin, ok := knownPlugins[id]
		if !ok {
			return nil, humane.Wrap(ErrInvalidConfig,
				fmt.Sprintf("unknown plugin %q", id),
				fmt.Sprintf("Known plugins: %s.", strings.Join(knownPluginIDs(), ", ")),
			)
		}
		if err := project.Plugins.Apply(ctx, plugin); err != nil {
			return nil, err
		}
	}

	if err := project.Evaluate(ctx, c.Script()); err != nil {
		return nil, err
	}
	return project, nil
}

// Script returns the build script described by the file: it registers or
// adjusts the listed tasks and applies the errorprone block to the extension.
func (c *Config) Script() buildhost.Script {
	return func(_ context.Context, project *buildhost.Project) error {
		for _, tc := range c.Project.Tasks {
			task, ok := project.Tasks.Named(tc.Name)
			if ok {
				task.AddCompilerArgs(tc.Args...)
			} else {
				task = buildhost.NewJavaCompile(tc.Name, tc.Args...)
				if err := project.Tasks.Register(task); err != nil {
					return err
				}
			}
			if tc.ToolChain != "" {
				task.ToolChain = buildhost.ToolChain(tc.ToolChain)
			}
		}

		if c.ErrorProne.IsZero() {
			return nil
		}

		ext, err := errorpronesl.Extension(project)
		if err != nil {
			return humane.Wrap(err,
				fmt.Sprintf("project %q has an errorprone block but no errorprone extension", project.Name),
				fmt.Sprintf("Add %q and %q to project.plugins.", buildhost.JavaPluginID, errorpronesl.PluginID),
			)
		}
		for _, name := range c.ErrorProne.Error {
			ext.Error(name)
		}
		for _, name := range c.ErrorProne.Warn {
			ext.Warn(name)
		}
		for _, name := range c.ErrorProne.Off {
			ext.Off(name)
		}
		for _, name := range sortedCheckNames(c.ErrorProne.Checks) {
			level, err := severity.ParseLevel(c.ErrorProne.Checks[name])
			if err != nil {
				return err
			}
			ext.Mark(level, name)
		}
		if c.ErrorProne.SuppressWarningsInGeneratedCode != nil {
			ext.SetSuppressWarningsInGeneratedCode(*c.ErrorProne.SuppressWarningsInGeneratedCode)
		}
		for _, pattern := range c.ErrorProne.ExcludedPaths {
			ext.AddExcludedPath(pattern)
		}
		return nil
	}
}

func sortedCheckNames(checks map[string]string) []string {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
