package buildhost

import "errors"

var (
	// ErrConfigurationNotFound is returned when a dependency configuration lookup misses.
	ErrConfigurationNotFound = errors.New("configuration not found")

	// ErrDuplicateConfiguration is returned when a configuration name is taken.
	ErrDuplicateConfiguration = errors.New("configuration already exists")

	// ErrDuplicateTask is returned when a task name is taken.
	ErrDuplicateTask = errors.New("task already exists")

	// ErrDuplicateExtension is returned when an extension name is taken.
	ErrDuplicateExtension = errors.New("extension already exists")

	// ErrExtensionNotFound is returned when an extension lookup misses.
	ErrExtensionNotFound = errors.New("extension not found")

	// ErrInvalidDependency is returned for malformed dependency notations.
	ErrInvalidDependency = errors.New("invalid dependency notation")

	// ErrAlreadyEvaluated is returned when a project is evaluated twice.
	ErrAlreadyEvaluated = errors.New("project already evaluated")
)
