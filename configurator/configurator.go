// Package configurator attaches Error Prone flags to compile tasks and
// declares the Error Prone compiler dependency.
//
// It only ever sees frozen severity.Settings, so it runs after a project's
// build scripts have finished shaping the registry.
package configurator

import (
	"context"
	"fmt"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"go.uber.org/zap"

	"github.com/spechtlabs/errorprone-sl/buildhost"
	"github.com/spechtlabs/errorprone-sl/flags"
	"github.com/spechtlabs/errorprone-sl/internal/logging"
	"github.com/spechtlabs/errorprone-sl/severity"
)

// ConfigurationName is the dependency configuration holding the Error Prone compiler.
const ConfigurationName = "errorprone"

// Configure appends the flags derived from settings to every compile task on
// the Error Prone toolchain, both those registered now and those registered
// later. Tasks on any other toolchain are left alone.
func Configure(ctx context.Context, tasks *buildhost.TaskContainer, settings severity.Settings) {
	log := logging.FromContext(ctx)

	for _, c := range settings.Conflicts() {
		levels := make([]string, 0, len(c.Levels))
		for _, l := range c.Levels {
			levels = append(levels, l.String())
		}
		log.Warn("check configured at more than one severity",
			zap.String("check", c.Name),
			zap.Strings("levels", levels),
		)
	}

	tasks.All(func(task *buildhost.JavaCompile) {
		if task.ToolChain != buildhost.ToolChainErrorProne {
			log.Debug("skipping task without error prone toolchain",
				zap.String("task", task.Name),
				zap.String("toolchain", string(task.ToolChain)),
			)
			return
		}

		// Recomputed for every task.
		options := flags.Build(settings)

		log.Info("using error prone options",
			zap.String("task", task.Name),
			zap.Strings("options", options),
		)
		task.AddCompilerArgs(options...)
	})
}

// DeclareDependency adds dep to the project's errorprone configuration.
// A missing configuration is reported as the lookup error, unchanged.
func DeclareDependency(ctx context.Context, project *buildhost.Project, dep buildhost.Dependency) error {
	cfg, err := project.Configurations.GetAt(ConfigurationName)
	if err != nil {
		return err
	}
	cfg.Add(dep)

	logging.FromContext(ctx).Debug("declared error prone dependency",
		zap.String("project", project.Name),
		zap.String("dependency", dep.String()),
	)
	return nil
}

// DeclareDependencyNotation parses notation and declares it with DeclareDependency.
func DeclareDependencyNotation(ctx context.Context, project *buildhost.Project, notation string) error {
	dep, err := buildhost.ParseDependency(notation)
	if err != nil {
		return humane.Wrap(err,
			fmt.Sprintf("cannot declare error prone dependency for project %q", project.Name),
			"Check the pinned Error Prone coordinate.",
		)
	}
	return DeclareDependency(ctx, project, dep)
}
