package buildhost

import (
	"context"
	"fmt"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"go.uber.org/zap"

	"github.com/spechtlabs/errorprone-sl/internal/logging"
)

// Script configures a project. Build scripts and after-evaluate hooks share
// this shape.
type Script func(ctx context.Context, project *Project) error

// Project is a single build project.
type Project struct {
	Name string

	Plugins        *PluginManager
	Extensions     *ExtensionContainer
	Configurations *ConfigurationContainer
	Tasks          *TaskContainer

	afterEvaluate []Script
	evaluated     bool
}

// NewProject returns an empty project.
func NewProject(name string) *Project {
	p := &Project{
		Name:           name,
		Extensions:     NewExtensionContainer(),
		Configurations: NewConfigurationContainer(),
		Tasks:          NewTaskContainer(),
	}
	p.Plugins = newPluginManager(p)
	return p
}

// AfterEvaluate registers a hook that runs once all scripts passed to
// Evaluate have completed.
func (p *Project) AfterEvaluate(hook Script) {
	p.afterEvaluate = append(p.afterEvaluate, hook)
}

// Evaluated reports whether Evaluate has run.
func (p *Project) Evaluated() bool {
	return p.evaluated
}

// Evaluate runs scripts in order and then the after-evaluate hooks in
// registration order. The first error aborts evaluation.
func (p *Project) Evaluate(ctx context.Context, scripts ...Script) error {
	if p.evaluated {
		return humane.Wrap(ErrAlreadyEvaluated,
			fmt.Sprintf("cannot evaluate project %q", p.Name),
			"Create a new project for every evaluation.",
		)
	}
	p.evaluated = true

	log := logging.FromContext(ctx).With(zap.String("project", p.Name))

	for i, script := range scripts {
		if err := script(ctx, p); err != nil {
			log.Debug("build script failed", zap.Int("script", i), zap.Error(err))
			return err
		}
	}

	// Hooks registered by hooks run too.
	for i := 0; i < len(p.afterEvaluate); i++ {
		if err := p.afterEvaluate[i](ctx, p); err != nil {
			log.Debug("after-evaluate hook failed", zap.Int("hook", i), zap.Error(err))
			return err
		}
	}

	log.Debug("project evaluated",
		zap.Strings("plugins", p.Plugins.Applied()),
		zap.Int("tasks", len(p.Tasks.Tasks())),
	)
	return nil
}
