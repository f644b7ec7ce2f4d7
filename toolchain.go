package errorpronesl

import (
	"context"

	"github.com/spechtlabs/errorprone-sl/buildhost"
	"github.com/spechtlabs/errorprone-sl/configurator"
)

const (
	// BasePluginID is the id of BasePlugin.
	BasePluginID = "net.ltgt.errorprone-base"

	// ToolChainPluginID is the id of ToolChainPlugin.
	ToolChainPluginID = "net.ltgt.errorprone"
)

// BasePlugin creates the errorprone dependency configuration.
type BasePlugin struct{}

// ID implements buildhost.Plugin.
func (BasePlugin) ID() string { return BasePluginID }

// Apply implements buildhost.Plugin.
func (BasePlugin) Apply(_ context.Context, project *buildhost.Project) error {
	_, err := project.Configurations.Create(configurator.ConfigurationName)
	return err
}

// ToolChainPlugin applies BasePlugin and moves every compile task, present and
// future, onto the Error Prone toolchain. Build scripts may move single tasks
// back to javac afterwards.
type ToolChainPlugin struct{}

// ID implements buildhost.Plugin.
func (ToolChainPlugin) ID() string { return ToolChainPluginID }

// Apply implements buildhost.Plugin.
func (ToolChainPlugin) Apply(ctx context.Context, project *buildhost.Project) error {
	if err := project.Plugins.Apply(ctx, BasePlugin{}); err != nil {
		return err
	}
	project.Tasks.All(func(task *buildhost.JavaCompile) {
		task.ToolChain = buildhost.ToolChainErrorProne
	})
	return nil
}
