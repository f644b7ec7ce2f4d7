// Package errorpronesl provides the errorprone-sl build plugin.
//
// Applied to a Java project, the plugin:
//
//  1. applies the Error Prone toolchain plugin,
//  2. registers a severity.Registry as the "errorprone" extension, seeded with
//     severity.DefaultErrorChecks,
//  3. pins com.google.errorprone:error_prone_core in the errorprone configuration,
//  4. after evaluation, freezes the registry and appends the derived flags to
//     every compile task on the Error Prone toolchain.
//
// Build scripts tune the checks through the extension:
//
//	func(ctx context.Context, p *buildhost.Project) error {
//	    ext, err := errorpronesl.Extension(p)
//	    if err != nil {
//	        return err
//	    }
//	    ext.Warn("MethodCanBeStatic")
//	    ext.Off("FieldCanBeFinal")
//	    ext.AddExcludedPath(".*/build/generated/.*")
//	    return nil
//	}
package errorpronesl

import (
	"context"

	"go.uber.org/zap"

	"github.com/spechtlabs/errorprone-sl/buildhost"
	"github.com/spechtlabs/errorprone-sl/configurator"
	"github.com/spechtlabs/errorprone-sl/internal/logging"
	"github.com/spechtlabs/errorprone-sl/internal/version"
	"github.com/spechtlabs/errorprone-sl/severity"
)

const (
	// PluginID is the id of Plugin.
	PluginID = "com.spechtlabs.errorprone"

	// ExtensionName is the name build scripts find the registry under.
	ExtensionName = "errorprone"
)

// Dependency is the pinned Error Prone compiler coordinate.
var Dependency = buildhost.Dependency{
	Group:   "com.google.errorprone",
	Name:    "error_prone_core",
	Version: version.ErrorProneVersion,
}

// Plugin wires Error Prone into Java projects. It does nothing until the
// java plugin is applied.
type Plugin struct{}

// ID implements buildhost.Plugin.
func (Plugin) ID() string { return PluginID }

// Apply implements buildhost.Plugin.
func (Plugin) Apply(ctx context.Context, project *buildhost.Project) error {
	return project.Plugins.WithPlugin(ctx, buildhost.JavaPluginID, func(ctx context.Context, _ buildhost.Plugin) error {
		return applyToJavaProject(ctx, project)
	})
}

func applyToJavaProject(ctx context.Context, project *buildhost.Project) error {
	if err := project.Plugins.Apply(ctx, ToolChainPlugin{}); err != nil {
		return err
	}

	registry := severity.NewRegistry()
	if err := project.Extensions.Add(ExtensionName, registry); err != nil {
		return err
	}
	registry.SeedDefaults()

	if err := configurator.DeclareDependency(ctx, project, Dependency); err != nil {
		return err
	}

	project.AfterEvaluate(func(ctx context.Context, project *buildhost.Project) error {
		ctx = logging.IntoContext(ctx, logging.FromContext(ctx).With(zap.String("project", project.Name)))
		configurator.Configure(ctx, project.Tasks, registry.Freeze())
		return nil
	})
	return nil
}

// Extension returns the severity registry of a project the plugin is applied to.
func Extension(project *buildhost.Project) (*severity.Registry, error) {
	return buildhost.ExtensionOf[*severity.Registry](project.Extensions, ExtensionName)
}
