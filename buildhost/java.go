package buildhost

import "context"

const (
	// JavaPluginID is the id of JavaPlugin.
	JavaPluginID = "java"

	// CompileJavaTaskName compiles main sources.
	CompileJavaTaskName = "compileJava"

	// CompileTestJavaTaskName compiles test sources.
	CompileTestJavaTaskName = "compileTestJava"
)

// JavaPlugin adds the main and test compile tasks on the javac toolchain.
type JavaPlugin struct{}

// ID implements Plugin.
func (JavaPlugin) ID() string { return JavaPluginID }

// Apply implements Plugin.
func (JavaPlugin) Apply(_ context.Context, project *Project) error {
	for _, name := range []string{CompileJavaTaskName, CompileTestJavaTaskName} {
		if err := project.Tasks.Register(NewJavaCompile(name)); err != nil {
			return err
		}
	}
	return nil
}
