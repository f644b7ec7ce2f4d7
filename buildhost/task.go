package buildhost

import (
	"fmt"
	"slices"

	humane "github.com/sierrasoftworks/humane-errors-go"
)

// ToolChain selects how a JavaCompile task invokes the compiler.
type ToolChain string

const (
	// ToolChainJavac is the plain JDK compiler.
	ToolChainJavac ToolChain = "javac"

	// ToolChainErrorProne runs javac with Error Prone on the annotation processor path.
	ToolChainErrorProne ToolChain = "errorprone"
)

// JavaCompile is a Java compilation task.
type JavaCompile struct {
	Name      string
	ToolChain ToolChain

	// CompilerArgs are passed to the compiler in order.
	CompilerArgs []string
}

// NewJavaCompile returns a task on the javac toolchain.
func NewJavaCompile(name string, args ...string) *JavaCompile {
	return &JavaCompile{
		Name:         name,
		ToolChain:    ToolChainJavac,
		CompilerArgs: slices.Clone(args),
	}
}

// AddCompilerArgs appends to the compiler arguments, keeping what is there.
func (t *JavaCompile) AddCompilerArgs(args ...string) {
	t.CompilerArgs = append(t.CompilerArgs, args...)
}

// TaskAction is run for a task.
type TaskAction func(*JavaCompile)

// TaskContainer holds a project's compile tasks in registration order.
type TaskContainer struct {
	tasks  []*JavaCompile
	byName map[string]*JavaCompile
	added  []TaskAction
}

// NewTaskContainer returns an empty container.
func NewTaskContainer() *TaskContainer {
	return &TaskContainer{byName: make(map[string]*JavaCompile)}
}

// Register adds a task and runs every WhenAdded action on it, in
// subscription order.
func (c *TaskContainer) Register(task *JavaCompile) error {
	if _, ok := c.byName[task.Name]; ok {
		return humane.Wrap(ErrDuplicateTask,
			fmt.Sprintf("cannot register task %q", task.Name),
			"Task names must be unique within a project; pick a different name.",
		)
	}
	c.tasks = append(c.tasks, task)
	c.byName[task.Name] = task

	// Actions may subscribe further actions; only those known now run.
	for _, action := range slices.Clone(c.added) {
		action(task)
	}
	return nil
}

// Named returns the task with the given name.
func (c *TaskContainer) Named(name string) (*JavaCompile, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// Tasks returns the registered tasks in registration order.
func (c *TaskContainer) Tasks() []*JavaCompile {
	return slices.Clone(c.tasks)
}

// Each runs action on every task registered so far.
func (c *TaskContainer) Each(action TaskAction) {
	for _, t := range slices.Clone(c.tasks) {
		action(t)
	}
}

// WhenAdded runs action on every task registered from now on.
func (c *TaskContainer) WhenAdded(action TaskAction) {
	c.added = append(c.added, action)
}

// All runs action on every existing task and on every task registered later.
// Each task sees the action exactly once.
func (c *TaskContainer) All(action TaskAction) {
	c.Each(action)
	c.WhenAdded(action)
}
