package buildhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskContainerAllCoversExistingAndLateTasks(t *testing.T) {
	c := NewTaskContainer()
	require.NoError(t, c.Register(NewJavaCompile("early")))

	seen := map[string]int{}
	c.All(func(task *JavaCompile) { seen[task.Name]++ })

	require.NoError(t, c.Register(NewJavaCompile("late")))

	assert.Equal(t, map[string]int{"early": 1, "late": 1}, seen)
}

func TestTaskContainerEachAndWhenAdded(t *testing.T) {
	c := NewTaskContainer()
	require.NoError(t, c.Register(NewJavaCompile("a")))

	var each, added []string
	c.Each(func(task *JavaCompile) { each = append(each, task.Name) })
	c.WhenAdded(func(task *JavaCompile) { added = append(added, task.Name) })

	require.NoError(t, c.Register(NewJavaCompile("b")))

	assert.Equal(t, []string{"a"}, each)
	assert.Equal(t, []string{"b"}, added)
}

func TestTaskContainerWhenAddedRunsInSubscriptionOrder(t *testing.T) {
	c := NewTaskContainer()

	var order []string
	c.WhenAdded(func(task *JavaCompile) { order = append(order, "first:"+task.Name) })
	c.WhenAdded(func(task *JavaCompile) { order = append(order, "second:"+task.Name) })

	require.NoError(t, c.Register(NewJavaCompile("x")))

	assert.Equal(t, []string{"first:x", "second:x"}, order)
}

func TestTaskContainerRejectsDuplicateNames(t *testing.T) {
	c := NewTaskContainer()
	require.NoError(t, c.Register(NewJavaCompile("compileJava")))

	err := c.Register(NewJavaCompile("compileJava"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compileJava")
	assert.Len(t, c.Tasks(), 1)
}

func TestJavaCompileAddCompilerArgsAppends(t *testing.T) {
	task := NewJavaCompile("compileJava", "-Xlint:all")
	task.AddCompilerArgs("-Xep:Foo:ERROR", "-Xep:Bar:WARN")

	assert.Equal(t, ToolChainJavac, task.ToolChain)
	assert.Equal(t, []string{"-Xlint:all", "-Xep:Foo:ERROR", "-Xep:Bar:WARN"}, task.CompilerArgs)
}

func TestTaskContainerNamed(t *testing.T) {
	c := NewTaskContainer()
	require.NoError(t, c.Register(NewJavaCompile("compileJava")))

	got, ok := c.Named("compileJava")
	require.True(t, ok)
	assert.Equal(t, "compileJava", got.Name)

	_, ok = c.Named("missing")
	assert.False(t, ok)
}
