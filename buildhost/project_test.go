package buildhost

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPlugin struct {
	id      string
	applied int
}

func (p *recordingPlugin) ID() string { return p.id }

func (p *recordingPlugin) Apply(context.Context, *Project) error {
	p.applied++
	return nil
}

func TestEvaluateRunsScriptsBeforeHooks(t *testing.T) {
	ctx := context.Background()
	p := NewProject("demo")

	var order []string
	p.AfterEvaluate(func(context.Context, *Project) error {
		order = append(order, "hook1")
		return nil
	})
	p.AfterEvaluate(func(_ context.Context, p *Project) error {
		order = append(order, "hook2")
		p.AfterEvaluate(func(context.Context, *Project) error {
			order = append(order, "nested")
			return nil
		})
		return nil
	})

	err := p.Evaluate(ctx,
		func(context.Context, *Project) error { order = append(order, "script1"); return nil },
		func(context.Context, *Project) error { order = append(order, "script2"); return nil },
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"script1", "script2", "hook1", "hook2", "nested"}, order)
	assert.True(t, p.Evaluated())
}

func TestEvaluateStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	p := NewProject("demo")

	hookRan := false
	p.AfterEvaluate(func(context.Context, *Project) error {
		hookRan = true
		return nil
	})

	err := p.Evaluate(context.Background(), func(context.Context, *Project) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.False(t, hookRan)
}

func TestEvaluateTwice(t *testing.T) {
	p := NewProject("demo")
	require.NoError(t, p.Evaluate(context.Background()))

	err := p.Evaluate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demo")
}

func TestPluginManagerAppliesOnce(t *testing.T) {
	ctx := context.Background()
	p := NewProject("demo")
	plugin := &recordingPlugin{id: "x"}

	require.NoError(t, p.Plugins.Apply(ctx, plugin))
	require.NoError(t, p.Plugins.Apply(ctx, plugin))

	assert.Equal(t, 1, plugin.applied)
	assert.True(t, p.Plugins.HasPlugin("x"))
	assert.Equal(t, []string{"x"}, p.Plugins.Applied())
}

func TestPluginManagerWithPlugin(t *testing.T) {
	ctx := context.Background()

	t.Run("already applied runs immediately", func(t *testing.T) {
		p := NewProject("demo")
		require.NoError(t, p.Plugins.Apply(ctx, JavaPlugin{}))

		ran := false
		require.NoError(t, p.Plugins.WithPlugin(ctx, JavaPluginID, func(context.Context, Plugin) error {
			ran = true
			return nil
		}))
		assert.True(t, ran)
	})

	t.Run("applied later runs on apply", func(t *testing.T) {
		p := NewProject("demo")

		ran := false
		require.NoError(t, p.Plugins.WithPlugin(ctx, JavaPluginID, func(context.Context, Plugin) error {
			ran = true
			return nil
		}))
		assert.False(t, ran)

		require.NoError(t, p.Plugins.Apply(ctx, JavaPlugin{}))
		assert.True(t, ran)
	})

	t.Run("never applied never runs", func(t *testing.T) {
		p := NewProject("demo")

		ran := false
		require.NoError(t, p.Plugins.WithPlugin(ctx, JavaPluginID, func(context.Context, Plugin) error {
			ran = true
			return nil
		}))
		require.NoError(t, p.Evaluate(ctx))
		assert.False(t, ran)
	})
}

func TestJavaPlugin(t *testing.T) {
	p := NewProject("demo")
	require.NoError(t, p.Plugins.Apply(context.Background(), JavaPlugin{}))

	tasks := p.Tasks.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, CompileJavaTaskName, tasks[0].Name)
	assert.Equal(t, CompileTestJavaTaskName, tasks[1].Name)
	for _, task := range tasks {
		assert.Equal(t, ToolChainJavac, task.ToolChain)
		assert.Empty(t, task.CompilerArgs)
	}
}

func TestExtensionOf(t *testing.T) {
	c := NewExtensionContainer()
	require.NoError(t, c.Add("counter", new(int)))
	require.Error(t, c.Add("counter", new(int)))

	got, err := ExtensionOf[*int](c, "counter")
	require.NoError(t, err)
	assert.NotNil(t, got)

	_, err = ExtensionOf[*string](c, "counter")
	require.Error(t, err)

	_, err = ExtensionOf[*int](c, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}
