package buildhost

import (
	"context"

	"go.uber.org/zap"

	"github.com/spechtlabs/errorprone-sl/internal/logging"
)

// Plugin extends a project.
type Plugin interface {
	// ID is the plugin id, e.g. "java".
	ID() string

	// Apply configures the project. It runs at most once per project.
	Apply(ctx context.Context, project *Project) error
}

// PluginAction runs in reaction to a plugin being applied.
type PluginAction func(ctx context.Context, plugin Plugin) error

// PluginManager applies plugins to a project and tracks which are applied.
type PluginManager struct {
	project *Project
	applied map[string]Plugin
	order   []string
	pending map[string][]PluginAction
}

func newPluginManager(project *Project) *PluginManager {
	return &PluginManager{
		project: project,
		applied: make(map[string]Plugin),
		pending: make(map[string][]PluginAction),
	}
}

// Apply applies plugin unless a plugin with the same id already is, then runs
// the actions waiting for it.
func (m *PluginManager) Apply(ctx context.Context, plugin Plugin) error {
	id := plugin.ID()
	if _, ok := m.applied[id]; ok {
		return nil
	}

	logging.FromContext(ctx).Debug("applying plugin",
		zap.String("project", m.project.Name),
		zap.String("plugin", id),
	)

	// Mark first so a plugin applying itself indirectly does not recurse.
	m.applied[id] = plugin
	m.order = append(m.order, id)
	if err := plugin.Apply(ctx, m.project); err != nil {
		return err
	}

	actions := m.pending[id]
	delete(m.pending, id)
	for _, action := range actions {
		if err := action(ctx, plugin); err != nil {
			return err
		}
	}
	return nil
}

// HasPlugin reports whether a plugin with the given id is applied.
func (m *PluginManager) HasPlugin(id string) bool {
	_, ok := m.applied[id]
	return ok
}

// Applied returns the applied plugin ids in application order.
func (m *PluginManager) Applied() []string {
	return append([]string(nil), m.order...)
}

// WithPlugin runs action once the plugin with the given id is applied:
// immediately if it already is, otherwise right after it gets applied.
func (m *PluginManager) WithPlugin(ctx context.Context, id string, action PluginAction) error {
	if plugin, ok := m.applied[id]; ok {
		return action(ctx, plugin)
	}
	m.pending[id] = append(m.pending[id], action)
	return nil
}
