package config

import (
	"sort"

	errorpronesl "github.com/spechtlabs/errorprone-sl"
	"github.com/spechtlabs/errorprone-sl/buildhost"
)

// knownPlugins are the plugins a build description may list, by id.
var knownPlugins = map[string]buildhost.Plugin{
	buildhost.JavaPluginID:         buildhost.JavaPlugin{},
	errorpronesl.BasePluginID:      errorpronesl.BasePlugin{},
	errorpronesl.ToolChainPluginID: errorpronesl.ToolChainPlugin{},
	errorpronesl.PluginID:          errorpronesl.Plugin{},
}

func knownPluginIDs() []string {
	ids := make([]string, 0, len(knownPlugins))
	for id := range knownPlugins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
