package response

import "github.com/NeuralTrust/InstallGate/pkg/domain/plugin"

// PluginToggleResponse is the body of the enable/disable endpoint. Log is
// null when the plugin was not found.
type PluginToggleResponse struct {
	Success bool    `json:"success"`
	Log     *string `json:"log"`
}

type ListPluginsResponse struct {
	Plugins []plugin.Plugin `json:"plugins"`
}
