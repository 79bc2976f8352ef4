package event

type PluginToggledEvent struct {
	Origin  string `json:"origin"`
	Code    string `json:"code"`
	Enabled bool   `json:"enabled"`
}

func (e PluginToggledEvent) Type() string {
	return PluginToggledEventType
}
