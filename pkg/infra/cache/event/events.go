package event

import "reflect"

type Event interface {
	Type() string
}

var (
	InvalidateAllCacheEventType = "InvalidateAllCacheEvent"
	PluginToggledEventType      = "PluginToggledEvent"
)

var Registry = map[string]reflect.Type{
	InvalidateAllCacheEventType: reflect.TypeOf(InvalidateAllCacheEvent{}),
	PluginToggledEventType:      reflect.TypeOf(PluginToggledEvent{}),
}
