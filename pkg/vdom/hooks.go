package vdom

import "encoding/json"

// HookKey is the attribute that names the client behaviour attached to a node.
const HookKey = "v-hook"

// HookConfigKey carries the hook configuration as JSON.
const HookConfigKey = "v-hook-config"

// Hook attaches a named client behaviour to an element. A config that cannot
// be encoded is dropped and only the name is kept.
func Hook(name string, config any) []Attr {
	attrs := []Attr{{Key: HookKey, Value: name}}
	if config == nil {
		return attrs
	}
	raw, err := json.Marshal(config)
	if err != nil {
		return attrs
	}
	return append(attrs, Attr{Key: HookConfigKey, Value: string(raw)})
}

// SortableConfig configures the Sortable hook used by drag and drop lists.
type SortableConfig struct {
	Group      string `json:"group,omitempty"`
	Animation  int    `json:"animation,omitempty"`
	GhostClass string `json:"ghostClass,omitempty"`
	Handle     string `json:"handle,omitempty"`
}

// Sortable returns the hook attributes for a sortable container.
func Sortable(cfg SortableConfig) []Attr {
	return Hook("Sortable", cfg)
}
