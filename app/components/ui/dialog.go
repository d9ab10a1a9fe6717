package ui

import (
	"github.com/vango-dev/vango-ui/pkg/cn"
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

// Constants
const (
	HookNameDialog = "Dialog"
)

// 1. Component Config
type DialogConfig struct {
	BaseConfig
	Open          bool
	CloseOnEscape bool
}

// 2. Hook Config (Wire Protocol)
type dialogHookConfig struct {
	Open          bool `json:"open"`
	CloseOnEscape bool `json:"closeOnEscape"`
}

// Implement ConfigProvider interface
func (c *DialogConfig) GetBase() *BaseConfig { return &c.BaseConfig }

// Options
type DialogOption = Option[*DialogConfig]

func DialogOpen(open bool) DialogOption {
	return func(c *DialogConfig) { c.Open = open }
}

func DialogCloseOnEscape(b bool) DialogOption {
	return func(c *DialogConfig) { c.CloseOnEscape = b }
}

// 3. Implementation
func Dialog(opts ...DialogOption) *vdom.VNode {
	c := &DialogConfig{} // Defaults
	for _, opt := range opts {
		opt(c)
	}

	state := "closed"
	if c.Open {
		state = "open"
	}

	finalClass := CN(
		"fixed left-[50%] top-[50%] z-50 grid w-full max-w-lg translate-x-[-50%] translate-y-[-50%] gap-4 border bg-background p-6 shadow-lg duration-200 data-[state=open]:animate-in data-[state=closed]:animate-out data-[state=closed]:fade-out-0 data-[state=open]:fade-in-0 data-[state=closed]:zoom-out-95 data-[state=open]:zoom-in-95 sm:rounded-lg",
		c.Classes,
		// Closed dialogs stay in the tree for the client hook to open.
		cn.When(!c.Open, "hidden"),
	)

	return element("div", finalClass, &c.BaseConfig,
		vdom.Role("dialog"),
		vdom.Data("state", state),
		vdom.Hook(HookNameDialog, dialogHookConfig{Open: c.Open, CloseOnEscape: c.CloseOnEscape}),
	)
}
