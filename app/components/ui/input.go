package ui

import (
	"github.com/vango-dev/vango-ui/pkg/cn"
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

type InputConfig struct {
	BaseConfig
	Type        string
	Name        string
	Placeholder string
	Value       string
	Invalid     bool
}

func (c *InputConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type InputOption = Option[*InputConfig]

func InputType(t string) InputOption {
	return func(c *InputConfig) { c.Type = t }
}

func InputName(n string) InputOption {
	return func(c *InputConfig) { c.Name = n }
}

func InputPlaceholder(s string) InputOption {
	return func(c *InputConfig) { c.Placeholder = s }
}

func InputValue(s string) InputOption {
	return func(c *InputConfig) { c.Value = s }
}

// InputInvalid switches the border and ring to the destructive color.
func InputInvalid(b bool) InputOption {
	return func(c *InputConfig) { c.Invalid = b }
}

func Input(opts ...InputOption) *vdom.VNode {
	c := &InputConfig{
		Type: "text", // Default
	}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN(
		"flex h-10 w-full rounded-md border border-input bg-background px-3 py-2 text-base ring-offset-background file:border-0 file:bg-transparent file:text-sm file:font-medium file:text-foreground placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:cursor-not-allowed disabled:opacity-50 md:text-sm",
		cn.When(c.Invalid, "border-destructive focus-visible:ring-destructive"),
		c.Classes,
	)

	extra := make([]any, 0, 4)
	if c.Type != "" {
		extra = append(extra, vdom.Type(c.Type))
	}
	if c.Name != "" {
		extra = append(extra, vdom.Name(c.Name))
	}
	if c.Placeholder != "" {
		extra = append(extra, vdom.Placeholder(c.Placeholder))
	}
	if c.Value != "" {
		extra = append(extra, vdom.Value(c.Value))
	}
	if c.Invalid {
		extra = append(extra, vdom.Aria("invalid", "true"))
	}

	return element("input", finalClass, &c.BaseConfig, extra...)
}
