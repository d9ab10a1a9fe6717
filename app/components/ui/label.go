package ui

import "github.com/vango-dev/vango-ui/pkg/vdom"

type LabelConfig struct {
	BaseConfig
	For string
}

func (c *LabelConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type LabelOption = Option[*LabelConfig]

func LabelFor(id string) LabelOption {
	return func(c *LabelConfig) { c.For = id }
}

func Label(opts ...LabelOption) *vdom.VNode {
	c := &LabelConfig{}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN(
		"text-sm font-medium leading-none peer-disabled:cursor-not-allowed peer-disabled:opacity-70",
		c.Classes,
	)

	var forAttr any
	if c.For != "" {
		forAttr = vdom.For(c.For)
	}
	return element("label", finalClass, &c.BaseConfig, forAttr)
}
