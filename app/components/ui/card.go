package ui

import "github.com/vango-dev/vango-ui/pkg/vdom"

// Card
type CardConfig struct{ BaseConfig }

func (c *CardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardOption = Option[*CardConfig]

func Card(opts ...CardOption) *vdom.VNode {
	c := &CardConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return element("div", CN("rounded-lg border bg-card text-card-foreground shadow-sm", c.Classes), &c.BaseConfig)
}

// CardHeader
type CardHeaderConfig struct{ BaseConfig }

func (c *CardHeaderConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardHeaderOption = Option[*CardHeaderConfig]

func CardHeader(opts ...CardHeaderOption) *vdom.VNode {
	c := &CardHeaderConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return element("div", CN("flex flex-col space-y-1.5 p-6", c.Classes), &c.BaseConfig)
}

// CardTitle
type CardTitleConfig struct{ BaseConfig }

func (c *CardTitleConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardTitleOption = Option[*CardTitleConfig]

func CardTitle(opts ...CardTitleOption) *vdom.VNode {
	c := &CardTitleConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return element("h3", CN("text-2xl font-semibold leading-none tracking-tight", c.Classes), &c.BaseConfig)
}

// CardDescription
type CardDescriptionConfig struct{ BaseConfig }

func (c *CardDescriptionConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardDescriptionOption = Option[*CardDescriptionConfig]

func CardDescription(opts ...CardDescriptionOption) *vdom.VNode {
	c := &CardDescriptionConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return element("p", CN("text-sm text-muted-foreground", c.Classes), &c.BaseConfig)
}

// CardContent
type CardContentConfig struct{ BaseConfig }

func (c *CardContentConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardContentOption = Option[*CardContentConfig]

func CardContent(opts ...CardContentOption) *vdom.VNode {
	c := &CardContentConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return element("div", CN("p-6 pt-0", c.Classes), &c.BaseConfig)
}

// CardFooter
type CardFooterConfig struct{ BaseConfig }

func (c *CardFooterConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardFooterOption = Option[*CardFooterConfig]

func CardFooter(opts ...CardFooterOption) *vdom.VNode {
	c := &CardFooterConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return element("div", CN("flex items-center p-6 pt-0", c.Classes), &c.BaseConfig)
}
