package ui

import "github.com/vango-dev/vango-ui/pkg/vdom"

// NodeOption is any vdom element option: attributes, children or text.
type NodeOption = any

// BaseConfig is embedded in every component config
type BaseConfig struct {
	Classes []string
	Options []NodeOption // Merged list of Attributes and Children
}

// ConfigProvider interface allows generic options to work on any config
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option is a generic option function that modifies a ConfigProvider
type Option[T ConfigProvider] func(T)

// Class adds utility classes (merged via CN later)
func Class[T ConfigProvider](c string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, c)
	}
}

// ClassIf adds utility classes only when cond holds.
func ClassIf[T ConfigProvider](cond bool, c string) Option[T] {
	return func(cfg T) {
		if cond {
			base := cfg.GetBase()
			base.Classes = append(base.Classes, c)
		}
	}
}

// Attr allows passing raw vdom attributes (escape hatch)
func Attr[T ConfigProvider](attr NodeOption) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Options = append(base.Options, attr)
	}
}

// Child allows passing children (strongly typed)
func Child[T ConfigProvider](nodes ...*vdom.VNode) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		for _, n := range nodes {
			base.Options = append(base.Options, n)
		}
	}
}

// element renders tag with the merged class first, followed by extra
// attributes and the user supplied options.
func element(tag, class string, base *BaseConfig, extra ...any) *vdom.VNode {
	renderOpts := make([]any, 0, len(base.Options)+len(extra)+1)
	renderOpts = append(renderOpts, vdom.Class(class))
	renderOpts = append(renderOpts, extra...)
	renderOpts = append(renderOpts, base.Options...)
	return vdom.El(tag, renderOpts...)
}
