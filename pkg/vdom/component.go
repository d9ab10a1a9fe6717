package vdom

// Component is anything that can produce a virtual tree.
type Component interface {
	Render() *VNode
}

// FuncComponent adapts a plain function to the Component interface.
type FuncComponent func() *VNode

func (f FuncComponent) Render() *VNode { return f() }
