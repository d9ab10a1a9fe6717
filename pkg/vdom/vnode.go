// Package vdom provides the virtual node tree that components build and the
// renderer turns into HTML.
//
// Element constructors take a variadic list of options. Each option is one of:
//
//	Attr, []Attr     attributes (class values are joined, others overwrite)
//	*VNode, []*VNode children (nil children are skipped)
//	string           a text child
//
// Anything else is ignored so that conditional options can be passed as nil.
package vdom

import "strings"

// Kind identifies the type of a VNode.
type Kind uint8

const (
	KindElement Kind = iota
	KindText
	KindFragment
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// VNode is a node of the virtual tree.
type VNode struct {
	Kind     Kind
	Tag      string
	Props    map[string]any
	Children []*VNode
	Text     string
}

// Attr is a single attribute option.
type Attr struct {
	Key   string
	Value any
}

// El builds an element node with the given tag.
func El(tag string, opts ...any) *VNode {
	n := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(map[string]any),
	}
	n.apply(opts)
	return n
}

// Text builds a text node.
func Text(s string) *VNode {
	return &VNode{Kind: KindText, Text: s}
}

// Fragment groups children without a wrapping element.
func Fragment(children ...*VNode) *VNode {
	n := &VNode{Kind: KindFragment}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func (n *VNode) apply(opts []any) {
	for _, opt := range opts {
		switch v := opt.(type) {
		case nil:
		case Attr:
			n.setAttr(v)
		case []Attr:
			for _, a := range v {
				n.setAttr(a)
			}
		case *VNode:
			if v != nil {
				n.Children = append(n.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					n.Children = append(n.Children, c)
				}
			}
		case string:
			n.Children = append(n.Children, Text(v))
		}
	}
}

func (n *VNode) setAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "class" {
		next, _ := a.Value.(string)
		if prev, ok := n.Props["class"].(string); ok && prev != "" && next != "" {
			n.Props["class"] = prev + " " + next
			return
		}
		if next == "" {
			if _, ok := n.Props["class"]; ok {
				return
			}
		}
	}
	n.Props[a.Key] = a.Value
}

// ClassName returns the class attribute of an element, or "".
func (n *VNode) ClassName() string {
	if n == nil || n.Props == nil {
		return ""
	}
	s, _ := n.Props["class"].(string)
	return s
}

// HasClass reports whether the element's class attribute contains class.
func (n *VNode) HasClass(class string) bool {
	for _, c := range strings.Fields(n.ClassName()) {
		if c == class {
			return true
		}
	}
	return false
}

// Walk visits n and all of its descendants depth first. Returning false from
// fn stops descending into that node's children.
func (n *VNode) Walk(fn func(*VNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
