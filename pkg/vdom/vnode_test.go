package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElOptions(t *testing.T) {
	var missing *VNode
	n := Div(
		Class("a"),
		nil,
		ID("root"),
		Class("b"),
		"hello",
		missing,
		[]*VNode{Span(), nil},
		42, // ignored
	)

	assert.Equal(t, KindElement, n.Kind)
	assert.Equal(t, "div", n.Tag)
	assert.Equal(t, "a b", n.ClassName())
	assert.Equal(t, "root", n.Props["id"])
	require.Len(t, n.Children, 2)
	assert.Equal(t, KindText, n.Children[0].Kind)
	assert.Equal(t, "hello", n.Children[0].Text)
	assert.Equal(t, "span", n.Children[1].Tag)
}

func TestEmptyClassKeepsExisting(t *testing.T) {
	n := Div(Class("x"), Class(""))
	assert.Equal(t, "x", n.ClassName())
	assert.True(t, n.HasClass("x"))
	assert.False(t, n.HasClass("y"))
}

func TestHook(t *testing.T) {
	n := Div(Sortable(SortableConfig{Group: "kanban", Animation: 150}))
	assert.Equal(t, "Sortable", n.Props[HookKey])
	assert.JSONEq(t, `{"group":"kanban","animation":150}`, n.Props[HookConfigKey].(string))

	bare := Div(Hook("Focus", nil))
	_, ok := bare.Props[HookConfigKey]
	assert.False(t, ok)
}

func TestWalk(t *testing.T) {
	tree := Div(Div(Span("a")), P("b"))

	var tags []string
	tree.Walk(func(n *VNode) bool {
		if n.Kind == KindElement {
			tags = append(tags, n.Tag)
		}
		return n.Tag != "p"
	})
	assert.Equal(t, []string{"div", "div", "span", "p"}, tags)
}

func TestFuncComponent(t *testing.T) {
	c := FuncComponent(func() *VNode { return Main("x") })
	assert.Equal(t, "main", c.Render().Tag)
}
