package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vango-ui/pkg/vdom"
)

func TestRoot(t *testing.T) {
	tree := Root(DefaultBoard()).Render()
	require.Equal(t, "main", tree.Tag)

	var columns, cards []string
	var titles []string
	tree.Walk(func(n *vdom.VNode) bool {
		if id, ok := n.Props["data-column-id"].(string); ok {
			columns = append(columns, id)
		}
		if id, ok := n.Props["data-id"].(string); ok {
			cards = append(cards, id)
		}
		if n.Kind == vdom.KindText {
			titles = append(titles, n.Text)
		}
		return true
	})

	assert.Equal(t, []string{"todo", "in-progress", "done"}, columns)
	assert.Equal(t, []string{"card-1", "card-2", "card-3", "card-4"}, cards)
	assert.Contains(t, titles, "To Do")
	assert.Contains(t, titles, "Task 4")
}

func TestRootEmptyColumnDimmed(t *testing.T) {
	tree := Root(Board{Title: "x", Columns: []Column{{ID: "empty", Title: "Empty"}}}).Render()

	var col *vdom.VNode
	tree.Walk(func(n *vdom.VNode) bool {
		if n.Props["data-column-id"] == "empty" {
			col = n
		}
		return col == nil
	})
	require.NotNil(t, col)
	assert.True(t, col.HasClass("opacity-70"))
}

func TestShell(t *testing.T) {
	var buf bytes.Buffer
	err := Shell(ShellProps{Title: `Tasks & "More"`}).Render(context.Background(), &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, `<div id="app"></div>`)
	assert.Contains(t, out, `<title>Tasks &amp; &#34;More&#34;</title>`)
	assert.Contains(t, out, `lang="en"`)
}

func TestShellProps(t *testing.T) {
	var buf bytes.Buffer
	err := Shell(ShellProps{Title: "Board", Lang: "de", MountID: `root"x`}).Render(context.Background(), &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `<html lang="de">`)
	assert.Contains(t, out, `<div id="root&#34;x"></div>`)
}
