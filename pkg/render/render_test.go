package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/vango-dev/vango-ui/pkg/vdom"
)

func TestRenderToString(t *testing.T) {
	r := NewRenderer(RendererConfig{})
	node := vdom.Div(
		vdom.Class("flex gap-2"),
		vdom.ID("board"),
		vdom.Disabled(false),
		vdom.H3(vdom.Text("To <Do>")),
		vdom.Input(vdom.Type("text"), vdom.Disabled(true)),
	)

	out, err := r.RenderToString(context.Background(), node)
	require.NoError(t, err)
	assert.Equal(t, `<div class="flex gap-2" id="board"><h3>To &lt;Do&gt;</h3><input disabled="" type="text"/></div>`, out)
}

func TestRenderFragment(t *testing.T) {
	r := NewRenderer(RendererConfig{})
	out, err := r.RenderToString(context.Background(), vdom.Fragment(vdom.Span("a"), vdom.Span("b")))
	require.NoError(t, err)
	assert.Equal(t, "<span>a</span><span>b</span>", out)

	out, err = r.RenderToString(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderHookConfigEscaped(t *testing.T) {
	r := NewRenderer(RendererConfig{})
	out, err := r.RenderToString(context.Background(), vdom.Div(vdom.Sortable(vdom.SortableConfig{Group: "kanban"})))
	require.NoError(t, err)
	assert.Equal(t, `<div v-hook="Sortable" v-hook-config="{&#34;group&#34;:&#34;kanban&#34;}"></div>`, out)
}

func TestRenderErrors(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	_, err := r.Nodes(context.Background(), vdom.Div(&vdom.VNode{Kind: vdom.KindElement}))
	assert.ErrorIs(t, err, ErrEmptyTag)

	_, err = r.Nodes(context.Background(), &vdom.VNode{Kind: vdom.Kind(42)})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestNodesSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	r := NewRenderer(RendererConfig{TracerProvider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))})

	_, err := r.Nodes(context.Background(), vdom.Div(vdom.Span("a"), vdom.Span("b")))
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "render.Nodes", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("vdom.nodes", 5))
}
