// Package render turns virtual trees into HTML.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/vango-ui/pkg/vdom"
)

const tracerName = "github.com/vango-dev/vango-ui/pkg/render"

// RendererConfig configures a Renderer.
type RendererConfig struct {
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Renderer converts VNodes to HTML. It holds no per-render state and may be
// shared.
type Renderer struct {
	tracer trace.Tracer
}

// NewRenderer creates a Renderer.
func NewRenderer(cfg RendererConfig) *Renderer {
	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Renderer{tracer: tp.Tracer(tracerName)}
}

// Nodes converts n into detached html nodes. Fragments expand to their
// children; a nil node yields nothing.
func (r *Renderer) Nodes(ctx context.Context, n *vdom.VNode) ([]*html.Node, error) {
	_, span := r.tracer.Start(ctx, "render.Nodes")
	defer span.End()

	nodes, count, err := convert(n)
	span.SetAttributes(attribute.Int("vdom.nodes", count))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return nodes, nil
}

// Render writes n as HTML to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer, n *vdom.VNode) error {
	nodes, err := r.Nodes(ctx, n)
	if err != nil {
		return err
	}
	for _, node := range nodes {
		if err := html.Render(w, node); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	}
	return nil
}

// RenderToString renders n and returns the HTML.
func (r *Renderer) RenderToString(ctx context.Context, n *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(ctx, &buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func convert(n *vdom.VNode) ([]*html.Node, int, error) {
	if n == nil {
		return nil, 0, nil
	}
	switch n.Kind {
	case vdom.KindText:
		return []*html.Node{{Type: html.TextNode, Data: n.Text}}, 1, nil
	case vdom.KindFragment:
		var out []*html.Node
		total := 0
		for _, c := range n.Children {
			nodes, count, err := convert(c)
			if err != nil {
				return nil, 0, err
			}
			out = append(out, nodes...)
			total += count
		}
		return out, total, nil
	case vdom.KindElement:
		if n.Tag == "" {
			return nil, 0, ErrEmptyTag
		}
		el := &html.Node{
			Type:     html.ElementNode,
			Data:     n.Tag,
			DataAtom: atom.Lookup([]byte(n.Tag)),
			Attr:     attributes(n.Props),
		}
		total := 1
		for _, c := range n.Children {
			nodes, count, err := convert(c)
			if err != nil {
				return nil, 0, err
			}
			for _, child := range nodes {
				el.AppendChild(child)
			}
			total += count
		}
		return []*html.Node{el}, total, nil
	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownKind, n.Kind)
	}
}

// attributes converts props into html attributes sorted by key. Boolean
// props are rendered as present or omitted; nil values are omitted.
func attributes(props map[string]any) []html.Attribute {
	if len(props) == 0 {
		return nil
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		val, ok := attrValue(props[k])
		if !ok {
			continue
		}
		attrs = append(attrs, html.Attribute{Key: k, Val: val})
	}
	return attrs
}

func attrValue(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case bool:
		return "", x
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return fmt.Sprint(x), true
	}
}
