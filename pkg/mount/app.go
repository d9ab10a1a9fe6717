// Package mount bootstraps an application: it renders a single root
// component and attaches it to an existing node of a page, after linking the
// application's global stylesheets.
//
//	doc, _ := mount.ParseDocument(shell)
//	app := mount.CreateApp(root,
//		mount.WithStylesheet("/assets/index.css"),
//		mount.WithStylesheet("/assets/global.css"),
//	)
//	inst, err := app.Mount(ctx, doc, "#app")
package mount

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"

	"github.com/vango-dev/vango-ui/pkg/render"
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

var (
	ErrInvalidSelector     = errors.New("mount: invalid selector")
	ErrMountTargetNotFound = errors.New("mount: target not found")
	ErrTargetOccupied      = errors.New("mount: target already hosts an app")
	ErrAlreadyMounted      = errors.New("mount: app already mounted")
	ErrAppUnmounted        = errors.New("mount: app was unmounted")
	ErrNilRoot             = errors.New("mount: nil root component")
	ErrNilDocument         = errors.New("mount: nil document")
)

type state uint8

const (
	stateCreated state = iota
	stateMounted
	stateUnmounted
)

// App is an application created from a root component. It can be mounted
// exactly once.
type App struct {
	root        vdom.Component
	stylesheets []string
	renderer    *render.Renderer
	tp          trace.TracerProvider
	tracer      trace.Tracer
	newID       func() string

	mu       sync.Mutex
	state    state
	instance *Instance
}

// Instance is a mounted application.
type Instance struct {
	ID     string
	Target *html.Node
	Root   *vdom.VNode
}

// Option configures an App.
type Option func(*App)

// WithStylesheet links a global stylesheet into the document head on mount.
// Stylesheets are linked in registration order; duplicates are ignored.
func WithStylesheet(href string) Option {
	return func(a *App) {
		if href == "" {
			return
		}
		for _, have := range a.stylesheets {
			if have == href {
				return
			}
		}
		a.stylesheets = append(a.stylesheets, href)
	}
}

// WithRenderer sets the renderer used for the root component.
func WithRenderer(r *render.Renderer) Option {
	return func(a *App) {
		if r != nil {
			a.renderer = r
		}
	}
}

// WithTracerProvider sets the tracer provider for mount spans. Unless
// WithRenderer is also given, the root is rendered with the same provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(a *App) {
		if tp != nil {
			a.tp = tp
		}
	}
}

// WithIDGenerator replaces the instance id generator.
func WithIDGenerator(fn func() string) Option {
	return func(a *App) {
		if fn != nil {
			a.newID = fn
		}
	}
}

const tracerName = "github.com/vango-dev/vango-ui/pkg/mount"

// CreateApp creates an application around root.
func CreateApp(root vdom.Component, opts ...Option) *App {
	a := &App{
		root:  root,
		tp:    otel.GetTracerProvider(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.tracer = a.tp.Tracer(tracerName)
	if a.renderer == nil {
		a.renderer = render.NewRenderer(render.RendererConfig{TracerProvider: a.tp})
	}
	return a
}

// Stylesheets returns the registered stylesheets in link order.
func (a *App) Stylesheets() []string {
	return append([]string(nil), a.stylesheets...)
}

// Mount renders the root component into the element selected by selector
// ("#app" or "app"). The element's previous children are replaced. On any
// error the document is left untouched.
func (a *App) Mount(ctx context.Context, doc *Document, selector string) (*Instance, error) {
	ctx, span := a.tracer.Start(ctx, "mount.Mount", trace.WithAttributes(attribute.String("mount.selector", selector)))
	defer span.End()

	inst, err := a.mount(ctx, doc, selector)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("mount.instance", inst.ID))
	return inst, nil
}

func (a *App) mount(ctx context.Context, doc *Document, selector string) (*Instance, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.state {
	case stateMounted:
		return nil, ErrAlreadyMounted
	case stateUnmounted:
		return nil, ErrAppUnmounted
	}
	if a.root == nil {
		return nil, ErrNilRoot
	}
	if doc == nil {
		return nil, ErrNilDocument
	}

	id, err := parseSelector(selector)
	if err != nil {
		return nil, err
	}
	target := doc.ElementByID(id)
	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrMountTargetNotFound, selector)
	}
	if owned(target) {
		return nil, fmt.Errorf("%w: %s", ErrTargetOccupied, selector)
	}

	tree := a.root.Render()
	nodes, err := a.renderer.Nodes(ctx, tree)
	if err != nil {
		return nil, fmt.Errorf("mount: render root: %w", err)
	}

	for _, href := range a.stylesheets {
		doc.ensureStylesheet(href)
	}
	removeChildren(target)
	for _, n := range nodes {
		target.AppendChild(n)
	}

	inst := &Instance{ID: a.newID(), Target: target, Root: tree}
	setAttr(target, AppAttr, inst.ID)

	a.instance = inst
	a.state = stateMounted
	return inst, nil
}

// Unmount removes the rendered tree and the mount marker. An unmounted App
// cannot be mounted again. Unmounting an App that is not mounted is a no-op.
func (a *App) Unmount() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != stateMounted {
		return
	}
	removeChildren(a.instance.Target)
	removeAttr(a.instance.Target, AppAttr)
	a.instance = nil
	a.state = stateUnmounted
}

// Instance returns the mounted instance, or nil.
func (a *App) Instance() *Instance {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.instance
}

// owned reports whether n, one of its ancestors or one of its descendants
// hosts an app. Mounting there would replace or nest inside a live tree.
func owned(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if hasAttr(p, AppAttr) {
			return true
		}
	}
	return findFirst(n, func(c *html.Node) bool { return hasAttr(c, AppAttr) }) != nil
}

func parseSelector(selector string) (string, error) {
	id := strings.TrimPrefix(strings.TrimSpace(selector), "#")
	if id == "" || strings.ContainsAny(id, " \t\n.#[]>:") {
		return "", fmt.Errorf("%w: %q", ErrInvalidSelector, selector)
	}
	return id, nil
}
