// Package site bootstraps the application into its page shell, both for
// serving and for static builds.
package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vango-ui/app"
	"github.com/vango-dev/vango-ui/internal/assets"
	"github.com/vango-dev/vango-ui/internal/metrics"
	"github.com/vango-dev/vango-ui/pkg/mount"
)

// IndexFile is the name of the bootstrapped page in a build.
const IndexFile = "index.html"

// Options configures a Builder.
type Options struct {
	Title          string
	MountID        string
	Board          *app.Board
	Metrics        *metrics.Metrics
	TracerProvider trace.TracerProvider
	Logger         *slog.Logger
}

// Builder produces bootstrapped pages.
type Builder struct {
	opts Options
}

// New returns a Builder. A nil Board selects the demo board.
func New(opts Options) *Builder {
	if opts.MountID == "" {
		opts.MountID = "app"
	}
	if opts.Board == nil {
		board := app.DefaultBoard()
		opts.Board = &board
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Builder{opts: opts}
}

// Page writes the shell with the root component mounted into it.
func (b *Builder) Page(ctx context.Context, w io.Writer) error {
	start := time.Now()
	doc, inst, err := b.bootstrap(ctx)
	if b.opts.Metrics != nil {
		b.opts.Metrics.RecordMount(err, time.Since(start))
	}
	if err != nil {
		return err
	}

	b.opts.Logger.DebugContext(ctx, "app mounted", "instance", inst.ID, "target", b.opts.MountID)
	if err := doc.Render(w); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

func (b *Builder) bootstrap(ctx context.Context) (*mount.Document, *mount.Instance, error) {
	var shell bytes.Buffer
	props := app.ShellProps{Title: b.opts.Title, MountID: b.opts.MountID}
	if err := app.Shell(props).Render(ctx, &shell); err != nil {
		return nil, nil, fmt.Errorf("render shell: %w", err)
	}

	doc, err := mount.ParseDocument(&shell)
	if err != nil {
		return nil, nil, err
	}

	opts := make([]mount.Option, 0, len(assets.Stylesheets)+1)
	for _, href := range assets.URLs() {
		opts = append(opts, mount.WithStylesheet(href))
	}
	if b.opts.TracerProvider != nil {
		opts = append(opts, mount.WithTracerProvider(b.opts.TracerProvider))
	}

	inst, err := mount.CreateApp(app.Root(*b.opts.Board), opts...).Mount(ctx, doc, "#"+b.opts.MountID)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap: %w", err)
	}
	return doc, inst, nil
}

// File is one output of a static build. Path is slash separated and
// relative to the build root.
type File struct {
	Path string
	Data []byte
}

// Files returns the bootstrapped page followed by the stylesheets it links.
func (b *Builder) Files(ctx context.Context) ([]File, error) {
	var page bytes.Buffer
	if err := b.Page(ctx, &page); err != nil {
		return nil, err
	}

	files := []File{{Path: IndexFile, Data: page.Bytes()}}
	for _, name := range assets.Stylesheets {
		data, err := assets.ReadFile(name)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: path.Join("assets", name), Data: data})
	}
	return files, nil
}
