// Package assets embeds the global stylesheets and serves them.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"path"

	"github.com/vango-dev/vango-ui/pkg/cn"
)

// URLPrefix is the path the stylesheets are served under.
const URLPrefix = "/assets/"

//go:embed static/*.css
var static embed.FS

// Stylesheets in link order: the theme first, then project classes.
var Stylesheets = []string{"index.css", "global.css"}

// FS returns the embedded files rooted at the stylesheet directory.
func FS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// static is a compile time constant tree
		panic(err)
	}
	return sub
}

// URLs returns the href of every stylesheet in link order.
func URLs() []string {
	out := make([]string, 0, len(Stylesheets))
	for _, name := range Stylesheets {
		out = append(out, URLPrefix+name)
	}
	return out
}

// ReadFile returns the contents of a stylesheet.
func ReadFile(name string) ([]byte, error) {
	b, err := fs.ReadFile(FS(), path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", name, err)
	}
	return b, nil
}

// Handler serves the stylesheets. Mount it under URLPrefix.
func Handler() http.Handler {
	return http.StripPrefix(URLPrefix, http.FileServer(http.FS(FS())))
}

// Merger returns a class merger that also resolves the project classes
// defined in global.css.
func Merger() (*cn.Merger, error) {
	global, err := ReadFile("global.css")
	if err != nil {
		return nil, err
	}
	return cn.New(cn.WithStylesheet(bytes.NewReader(global)))
}
