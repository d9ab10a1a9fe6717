package cn

import (
	"fmt"
	"io"
	"sync"

	cssmerge "github.com/tylantz/go-tailwind-merge"
)

type stylesheetSource struct {
	r io.Reader
}

// WithStylesheet adds project CSS rules to the merger. After the Tailwind
// pass, classes defined in these stylesheets that set the same properties are
// resolved so that the one appearing later in the class list wins. The reader
// is consumed when the Merger is created.
func WithStylesheet(r io.Reader) Option {
	return func(c *mergerConfig) {
		if r != nil {
			c.sheets = append(c.sheets, stylesheetSource{r: r})
		}
	}
}

// stylesheetResolver serialises access to the rule based merger, which keeps
// its own internal state.
type stylesheetResolver struct {
	mu sync.Mutex
	fn func(string) string
}

func newStylesheetResolver(sources []stylesheetSource) (*stylesheetResolver, error) {
	rm := cssmerge.NewMerger(nil, true)
	for i, src := range sources {
		if err := rm.AddRules(src.r, false); err != nil {
			return nil, fmt.Errorf("cn: stylesheet %d: %w", i, err)
		}
	}
	return &stylesheetResolver{
		fn: func(classes string) string { return rm.Merge(classes) },
	}, nil
}

func (s *stylesheetResolver) merge(classes string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn(classes)
}
