package cn

import (
	"strings"

	"github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of merge results a Merger remembers.
const DefaultCacheSize = 500

// Merger resolves conflicting utility classes. A Merger is safe for
// concurrent use.
type Merger struct {
	merge twmerge.TwMergeFn
	cache *lru.Cache[string, string]
	sheet *stylesheetResolver
}

// Option configures a Merger.
type Option func(*mergerConfig)

type mergerConfig struct {
	tailwind  *twmerge.TwMergeConfig
	cacheSize int
	sheets    []stylesheetSource
}

// WithConfig replaces the Tailwind class groups and separators, for a
// project with a customised Tailwind theme or a class prefix. Start from
// twmerge.MakeDefaultConfig.
func WithConfig(cfg *twmerge.TwMergeConfig) Option {
	return func(c *mergerConfig) { c.tailwind = cfg }
}

// WithCacheSize sets the result cache size. Zero or less disables caching.
func WithCacheSize(n int) Option {
	return func(c *mergerConfig) { c.cacheSize = n }
}

// New creates a Merger. It fails only when a stylesheet given with
// WithStylesheet cannot be read or parsed.
func New(opts ...Option) (*Merger, error) {
	cfg := mergerConfig{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Merger{merge: twmerge.CreateTwMerge(cfg.tailwind, nil)}
	if cfg.cacheSize > 0 {
		// lru.New only fails for a non-positive size.
		m.cache, _ = lru.New[string, string](cfg.cacheSize)
	}
	if len(cfg.sheets) > 0 {
		sheet, err := newStylesheetResolver(cfg.sheets)
		if err != nil {
			return nil, err
		}
		m.sheet = sheet
	}
	return m, nil
}

// Merge flattens inputs with Clsx and resolves conflicts between the
// resulting classes. Later classes win.
func (m *Merger) Merge(inputs ...ClassValue) string {
	return m.MergeClasses(Clsx(inputs...))
}

// MergeClasses resolves conflicts in an already flattened class list.
func (m *Merger) MergeClasses(classes string) string {
	if strings.TrimSpace(classes) == "" {
		return ""
	}
	if m.cache != nil {
		if out, ok := m.cache.Get(classes); ok {
			return out
		}
	}

	out := m.merge(classes)
	if m.sheet != nil {
		out = m.sheet.merge(out)
	}
	out = dedupe(out)

	if m.cache != nil {
		m.cache.Add(classes, out)
	}
	return out
}

// dedupe collapses repeated classes onto their last occurrence. Tailwind
// utilities are already unique per group at this point, so only plain
// class names are affected.
func dedupe(classes string) string {
	tokens := strings.Fields(classes)
	seen := make(map[string]struct{}, len(tokens))
	kept := make([]string, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		if _, dup := seen[tokens[i]]; dup {
			continue
		}
		seen[tokens[i]] = struct{}{}
		kept = append(kept, tokens[i])
	}
	for l, r := 0, len(kept)-1; l < r; l, r = l+1, r-1 {
		kept[l], kept[r] = kept[r], kept[l]
	}
	return strings.Join(kept, " ")
}
