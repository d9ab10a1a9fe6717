package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Write builds the site into dir, creating it if needed.
func (b *Builder) Write(ctx context.Context, dir string) ([]File, error) {
	files, err := b.Files(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		dst := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, f.Data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", dst, err)
		}
	}
	return files, nil
}
