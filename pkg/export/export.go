package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charlescarrari/moon/pkg/host"
	"github.com/charlescarrari/moon/pkg/render"
)

// Store persists exported files.
type Store interface {
	// Put writes one file under the given name.
	Put(ctx context.Context, name, contentType string, body io.Reader) error
}

// Export renders the live subtree to HTML and writes it to the store as
// index.html.
func Export(ctx context.Context, store Store, node host.Node) error {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := store.Put(ctx, "index.html", "text/html; charset=utf-8", strings.NewReader(html)); err != nil {
		return fmt.Errorf("store index.html: %w", err)
	}

	slog.Default().With("component", "export").Info("exported", "bytes", len(html))
	return nil
}

// DirStore writes exported files into a local directory, creating it if
// needed.
type DirStore struct {
	dir string
}

// NewDirStore creates a store rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Put implements Store.
func (s *DirStore) Put(ctx context.Context, name, contentType string, body io.Reader) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
