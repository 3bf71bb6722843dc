package generator

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/goliatone/go-questions/pkg/interfaces"
)

type writeCategory string

const (
	categoryDocument writeCategory = "document"
	categoryManifest writeCategory = "manifest"
)

// writeFileRequest describes a file write routed through the artifact writer.
type writeFileRequest struct {
	Path        string
	Content     io.Reader
	Size        int64
	Category    writeCategory
	ContentType string
	Checksum    string
}

// artifactWriter abstracts file store specifics for generator outputs.
type artifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req writeFileRequest) error
	ReadFile(ctx context.Context, path string) ([]byte, error)
	Remove(ctx context.Context, path string) error
}

func newArtifactWriter(store interfaces.FileStore) artifactWriter {
	if store == nil {
		return noopWriter{}
	}
	return &storeWriter{store: store}
}

type storeWriter struct {
	store interfaces.FileStore
}

func (w *storeWriter) EnsureDir(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" || path == "." {
		return nil
	}
	return w.store.EnsureDir(ctx, path)
}

func (w *storeWriter) WriteFile(ctx context.Context, req writeFileRequest) error {
	if req.Content == nil {
		return errors.New("generator: write requires content reader")
	}
	if strings.TrimSpace(req.Path) == "" {
		return errors.New("generator: write requires path")
	}
	return w.store.WriteFile(ctx, req.Path, req.Content)
}

func (w *storeWriter) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return w.store.ReadFile(ctx, path)
}

func (w *storeWriter) Remove(ctx context.Context, path string) error {
	return w.store.Remove(ctx, path)
}

type noopWriter struct{}

func (noopWriter) EnsureDir(context.Context, string) error { return nil }

func (noopWriter) WriteFile(context.Context, writeFileRequest) error { return nil }

func (noopWriter) ReadFile(context.Context, string) ([]byte, error) { return nil, nil }

func (noopWriter) Remove(context.Context, string) error { return nil }

func ensureDir(ctx context.Context, writer artifactWriter, cache map[string]struct{}, dir string) error {
	dir = strings.Trim(dir, " ")
	if dir == "" || dir == "." {
		return nil
	}
	if cache != nil {
		if _, ok := cache[dir]; ok {
			return nil
		}
		cache[dir] = struct{}{}
	}
	return writer.EnsureDir(ctx, dir)
}
