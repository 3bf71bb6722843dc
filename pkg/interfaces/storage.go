package interfaces

import (
	"context"
	"io"
)

// FileStore abstracts the filesystem surface the generator writes through.
// Paths are slash-separated and relative to the store root. WriteFile
// replaces the target atomically from the caller's perspective: the handle is
// opened, the full content is written, and the handle is released on every
// exit path.
type FileStore interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, path string, content io.Reader) error
	ReadFile(ctx context.Context, path string) ([]byte, error)
	Remove(ctx context.Context, path string) error
}
