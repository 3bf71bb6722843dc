// Package storage contains the filesystem-backed implementation of
// interfaces.FileStore used by the generator and the CLI binaries.
package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OSStore writes artifacts beneath a root directory on the local filesystem.
// An empty root means paths resolve against the process working directory,
// matching how the generator derives `day-N/practice/...` destinations.
type OSStore struct {
	root string
}

// NewOSStore constructs a store rooted at dir.
func NewOSStore(dir string) *OSStore {
	return &OSStore{root: strings.TrimSpace(dir)}
}

func (s *OSStore) resolve(path string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(strings.TrimSpace(path)))
	if cleaned == "" || cleaned == "." {
		return "", errors.New("storage: path is required")
	}
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", errors.New("storage: path must stay within the store root")
	}
	if s.root == "" {
		return cleaned, nil
	}
	return filepath.Join(s.root, cleaned), nil
}

// EnsureDir creates the directory and any missing parents. Existing
// directories are left untouched so repeated calls stay idempotent.
func (s *OSStore) EnsureDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := s.resolve(path)
	if err != nil {
		return err
	}
	return os.MkdirAll(target, 0o755)
}

// WriteFile replaces the file at path with the full content of the reader.
// The handle is closed on every exit path, including write failures.
func (s *OSStore) WriteFile(ctx context.Context, path string, content io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if content == nil {
		return errors.New("storage: write requires content reader")
	}
	target, err := s.resolve(path)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(file, content); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// ReadFile returns the full contents of the file at path.
func (s *OSStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(target)
}

// Remove deletes the file at path. Missing files are not an error so Clean
// stays idempotent.
func (s *OSStore) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
