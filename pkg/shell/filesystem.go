package shell

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/viant/afs"
)

// LocalFileSystem answers directory queries for the local disk through afs.
type LocalFileSystem struct {
	fs afs.Service
}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{fs: afs.New()}
}

func (l *LocalFileSystem) Exists(ctx context.Context, path string) bool {
	exists, err := l.fs.Exists(ctx, path)
	return err == nil && exists
}

func (l *LocalFileSystem) IsDir(ctx context.Context, path string) bool {
	object, err := l.fs.Object(ctx, path)
	if err != nil {
		return false
	}
	return object.IsDir()
}

// Canonical resolves symlinks on the raw path, walking ".." after each link
// the way the OS does, and returns a cleaned absolute path. Every component
// must exist.
func (l *LocalFileSystem) Canonical(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("absolute %s: %w", resolved, err)
	}

	return abs, nil
}
