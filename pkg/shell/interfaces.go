package shell

import (
	"context"
)

type Executor interface {
	Execute(ctx context.Context, cmd Command) (Capture, error)
}

type Parser interface {
	Parse(line string) ([]string, error)
}

// FileSystem answers the directory questions the cd builtin needs.
type FileSystem interface {
	Exists(ctx context.Context, path string) bool
	IsDir(ctx context.Context, path string) bool
	Canonical(path string) (string, error)
}
