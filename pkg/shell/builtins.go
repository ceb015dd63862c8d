package shell

import (
	"context"
	"errors"
	"path/filepath"
)

var ErrPathNotFound = errors.New("path does not exist")

// Builtin runs inside the session. Returning false hands the line over to the
// executor as an ordinary command.
type Builtin func(ctx context.Context, s *Session, args []string) (Result, bool)

func (s *Session) registerBuiltins() {

	s.builtins["cd"] = func(ctx context.Context, s *Session, args []string) (Result, bool) {

		// a bare cd is spawned like any other command
		if len(args) == 0 {
			return Result{}, false
		}

		if err := s.changeDir(ctx, args[0]); err != nil {
			s.logger.Debug("cd failed", "session", s.id, "target", args[0], "err", err)
			return ErrorResult(msgPathNotFound), true
		}

		return Empty(), true
	}
}

// changeDir moves the session to target, resolved against the current
// directory unless absolute. ".." is walked by the filesystem after symlinks,
// so the path is never cleaned as text. The directory is left unchanged on any
// failure.
func (s *Session) changeDir(ctx context.Context, target string) error {

	path := target
	if !filepath.IsAbs(path) {
		path = s.dir + string(filepath.Separator) + path
	}

	canonical, err := s.fs.Canonical(path)
	if err != nil {
		s.logger.Debug("canonicalize directory", "session", s.id, "path", path, "err", err)
		return ErrPathNotFound
	}

	if !s.fs.Exists(ctx, canonical) || !s.fs.IsDir(ctx, canonical) {
		return ErrPathNotFound
	}

	s.dir = canonical
	return nil

}
