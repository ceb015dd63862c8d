package shell

import "log/slog"

type Option func(s *Session)

// WithExecutor replaces the process spawner.
func WithExecutor(executor Executor) Option {
	return func(s *Session) { s.executor = executor }
}

func WithParser(parser Parser) Option {
	return func(s *Session) { s.parser = parser }
}

func WithFileSystem(fs FileSystem) Option {
	return func(s *Session) { s.fs = fs }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithDir starts the session somewhere other than the process working directory.
func WithDir(dir string) Option {
	return func(s *Session) { s.dir = dir }
}

// WithStderr surfaces captured standard error on the error channel.
func WithStderr(enabled bool) Option {
	return func(s *Session) { s.showStderr = enabled }
}
