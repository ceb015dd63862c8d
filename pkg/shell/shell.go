package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const promptSuffix = "/ $ "

// Session tracks the working directory and the line being typed, and turns a
// submitted line into a Result. It is not safe for concurrent use; one
// submission runs to completion before the next begins.
type Session struct {
	id         string
	dir        string
	pending    string
	showStderr bool
	builtins   map[string]Builtin
	executor   Executor
	parser     Parser
	fs         FileSystem
	logger     *slog.Logger
}

// New creates a session rooted at the process working directory.
func New(opts ...Option) (*Session, error) {

	s := &Session{
		id:       uuid.NewString(),
		builtins: make(map[string]Builtin),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.dir == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("query working directory: %w", err)
		}
		s.dir = dir
	}

	if s.executor == nil {
		s.executor = NewDefaultExecutor()
	}
	if s.parser == nil {
		s.parser = NewDefaultParser()
	}
	if s.fs == nil {
		s.fs = NewLocalFileSystem()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.registerBuiltins()
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Dir() string {
	return s.dir
}

// Prompt is derived from the working directory on every call.
func (s *Session) Prompt() string {
	return s.dir + promptSuffix
}

func (s *Session) Pending() string {
	return s.pending
}

// AppendPending adds typed text to the pending line. Line breaks are dropped;
// the pending line never holds one.
func (s *Session) AppendPending(text string) string {
	text = stripLineBreaks(text)
	s.pending += text
	return text
}

// PopPending removes the last character of the pending line.
func (s *Session) PopPending() (rune, bool) {
	if s.pending == "" {
		return 0, false
	}

	r, size := utf8.DecodeLastRuneInString(s.pending)
	s.pending = s.pending[:len(s.pending)-size]
	return r, true
}

func (s *Session) ClearPending() {
	s.pending = ""
}

// Submit interprets line and blocks until any spawned process exits.
func (s *Session) Submit(ctx context.Context, line string) Result {

	if strings.TrimSpace(line) == "" {
		return Empty()
	}

	fields, err := s.parser.Parse(line)

	if err != nil || len(fields) == 0 {
		s.logger.Warn("parse command line", "session", s.id, "err", err)
		return ErrorResult(line + msgCommandNotFound)
	}

	cmd := fields[0]
	args := []string{}
	if len(fields) > 1 {
		args = fields[1:]
	}

	if fn, ok := s.builtins[cmd]; ok {
		if res, handled := fn(ctx, s, args); handled {
			s.logger.Info("builtin", "session", s.id, "cmd", cmd, "result", res.Kind.String(), "dir", s.dir)
			return res
		}
	}

	return s.spawn(ctx, line, cmd, args)

}

func (s *Session) spawn(ctx context.Context, line, cmd string, args []string) Result {

	started := time.Now()

	capture, err := s.executor.Execute(ctx, Command{Name: cmd, Args: args, Dir: s.dir})

	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("spawn failed", "session", s.id, "cmd", cmd, "err", err)
		}
		return ErrorResult(line + msgCommandNotFound)
	}

	res := Output(strings.ToValidUTF8(string(capture.Stdout), string(utf8.RuneError)))
	res.ExitCode = capture.ExitCode

	if len(capture.Stderr) > 0 {
		stderr := strings.ToValidUTF8(string(capture.Stderr), string(utf8.RuneError))
		s.logger.Debug("stderr", "session", s.id, "cmd", cmd, "stderr", stderr)
		if s.showStderr {
			res.Stderr = stderr
		}
	}

	s.logger.Info("command finished",
		"session", s.id,
		"cmd", cmd,
		"exit", capture.ExitCode,
		"duration", time.Since(started),
	)

	return res

}

func stripLineBreaks(text string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}
	return strings.NewReplacer("\r", "", "\n", "").Replace(text)
}
