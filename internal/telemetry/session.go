package telemetry

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Neev4n/termshell/pkg/shell"
)

const instrumentationName = "github.com/Neev4n/termshell"

// Session wraps a shell session so every submission is timed, counted and
// traced. Pending-line and prompt calls pass straight through.
type Session struct {
	*shell.Session
	metrics *Metrics
	tracer  trace.Tracer
}

func Instrument(s *shell.Session, metrics *Metrics, tp trace.TracerProvider) *Session {
	return &Session{
		Session: s,
		metrics: metrics,
		tracer:  tp.Tracer(instrumentationName),
	}
}

func (s *Session) Submit(ctx context.Context, line string) shell.Result {
	command := ""
	if fields := strings.Fields(line); len(fields) > 0 {
		command = fields[0]
	}

	ctx, span := s.tracer.Start(ctx, "shell.submit", trace.WithAttributes(
		attribute.String("session.id", s.ID()),
		attribute.String("shell.command", command),
		attribute.String("shell.dir", s.Dir()),
	))
	defer span.End()

	dir := s.Dir()
	started := time.Now()

	res := s.Session.Submit(ctx, line)

	kind := res.Kind.String()
	s.metrics.CommandsTotal.WithLabelValues(kind).Inc()
	s.metrics.CommandDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
	if s.Dir() != dir {
		s.metrics.DirChanges.Inc()
	}

	span.SetAttributes(
		attribute.String("shell.result", kind),
		attribute.Int("shell.exit_code", res.ExitCode),
	)
	if res.Kind == shell.ResultError {
		span.SetStatus(codes.Error, strings.TrimSpace(res.Text))
	}

	return res
}
