package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Neev4n/termshell/internal/config"
	"github.com/Neev4n/termshell/internal/logging"
	"github.com/Neev4n/termshell/internal/telemetry"
	"github.com/Neev4n/termshell/internal/tui"
	"github.com/Neev4n/termshell/pkg/shell"
	"github.com/Neev4n/termshell/pkg/term"
)

const version = "0.1.0"

func main() {

	if err := run(); err != nil {
		log.Fatal(err)
	}

}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	logger, logFile, err := logging.Init(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	tp, shutdownTracing, err := telemetry.InitTracing(cfg.Title, version, cfg.TraceFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Warn("shutdown tracing", "err", err)
		}
	}()

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(reg)
	if cfg.MetricsAddr != "" {
		errCh := telemetry.Serve(ctx, cfg.MetricsAddr, reg)
		go func() {
			if err := <-errCh; err != nil {
				slog.Error("metrics server", "err", err)
			}
		}()
	}

	// a session that cannot learn its starting directory is unusable
	session, err := shell.New(shell.WithLogger(logger), shell.WithStderr(cfg.ShowStderr))
	if err != nil {
		return err
	}
	slog.Info("session started", "session", session.ID(), "dir", session.Dir())

	scrollback := term.NewScrollback()
	dispatcher := term.NewDispatcher(telemetry.Instrument(session, metrics, tp), scrollback)

	return tui.Run(ctx, tui.NewModel(ctx, cfg.Title, dispatcher, scrollback, session.Pending))
}
