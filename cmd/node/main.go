// Package main implements the node process that runs the replication engine
// and its gRPC API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apppkg "github.com/i-melnichenko/replset-lab/internal/app"
	"github.com/i-melnichenko/replset-lab/internal/engine"
	"github.com/i-melnichenko/replset-lab/internal/observability/metrics"
	"github.com/i-melnichenko/replset-lab/internal/repl"
	"github.com/i-melnichenko/replset-lab/internal/repl/replstore"
	admingrpc "github.com/i-melnichenko/replset-lab/internal/transport/grpc/admin"
	replgrpc "github.com/i-melnichenko/replset-lab/internal/transport/grpc/repl"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "node: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := apppkg.LoadConfigFromEnv()
	if err != nil {
		return err
	}

	slog.SetDefault(newLogger(cfg.LogLevel))
	logger := slog.Default()

	if err := os.MkdirAll(cfg.DataDir, 0o750); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	store, err := replstore.Open(filepath.Join(cfg.DataDir, "repl_state.db"))
	if err != nil {
		return fmt.Errorf("open repl store: %w", err)
	}
	defer func() { _ = store.Close() }()

	prom, err := metrics.NewPrometheus(cfg.NodeID, nil)
	if err != nil {
		return err
	}

	tc, err := repl.NewTopologyCoordinator(repl.DefaultOptions(), logger, prom)
	if err != nil {
		return err
	}

	tracer := otel.Tracer("replset-lab")
	pool := replgrpc.NewPool(
		tracer,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	defer func() { _ = pool.Close() }()

	eng, err := engine.New(cfg.SelfHost, tc, store, pool, pool, pool, pool, logger)
	if err != nil {
		return err
	}

	replSrv := replgrpc.NewServer(eng, tracer)
	adminSrv := admingrpc.NewServer(eng, tracer)

	app, err := apppkg.New(cfg, logger, eng, replSrv, adminSrv)
	if err != nil {
		return err
	}
	defer app.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return app.Run(ctx)
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}
