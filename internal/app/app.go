// Package app wires the replication engine, persistence, and transports
// together.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/i-melnichenko/replset-lab/internal/repl"
	adminpb "github.com/i-melnichenko/replset-lab/pkg/proto/adminv1"
	replpb "github.com/i-melnichenko/replset-lab/pkg/proto/replv1"
)

// Logger is the logging interface required by App.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ReplEngine is the subset of *engine.Engine required by App.
type ReplEngine interface {
	Run(ctx context.Context, cfg repl.Config) error
	Stop()
}

// App wires the replication engine and its gRPC surface into a runnable
// service. All dependencies are injected; App does not create transport
// connections.
type App struct {
	config   Config
	logger   Logger
	engine   ReplEngine
	replSrv  replpb.ReplServiceServer
	adminSrv adminpb.AdminServiceServer
}

// New validates dependencies and constructs a runnable application.
func New(cfg Config, logger Logger, eng ReplEngine, replSrv replpb.ReplServiceServer, adminSrv adminpb.AdminServiceServer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, fmt.Errorf("app: nil logger")
	}
	if eng == nil {
		return nil, fmt.Errorf("app: nil engine")
	}
	if replSrv == nil {
		return nil, fmt.Errorf("app: nil repl server")
	}
	if adminSrv == nil {
		return nil, fmt.Errorf("app: nil admin server")
	}
	return &App{
		config:   cfg,
		logger:   logger,
		engine:   eng,
		replSrv:  replSrv,
		adminSrv: adminSrv,
	}, nil
}

// Stop stops the replication engine.
func (a *App) Stop() {
	a.engine.Stop()
}

// Run starts the engine and the gRPC server and blocks until shutdown or a
// fatal error.
func (a *App) Run(ctx context.Context) error {
	shutdownTracing, err := a.initTracing(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			a.logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	seedCfg, err := a.config.SeedReplConfig()
	if err != nil {
		return err
	}
	if err := a.engine.Run(ctx, seedCfg); err != nil {
		return fmt.Errorf("start engine: %w", err)
	}

	lis, err := net.Listen("tcp", a.config.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc %s: %w", a.config.GRPCAddr, err)
	}
	defer func() { _ = lis.Close() }()

	a.logger.Info(
		"node started",
		"node_id", a.config.NodeID,
		"replset", a.config.ReplSetName,
		"self_host", a.config.SelfHost,
		"grpc_addr", a.config.GRPCAddr,
	)

	return a.serve(ctx, lis)
}

// serve registers gRPC services, starts the auxiliary HTTP servers, and
// blocks until ctx is canceled or a fatal error occurs.
func (a *App) serve(ctx context.Context, lis net.Listener) error {
	server := grpc.NewServer()
	replpb.RegisterReplServiceServer(server, a.replSrv)
	adminpb.RegisterAdminServiceServer(server, a.adminSrv)
	reflection.Register(server)

	errCh := make(chan error, 3)

	metricsSrv, metricsLis, err := a.metricsServer()
	if err != nil {
		return err
	}
	if metricsSrv != nil {
		a.logger.Info("metrics server listening", "addr", a.config.MetricsAddr)
		go func() {
			if err := metricsSrv.Serve(metricsLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics serve: %w", err)
			}
		}()
	}
	defer shutdownHTTPServer(metricsSrv, a.logger, "metrics server")

	pprofSrv, pprofLis, err := a.pprofServer()
	if err != nil {
		return err
	}
	if pprofSrv != nil {
		a.logger.Info("pprof server listening", "addr", a.config.PprofAddr)
		go func() {
			if err := pprofSrv.Serve(pprofLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("pprof serve: %w", err)
			}
		}()
	}
	defer shutdownHTTPServer(pprofSrv, a.logger, "pprof server")

	go func() {
		if err := server.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		server.GracefulStop()
		return nil
	case err := <-errCh:
		server.Stop()
		return err
	}
}
