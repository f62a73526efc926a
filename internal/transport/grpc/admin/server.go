// Package admingrpc exposes operator commands over gRPC. The commands act on
// the node they are sent to, not on the replica set as a whole.
package admingrpc

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/i-melnichenko/replset-lab/internal/repl"
	replgrpc "github.com/i-melnichenko/replset-lab/internal/transport/grpc/repl"
	adminpb "github.com/i-melnichenko/replset-lab/pkg/proto/adminv1"
)

// Handler is the subset of *engine.Engine required by the admin gRPC server.
// *engine.Engine satisfies this interface.
type Handler interface {
	StepDown(ctx context.Context, force bool, waitTime, stepDownPeriod time.Duration) error
	SyncFrom(ctx context.Context, target string) (string, error)
	InstallConfig(cfg repl.Config) error
	CurrentConfig() repl.Config
}

// Server implements adminpb.AdminServiceServer by delegating commands to the
// replication engine.
type Server struct {
	adminpb.UnimplementedAdminServiceServer
	handler Handler
	tracer  oteltrace.Tracer
}

// NewServer creates an admin gRPC server adapter for the provided handler.
func NewServer(handler Handler, tracer oteltrace.Tracer) *Server {
	return &Server{handler: handler, tracer: tracer}
}

// StepDown asks a primary to yield its position.
func (s *Server) StepDown(ctx context.Context, pbReq *adminpb.StepDownRequest) (*adminpb.StepDownResponse, error) {
	ctx, span := s.tracer.Start(ctx, "admingrpc.server.StepDown", oteltrace.WithAttributes(
		attribute.Bool("repl.force", pbReq.Force),
		attribute.Int64("repl.wait_millis", pbReq.WaitMillis),
		attribute.Int64("repl.step_down_period_millis", pbReq.StepDownPeriodMillis),
	))
	defer span.End()

	wait := time.Duration(pbReq.WaitMillis) * time.Millisecond
	period := time.Duration(pbReq.StepDownPeriodMillis) * time.Millisecond
	if err := s.handler.StepDown(ctx, pbReq.Force, wait, period); err != nil {
		recordSpanError(span, err)
		return nil, stepDownStatus(err)
	}
	return &adminpb.StepDownResponse{}, nil
}

// SyncFrom overrides the node's sync source choice.
func (s *Server) SyncFrom(ctx context.Context, pbReq *adminpb.SyncFromRequest) (*adminpb.SyncFromResponse, error) {
	ctx, span := s.tracer.Start(ctx, "admingrpc.server.SyncFrom", oteltrace.WithAttributes(
		attribute.String("repl.sync_target", pbReq.Target),
	))
	defer span.End()

	warning, err := s.handler.SyncFrom(ctx, pbReq.Target)
	if err != nil {
		recordSpanError(span, err)
		var sfErr *repl.SyncFromError
		if errors.As(err, &sfErr) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	if warning != "" {
		span.SetAttributes(attribute.String("repl.warning", warning))
	}
	return &adminpb.SyncFromResponse{Warning: warning}, nil
}

// Reconfig installs a new replica set configuration on the node.
func (s *Server) Reconfig(ctx context.Context, pbReq *adminpb.ReconfigRequest) (*adminpb.ReconfigResponse, error) {
	_, span := s.tracer.Start(ctx, "admingrpc.server.Reconfig")
	defer span.End()

	if pbReq.Config == nil {
		err := status.Error(codes.InvalidArgument, "missing configuration document")
		recordSpanError(span, err)
		return nil, err
	}
	cfg := replgrpc.ConfigFromPB(pbReq.Config)
	span.SetAttributes(attribute.Int64("repl.config_version", cfg.Version))

	if err := s.handler.InstallConfig(cfg); err != nil {
		recordSpanError(span, err)
		if errors.Is(err, repl.ErrInvalidConfig) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	return &adminpb.ReconfigResponse{Version: cfg.Version}, nil
}

func stepDownStatus(err error) error {
	var sdErr *repl.StepDownError
	if !errors.As(err, &sdErr) {
		return status.Error(codes.Internal, err.Error())
	}
	switch sdErr.Kind {
	case repl.StepDownNotPrimary, repl.StepDownConflictingOperation, repl.StepDownTermChanged:
		return status.Error(codes.FailedPrecondition, err.Error())
	case repl.StepDownDeadlinePassed, repl.StepDownNoCaughtUpSecondary:
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func recordSpanError(span oteltrace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())
}
