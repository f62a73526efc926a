package replgrpc

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/i-melnichenko/replset-lab/internal/repl"
	replpb "github.com/i-melnichenko/replset-lab/pkg/proto/replv1"
)

// Handler is the subset of *engine.Engine required by the gRPC server.
// *engine.Engine satisfies this interface.
type Handler interface {
	HandleHeartbeat(ctx context.Context, req repl.HeartbeatRequest) (*repl.HeartbeatResponse, error)
	HandleRequestVote(ctx context.Context, req repl.VoteRequest) (repl.VoteResponse, error)
	HandleUpdatePosition(ctx context.Context, args repl.UpdatePositionArgs) (*repl.UpdatePositionResponse, error)
	Status(ctx context.Context) (*repl.StatusResponse, error)
	CurrentConfig() repl.Config
}

// Server implements replpb.ReplServiceServer by delegating RPCs to the
// replication engine.
type Server struct {
	replpb.UnimplementedReplServiceServer
	handler Handler
	tracer  oteltrace.Tracer
}

// NewServer creates a replication gRPC server adapter for the provided handler.
func NewServer(handler Handler, tracer oteltrace.Tracer) *Server {
	return &Server{handler: handler, tracer: tracer}
}

// Heartbeat handles a heartbeat from another member.
func (s *Server) Heartbeat(ctx context.Context, pbReq *replpb.HeartbeatRequest) (*replpb.HeartbeatResponse, error) {
	ctx, span := s.tracer.Start(ctx, "replgrpc.server.Heartbeat", oteltrace.WithAttributes(serverHeartbeatAttrs(pbReq)...))
	defer span.End()

	resp, err := s.handler.HandleHeartbeat(ctx, heartbeatRequestFromPB(pbReq))
	if err != nil {
		recordSpanError(span, err)
		return nil, toGRPCStatus(err)
	}
	span.SetAttributes(
		attribute.Int64("repl.response_term", resp.Term),
		attribute.String("repl.response_state", resp.State.String()),
	)
	return heartbeatResponseToPB(resp), nil
}

// RequestVote handles a vote solicitation from a candidate.
func (s *Server) RequestVote(ctx context.Context, pbReq *replpb.VoteRequest) (*replpb.VoteResponse, error) {
	ctx, span := s.tracer.Start(ctx, "replgrpc.server.RequestVote", oteltrace.WithAttributes(serverRequestVoteAttrs(pbReq)...))
	defer span.End()

	resp, err := s.handler.HandleRequestVote(ctx, voteRequestFromPB(pbReq))
	if err != nil {
		recordSpanError(span, err)
		return nil, toGRPCStatus(err)
	}
	span.SetAttributes(
		attribute.Int64("repl.response_term", resp.Term),
		attribute.Bool("repl.vote_granted", resp.VoteGranted),
	)
	return voteResponseToPB(resp), nil
}

// UpdatePosition handles a forwarded replication progress report.
func (s *Server) UpdatePosition(ctx context.Context, pbReq *replpb.UpdatePositionRequest) (*replpb.UpdatePositionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "replgrpc.server.UpdatePosition", oteltrace.WithAttributes(serverUpdatePositionAttrs(pbReq)...))
	defer span.End()

	resp, err := s.handler.HandleUpdatePosition(ctx, updatePositionArgsFromPB(pbReq))
	if err != nil {
		recordSpanError(span, err)
		return nil, toGRPCStatus(err)
	}
	return &replpb.UpdatePositionResponse{
		Metadata:      replSetMetadataToPB(resp.Metadata),
		OplogMetadata: oplogQueryMetadataToPB(resp.OplogMetadata),
	}, nil
}

// Status returns the node's view of the replica set.
func (s *Server) Status(ctx context.Context, _ *replpb.StatusRequest) (*replpb.StatusResponse, error) {
	ctx, span := s.tracer.Start(ctx, "replgrpc.server.Status")
	defer span.End()

	resp, err := s.handler.Status(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, toGRPCStatus(err)
	}
	return statusResponseToPB(resp), nil
}

// FetchConfig returns the node's installed configuration.
func (s *Server) FetchConfig(ctx context.Context, _ *replpb.FetchConfigRequest) (*replpb.FetchConfigResponse, error) {
	_, span := s.tracer.Start(ctx, "replgrpc.server.FetchConfig")
	defer span.End()

	cfg := s.handler.CurrentConfig()
	if !cfg.IsInitialized() {
		err := status.Error(codes.FailedPrecondition, "no replica set configuration installed")
		recordSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int64("repl.config_version", cfg.Version))
	return &replpb.FetchConfigResponse{Config: ConfigToPB(cfg)}, nil
}

func toGRPCStatus(err error) error {
	var posErr *repl.UpdatePositionError
	switch {
	case errors.Is(err, repl.ErrSetNameMismatch):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, repl.ErrNotMember):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, repl.ErrInvalidConfig):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.As(err, &posErr):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
