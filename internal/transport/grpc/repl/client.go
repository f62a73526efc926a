// Package replgrpc contains the replication gRPC transport adapters.
package replgrpc

import (
	"context"
	"errors"
	"sync"

	oteltrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/i-melnichenko/replset-lab/internal/repl"
	replpb "github.com/i-melnichenko/replset-lab/pkg/proto/replv1"
)

// Pool maintains one gRPC connection per member host and implements the
// engine's HeartbeatSender, VoteRequester, PositionReporter, and ConfigFetcher
// interfaces.
// Connections are established lazily on the first RPC to each target.
type Pool struct {
	tracer oteltrace.Tracer
	opts   []grpc.DialOption

	mu      sync.Mutex
	conns   map[string]*grpc.ClientConn
	clients map[string]replpb.ReplServiceClient
}

// NewPool creates a connection pool using the given dial options for every
// member connection.
func NewPool(tracer oteltrace.Tracer, opts ...grpc.DialOption) *Pool {
	return &Pool{
		tracer:  tracer,
		opts:    opts,
		conns:   make(map[string]*grpc.ClientConn),
		clients: make(map[string]replpb.ReplServiceClient),
	}
}

func (p *Pool) client(target string) (replpb.ReplServiceClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.clients[target]; ok {
		return c, nil
	}
	conn, err := grpc.NewClient(target, p.opts...)
	if err != nil {
		return nil, err
	}
	c := replpb.NewReplServiceClient(conn)
	p.conns[target] = conn
	p.clients[target] = c
	return c, nil
}

// Heartbeat calls the remote Heartbeat RPC. Transport failures are returned
// as *repl.HeartbeatFailure so the coordinator can classify them.
func (p *Pool) Heartbeat(ctx context.Context, target string, req repl.HeartbeatRequest) (*repl.HeartbeatResponse, error) {
	ctx, span := p.tracer.Start(ctx, "replgrpc.client.Heartbeat", oteltrace.WithAttributes(clientHeartbeatAttrs(target, req)...))
	defer span.End()

	c, err := p.client(target)
	if err != nil {
		recordSpanError(span, err)
		return nil, classifyTransportError(err)
	}
	pbResp, err := c.Heartbeat(ctx, heartbeatRequestToPB(req))
	if err != nil {
		recordSpanError(span, err)
		return nil, classifyTransportError(err)
	}
	return heartbeatResponseFromPB(pbResp), nil
}

// RequestVote calls the remote RequestVote RPC.
func (p *Pool) RequestVote(ctx context.Context, target string, req repl.VoteRequest) (*repl.VoteResponse, error) {
	ctx, span := p.tracer.Start(ctx, "replgrpc.client.RequestVote", oteltrace.WithAttributes(clientRequestVoteAttrs(target, req)...))
	defer span.End()

	c, err := p.client(target)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	pbResp, err := c.RequestVote(ctx, voteRequestToPB(req))
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	return voteResponseFromPB(pbResp), nil
}

// UpdatePosition forwards a replication progress report to target, normally
// the current sync source, and returns the consensus metadata it handed back.
func (p *Pool) UpdatePosition(ctx context.Context, target string, args repl.UpdatePositionArgs) (*repl.UpdatePositionResponse, error) {
	ctx, span := p.tracer.Start(ctx, "replgrpc.client.UpdatePosition", oteltrace.WithAttributes(clientUpdatePositionAttrs(target, args)...))
	defer span.End()

	c, err := p.client(target)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	pbResp, err := c.UpdatePosition(ctx, updatePositionArgsToPB(args))
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	return &repl.UpdatePositionResponse{
		Metadata:      replSetMetadataFromPB(pbResp.GetMetadata()),
		OplogMetadata: oplogQueryMetadataFromPB(pbResp.GetOplogMetadata()),
	}, nil
}

// FetchConfig retrieves the replica set configuration installed on target.
func (p *Pool) FetchConfig(ctx context.Context, target string) (*repl.Config, error) {
	ctx, span := p.tracer.Start(ctx, "replgrpc.client.FetchConfig", oteltrace.WithAttributes(clientTargetAttrs(target)...))
	defer span.End()

	c, err := p.client(target)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	pbResp, err := c.FetchConfig(ctx, &replpb.FetchConfigRequest{})
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	cfg := ConfigFromPB(pbResp.Config)
	return &cfg, nil
}

// Status retrieves target's view of the replica set.
func (p *Pool) Status(ctx context.Context, target string) (*repl.StatusResponse, error) {
	ctx, span := p.tracer.Start(ctx, "replgrpc.client.Status", oteltrace.WithAttributes(clientTargetAttrs(target)...))
	defer span.End()

	c, err := p.client(target)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	pbResp, err := c.Status(ctx, &replpb.StatusRequest{})
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	return statusResponseFromPB(pbResp), nil
}

// Close closes every member connection.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var firstErr error
	for target, conn := range p.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.conns, target)
		delete(p.clients, target)
	}
	return firstErr
}

// classifyTransportError converts a gRPC call error into a typed heartbeat
// failure.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &repl.HeartbeatFailure{Kind: repl.HeartbeatFailureTimeout, Message: err.Error()}
	}
	st, ok := status.FromError(err)
	if !ok {
		return &repl.HeartbeatFailure{Kind: repl.HeartbeatFailureError, Message: err.Error()}
	}
	kind := repl.HeartbeatFailureError
	switch st.Code() {
	case codes.DeadlineExceeded:
		kind = repl.HeartbeatFailureTimeout
	case codes.Unavailable:
		kind = repl.HeartbeatFailureUnreachable
	case codes.Unauthenticated, codes.PermissionDenied:
		kind = repl.HeartbeatFailureUnauthorized
	case codes.NotFound:
		kind = repl.HeartbeatFailureNodeNotFound
	}
	return &repl.HeartbeatFailure{Kind: kind, Message: st.Message()}
}
