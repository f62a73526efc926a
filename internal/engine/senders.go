package engine

import (
	"context"

	"github.com/i-melnichenko/replset-lab/internal/repl"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// HeartbeatSender delivers a heartbeat to one member and returns its answer.
// Transport failures should be returned as *repl.HeartbeatFailure so the
// coordinator can classify them; any other error is treated as generic.
type HeartbeatSender interface {
	Heartbeat(ctx context.Context, target string, req repl.HeartbeatRequest) (*repl.HeartbeatResponse, error)
}

// VoteRequester solicits a vote from one member.
type VoteRequester interface {
	RequestVote(ctx context.Context, target string, req repl.VoteRequest) (*repl.VoteResponse, error)
}

// PositionReporter forwards our replication progress to the sync source and
// returns the consensus metadata the source handed back.
type PositionReporter interface {
	UpdatePosition(ctx context.Context, target string, args repl.UpdatePositionArgs) (*repl.UpdatePositionResponse, error)
}

// ConfigFetcher retrieves the current replica set configuration from a
// member, used when a heartbeat reveals a newer config version without
// carrying the document itself.
type ConfigFetcher interface {
	FetchConfig(ctx context.Context, target string) (*repl.Config, error)
}
