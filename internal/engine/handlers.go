package engine

import (
	"context"
	"time"

	"github.com/i-melnichenko/replset-lab/internal/repl"
)

// stepDownPollInterval is how often a waiting step-down attempt re-checks
// whether a secondary has caught up.
const stepDownPollInterval = 50 * time.Millisecond

// HandleHeartbeat answers an inbound heartbeat from another member.
func (e *Engine) HandleHeartbeat(ctx context.Context, req repl.HeartbeatRequest) (*repl.HeartbeatResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	resp, err := e.tc.PrepareHeartbeatResponse(e.clock(), req)
	if err != nil {
		return nil, err
	}
	e.noteTermLocked(req.Term)
	cfg := e.tc.Config()
	if primary := e.tc.CurrentPrimaryIndex(); primary != -1 && primary != e.tc.SelfIndex() &&
		cfg.MemberAt(primary).Host == req.SenderHost {
		e.resetElectionTimerLocked()
	}
	return resp, nil
}

// HandleRequestVote answers a vote solicitation. A granted real vote is made
// durable before the response leaves this node.
func (e *Engine) HandleRequestVote(ctx context.Context, req repl.VoteRequest) (repl.VoteResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// A dry run probes for support without moving anyone's term.
	if !req.DryRun {
		e.noteTermLocked(req.Term)
	}
	resp := e.tc.ProcessRequestVotes(req, e.clock())
	if !req.DryRun && resp.VoteGranted {
		if err := e.store.SaveLastVote(e.tc.LastVote()); err != nil {
			e.logger.Error("failed to persist vote", "term", req.Term, "error", err)
			return repl.VoteResponse{}, err
		}
	}
	if resp.VoteGranted {
		e.resetElectionTimerLocked()
	}
	return resp, nil
}

// HandleUpdatePosition applies a forwarded progress report, recomputes the
// commit point when the report advanced anything, and answers with the
// consensus metadata the reporter uses to judge us as a sync source.
func (e *Engine) HandleUpdatePosition(ctx context.Context, args repl.UpdatePositionArgs) (*repl.UpdatePositionResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	advanced, err := e.tc.SetLastOptime(args, e.clock())
	if err != nil {
		return nil, err
	}
	if advanced {
		e.tc.UpdateLastCommittedOpTime()
	}
	return &repl.UpdatePositionResponse{
		Metadata:      e.tc.PrepareReplSetMetadata(e.tc.MyLastAppliedOpTime()),
		OplogMetadata: e.tc.PrepareOplogQueryMetadata(),
	}, nil
}

// processReplSetMetadataLocked digests consensus metadata received on
// replication traffic from the sync source. Caller must hold e.mu.
func (e *Engine) processReplSetMetadataLocked(meta repl.ReplSetMetadata) {
	e.noteTermLocked(meta.Term)
	e.tc.AdvanceLastCommittedOpTime(meta.LastCommittedOpTime, true)
}

// Status reports a point-in-time view of the whole set.
func (e *Engine) Status(ctx context.Context) (*repl.StatusResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock()
	return e.tc.PrepareStatusResponse(now, now.Sub(e.startedAt))
}

// SyncFrom forces the sync source to target, answering with the current
// source for the operator's reference.
func (e *Engine) SyncFrom(ctx context.Context, target string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tc.PrepareSyncFromResponse(target, e.clock())
}

// StepDown relinquishes leadership on operator request. Without force it
// waits up to waitTime for an electable secondary to catch up, polling the
// safety conditions; the node then refuses to stand for election for
// stepDownPeriod.
func (e *Engine) StepDown(ctx context.Context, force bool, waitTime, stepDownPeriod time.Duration) error {
	e.mu.Lock()
	abort, err := e.tc.PrepareForStepDownAttempt()
	if err != nil {
		e.mu.Unlock()
		return err
	}

	now := e.clock()
	termAtStart := e.tc.Term()
	waitUntil := now.Add(waitTime)
	stepDownUntil := now.Add(stepDownPeriod)

	for {
		done, err := e.tc.AttemptStepDown(termAtStart, e.clock(), waitUntil, stepDownUntil, force)
		if err != nil {
			abort()
			e.mu.Unlock()
			return err
		}
		if done {
			e.resetElectionTimerLocked()
			e.mu.Unlock()
			return nil
		}
		e.mu.Unlock()

		timer := e.newTimer(stepDownPollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			e.mu.Lock()
			abort()
			e.mu.Unlock()
			return ctx.Err()
		case <-timer.C():
		}
		timer.Stop()
		e.mu.Lock()
	}
}
