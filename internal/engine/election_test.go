package engine

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/i-melnichenko/replset-lab/internal/repl"
)

func grantAllVotes(peer *MockVoteRequester) {
	peer.EXPECT().
		RequestVote(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req repl.VoteRequest) (*repl.VoteResponse, error) {
			return &repl.VoteResponse{Term: req.Term, VoteGranted: true}, nil
		}).
		AnyTimes()
}

func TestEngine_runElection(t *testing.T) {
	t.Run("wins election and transitions to primary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		heartbeats := NewMockHeartbeatSender(ctrl)
		votes := NewMockVoteRequester(ctrl)
		grantAllVotes(votes)

		e, store := newTestEngine(t, heartbeats, votes)
		seeMajority(e, "h1:27017", "h2:27017")

		e.runElection(context.Background(), repl.ElectionTimeout)

		if got := engineRole(e); got != repl.RoleLeader {
			t.Fatalf("expected leader role, got %v", got)
		}
		if got := engineTerm(e); got != 1 {
			t.Fatalf("expected term=1, got %d", got)
		}
		e.mu.Lock()
		canWrite := e.tc.CanAcceptWrites()
		electionID := e.tc.ElectionID()
		e.mu.Unlock()
		if !canWrite {
			t.Fatalf("expected primary to accept writes")
		}
		if electionID == "" {
			t.Fatalf("expected an election ID to be minted")
		}

		state, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if state.Term != 1 {
			t.Fatalf("expected persisted term=1, got %d", state.Term)
		}
		if state.LastVote.Term != 1 || state.LastVote.CandidateIndex != 0 {
			t.Fatalf("expected persisted self vote for term 1, got %+v", state.LastVote)
		}
	})

	t.Run("lost dry run leaves the term unburned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		heartbeats := NewMockHeartbeatSender(ctrl)
		votes := NewMockVoteRequester(ctrl)
		votes.EXPECT().
			RequestVote(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req repl.VoteRequest) (*repl.VoteResponse, error) {
				if !req.DryRun {
					t.Errorf("expected only dry run requests after a lost dry run")
				}
				// Voters answer with their own term, not the candidate's.
				return &repl.VoteResponse{Term: 0, VoteGranted: false, Reason: "already voted"}, nil
			}).
			AnyTimes()

		e, store := newTestEngine(t, heartbeats, votes)
		seeMajority(e, "h1:27017", "h2:27017")

		e.runElection(context.Background(), repl.ElectionTimeout)

		if got := engineRole(e); got != repl.RoleFollower {
			t.Fatalf("expected follower role, got %v", got)
		}
		if got := engineTerm(e); got != 0 {
			t.Fatalf("expected term unchanged at 0, got %d", got)
		}
		state, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if state.LastVote.CandidateIndex != -1 {
			t.Fatalf("expected no persisted vote, got %+v", state.LastVote)
		}
	})

	t.Run("higher term in a denial updates and persists our term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		heartbeats := NewMockHeartbeatSender(ctrl)
		votes := NewMockVoteRequester(ctrl)
		votes.EXPECT().
			RequestVote(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req repl.VoteRequest) (*repl.VoteResponse, error) {
				return &repl.VoteResponse{Term: 5, VoteGranted: false, Reason: "candidate's term (1) is lower than mine (5)"}, nil
			}).
			AnyTimes()

		e, store := newTestEngine(t, heartbeats, votes)
		seeMajority(e, "h1:27017", "h2:27017")

		e.runElection(context.Background(), repl.ElectionTimeout)

		if got := engineTerm(e); got != 5 {
			t.Fatalf("expected term caught up to 5, got %d", got)
		}
		state, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if state.Term != 5 {
			t.Fatalf("expected persisted term=5, got %d", state.Term)
		}
	})

	t.Run("refuses to stand without a visible majority", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		heartbeats := NewMockHeartbeatSender(ctrl)
		votes := NewMockVoteRequester(ctrl)

		e, _ := newTestEngine(t, heartbeats, votes)

		e.runElection(context.Background(), repl.ElectionTimeout)

		if got := engineRole(e); got != repl.RoleFollower {
			t.Fatalf("expected follower role, got %v", got)
		}
	})
}
