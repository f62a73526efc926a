package repl

import (
	"strings"
	"testing"
	"time"
)

func TestTopologyCoordinator_UpdateTerm(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	tc.term = 2

	if got := tc.UpdateTerm(1, testTime(0)); got != TermBehind {
		t.Fatalf("expected TermBehind, got %v", got)
	}
	if got := tc.UpdateTerm(2, testTime(0)); got != TermAlreadyUpToDate {
		t.Fatalf("expected TermAlreadyUpToDate, got %v", got)
	}
	if got := tc.UpdateTerm(3, testTime(0)); got != TermUpdated {
		t.Fatalf("expected TermUpdated, got %v", got)
	}
	if tc.Term() != 3 {
		t.Fatalf("expected term 3, got %d", tc.Term())
	}

	// A primary must not adopt a higher term until it has stepped down.
	tc.role = RoleLeader
	tc.leaderMode = LeaderModeMaster
	if got := tc.UpdateTerm(4, testTime(0)); got != TermTriggerStepDown {
		t.Fatalf("expected TermTriggerStepDown, got %v", got)
	}
	if tc.Term() != 3 {
		t.Fatalf("expected term unchanged at 3, got %d", tc.Term())
	}
}

func TestTopologyCoordinator_UpdateTerm_backsOffElections(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, opTime(10, 0, 0), 0)

	if got := tc.UpdateTerm(1, testTime(0)); got != TermUpdated {
		t.Fatalf("expected TermUpdated, got %v", got)
	}
	err := tc.BecomeCandidateIfElectable(testTime(time.Second), ElectionTimeout)
	if err == nil {
		t.Fatalf("expected election backoff after adopting a new term")
	}
	if !strings.Contains(err.Error(), "backoff") {
		t.Fatalf("unexpected reason: %v", err)
	}

	// The backoff expires after the election timeout.
	tc.ResetAllMemberTimeouts(testTime(DefaultElectionTimeout))
	if err := tc.BecomeCandidateIfElectable(testTime(DefaultElectionTimeout), ElectionTimeout); err != nil {
		t.Fatalf("unexpected error after backoff expired: %v", err)
	}
}

func TestTopologyCoordinator_ProcessRequestVotes(t *testing.T) {
	voteReq := func(term int64, candidateIndex int, lastApplied OpTime, dryRun bool) VoteRequest {
		return VoteRequest{
			SetName:           "rs0",
			Term:              term,
			CandidateIndex:    candidateIndex,
			ConfigVersion:     1,
			LastAppliedOpTime: lastApplied,
			DryRun:            dryRun,
		}
	}

	tests := []struct {
		name       string
		setup      func(t *testing.T) *TopologyCoordinator
		req        VoteRequest
		wantGrant  bool
		wantReason string
	}{
		{
			name: "denies a candidate with a stale term",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				tc.term = 2
				return tc
			},
			req:        voteReq(1, 1, opTime(100, 0, 1), false),
			wantReason: "candidate's term (1) is lower than mine (2)",
		},
		{
			name: "denies a candidate with a different config version",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				return newSecondaryCoordinator(0)
			},
			req: func() VoteRequest {
				r := voteReq(1, 1, opTime(100, 0, 0), false)
				r.ConfigVersion = 5
				return r
			}(),
			wantReason: "candidate's config version (5) differs from mine (1)",
		},
		{
			name: "denies a candidate from a different set",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				return newSecondaryCoordinator(0)
			},
			req: func() VoteRequest {
				r := voteReq(1, 1, opTime(100, 0, 0), false)
				r.SetName = "other"
				return r
			}(),
			wantReason: "candidate's set name (other) differs from mine (rs0)",
		},
		{
			name: "denies a candidate with staler data",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(100, 0, 1), testTime(0), false)
				return tc
			},
			req:       voteReq(1, 1, opTime(50, 0, 1), false),
			wantGrant: false,
		},
		{
			name: "term dominates timestamp in the staleness comparison",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				// Our timestamp is newer but from an older term; the
				// candidate's higher term operation wins.
				tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(200, 0, 1), testTime(0), false)
				tc.term = 2
				return tc
			},
			req:       voteReq(2, 1, opTime(100, 0, 2), false),
			wantGrant: true,
		},
		{
			name: "denies a second real vote in the same term",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				tc.term = 5
				tc.lastVote = LastVote{Term: 5, CandidateIndex: 2}
				return tc
			},
			req:        voteReq(5, 1, opTime(100, 0, 0), false),
			wantReason: "already voted for another candidate (h2:27017) this term (5)",
		},
		{
			name: "a dry run is not blocked by a real vote in the same term",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				tc.term = 5
				tc.lastVote = LastVote{Term: 5, CandidateIndex: 2}
				return tc
			},
			req:       voteReq(5, 1, opTime(100, 0, 0), true),
			wantGrant: true,
		},
		{
			name: "arbiter denies while it can see a healthy primary",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newTestCoordinator()
				cfg := threeNodeConfig(1)
				cfg.Members[0].Arbiter = true
				cfg.Members[0].Priority = 0
				tc.UpdateConfig(cfg, 0, testTime(0))
				receiveUpHeartbeat(tc, testTime(0), "h2:27017", MemberStatePrimary, opTime(100, 0, 0), 0)
				return tc
			},
			req:        voteReq(1, 1, opTime(200, 0, 0), false),
			wantReason: "can see a healthy primary (h2:27017) of equal or greater priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := tt.setup(t)
			resp := tc.ProcessRequestVotes(tt.req, testTime(0))
			if resp.VoteGranted != tt.wantGrant {
				t.Fatalf("expected granted=%v, got %v (reason %q)", tt.wantGrant, resp.VoteGranted, resp.Reason)
			}
			if tt.wantReason != "" && resp.Reason != tt.wantReason {
				t.Fatalf("expected reason %q, got %q", tt.wantReason, resp.Reason)
			}
			if tt.wantGrant && resp.Reason != "" {
				t.Fatalf("expected empty reason on grant, got %q", resp.Reason)
			}
		})
	}
}

func TestTopologyCoordinator_ProcessRequestVotes_recordsOnlyRealVotes(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	tc.term = 3

	resp := tc.ProcessRequestVotes(VoteRequest{
		SetName: "rs0", Term: 3, CandidateIndex: 1, ConfigVersion: 1,
		LastAppliedOpTime: opTime(10, 0, 0), DryRun: true,
	}, testTime(0))
	if !resp.VoteGranted {
		t.Fatalf("expected dry run vote granted: %q", resp.Reason)
	}
	if tc.LastVote().Term == 3 {
		t.Fatalf("dry run must not record a vote")
	}

	resp = tc.ProcessRequestVotes(VoteRequest{
		SetName: "rs0", Term: 3, CandidateIndex: 1, ConfigVersion: 1,
		LastAppliedOpTime: opTime(10, 0, 0),
	}, testTime(0))
	if !resp.VoteGranted {
		t.Fatalf("expected real vote granted: %q", resp.Reason)
	}
	if got := tc.LastVote(); got.Term != 3 || got.CandidateIndex != 1 {
		t.Fatalf("expected recorded vote {3 1}, got %+v", got)
	}

	// Even the same candidate cannot collect a second real vote this term.
	resp = tc.ProcessRequestVotes(VoteRequest{
		SetName: "rs0", Term: 3, CandidateIndex: 1, ConfigVersion: 1,
		LastAppliedOpTime: opTime(10, 0, 0),
	}, testTime(0))
	if resp.VoteGranted {
		t.Fatalf("expected second real vote denied")
	}
}

func TestTopologyCoordinator_BecomeCandidateIfElectable(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T) *TopologyCoordinator
		reason     StartElectionReason
		wantErrSub string
	}{
		{
			name: "electable secondary with majority visible",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, opTime(10, 0, 0), 0)
				return tc
			},
			reason: ElectionTimeout,
		},
		{
			name: "arbiter may not stand",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newTestCoordinator()
				cfg := threeNodeConfig(1)
				cfg.Members[0].Arbiter = true
				cfg.Members[0].Priority = 0
				tc.UpdateConfig(cfg, 0, testTime(0))
				return tc
			},
			reason:     ElectionTimeout,
			wantErrSub: "arbiter",
		},
		{
			name: "zero priority member may not stand",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newTestCoordinator()
				cfg := threeNodeConfig(1)
				cfg.Members[0].Priority = 0
				tc.UpdateConfig(cfg, 0, testTime(0))
				tc.SetFollowerMode(MemberStateSecondary)
				receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, opTime(10, 0, 0), 0)
				return tc
			},
			reason:     ElectionTimeout,
			wantErrSub: "zero priority",
		},
		{
			name: "cannot stand without seeing a majority",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				return newSecondaryCoordinator(0)
			},
			reason:     ElectionTimeout,
			wantErrSub: "majority",
		},
		{
			name: "cannot stand while not a secondary",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				tc.SetFollowerMode(MemberStateRollback)
				receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, opTime(10, 0, 0), 0)
				return tc
			},
			reason:     ElectionTimeout,
			wantErrSub: "not currently a secondary",
		},
		{
			name: "cannot stand during the stepdown freeze",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, opTime(10, 0, 0), 0)
				tc.stepDownUntil = testTime(time.Hour)
				return tc
			},
			reason:     ElectionTimeout,
			wantErrSub: "stepdown period",
		},
		{
			name: "priority takeover requires freshness",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				// The freshest member is far ahead of us.
				receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, opTime(500, 0, 0), 0)
				tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(100, 0, 0), testTime(0), false)
				return tc
			},
			reason:     PriorityTakeover,
			wantErrSub: "not caught up enough",
		},
		{
			name: "priority takeover within the freshness window",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, opTime(101, 0, 0), 0)
				tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(100, 0, 0), testTime(0), false)
				return tc
			},
			reason: PriorityTakeover,
		},
		{
			name: "catchup takeover requires a primary that has not caught up",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				tc.term = 1
				receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStatePrimary, opTime(200, 0, 1), 1)
				tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(100, 0, 0), testTime(0), false)
				return tc
			},
			reason:     CatchupTakeover,
			wantErrSub: "already caught up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := tt.setup(t)
			err := tc.BecomeCandidateIfElectable(testTime(time.Second), tt.reason)
			if tt.wantErrSub == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if tc.Role() != RoleCandidate {
					t.Fatalf("expected candidate role, got %v", tc.Role())
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErrSub)
			}
			if !strings.Contains(err.Error(), tt.wantErrSub) {
				t.Fatalf("expected error containing %q, got %q", tt.wantErrSub, err.Error())
			}
		})
	}
}

func TestTopologyCoordinator_electionRoundTrip(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, opTime(10, 0, 0), 0)

	if err := tc.BecomeCandidateIfElectable(testTime(time.Second), ElectionTimeout); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	newTerm := tc.IncrementTerm()
	if newTerm != 1 {
		t.Fatalf("expected term 1, got %d", newTerm)
	}
	tc.VoteForMyself()
	if got := tc.LastVote(); got.Term != 1 || got.CandidateIndex != 0 {
		t.Fatalf("expected own vote recorded, got %+v", got)
	}

	tc.ProcessWinElection("election-1", Timestamp{Secs: 100, Inc: 1})
	if tc.Role() != RoleLeader {
		t.Fatalf("expected leader role, got %v", tc.Role())
	}
	if tc.MemberState() != MemberStatePrimary {
		t.Fatalf("expected primary state, got %v", tc.MemberState())
	}
	if tc.CanAcceptWrites() {
		t.Fatalf("leader-elect must not accept writes before the transition completes")
	}
	if tc.CurrentPrimaryIndex() != 0 {
		t.Fatalf("expected self as primary index, got %d", tc.CurrentPrimaryIndex())
	}
	if tc.SyncSourceAddress() != "" {
		t.Fatalf("expected sync source cleared on win")
	}

	tc.CompleteTransitionToPrimary(opTime(101, 1, 1))
	if !tc.CanAcceptWrites() {
		t.Fatalf("expected writes accepted after transition")
	}
}

func TestTopologyCoordinator_ProcessLoseElection(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, opTime(10, 0, 0), 0)
	if err := tc.BecomeCandidateIfElectable(testTime(time.Second), ElectionTimeout); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tc.ProcessLoseElection()
	if tc.Role() != RoleFollower {
		t.Fatalf("expected follower role, got %v", tc.Role())
	}
	if tc.MemberState() != MemberStateSecondary {
		t.Fatalf("expected secondary state, got %v", tc.MemberState())
	}
}
