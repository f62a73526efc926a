package repl

import (
	"errors"
	"testing"
	"time"
)

func TestTopologyCoordinator_heartbeatRetriesShareTimeoutWindow(t *testing.T) {
	tc := newTestCoordinator()
	cfg := threeNodeConfig(1)
	cfg.Settings.HeartbeatInterval = 2 * time.Second
	cfg.Settings.HeartbeatTimeout = 5 * time.Second
	tc.UpdateConfig(cfg, 0, testTime(0))
	tc.SetFollowerMode(MemberStateSecondary)
	tc.syncSource = "h2:27017"

	const target = "h1:27017"

	_, timeout := tc.PrepareHeartbeatRequest(testTime(0), target)
	if timeout != 5*time.Second {
		t.Fatalf("expected full timeout window 5s, got %v", timeout)
	}

	// First failure at t+4s leaves 1s of the window; retry immediately.
	a := tc.ProcessHeartbeatResponse(testTime(4*time.Second), 0, target,
		heartbeatErr(HeartbeatFailureUnreachable, "connection refused"))
	if !a.NextHeartbeatAt.Equal(testTime(4 * time.Second)) {
		t.Fatalf("expected immediate retry at t+4s, got %v", a.NextHeartbeatAt)
	}
	if tc.memberData[1].State() == MemberStateDown {
		t.Fatalf("member must not be marked down while retries remain")
	}

	_, timeout = tc.PrepareHeartbeatRequest(testTime(4*time.Second), target)
	if timeout != 1*time.Second {
		t.Fatalf("expected shrunken timeout 1s, got %v", timeout)
	}

	// Second failure lands exactly at the end of the window: the member goes
	// down and the next probe is scheduled at a quarter of the interval.
	a = tc.ProcessHeartbeatResponse(testTime(5*time.Second), 0, target,
		heartbeatErr(HeartbeatFailureUnreachable, "connection refused"))
	if want := testTime(5*time.Second + 500*time.Millisecond); !a.NextHeartbeatAt.Equal(want) {
		t.Fatalf("expected fast re-probe at %v, got %v", want, a.NextHeartbeatAt)
	}
	if tc.memberData[1].State() != MemberStateDown {
		t.Fatalf("expected member marked down, got %v", tc.memberData[1].State())
	}
	if tc.memberData[1].Health() != HealthDown {
		t.Fatalf("expected health down, got %v", tc.memberData[1].Health())
	}
}

func TestTopologyCoordinator_downMemberLosesReportedProgress(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	const target = "h1:27017"
	receiveUpHeartbeat(tc, testTime(0), target, MemberStateSecondary, opTime(100, 0, 0), 0)
	if got := tc.memberData[1].LastAppliedOpTime(); got != opTime(100, 0, 0) {
		t.Fatalf("expected reported progress recorded, got %v", got)
	}

	// A failure landing past the timeout window marks the member down; its
	// stale progress must not keep influencing decisions.
	tc.PrepareHeartbeatRequest(testTime(time.Minute), target)
	tc.ProcessHeartbeatResponse(testTime(time.Minute+DefaultHeartbeatTimeout), 0, target,
		heartbeatErr(HeartbeatFailureUnreachable, "connection refused"))

	md := &tc.memberData[1]
	if md.Up() {
		t.Fatalf("expected member down")
	}
	if !md.LastAppliedOpTime().IsNull() {
		t.Fatalf("expected applied progress cleared, got %v", md.LastAppliedOpTime())
	}
	if !md.LastDurableOpTime().IsNull() {
		t.Fatalf("expected durable progress cleared, got %v", md.LastDurableOpTime())
	}
}

func TestTopologyCoordinator_ProcessHeartbeatResponse(t *testing.T) {
	const target = "h1:27017"

	tests := []struct {
		name   string
		setup  func(t *testing.T) *TopologyCoordinator
		result HeartbeatResult
		check  func(t *testing.T, tc *TopologyCoordinator, a Action)
	}{
		{
			name: "success brings member up and advances optime",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				return newSecondaryCoordinator(0)
			},
			result: heartbeatOK(MemberStateSecondary, opTime(100, 0, 0), 0),
			check: func(t *testing.T, tc *TopologyCoordinator, a Action) {
				t.Helper()
				if !a.AdvancedOpTime {
					t.Fatalf("expected advanced optime")
				}
				md := tc.memberData[1]
				if !md.Up() {
					t.Fatalf("expected member up")
				}
				if md.State() != MemberStateSecondary {
					t.Fatalf("expected secondary state, got %v", md.State())
				}
				if got := md.LastAppliedOpTime(); got != opTime(100, 0, 0) {
					t.Fatalf("expected applied optime to be recorded, got %s", got.String())
				}
			},
		},
		{
			name: "newer remote config triggers reconfig",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				return newSecondaryCoordinator(0)
			},
			result: func() HeartbeatResult {
				r := heartbeatOK(MemberStateSecondary, opTime(100, 0, 0), 0)
				r.Response.ConfigVersion = 7
				return r
			}(),
			check: func(t *testing.T, tc *TopologyCoordinator, a Action) {
				t.Helper()
				if a.Kind != ActionReconfig {
					t.Fatalf("expected reconfig action, got %v", a.Kind)
				}
			},
		},
		{
			name: "heartbeat from primary records primary index",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				return newSecondaryCoordinator(0)
			},
			result: heartbeatOK(MemberStatePrimary, opTime(100, 0, 0), 0),
			check: func(t *testing.T, tc *TopologyCoordinator, a Action) {
				t.Helper()
				if tc.CurrentPrimaryIndex() != 1 {
					t.Fatalf("expected primary index 1, got %d", tc.CurrentPrimaryIndex())
				}
				if a.Kind != ActionNone {
					t.Fatalf("expected no action, got %v", a.Kind)
				}
			},
		},
		{
			name: "higher priority node schedules priority takeover",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newTestCoordinator()
				cfg := threeNodeConfig(1)
				cfg.Members[0].Priority = 3
				tc.UpdateConfig(cfg, 0, testTime(0))
				tc.SetFollowerMode(MemberStateSecondary)
				return tc
			},
			result: heartbeatOK(MemberStatePrimary, opTime(100, 0, 0), 0),
			check: func(t *testing.T, tc *TopologyCoordinator, a Action) {
				t.Helper()
				if a.Kind != ActionPriorityTakeover {
					t.Fatalf("expected priority takeover, got %v", a.Kind)
				}
				if a.PrimaryIndex != 1 {
					t.Fatalf("expected primary index 1, got %d", a.PrimaryIndex)
				}
			},
		},
		{
			name: "fresher node schedules catchup takeover",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(200, 0, 0), testTime(0), false)
				return tc
			},
			result: heartbeatOK(MemberStatePrimary, opTime(100, 0, 0), 0),
			check: func(t *testing.T, tc *TopologyCoordinator, a Action) {
				t.Helper()
				if a.Kind != ActionCatchupTakeover {
					t.Fatalf("expected catchup takeover, got %v", a.Kind)
				}
			},
		},
		{
			name: "highest priority node prefers priority takeover over catchup",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newTestCoordinator()
				cfg := threeNodeConfig(1)
				cfg.Members[0].Priority = 3
				tc.UpdateConfig(cfg, 0, testTime(0))
				tc.SetFollowerMode(MemberStateSecondary)
				tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(200, 0, 0), testTime(0), false)
				return tc
			},
			result: heartbeatOK(MemberStatePrimary, opTime(100, 0, 0), 0),
			check: func(t *testing.T, tc *TopologyCoordinator, a Action) {
				t.Helper()
				if a.Kind != ActionPriorityTakeover {
					t.Fatalf("expected priority takeover, got %v", a.Kind)
				}
			},
		},
		{
			name: "takeover is not considered for a primary in an older term",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newTestCoordinator()
				cfg := threeNodeConfig(1)
				cfg.Members[0].Priority = 3
				tc.UpdateConfig(cfg, 0, testTime(0))
				tc.SetFollowerMode(MemberStateSecondary)
				tc.term = 2
				return tc
			},
			result: heartbeatOK(MemberStatePrimary, opTime(100, 0, 1), 1),
			check: func(t *testing.T, tc *TopologyCoordinator, a Action) {
				t.Helper()
				if a.Kind != ActionNone {
					t.Fatalf("expected no action, got %v", a.Kind)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := tt.setup(t)
			tc.PrepareHeartbeatRequest(testTime(0), target)
			a := tc.ProcessHeartbeatResponse(testTime(10*time.Millisecond), 10*time.Millisecond, target, tt.result)
			tt.check(t, tc, a)
		})
	}
}

func TestTopologyCoordinator_PrepareHeartbeatResponse(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(50, 0, 0), testTime(0), false)

	_, err := tc.PrepareHeartbeatResponse(testTime(0), HeartbeatRequest{
		SetName: "otherset", ConfigVersion: 1, SenderID: 1, SenderHost: "h1:27017",
	})
	if !errors.Is(err, ErrSetNameMismatch) {
		t.Fatalf("expected set name mismatch, got %v", err)
	}

	_, err = tc.PrepareHeartbeatResponse(testTime(0), HeartbeatRequest{
		SetName: "rs0", ConfigVersion: 1, SenderID: 0, SenderHost: "elsewhere:27017",
	})
	if !errors.Is(err, ErrSameMemberID) {
		t.Fatalf("expected same member ID error, got %v", err)
	}

	resp, err := tc.PrepareHeartbeatResponse(testTime(0), HeartbeatRequest{
		SetName: "rs0", ConfigVersion: 0, SenderID: 1, SenderHost: "h1:27017",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Config == nil {
		t.Fatalf("expected config in response for sender with stale config")
	}
	if resp.State != MemberStateSecondary {
		t.Fatalf("expected secondary state, got %v", resp.State)
	}
	if resp.AppliedOpTime.OpTime != opTime(50, 0, 0) {
		t.Fatalf("expected applied optime in response, got %s", resp.AppliedOpTime.OpTime.String())
	}
	if tc.memberData[1].LastHeartbeatRecv().IsZero() {
		t.Fatalf("expected sender contact time to be recorded")
	}

	resp, err = tc.PrepareHeartbeatResponse(testTime(0), HeartbeatRequest{
		SetName: "rs0", ConfigVersion: 1, SenderID: 1, SenderHost: "h1:27017",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Config != nil {
		t.Fatalf("expected no config in response for up-to-date sender")
	}
}

func TestTopologyCoordinator_CheckMemberTimeouts(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	tc.role = RoleLeader
	tc.leaderMode = LeaderModeMaster

	// No peer is up, so the primary cannot see members holding a majority of
	// the votes.
	a := tc.CheckMemberTimeouts(testTime(time.Minute))
	if a.Kind != ActionStepDownSelf {
		t.Fatalf("expected step down action, got %v", a.Kind)
	}

	receiveUpHeartbeat(tc, testTime(time.Minute), "h1:27017", MemberStateSecondary, opTime(10, 0, 0), 0)
	a = tc.CheckMemberTimeouts(testTime(time.Minute))
	if a.Kind != ActionNone {
		t.Fatalf("expected no action with a majority visible, got %v", a.Kind)
	}

	// The peer's liveness window expires after the election timeout.
	tc.CheckMemberTimeouts(testTime(time.Minute + DefaultElectionTimeout))
	if !tc.memberData[1].LastUpdateStale() {
		t.Fatalf("expected member marked stale after election timeout")
	}
}
