package repl

import (
	"testing"
	"time"
)

// upSecondary brings host up as a secondary with the given progress and
// smoothed ping, with enough ping history to pass the selection gate.
func upSecondary(tc *TopologyCoordinator, host string, applied OpTime, ping time.Duration) {
	receiveUpHeartbeat(tc, testTime(0), host, MemberStateSecondary, applied, 0)
	p := tc.pings[host]
	p.average = ping
	p.count = 2 * len(tc.memberData)
}

func TestTopologyCoordinator_ChooseNewSyncSource(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *TopologyCoordinator
		want  string
	}{
		{
			name: "prefers the candidate with the lowest ping",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				upSecondary(tc, "h1:27017", opTime(100, 0, 0), 50*time.Millisecond)
				upSecondary(tc, "h2:27017", opTime(100, 0, 0), 30*time.Millisecond)
				return tc
			},
			want: "h2:27017",
		},
		{
			name: "rejects a candidate lagging the primary beyond the bound",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStatePrimary, opTime(3005, 0, 0), 0)
				tc.pings["h1:27017"].average = 50 * time.Millisecond
				upSecondary(tc, "h2:27017", opTime(4, 0, 0), 30*time.Millisecond)
				return tc
			},
			want: "h1:27017",
		},
		{
			name: "skips hidden members while a visible candidate exists",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newTestCoordinator()
				cfg := threeNodeConfig(1)
				cfg.Members[1].Hidden = true
				tc.UpdateConfig(cfg, 0, testTime(0))
				tc.SetFollowerMode(MemberStateSecondary)
				upSecondary(tc, "h1:27017", opTime(100, 0, 0), 10*time.Millisecond)
				upSecondary(tc, "h2:27017", opTime(100, 0, 0), 30*time.Millisecond)
				return tc
			},
			want: "h2:27017",
		},
		{
			name: "falls back to a hidden member when nothing else qualifies",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newTestCoordinator()
				cfg := threeNodeConfig(1)
				cfg.Members[1].Hidden = true
				tc.UpdateConfig(cfg, 0, testTime(0))
				tc.SetFollowerMode(MemberStateSecondary)
				upSecondary(tc, "h1:27017", opTime(100, 0, 0), 10*time.Millisecond)
				return tc
			},
			want: "h1:27017",
		},
		{
			name: "never uses a source that does not build indexes",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newTestCoordinator()
				cfg := threeNodeConfig(1)
				cfg.Members[1].BuildIndexes = false
				tc.UpdateConfig(cfg, 0, testTime(0))
				tc.SetFollowerMode(MemberStateSecondary)
				upSecondary(tc, "h1:27017", opTime(100, 0, 0), 10*time.Millisecond)
				return tc
			},
			want: "",
		},
		{
			name: "ignores candidates at or behind what we already fetched",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				upSecondary(tc, "h1:27017", opTime(10, 0, 0), 10*time.Millisecond)
				return tc
			},
			want: "",
		},
		{
			name: "respects the blacklist",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				upSecondary(tc, "h1:27017", opTime(100, 0, 0), 50*time.Millisecond)
				upSecondary(tc, "h2:27017", opTime(100, 0, 0), 30*time.Millisecond)
				tc.BlacklistSyncSource("h2:27017", testTime(time.Minute))
				return tc
			},
			want: "h1:27017",
		},
		{
			name: "chaining disallowed syncs only from the primary",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newTestCoordinator()
				cfg := threeNodeConfig(1)
				cfg.Settings.ChainingAllowed = false
				tc.UpdateConfig(cfg, 0, testTime(0))
				tc.SetFollowerMode(MemberStateSecondary)
				upSecondary(tc, "h1:27017", opTime(100, 0, 0), 5*time.Millisecond)
				receiveUpHeartbeat(tc, testTime(0), "h2:27017", MemberStatePrimary, opTime(100, 0, 0), 0)
				return tc
			},
			want: "h2:27017",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := tt.setup(t)
			lastFetched := opTime(10, 0, 0)
			got := tc.ChooseNewSyncSource(testTime(time.Second), lastFetched, ChainingUseConfiguration)
			if got != tt.want {
				t.Fatalf("expected sync source %q, got %q", tt.want, got)
			}
			if tc.SyncSourceAddress() != tt.want {
				t.Fatalf("expected recorded sync source %q, got %q", tt.want, tc.SyncSourceAddress())
			}
		})
	}
}

func TestTopologyCoordinator_ChooseNewSyncSource_waitsForPingHistory(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, opTime(100, 0, 0), 0)
	receiveUpHeartbeat(tc, testTime(0), "h2:27017", MemberStateSecondary, opTime(100, 0, 0), 0)

	// One completed round per peer is not enough history to compare latency.
	if got := tc.ChooseNewSyncSource(testTime(time.Second), OpTime{}, ChainingUseConfiguration); got != "" {
		t.Fatalf("expected no sync source before enough pings, got %q", got)
	}

	receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, opTime(100, 0, 0), 0)
	receiveUpHeartbeat(tc, testTime(0), "h2:27017", MemberStateSecondary, opTime(100, 0, 0), 0)
	if got := tc.ChooseNewSyncSource(testTime(time.Second), OpTime{}, ChainingUseConfiguration); got == "" {
		t.Fatalf("expected a sync source once ping history accumulated")
	}
}

func TestTopologyCoordinator_ChooseNewSyncSource_blacklistExpires(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	upSecondary(tc, "h1:27017", opTime(100, 0, 0), 50*time.Millisecond)
	upSecondary(tc, "h2:27017", opTime(100, 0, 0), 30*time.Millisecond)
	tc.BlacklistSyncSource("h2:27017", testTime(time.Minute))

	if got := tc.ChooseNewSyncSource(testTime(time.Second), OpTime{}, ChainingUseConfiguration); got != "h1:27017" {
		t.Fatalf("expected blacklisted member avoided, got %q", got)
	}
	if got := tc.ChooseNewSyncSource(testTime(2*time.Minute), OpTime{}, ChainingUseConfiguration); got != "h2:27017" {
		t.Fatalf("expected blacklist to expire, got %q", got)
	}

	tc.BlacklistSyncSource("h2:27017", testTime(10*time.Minute))
	tc.UnblacklistSyncSource("h2:27017", testTime(3*time.Minute))
	if got := tc.ChooseNewSyncSource(testTime(3*time.Minute), OpTime{}, ChainingUseConfiguration); got != "h2:27017" {
		t.Fatalf("expected unblacklisted member usable, got %q", got)
	}
}

func TestTopologyCoordinator_forcedSyncSourceIsOneShot(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	upSecondary(tc, "h1:27017", opTime(100, 0, 0), 10*time.Millisecond)
	upSecondary(tc, "h2:27017", opTime(100, 0, 0), 50*time.Millisecond)

	warning, err := tc.PrepareSyncFromResponse("h2:27017", testTime(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning != "" {
		t.Fatalf("unexpected warning: %q", warning)
	}

	if got := tc.ChooseNewSyncSource(testTime(time.Second), OpTime{}, ChainingUseConfiguration); got != "h2:27017" {
		t.Fatalf("expected forced source honored, got %q", got)
	}
	// The override applies to a single selection only.
	if got := tc.ChooseNewSyncSource(testTime(time.Second), OpTime{}, ChainingUseConfiguration); got != "h1:27017" {
		t.Fatalf("expected normal selection after forced source consumed, got %q", got)
	}
}

func TestTopologyCoordinator_PrepareSyncFromResponse_validation(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) *TopologyCoordinator
		target string
		wantOK bool
	}{
		{
			name: "rejects syncing from self",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				return newSecondaryCoordinator(0)
			},
			target: "h0:27017",
		},
		{
			name: "rejects unknown member",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				return newSecondaryCoordinator(0)
			},
			target: "nosuch:27017",
		},
		{
			name: "rejects arbiter target",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newTestCoordinator()
				cfg := threeNodeConfig(1)
				cfg.Members[1].Arbiter = true
				tc.UpdateConfig(cfg, 0, testTime(0))
				tc.SetFollowerMode(MemberStateSecondary)
				return tc
			},
			target: "h1:27017",
		},
		{
			name: "rejects primary caller",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				tc.role = RoleLeader
				tc.leaderMode = LeaderModeMaster
				return tc
			},
			target: "h1:27017",
		},
		{
			name: "rejects unreachable target",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				return newSecondaryCoordinator(0)
			},
			target: "h1:27017",
		},
		{
			name: "accepts a reachable secondary",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				upSecondary(tc, "h1:27017", opTime(100, 0, 0), 10*time.Millisecond)
				return tc
			},
			target: "h1:27017",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := tt.setup(t)
			_, err := tc.PrepareSyncFromResponse(tt.target, testTime(0))
			if tt.wantOK && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Fatalf("expected error for target %q", tt.target)
			}
		})
	}
}

func TestTopologyCoordinator_PrepareSyncFromResponse_warnsWhenTargetLags(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(100, 0, 0), testTime(0), false)
	upSecondary(tc, "h1:27017", opTime(50, 0, 0), 10*time.Millisecond)

	warning, err := tc.PrepareSyncFromResponse("h1:27017", testTime(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning == "" {
		t.Fatalf("expected lag warning")
	}
}

func TestTopologyCoordinator_ShouldChangeSyncSource(t *testing.T) {
	meta := func(version int64, primaryIndex, syncSourceIndex int, visible OpTime) ReplSetMetadata {
		return ReplSetMetadata{
			ConfigVersion:       version,
			PrimaryIndex:        primaryIndex,
			SyncSourceIndex:     syncSourceIndex,
			LastOpVisible:       visible,
			LastCommittedOpTime: OpTimeAndWallTime{OpTime: visible},
		}
	}

	tests := []struct {
		name   string
		setup  func(t *testing.T) *TopologyCoordinator
		source string
		meta   ReplSetMetadata
		want   bool
	}{
		{
			name: "source no longer in config",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				return newSecondaryCoordinator(0)
			},
			source: "gone:27017",
			meta:   meta(1, -1, -1, opTime(10, 0, 0)),
			want:   true,
		},
		{
			name: "config version mismatch defers the decision",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				return newSecondaryCoordinator(0)
			},
			source: "h1:27017",
			meta:   meta(9, -1, -1, opTime(10, 0, 0)),
			want:   false,
		},
		{
			name: "source with no source of its own and no progress for us",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(100, 0, 0), testTime(0), false)
				return tc
			},
			source: "h1:27017",
			meta:   meta(1, -1, -1, opTime(100, 0, 0)),
			want:   true,
		},
		{
			name: "source that is itself primary is kept even without progress",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(100, 0, 0), testTime(0), false)
				return tc
			},
			source: "h1:27017",
			meta:   meta(1, 1, -1, opTime(100, 0, 0)),
			want:   false,
		},
		{
			name: "significantly fresher member triggers a switch",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				upSecondary(tc, "h2:27017", opTime(3005, 0, 0), 10*time.Millisecond)
				return tc
			},
			source: "h1:27017",
			meta:   meta(1, -1, 2, opTime(4, 0, 0)),
			want:   true,
		},
		{
			name: "fresher member that does not build indexes is not a switch target",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newTestCoordinator()
				cfg := threeNodeConfig(1)
				cfg.Members[2].BuildIndexes = false
				tc.UpdateConfig(cfg, 0, testTime(0))
				tc.SetFollowerMode(MemberStateSecondary)
				upSecondary(tc, "h2:27017", opTime(3005, 0, 0), 10*time.Millisecond)
				return tc
			},
			source: "h1:27017",
			meta:   meta(1, -1, 2, opTime(4, 0, 0)),
			want:   false,
		},
		{
			name: "fresher member within the lag bound does not trigger a switch",
			setup: func(t *testing.T) *TopologyCoordinator {
				t.Helper()
				tc := newSecondaryCoordinator(0)
				upSecondary(tc, "h2:27017", opTime(20, 0, 0), 10*time.Millisecond)
				return tc
			},
			source: "h1:27017",
			meta:   meta(1, -1, 2, opTime(4, 0, 0)),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := tt.setup(t)
			got := tc.ShouldChangeSyncSource(tt.source, tt.meta, nil, testTime(time.Second))
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
