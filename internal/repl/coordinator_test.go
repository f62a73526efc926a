package repl

import (
	"errors"
	"testing"
	"time"
)

func TestNewTopologyCoordinator(t *testing.T) {
	if _, err := NewTopologyCoordinator(DefaultOptions(), nil, nil); !errors.Is(err, ErrNilLogger) {
		t.Fatalf("expected ErrNilLogger, got %v", err)
	}

	tc := newTestCoordinator()
	if got := tc.Role(); got != RoleFollower {
		t.Fatalf("expected follower role, got %v", got)
	}
	if got := tc.MemberState(); got != MemberStateStartup {
		t.Fatalf("expected startup state before any config, got %v", got)
	}
	if got := tc.Term(); got != UninitializedTerm {
		t.Fatalf("expected uninitialized term, got %d", got)
	}
}

func TestTopologyCoordinator_UpdateConfig(t *testing.T) {
	t.Run("first install initializes the term", func(t *testing.T) {
		tc := newTestCoordinator()
		tc.UpdateConfig(threeNodeConfig(1), 0, testTime(0))
		if got := tc.Term(); got != InitialTerm {
			t.Fatalf("expected initial term, got %d", got)
		}
		if got := tc.SelfIndex(); got != 0 {
			t.Fatalf("expected self index 0, got %d", got)
		}
	})

	t.Run("reconfig preserves member data by id and host", func(t *testing.T) {
		tc := newSecondaryCoordinator(0)
		applied := opTime(50, 0, 1)
		receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, applied, 1)

		// Reorder the members; h1 moves to index 2.
		cfg := Config{
			SetName: "rs0",
			Version: 2,
			Members: []MemberConfig{
				testMember(0, "h0:27017"),
				testMember(2, "h2:27017"),
				testMember(1, "h1:27017"),
			},
			Settings: DefaultSettings(),
		}
		tc.UpdateConfig(cfg, 0, testTime(time.Second))

		snapshot := tc.MemberDataSnapshot()
		if got := snapshot[2].LastAppliedOpTime(); got != applied {
			t.Fatalf("expected h1's progress carried to its new slot, got %s", got.String())
		}
		if !snapshot[2].Up() {
			t.Fatalf("expected h1 still up after reconfig")
		}
		if snapshot[1].Up() {
			t.Fatalf("expected h2 still down after reconfig")
		}
	})

	t.Run("removal from the config", func(t *testing.T) {
		tc := newSecondaryCoordinator(0)
		cfg := Config{
			SetName: "rs0",
			Version: 2,
			Members: []MemberConfig{
				testMember(1, "h1:27017"),
				testMember(2, "h2:27017"),
			},
			Settings: DefaultSettings(),
		}
		tc.UpdateConfig(cfg, -1, testTime(0))
		if got := tc.MemberState(); got != MemberStateRemoved {
			t.Fatalf("expected removed state, got %v", got)
		}
		if got := tc.SyncSourceAddress(); got != "" {
			t.Fatalf("expected sync source cleared on removal, got %q", got)
		}
	})

	t.Run("single electable node becomes a candidate", func(t *testing.T) {
		tc := newTestCoordinator()
		cfg := Config{
			SetName:  "rs0",
			Version:  1,
			Members:  []MemberConfig{testMember(0, "h0:27017")},
			Settings: DefaultSettings(),
		}
		tc.UpdateConfig(cfg, 0, testTime(0))
		tc.SetFollowerMode(MemberStateSecondary)
		if got := tc.Role(); got != RoleCandidate {
			t.Fatalf("expected candidate role for a lone electable node, got %v", got)
		}
	})

	t.Run("primary stays primary when still electable", func(t *testing.T) {
		tc := newPrimaryCoordinator(t, opTime(5, 1, 1))
		tc.UpdateConfig(threeNodeConfig(2), 0, testTime(0))
		if got := tc.Role(); got != RoleLeader {
			t.Fatalf("expected to remain leader, got %v", got)
		}
		if got := tc.CurrentPrimaryIndex(); got != 0 {
			t.Fatalf("expected primary index 0, got %d", got)
		}
	})

	t.Run("primary steps down when made unelectable", func(t *testing.T) {
		tc := newPrimaryCoordinator(t, opTime(5, 1, 1))
		cfg := threeNodeConfig(2)
		cfg.Members[0].Priority = 0
		tc.UpdateConfig(cfg, 0, testTime(0))
		if got := tc.Role(); got != RoleFollower {
			t.Fatalf("expected demotion to follower, got %v", got)
		}
		if got := tc.CurrentPrimaryIndex(); got != -1 {
			t.Fatalf("expected unknown primary after demotion, got %d", got)
		}
	})
}

func TestTopologyCoordinator_SetLastOptime(t *testing.T) {
	applied := opTimeWall(100, 0, 1)
	durable := opTimeWall(90, 0, 1)

	tests := []struct {
		name         string
		args         UpdatePositionArgs
		wantAdvanced bool
		wantErr      bool
	}{
		{
			name: "advances member progress",
			args: UpdatePositionArgs{
				MemberID:      1,
				ConfigVersion: 1,
				AppliedOpTime: applied,
				DurableOpTime: durable,
			},
			wantAdvanced: true,
		},
		{
			name: "report about self is ignored",
			args: UpdatePositionArgs{
				MemberID:      0,
				ConfigVersion: 1,
				AppliedOpTime: applied,
				DurableOpTime: durable,
			},
		},
		{
			name: "config version mismatch",
			args: UpdatePositionArgs{
				MemberID:      1,
				ConfigVersion: 7,
				AppliedOpTime: applied,
			},
			wantErr: true,
		},
		{
			name: "unknown member",
			args: UpdatePositionArgs{
				MemberID:      42,
				ConfigVersion: 1,
				AppliedOpTime: applied,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newSecondaryCoordinator(0)
			advanced, err := tc.SetLastOptime(tt.args, testTime(0))
			if tt.wantErr {
				var upErr *UpdatePositionError
				if !errors.As(err, &upErr) {
					t.Fatalf("expected UpdatePositionError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if advanced != tt.wantAdvanced {
				t.Fatalf("advanced = %v, want %v", advanced, tt.wantAdvanced)
			}
		})
	}

	t.Run("not a member", func(t *testing.T) {
		tc := newTestCoordinator()
		_, err := tc.SetLastOptime(UpdatePositionArgs{MemberID: 1, ConfigVersion: 1}, testTime(0))
		if !errors.Is(err, ErrNotMember) {
			t.Fatalf("expected ErrNotMember, got %v", err)
		}
	})
}

func TestTopologyCoordinator_progressIsMonotonic(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(100, 0, 1), testTime(0), false)

	// Stale values do not move progress backwards.
	tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(50, 0, 1), testTime(0), false)
	if got := tc.MyLastAppliedOpTime(); got != opTime(100, 0, 1) {
		t.Fatalf("expected applied optime unchanged, got %s", got.String())
	}

	// During rollback the optime is explicitly allowed to rewind.
	tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(50, 0, 1), testTime(0), true)
	if got := tc.MyLastAppliedOpTime(); got != opTime(50, 0, 1) {
		t.Fatalf("expected applied optime rewound, got %s", got.String())
	}
}

func TestTopologyCoordinator_MemberState(t *testing.T) {
	t.Run("maintenance mode reports recovering", func(t *testing.T) {
		tc := newSecondaryCoordinator(0)
		tc.AdjustMaintenanceCount(1)
		if got := tc.MemberState(); got != MemberStateRecovering {
			t.Fatalf("expected recovering, got %v", got)
		}
		tc.AdjustMaintenanceCount(-1)
		if got := tc.MemberState(); got != MemberStateSecondary {
			t.Fatalf("expected secondary, got %v", got)
		}
	})

	t.Run("arbiter reports arbiter regardless of follower mode", func(t *testing.T) {
		tc := newTestCoordinator()
		cfg := threeNodeConfig(1)
		cfg.Members[0].Arbiter = true
		cfg.Members[0].Priority = 0
		tc.UpdateConfig(cfg, 0, testTime(0))
		if got := tc.MemberState(); got != MemberStateArbiter {
			t.Fatalf("expected arbiter, got %v", got)
		}
	})
}

func TestTopologyCoordinator_GetHostsWrittenTo(t *testing.T) {
	target := opTime(100, 0, 1)

	tc := newSecondaryCoordinator(0)
	tc.SetMyLastAppliedOpTimeAndWallTime(opTimeWall(100, 0, 1), testTime(0), false)
	receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, target, 1)

	hosts := tc.GetHostsWrittenTo(target, false)
	want := map[string]bool{"h0:27017": true, "h1:27017": true}
	if len(hosts) != len(want) {
		t.Fatalf("expected %d hosts, got %v", len(want), hosts)
	}
	for _, h := range hosts {
		if !want[h] {
			t.Fatalf("unexpected host %q in %v", h, hosts)
		}
	}
}

func TestTopologyCoordinator_LatestKnownOpTimeSinceRestart(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, opTime(10, 0, 1), 1)
	receiveUpHeartbeat(tc, testTime(0), "h2:27017", MemberStateSecondary, opTime(20, 0, 1), 1)

	tc.RestartHeartbeats()
	if _, ok := tc.LatestKnownOpTimeSinceRestart(); ok {
		t.Fatalf("expected no answer until all peers heartbeat again")
	}

	receiveUpHeartbeat(tc, testTime(time.Second), "h1:27017", MemberStateSecondary, opTime(30, 0, 1), 1)
	if _, ok := tc.LatestKnownOpTimeSinceRestart(); ok {
		t.Fatalf("expected no answer with one peer still unheard")
	}

	receiveUpHeartbeat(tc, testTime(time.Second), "h2:27017", MemberStateSecondary, opTime(25, 0, 1), 1)
	latest, ok := tc.LatestKnownOpTimeSinceRestart()
	if !ok {
		t.Fatalf("expected an answer once all peers reported")
	}
	if latest != opTime(30, 0, 1) {
		t.Fatalf("expected latest optime (30, 0), got %s", latest.String())
	}
}

func TestTopologyCoordinator_heartbeatMessageExpiry(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	tc.SetMyHeartbeatMessage(testTime(0), "still syncing")
	if got := tc.heartbeatMessage(testTime(time.Minute)); got != "still syncing" {
		t.Fatalf("expected message retained, got %q", got)
	}
	if got := tc.heartbeatMessage(testTime(3 * time.Minute)); got != "" {
		t.Fatalf("expected message expired, got %q", got)
	}
}
