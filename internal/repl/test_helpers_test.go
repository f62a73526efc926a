package repl

import (
	"log/slog"
	"time"
)

// testEpoch is the base wall clock used by the tests; all scenario times are
// offsets from it.
var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testTime(offset time.Duration) time.Time {
	return testEpoch.Add(offset)
}

func newTestCoordinator() *TopologyCoordinator {
	tc, err := NewTopologyCoordinator(DefaultOptions(), slog.Default(), nil)
	if err != nil {
		panic(err)
	}
	return tc
}

func testMember(id int, host string) MemberConfig {
	return MemberConfig{
		ID:           id,
		Host:         host,
		Priority:     1,
		Votes:        1,
		BuildIndexes: true,
	}
}

func threeNodeConfig(version int64) Config {
	return Config{
		SetName: "rs0",
		Version: version,
		Members: []MemberConfig{
			testMember(0, "h0:27017"),
			testMember(1, "h1:27017"),
			testMember(2, "h2:27017"),
		},
		Settings: DefaultSettings(),
	}
}

// newSecondaryCoordinator installs a three node config with self at index 0
// and puts the node into secondary mode.
func newSecondaryCoordinator(selfIndex int) *TopologyCoordinator {
	tc := newTestCoordinator()
	tc.UpdateConfig(threeNodeConfig(1), selfIndex, testTime(0))
	tc.SetFollowerMode(MemberStateSecondary)
	return tc
}

func opTime(secs, inc uint32, term int64) OpTime {
	return OpTime{Timestamp: Timestamp{Secs: secs, Inc: inc}, Term: term}
}

func opTimeWall(secs, inc uint32, term int64) OpTimeAndWallTime {
	return OpTimeAndWallTime{
		OpTime:   opTime(secs, inc, term),
		WallTime: time.Unix(int64(secs), 0).UTC(),
	}
}

func heartbeatOK(state MemberState, applied OpTime, term int64) HeartbeatResult {
	return HeartbeatResult{
		Response: &HeartbeatResponse{
			SetName:       "rs0",
			State:         state,
			AppliedOpTime: OpTimeAndWallTime{OpTime: applied},
			DurableOpTime: OpTimeAndWallTime{OpTime: applied},
			PrimaryID:     -1,
			Term:          term,
			ConfigVersion: 1,
		},
	}
}

func heartbeatErr(kind HeartbeatFailureKind, message string) HeartbeatResult {
	return HeartbeatResult{Failure: &HeartbeatFailure{Kind: kind, Message: message}}
}

// receiveUpHeartbeat digests one successful heartbeat from host, bringing it
// up with the given state and progress.
func receiveUpHeartbeat(tc *TopologyCoordinator, now time.Time, host string, state MemberState, applied OpTime, term int64) Action {
	tc.PrepareHeartbeatRequest(now, host)
	return tc.ProcessHeartbeatResponse(now, 10*time.Millisecond, host, heartbeatOK(state, applied, term))
}
