package repl

import (
	"encoding/json"
	"testing"
	"time"
)

// Downstream tooling keys off field presence, so every documented key must
// survive marshaling even when no data was ever received for it.
func TestTopologyCoordinator_PrepareStatusResponse_rendersSentinelKeys(t *testing.T) {
	tc := newSecondaryCoordinator(0)

	resp, err := tc.PrepareStatusResponse(testTime(time.Hour), 30*time.Second)
	if err != nil {
		t.Fatalf("PrepareStatusResponse() error = %v", err)
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{
		"set", "date", "myState", "term", "syncingTo", "syncSourceHost",
		"syncSourceId", "heartbeatIntervalMillis", "majorityVoteCount",
		"writeMajorityCount", "optimes", "members",
	} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing set-wide key %q", key)
		}
	}
	if got := doc["syncingTo"]; got != "" {
		t.Errorf("syncingTo sentinel: want \"\", got %v", got)
	}
	if got := doc["syncSourceId"]; got != float64(-1) {
		t.Errorf("syncSourceId sentinel: want -1, got %v", got)
	}

	optimes, ok := doc["optimes"].(map[string]any)
	if !ok {
		t.Fatalf("optimes is not an object: %v", doc["optimes"])
	}
	for _, key := range []string{
		"lastCommittedOpTime", "lastCommittedWallTime", "appliedOpTime",
		"durableOpTime", "lastAppliedWallTime", "lastDurableWallTime",
	} {
		if _, ok := optimes[key]; !ok {
			t.Errorf("missing optimes key %q", key)
		}
	}

	members, ok := doc["members"].([]any)
	if !ok || len(members) != 3 {
		t.Fatalf("expected 3 member entries, got %v", doc["members"])
	}
	for _, m := range members {
		entry, ok := m.(map[string]any)
		if !ok {
			t.Fatalf("member entry is not an object: %v", m)
		}
		name := entry["name"]
		for _, key := range []string{
			"_id", "name", "health", "state", "stateStr", "uptime", "optime",
			"optimeDate", "syncingTo", "syncSourceHost", "syncSourceId",
			"infoMessage", "lastHeartbeatMessage", "configVersion",
		} {
			if _, ok := entry[key]; !ok {
				t.Errorf("member %v missing key %q", name, key)
			}
		}
		if entry["self"] == true {
			continue
		}
		// Peers never contacted still carry the heartbeat keys with
		// sentinel values.
		for _, key := range []string{"lastHeartbeat", "lastHeartbeatRecv", "pingMs"} {
			if _, ok := entry[key]; !ok {
				t.Errorf("member %v missing key %q", name, key)
			}
		}
		if got := entry["pingMs"]; got != float64(-1) {
			t.Errorf("member %v pingMs sentinel: want -1, got %v", name, got)
		}
		if got := entry["health"]; got != float64(-1) {
			t.Errorf("member %v health: want -1, got %v", name, got)
		}
		if got := entry["stateStr"]; got != unreachableStateStr {
			t.Errorf("member %v stateStr: want %q, got %v", name, unreachableStateStr, got)
		}
		if got := entry["lastHeartbeatMessage"]; got != "" {
			t.Errorf("member %v lastHeartbeatMessage sentinel: want \"\", got %v", name, got)
		}
	}
}

func TestTopologyCoordinator_PrepareStatusResponse_majorityCountsWithArbiters(t *testing.T) {
	arbiter := func(id int, host string) MemberConfig {
		m := testMember(id, host)
		m.Arbiter = true
		m.Priority = 0
		return m
	}
	tc := newTestCoordinator()
	cfg := Config{
		SetName: "rs0",
		Version: 1,
		Members: []MemberConfig{
			testMember(0, "h0:27017"),
			testMember(1, "h1:27017"),
			arbiter(2, "h2:27017"),
			arbiter(3, "h3:27017"),
		},
		Settings: DefaultSettings(),
	}
	tc.UpdateConfig(cfg, 0, testTime(0))
	tc.SetFollowerMode(MemberStateSecondary)

	resp, err := tc.PrepareStatusResponse(testTime(0), 0)
	if err != nil {
		t.Fatalf("PrepareStatusResponse() error = %v", err)
	}
	// Four voters need three votes to elect, but only the two data-bearing
	// members can acknowledge a write.
	if resp.MajorityVoteCount != 3 {
		t.Errorf("majorityVoteCount: want 3, got %d", resp.MajorityVoteCount)
	}
	if resp.WriteMajorityCount != 2 {
		t.Errorf("writeMajorityCount: want 2, got %d", resp.WriteMajorityCount)
	}
}

func TestTopologyCoordinator_PrepareStatusResponse_reportsSyncSource(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	upSecondary(tc, "h1:27017", opTime(100, 0, 0), 10*time.Millisecond)
	upSecondary(tc, "h2:27017", opTime(100, 0, 0), 30*time.Millisecond)
	if got := tc.ChooseNewSyncSource(testTime(time.Second), OpTime{}, ChainingUseConfiguration); got != "h1:27017" {
		t.Fatalf("expected h1 chosen, got %q", got)
	}

	resp, err := tc.PrepareStatusResponse(testTime(2*time.Second), time.Minute)
	if err != nil {
		t.Fatalf("PrepareStatusResponse() error = %v", err)
	}
	if resp.SyncingTo != "h1:27017" || resp.SyncSource != "h1:27017" {
		t.Errorf("set-wide sync source: want h1:27017, got %q / %q", resp.SyncingTo, resp.SyncSource)
	}
	if resp.SyncSourceID != 1 {
		t.Errorf("set-wide syncSourceId: want 1, got %d", resp.SyncSourceID)
	}
	self := resp.Members[0]
	if !self.Self {
		t.Fatalf("expected members[0] to be the self entry")
	}
	if self.SyncingTo != "h1:27017" || self.SyncSourceID != 1 {
		t.Errorf("self sync source: want h1:27017/1, got %q/%d", self.SyncingTo, self.SyncSourceID)
	}
}
