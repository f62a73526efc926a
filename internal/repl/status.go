package repl

import (
	"time"
)

// MemberStatus is one member's entry in the status document. Every key is
// rendered for every member; data never received is represented by the
// documented sentinels (empty string, -1, zero time) rather than omitted.
type MemberStatus struct {
	ID           int    `json:"_id"`
	Name         string `json:"name"`
	Health       int    `json:"health"`
	State        int    `json:"state"`
	StateStr     string `json:"stateStr"`
	Uptime       int64  `json:"uptime"`
	OpTime       OpTime `json:"optime"`
	OpTimeDate   string `json:"optimeDate"`
	SyncingTo    string `json:"syncingTo"`
	SyncSource   string `json:"syncSourceHost"`
	SyncSourceID int    `json:"syncSourceId"`
	InfoMessage  string `json:"infoMessage"`
	Self         bool   `json:"self,omitempty"`

	// Heartbeat fields are rendered for every member but self. PingMillis
	// is -1 until the first round trip completes; the timestamps stay at
	// their zero value until the corresponding exchange happens.
	LastHeartbeat        *time.Time `json:"lastHeartbeat,omitempty"`
	LastHeartbeatRecv    *time.Time `json:"lastHeartbeatRecv,omitempty"`
	PingMillis           *int64     `json:"pingMs,omitempty"`
	LastHeartbeatMessage string     `json:"lastHeartbeatMessage"`

	// ElectionTime is set only for a member reporting itself primary.
	ElectionTime *Timestamp `json:"electionTime,omitempty"`

	ConfigVersion int64 `json:"configVersion"`
}

// StatusOptimes is the set-wide progress block of the status document.
type StatusOptimes struct {
	LastCommittedOpTime   OpTime    `json:"lastCommittedOpTime"`
	LastCommittedWallTime time.Time `json:"lastCommittedWallTime"`
	AppliedOpTime         OpTime    `json:"appliedOpTime"`
	DurableOpTime         OpTime    `json:"durableOpTime"`
	LastAppliedWallTime   time.Time `json:"lastAppliedWallTime"`
	LastDurableWallTime   time.Time `json:"lastDurableWallTime"`
}

// StatusResponse is the full status document served to operators.
type StatusResponse struct {
	Set                     string         `json:"set"`
	Date                    time.Time      `json:"date"`
	MyState                 int            `json:"myState"`
	Term                    int64          `json:"term"`
	SyncingTo               string         `json:"syncingTo"`
	SyncSource              string         `json:"syncSourceHost"`
	SyncSourceID            int            `json:"syncSourceId"`
	HeartbeatIntervalMillis int64          `json:"heartbeatIntervalMillis"`
	MajorityVoteCount       int            `json:"majorityVoteCount"`
	WriteMajorityCount      int            `json:"writeMajorityCount"`
	Optimes                 StatusOptimes  `json:"optimes"`
	Members                 []MemberStatus `json:"members"`
}

// unreachableStateStr replaces the state name for members we cannot see.
const unreachableStateStr = "(not reachable/healthy)"

// PrepareStatusResponse renders the node's view of the set. selfUptime is the
// process uptime reported for the self entry.
func (tc *TopologyCoordinator) PrepareStatusResponse(now time.Time, selfUptime time.Duration) (*StatusResponse, error) {
	if tc.cfg.IsInitialized() && tc.selfIndex == -1 {
		return nil, ErrInvalidConfig
	}

	resp := &StatusResponse{
		Set:                     tc.cfg.SetName,
		Date:                    now,
		MyState:                 int(tc.MemberState()),
		Term:                    tc.term,
		SyncSourceID:            -1,
		HeartbeatIntervalMillis: tc.heartbeatInterval().Milliseconds(),
		MajorityVoteCount:       tc.cfg.MajorityVoteCount(),
		WriteMajorityCount:      tc.cfg.WriteMajority(),
		Optimes: StatusOptimes{
			LastCommittedOpTime:   tc.lastCommitted.OpTime,
			LastCommittedWallTime: tc.lastCommitted.WallTime,
		},
	}
	if tc.selfIndex != -1 && !tc.iAmPrimary() {
		resp.SyncingTo = tc.syncSource
		resp.SyncSource = tc.syncSource
		resp.SyncSourceID = tc.syncSourceMemberID(tc.syncSource)
	}
	if !tc.cfg.IsInitialized() {
		return resp, nil
	}

	applied := tc.MyLastAppliedOpTimeAndWallTime()
	durable := tc.MyLastDurableOpTimeAndWallTime()
	resp.Optimes.AppliedOpTime = applied.OpTime
	resp.Optimes.LastAppliedWallTime = applied.WallTime
	resp.Optimes.DurableOpTime = durable.OpTime
	resp.Optimes.LastDurableWallTime = durable.WallTime

	for i := range tc.memberData {
		md := &tc.memberData[i]
		mc := tc.cfg.MemberAt(i)
		entry := MemberStatus{
			ID:            mc.ID,
			Name:          mc.Host,
			State:         int(md.State()),
			StateStr:      md.State().String(),
			OpTime:        md.LastAppliedOpTime(),
			SyncSourceID:  -1,
			ConfigVersion: md.ConfigVersion(),
		}
		if !md.LastAppliedOpTime().IsNull() {
			entry.OpTimeDate = time.Unix(int64(md.LastAppliedOpTime().Timestamp.Secs), 0).UTC().Format(time.RFC3339)
		}

		if md.IsSelf() {
			entry.Self = true
			entry.Health = 1
			entry.State = int(tc.MemberState())
			entry.StateStr = tc.MemberState().String()
			entry.Uptime = int64(selfUptime / time.Second)
			entry.OpTime = tc.MyLastAppliedOpTime()
			entry.InfoMessage = tc.heartbeatMessage(now)
			entry.ConfigVersion = tc.cfg.Version
			if tc.iAmPrimary() {
				et := tc.electionTime
				entry.ElectionTime = &et
			} else {
				entry.SyncingTo = tc.syncSource
				entry.SyncSource = tc.syncSource
				entry.SyncSourceID = tc.syncSourceMemberID(tc.syncSource)
			}
		} else {
			entry.Health = int(md.Health())
			if md.Up() {
				entry.Uptime = int64(now.Sub(md.UpSince()) / time.Second)
			} else {
				entry.StateStr = unreachableStateStr
			}
			if md.SyncSource() != "" && md.State() != MemberStatePrimary {
				entry.SyncingTo = md.SyncSource()
				entry.SyncSource = md.SyncSource()
				entry.SyncSourceID = tc.syncSourceMemberID(md.SyncSource())
			}
			hb := md.LastHeartbeat()
			entry.LastHeartbeat = &hb
			hbRecv := md.LastHeartbeatRecv()
			entry.LastHeartbeatRecv = &hbRecv
			entry.LastHeartbeatMessage = md.LastHeartbeatMessage()
			pingMillis := int64(-1)
			if p, ok := tc.pings[mc.Host]; ok && p.millis() != uninitializedPing {
				pingMillis = p.millis().Milliseconds()
			}
			entry.PingMillis = &pingMillis
			if md.State() == MemberStatePrimary {
				et := md.ElectionTime()
				entry.ElectionTime = &et
			}
		}
		resp.Members = append(resp.Members, entry)
	}
	return resp, nil
}

// syncSourceMemberID resolves a sync source host to its member ID, -1 when
// the host is not in the config.
func (tc *TopologyCoordinator) syncSourceMemberID(host string) int {
	if i := tc.cfg.FindMemberIndexByHost(host); i != -1 {
		return tc.cfg.MemberAt(i).ID
	}
	return -1
}

// PrepareReplSetMetadata builds the consensus metadata attached to outgoing
// replication traffic. lastVisibleOpTime is the newest operation visible to
// the requesting reader.
func (tc *TopologyCoordinator) PrepareReplSetMetadata(lastVisibleOpTime OpTime) ReplSetMetadata {
	return ReplSetMetadata{
		Term:                tc.term,
		LastCommittedOpTime: tc.lastCommitted,
		LastOpVisible:       lastVisibleOpTime,
		ConfigVersion:       tc.cfg.Version,
		PrimaryIndex:        tc.currentPrimaryIndex,
		SyncSourceIndex:     tc.cfg.FindMemberIndexByHost(tc.syncSource),
	}
}

// PrepareOplogQueryMetadata builds the per-query metadata a sync source hands
// back with every batch.
func (tc *TopologyCoordinator) PrepareOplogQueryMetadata() OplogQueryMetadata {
	return OplogQueryMetadata{
		LastCommittedOpTime: tc.lastCommitted,
		LastOpApplied:       tc.MyLastAppliedOpTime(),
		PrimaryIndex:        tc.currentPrimaryIndex,
		SyncSourceIndex:     tc.cfg.FindMemberIndexByHost(tc.syncSource),
	}
}
