package repl

import "time"

// Health of a peer as derived from heartbeat history.
type Health int

// Health values. HealthNeverContacted means no heartbeat has ever completed;
// none of the record's other fields carry meaning in that case.
const (
	HealthNeverContacted Health = -1
	HealthDown           Health = 0
	HealthUp             Health = 1
)

// MemberData is the per-peer heartbeat record: the latest known liveness,
// state, and progress data for one configured member. Records are addressed
// by config index and rebuilt on every reconfig.
type MemberData struct {
	configIndex int
	memberID    int
	host        string
	isSelf      bool

	health             Health
	upSince            time.Time
	lastHeartbeat      time.Time // when our last heartbeat to this member completed
	lastHeartbeatRecv  time.Time // when we last received a heartbeat from this member
	lastHeartbeatMsg   string
	authIssue          bool
	state              MemberState
	electionTime       Timestamp
	configVersion      int64
	syncSource         string
	appliedOpTime      OpTime
	appliedWallTime    time.Time
	durableOpTime      OpTime
	durableWallTime    time.Time
	lastUpdate         time.Time
	lastUpdateStale    bool
	updatedSinceRestart bool
}

func newMemberData() MemberData {
	return MemberData{
		health:        HealthNeverContacted,
		state:         MemberStateUnknown,
		configVersion: ConfigVersionUninitialized,
	}
}

// ConfigIndex returns the config index this record is bound to, -1 for a
// self record outside the config.
func (m *MemberData) ConfigIndex() int { return m.configIndex }

// MemberID returns the configured member ID.
func (m *MemberData) MemberID() int { return m.memberID }

// Host returns the member's address.
func (m *MemberData) Host() string { return m.host }

// IsSelf reports whether the record describes the local node.
func (m *MemberData) IsSelf() bool { return m.isSelf }

// Up reports whether the member is currently considered reachable.
func (m *MemberData) Up() bool { return m.health == HealthUp }

// Health returns the member's health classification.
func (m *MemberData) Health() Health { return m.health }

// State returns the member's last reported state, MemberStateUnknown if the
// member has never been contacted.
func (m *MemberData) State() MemberState { return m.state }

// LastAppliedOpTime returns the member's last reported applied optime.
func (m *MemberData) LastAppliedOpTime() OpTime { return m.appliedOpTime }

// LastAppliedOpTimeAndWallTime returns applied progress with its wall time.
func (m *MemberData) LastAppliedOpTimeAndWallTime() OpTimeAndWallTime {
	return OpTimeAndWallTime{OpTime: m.appliedOpTime, WallTime: m.appliedWallTime}
}

// LastDurableOpTime returns the member's last reported durable optime.
func (m *MemberData) LastDurableOpTime() OpTime { return m.durableOpTime }

// LastDurableOpTimeAndWallTime returns durable progress with its wall time.
func (m *MemberData) LastDurableOpTimeAndWallTime() OpTimeAndWallTime {
	return OpTimeAndWallTime{OpTime: m.durableOpTime, WallTime: m.durableWallTime}
}

// SyncSource returns the host this member reports replicating from.
func (m *MemberData) SyncSource() string { return m.syncSource }

// ElectionTime is set only while the member reports itself primary.
func (m *MemberData) ElectionTime() Timestamp { return m.electionTime }

// ConfigVersion is the config version the member last reported.
func (m *MemberData) ConfigVersion() int64 { return m.configVersion }

// LastHeartbeat returns when our last heartbeat round to this member
// completed (success or final failure).
func (m *MemberData) LastHeartbeat() time.Time { return m.lastHeartbeat }

// LastHeartbeatRecv returns when this member last heartbeat us.
func (m *MemberData) LastHeartbeatRecv() time.Time { return m.lastHeartbeatRecv }

// LastHeartbeatMessage is the status message from the last heartbeat
// exchange, or the failure reason when the member is down.
func (m *MemberData) LastHeartbeatMessage() string { return m.lastHeartbeatMsg }

// HasAuthIssue reports that the last failure was an authorization failure.
func (m *MemberData) HasAuthIssue() bool { return m.authIssue }

// UpSince returns when the member was last observed transitioning to up.
func (m *MemberData) UpSince() time.Time { return m.upSince }

// LastUpdate returns the last time any liveness information arrived for
// this member.
func (m *MemberData) LastUpdate() time.Time { return m.lastUpdate }

// LastUpdateStale reports that the liveness window has expired without news.
func (m *MemberData) LastUpdateStale() bool { return m.lastUpdateStale }

// Term returns the term in the member's last reported applied optime.
func (m *MemberData) Term() int64 { return m.appliedOpTime.Term }

// setUpValues installs the contents of a successful heartbeat response and
// reports whether the member's applied or durable optime advanced.
func (m *MemberData) setUpValues(now time.Time, hb *HeartbeatResponse) bool {
	m.health = HealthUp
	if m.upSince.IsZero() {
		m.upSince = now
	}
	m.lastHeartbeat = now
	m.lastUpdate = now
	m.lastUpdateStale = false
	m.updatedSinceRestart = true
	m.authIssue = false
	m.lastHeartbeatMsg = hb.HeartbeatMessage

	if hb.State != MemberStateUnknown {
		m.state = hb.State
	}
	if hb.State == MemberStatePrimary {
		m.electionTime = hb.ElectionTime
	} else {
		m.electionTime = Timestamp{}
	}
	m.configVersion = hb.ConfigVersion
	m.syncSource = hb.SyncSource

	advanced := false
	if m.appliedOpTime.Before(hb.AppliedOpTime.OpTime) {
		m.appliedOpTime = hb.AppliedOpTime.OpTime
		m.appliedWallTime = hb.AppliedOpTime.WallTime
		advanced = true
	}
	if m.durableOpTime.Before(hb.DurableOpTime.OpTime) {
		m.durableOpTime = hb.DurableOpTime.OpTime
		m.durableWallTime = hb.DurableOpTime.WallTime
		advanced = true
	}
	return advanced
}

// setDownValues marks the member unreachable, keeping only the failure
// reason. Progress fields are cleared: stale data from a down member must not
// influence decisions.
func (m *MemberData) setDownValues(now time.Time, reason string) {
	m.health = HealthDown
	m.state = MemberStateDown
	m.upSince = time.Time{}
	m.lastHeartbeat = now
	m.lastHeartbeatMsg = reason
	m.syncSource = ""
	m.electionTime = Timestamp{}
	m.appliedOpTime = OpTime{}
	m.appliedWallTime = time.Time{}
	m.durableOpTime = OpTime{}
	m.durableWallTime = time.Time{}
}

// setAuthIssue marks the last failure as an authorization problem. The
// member is treated as unhealthy but distinctly from down.
func (m *MemberData) setAuthIssue(now time.Time) {
	m.health = HealthDown
	m.state = MemberStateUnknown
	m.upSince = time.Time{}
	m.lastHeartbeat = now
	m.lastHeartbeatMsg = ""
	m.authIssue = true
	m.syncSource = ""
}

// advanceLastAppliedOpTime applies a progress report, ignoring regressions,
// and reports whether the optime advanced.
func (m *MemberData) advanceLastAppliedOpTime(v OpTimeAndWallTime, now time.Time) bool {
	if !m.appliedOpTime.Before(v.OpTime) {
		return false
	}
	m.appliedOpTime = v.OpTime
	m.appliedWallTime = v.WallTime
	m.lastUpdate = now
	m.lastUpdateStale = false
	return true
}

// advanceLastDurableOpTime is the durable-progress counterpart of
// advanceLastAppliedOpTime.
func (m *MemberData) advanceLastDurableOpTime(v OpTimeAndWallTime, now time.Time) bool {
	if !m.durableOpTime.Before(v.OpTime) {
		return false
	}
	m.durableOpTime = v.OpTime
	m.durableWallTime = v.WallTime
	m.lastUpdate = now
	m.lastUpdateStale = false
	return true
}

// setLastAppliedOpTime overwrites applied progress; used only for the self
// record, where regressions are validated by the caller.
func (m *MemberData) setLastAppliedOpTime(v OpTimeAndWallTime, now time.Time) {
	m.appliedOpTime = v.OpTime
	m.appliedWallTime = v.WallTime
	m.lastUpdate = now
	m.lastUpdateStale = false
}

// setLastDurableOpTime overwrites durable progress on the self record.
func (m *MemberData) setLastDurableOpTime(v OpTimeAndWallTime, now time.Time) {
	m.durableOpTime = v.OpTime
	m.durableWallTime = v.WallTime
	m.lastUpdate = now
	m.lastUpdateStale = false
}

// updateLiveness records that fresh information arrived for this member.
func (m *MemberData) updateLiveness(now time.Time) {
	m.lastUpdate = now
	m.lastUpdateStale = false
}

// markLastUpdateStale flags the member as having missed its liveness window.
func (m *MemberData) markLastUpdateStale() { m.lastUpdateStale = true }

// restart clears the updated-since-restart flag; used when heartbeat history
// is intentionally discarded.
func (m *MemberData) restart() { m.updatedSinceRestart = false }

// UpdatedSinceRestart reports whether a heartbeat completed since the last
// restartHeartbeats call.
func (m *MemberData) UpdatedSinceRestart() bool { return m.updatedSinceRestart }
