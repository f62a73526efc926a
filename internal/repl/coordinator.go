// Package repl contains the topology and consensus core of a replica set
// member: per-peer heartbeat bookkeeping, sync source selection, term and
// vote arbitration, election triggers, and the step-down protocol.
//
// The TopologyCoordinator is driven by a single logical thread of control
// owned by the replication engine. None of its methods block, sleep, or
// perform I/O; every call is a pure state transition over in-memory
// structures that returns immediately, so the whole component can be tested
// as a deterministic function of (state, event) -> (state', action).
// Transport and timer wiring is intentionally kept outside this package.
package repl

import (
	"fmt"
	"time"
)

// Logger is the logging interface required by the coordinator; pass a
// slog-compatible implementation.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Options are process-level tunables that are not part of the replica set
// configuration document.
type Options struct {
	// MaxSyncSourceLag disqualifies sync source candidates that lag the
	// freshest known member by more than this much.
	MaxSyncSourceLag time.Duration

	// PriorityTakeoverFreshnessWindow bounds how far behind the freshest
	// member a node may be and still call for a priority takeover.
	PriorityTakeoverFreshnessWindow time.Duration
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		MaxSyncSourceLag:                30 * time.Second,
		PriorityTakeoverFreshnessWindow: 2 * time.Second,
	}
}

// TopologyCoordinator is the single stateful consensus object of a replica
// set member. It owns the node's member-state classification, its view of
// every peer, and all election and step-down bookkeeping. It is exclusively
// owned by the replication engine, which serializes all calls into it.
type TopologyCoordinator struct {
	options Options
	logger  Logger
	metrics Metrics

	role       Role
	leaderMode LeaderMode

	// followerMode is the externally requested state while in RoleFollower:
	// one of Startup2, Secondary, Recovering, Rollback.
	followerMode MemberState

	term int64

	cfg       Config
	selfIndex int

	memberData []MemberData
	pings      map[string]*pingStats

	currentPrimaryIndex  int
	forceSyncSourceIndex int
	syncSource           string
	syncSourceBlacklist  map[string]time.Time

	lastVote           LastVote
	lastDryRunVoteTerm int64

	electionTime Timestamp
	electionID   string

	maintenanceModeCalls int

	stepDownUntil     time.Time
	electionSleepUntil time.Time

	firstOpTimeOfMyTerm OpTime
	lastCommitted       OpTimeAndWallTime

	hbMessage     string
	hbMessageTime time.Time
}

// NewTopologyCoordinator creates a coordinator with no installed config. The
// node reports MemberStateStartup until UpdateConfig is called.
func NewTopologyCoordinator(options Options, logger Logger, metrics Metrics) (*TopologyCoordinator, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	tc := &TopologyCoordinator{
		options:              options,
		logger:               logger,
		metrics:              metrics,
		role:                 RoleFollower,
		leaderMode:           LeaderModeNotLeader,
		followerMode:         MemberStateStartup2,
		term:                 UninitializedTerm,
		selfIndex:            -1,
		currentPrimaryIndex:  -1,
		forceSyncSourceIndex: -1,
		pings:                make(map[string]*pingStats),
		syncSourceBlacklist:  make(map[string]time.Time),
		lastVote:             LastVote{Term: UninitializedTerm, CandidateIndex: -1},
		lastDryRunVoteTerm:   UninitializedTerm,
	}
	// The member data array always has an entry for self, even before a
	// config is installed.
	self := newMemberData()
	self.isSelf = true
	self.configIndex = -1
	tc.memberData = append(tc.memberData, self)
	return tc, nil
}

// Role returns the coordinator's election role.
func (tc *TopologyCoordinator) Role() Role { return tc.role }

// Term returns the node's current term.
func (tc *TopologyCoordinator) Term() int64 { return tc.term }

// Config returns the installed configuration snapshot.
func (tc *TopologyCoordinator) Config() Config { return tc.cfg }

// SelfIndex returns this node's index in the installed config, -1 if the
// node is not a member.
func (tc *TopologyCoordinator) SelfIndex() int { return tc.selfIndex }

// CurrentPrimaryIndex returns the config index of the member this node
// believes to be primary, -1 when unknown.
func (tc *TopologyCoordinator) CurrentPrimaryIndex() int { return tc.currentPrimaryIndex }

// SetPrimaryIndex overrides the known primary index; used by the engine when
// external information (metadata from a sync source) identifies the primary.
func (tc *TopologyCoordinator) SetPrimaryIndex(primaryIndex int) {
	tc.currentPrimaryIndex = primaryIndex
}

// MemberState classifies the local node.
func (tc *TopologyCoordinator) MemberState() MemberState {
	if tc.selfIndex == -1 {
		if tc.cfg.IsInitialized() {
			return MemberStateRemoved
		}
		return MemberStateStartup
	}
	if tc.role == RoleLeader {
		return MemberStatePrimary
	}
	if tc.selfConfig().Arbiter {
		return MemberStateArbiter
	}
	if (tc.maintenanceModeCalls > 0 || tc.hasOnlyAuthErrorUpHeartbeats()) &&
		tc.followerMode == MemberStateSecondary {
		return MemberStateRecovering
	}
	return tc.followerMode
}

// CanAcceptWrites reports whether the node is a fully transitioned,
// non-stepping-down primary.
func (tc *TopologyCoordinator) CanAcceptWrites() bool {
	return tc.leaderMode == LeaderModeMaster
}

// ElectionTime returns the election timestamp of the current leadership, the
// zero Timestamp when not primary.
func (tc *TopologyCoordinator) ElectionTime() Timestamp { return tc.electionTime }

// ElectionID returns the opaque ID minted for the current leadership.
func (tc *TopologyCoordinator) ElectionID() string { return tc.electionID }

// StepDownUntil returns the end of the current post-step-down freeze window.
func (tc *TopologyCoordinator) StepDownUntil() time.Time { return tc.stepDownUntil }

// LastVote returns the durable record of the last real vote cast.
func (tc *TopologyCoordinator) LastVote() LastVote { return tc.lastVote }

// LoadLastVote restores the persisted vote record at startup.
func (tc *TopologyCoordinator) LoadLastVote(lastVote LastVote) {
	tc.lastVote = lastVote
}

// SetTermForRecovery restores the persisted term at startup. It must not be
// used after the node starts processing events; term changes go through
// UpdateTerm and the election path.
func (tc *TopologyCoordinator) SetTermForRecovery(term int64) {
	tc.term = term
}

func (tc *TopologyCoordinator) selfConfig() *MemberConfig {
	return tc.cfg.MemberAt(tc.selfIndex)
}

// selfMemberDataIndex is the index of the self record in memberData: the
// self config index, or 0 when the node is outside the config (the array
// then holds only the self record).
func (tc *TopologyCoordinator) selfMemberDataIndex() int {
	if tc.selfIndex >= 0 {
		return tc.selfIndex
	}
	return 0
}

func (tc *TopologyCoordinator) selfMemberData() *MemberData {
	return &tc.memberData[tc.selfMemberDataIndex()]
}

// MemberDataSnapshot returns a copy of the per-member heartbeat records.
func (tc *TopologyCoordinator) MemberDataSnapshot() []MemberData {
	out := make([]MemberData, len(tc.memberData))
	copy(out, tc.memberData)
	return out
}

// --- reconfig ---

// UpdateConfig atomically installs a new configuration snapshot and this
// node's index within it. selfIndex -1 means the node has been removed.
// Heartbeat records are rebuilt to match the new member list; accumulated
// term and vote state is preserved.
func (tc *TopologyCoordinator) UpdateConfig(newConfig Config, selfIndex int, now time.Time) {
	// On first config install, leave the uninitialized term behind.
	if !tc.cfg.IsInitialized() {
		tc.term = InitialTerm
		tc.logger.Debug("initialized term due to first config", "term", tc.term)
	}

	tc.rebuildMemberDataForReconfig(newConfig, selfIndex, now)
	tc.cfg = newConfig
	tc.selfIndex = selfIndex
	tc.forceSyncSourceIndex = -1

	if tc.role == RoleLeader {
		switch {
		case tc.selfIndex == -1:
			tc.logger.Info("could not remain primary because no longer a member of the replica set")
		case !tc.selfConfig().IsElectable():
			tc.logger.Info("could not remain primary because no longer electable")
		default:
			// Still primary under the new config.
			tc.currentPrimaryIndex = tc.selfIndex
			return
		}
		tc.role = RoleFollower
		tc.leaderMode = LeaderModeNotLeader
	}

	// Force a re-detection of who the primary is.
	tc.currentPrimaryIndex = -1

	if tc.isElectableSingleNodeSet() {
		// A one-node electable set has no heartbeats to promote it; go
		// straight to candidate.
		tc.role = RoleCandidate
	}
}

func (tc *TopologyCoordinator) rebuildMemberDataForReconfig(newConfig Config, selfIndex int, now time.Time) {
	old := tc.memberData
	tc.memberData = nil

	for index := range newConfig.Members {
		mc := &newConfig.Members[index]
		record := newMemberData()
		for i := range old {
			if (old[i].memberID == mc.ID && old[i].host == mc.Host) ||
				(index == selfIndex && old[i].isSelf) {
				record = old[i]
				break
			}
		}
		record.configIndex = index
		record.isSelf = index == selfIndex
		record.host = mc.Host
		record.memberID = mc.ID
		tc.memberData = append(tc.memberData, record)
	}

	if selfIndex < 0 {
		// Keep self data even outside the config; drop everything else.
		record := newMemberData()
		for i := range old {
			if old[i].isSelf {
				record = old[i]
				break
			}
		}
		record.configIndex = -1
		record.isSelf = true
		tc.memberData = []MemberData{record}
		tc.syncSource = ""
	}
}

func (tc *TopologyCoordinator) isElectableSingleNodeSet() bool {
	return tc.followerMode == MemberStateSecondary && tc.cfg.NumMembers() == 1 &&
		tc.selfIndex == 0 && tc.cfg.MemberAt(0).IsElectable() && tc.maintenanceModeCalls == 0
}

// --- follower mode and maintenance ---

// SetFollowerMode selects the externally driven follower state. Only legal
// while the node is not leader; illegal modes are ignored with a log.
func (tc *TopologyCoordinator) SetFollowerMode(newMode MemberState) {
	switch newMode {
	case MemberStateRecovering, MemberStateRollback, MemberStateSecondary, MemberStateStartup2:
		tc.followerMode = newMode
	default:
		tc.logger.Error("ignoring invalid follower mode", "mode", newMode.String())
		return
	}
	if tc.followerMode == MemberStateSecondary && tc.isElectableSingleNodeSet() {
		// A single node set has no heartbeats that would promote us.
		tc.role = RoleCandidate
	}
}

// AdjustMaintenanceCount adds inc (which may be negative) to the maintenance
// mode counter. While the counter is positive a secondary reports itself
// Recovering.
func (tc *TopologyCoordinator) AdjustMaintenanceCount(inc int) {
	tc.maintenanceModeCalls += inc
	if tc.maintenanceModeCalls < 0 {
		tc.logger.Error("maintenance mode count went negative, clamping", "count", tc.maintenanceModeCalls)
		tc.maintenanceModeCalls = 0
	}
}

// MaintenanceCount returns the current maintenance mode counter.
func (tc *TopologyCoordinator) MaintenanceCount() int { return tc.maintenanceModeCalls }

// --- local progress ---

// MyLastAppliedOpTime returns the node's own applied optime.
func (tc *TopologyCoordinator) MyLastAppliedOpTime() OpTime {
	return tc.selfMemberData().LastAppliedOpTime()
}

// MyLastAppliedOpTimeAndWallTime returns applied progress with wall time.
func (tc *TopologyCoordinator) MyLastAppliedOpTimeAndWallTime() OpTimeAndWallTime {
	return tc.selfMemberData().LastAppliedOpTimeAndWallTime()
}

// MyLastDurableOpTime returns the node's own durable optime.
func (tc *TopologyCoordinator) MyLastDurableOpTime() OpTime {
	return tc.selfMemberData().LastDurableOpTime()
}

// MyLastDurableOpTimeAndWallTime returns durable progress with wall time.
func (tc *TopologyCoordinator) MyLastDurableOpTimeAndWallTime() OpTimeAndWallTime {
	return tc.selfMemberData().LastDurableOpTimeAndWallTime()
}

// SetMyLastAppliedOpTimeAndWallTime records local applied progress. Updates
// are monotonic: a regression is ignored with a log unless rollbackAllowed.
func (tc *TopologyCoordinator) SetMyLastAppliedOpTimeAndWallTime(v OpTimeAndWallTime, now time.Time, rollbackAllowed bool) {
	self := tc.selfMemberData()
	if !rollbackAllowed && v.OpTime.Before(self.LastAppliedOpTime()) {
		tc.logger.Warn("ignoring applied optime regression",
			"optime", v.OpTime.String(),
			"last_applied", self.LastAppliedOpTime().String(),
		)
		return
	}
	self.setLastAppliedOpTime(v, now)
}

// SetMyLastDurableOpTimeAndWallTime records local durable progress with the
// same monotonicity rule as the applied variant.
func (tc *TopologyCoordinator) SetMyLastDurableOpTimeAndWallTime(v OpTimeAndWallTime, now time.Time, rollbackAllowed bool) {
	self := tc.selfMemberData()
	if !rollbackAllowed && v.OpTime.Before(self.LastDurableOpTime()) {
		tc.logger.Warn("ignoring durable optime regression",
			"optime", v.OpTime.String(),
			"last_durable", self.LastDurableOpTime().String(),
		)
		return
	}
	self.setLastDurableOpTime(v, now)
}

// UpdatePositionArgs is a progress report about one member, forwarded from a
// downstream node.
type UpdatePositionArgs struct {
	MemberID      int
	ConfigVersion int64
	AppliedOpTime OpTimeAndWallTime
	DurableOpTime OpTimeAndWallTime
}

// SetLastOptime applies a forwarded progress report. It returns whether any
// optime advanced. A report for an unknown member or a mismatched config
// version is rejected with a typed error; a report about ourselves is
// ignored (remote nodes do not get to tell us our own optime).
func (tc *TopologyCoordinator) SetLastOptime(args UpdatePositionArgs, now time.Time) (bool, error) {
	if tc.selfIndex == -1 {
		return false, ErrNotMember
	}

	if args.MemberID == tc.selfConfig().ID {
		return false, nil
	}

	if args.ConfigVersion != tc.cfg.Version {
		return false, &UpdatePositionError{
			Message: fmt.Sprintf(
				"received progress for member %d with config version %d which doesn't match our config version %d",
				args.MemberID, args.ConfigVersion, tc.cfg.Version),
			ConfigVersion: tc.cfg.Version,
		}
	}

	memberIndex := tc.cfg.FindMemberIndexByID(args.MemberID)
	if memberIndex == -1 {
		return false, &UpdatePositionError{
			Message: fmt.Sprintf("received progress for member %d which doesn't exist in our config", args.MemberID),
		}
	}

	md := &tc.memberData[memberIndex]
	advanced := md.advanceLastAppliedOpTime(args.AppliedOpTime, now)
	advanced = md.advanceLastDurableOpTime(args.DurableOpTime, now) || advanced
	return advanced, nil
}

// GetHostsWrittenTo lists the members whose reported progress has reached op.
func (tc *TopologyCoordinator) GetHostsWrittenTo(op OpTime, durablyWritten bool) []string {
	var hosts []string
	for i := range tc.memberData {
		md := &tc.memberData[i]
		progress := md.LastAppliedOpTime()
		if durablyWritten {
			progress = md.LastDurableOpTime()
		}
		if progress.Before(op) {
			continue
		}
		hosts = append(hosts, md.Host())
	}
	return hosts
}

// --- liveness windows ---

// ResetAllMemberTimeouts restarts every member's liveness window, typically
// after this node wins an election.
func (tc *TopologyCoordinator) ResetAllMemberTimeouts(now time.Time) {
	for i := range tc.memberData {
		tc.memberData[i].updateLiveness(now)
	}
}

// ResetMemberTimeouts restarts the liveness window for the given hosts.
func (tc *TopologyCoordinator) ResetMemberTimeouts(now time.Time, hosts map[string]struct{}) {
	for i := range tc.memberData {
		if _, ok := hosts[tc.memberData[i].Host()]; ok {
			tc.memberData[i].updateLiveness(now)
		}
	}
}

// StalestLiveMember returns the member ID and last-update time of the live
// member heard from least recently, for liveness diagnostics.
func (tc *TopologyCoordinator) StalestLiveMember() (int, time.Time) {
	memberID := -1
	var earliest time.Time
	for i := range tc.memberData {
		md := &tc.memberData[i]
		if md.IsSelf() || md.LastUpdateStale() {
			continue
		}
		if memberID == -1 || md.LastUpdate().Before(earliest) {
			earliest = md.LastUpdate()
			memberID = md.MemberID()
		}
	}
	return memberID, earliest
}

// RestartHeartbeats discards heartbeat freshness tracking for all members so
// that stale pre-restart data is not mistaken for current cluster state.
func (tc *TopologyCoordinator) RestartHeartbeats() {
	for i := range tc.memberData {
		tc.memberData[i].restart()
	}
}

// LatestKnownOpTimeSinceRestart returns the freshest applied optime among
// peers, but only once every peer has completed a heartbeat since the last
// RestartHeartbeats call. The second return is false until then.
func (tc *TopologyCoordinator) LatestKnownOpTimeSinceRestart() (OpTime, bool) {
	latest := OpTime{Timestamp: Timestamp{}, Term: 0}
	for i := range tc.memberData {
		md := &tc.memberData[i]
		if md.ConfigIndex() == tc.selfIndex && md.IsSelf() {
			continue
		}
		if !md.UpdatedSinceRestart() {
			return OpTime{}, false
		}
		if !md.Up() {
			continue
		}
		if md.LastAppliedOpTime().After(latest) {
			latest = md.LastAppliedOpTime()
		}
	}
	return latest, true
}

// --- internal helpers shared across files ---

// latestKnownOpTime is the freshest applied optime among self and all live,
// non-removed peers.
func (tc *TopologyCoordinator) latestKnownOpTime() OpTime {
	latest := tc.MyLastAppliedOpTime()
	for i := range tc.memberData {
		md := &tc.memberData[i]
		if md.IsSelf() || !md.Up() || md.State() == MemberStateRemoved {
			continue
		}
		if md.LastAppliedOpTime().After(latest) {
			latest = md.LastAppliedOpTime()
		}
	}
	return latest
}

// aMajoritySeemsToBeUp reports whether this node, counting itself, can see
// members holding a majority of the set's votes.
func (tc *TopologyCoordinator) aMajoritySeemsToBeUp() bool {
	votesUp := 0
	for i := range tc.memberData {
		if i == tc.selfIndex || tc.memberData[i].Up() {
			votesUp += tc.cfg.MemberAt(i).Votes
		}
	}
	return votesUp*2 > tc.cfg.TotalVotingMembers()
}

// findHealthyPrimaryOfEqualOrGreaterPriority returns the index of a live
// primary whose priority is at least the candidate's, -1 if none.
func (tc *TopologyCoordinator) findHealthyPrimaryOfEqualOrGreaterPriority(candidateIndex int) int {
	candidatePriority := tc.cfg.MemberAt(candidateIndex).Priority
	for i := range tc.memberData {
		md := &tc.memberData[i]
		if !md.Up() || md.State() != MemberStatePrimary {
			continue
		}
		if i != candidateIndex && tc.cfg.MemberAt(i).Priority >= candidatePriority {
			return i
		}
	}
	return -1
}

func (tc *TopologyCoordinator) iAmPrimary() bool {
	return tc.role == RoleLeader
}

func (tc *TopologyCoordinator) hasOnlyAuthErrorUpHeartbeats() bool {
	foundAuthError := false
	for i := range tc.memberData {
		if i == tc.selfIndex {
			continue
		}
		if tc.memberData[i].Up() {
			return false
		}
		if tc.memberData[i].HasAuthIssue() {
			foundAuthError = true
		}
	}
	return foundAuthError
}

// currentPrimaryMember returns the config entry of the known primary, nil if
// the primary is unknown.
func (tc *TopologyCoordinator) currentPrimaryMember() *MemberConfig {
	if tc.currentPrimaryIndex == -1 {
		return nil
	}
	return tc.cfg.MemberAt(tc.currentPrimaryIndex)
}

// SetMyHeartbeatMessage sets the local status message surfaced through
// heartbeats and the status document.
func (tc *TopologyCoordinator) SetMyHeartbeatMessage(now time.Time, message string) {
	tc.hbMessageTime = now
	tc.hbMessage = message
}

// heartbeatMessage returns the local status message, dropping it once it is
// more than two minutes old.
func (tc *TopologyCoordinator) heartbeatMessage(now time.Time) string {
	if now.Sub(tc.hbMessageTime) > 2*time.Minute {
		return ""
	}
	return tc.hbMessage
}

func (tc *TopologyCoordinator) ping(host string) *pingStats {
	p, ok := tc.pings[host]
	if !ok {
		p = newPingStats()
		tc.pings[host] = p
	}
	return p
}

func (tc *TopologyCoordinator) totalPings() int {
	total := 0
	for _, p := range tc.pings {
		total += p.pingCount()
	}
	return total
}
