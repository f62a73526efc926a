package repl

import (
	"fmt"
	"time"
)

// PrepareHeartbeatRequest builds the next heartbeat to target and returns the
// transport timeout the sender must apply. Retries within one round share the
// round's timeout window, so the returned timeout shrinks as the window is
// consumed.
func (tc *TopologyCoordinator) PrepareHeartbeatRequest(now time.Time, target string) (HeartbeatRequest, time.Duration) {
	p := tc.ping(target)
	if !p.trying() {
		// This is the first attempt of a new round.
		p.start(now)
	}
	alreadyElapsed := now.Sub(p.lastHeartbeatStart)

	req := HeartbeatRequest{
		SenderHost:    tc.selfHost(),
		Term:          tc.term,
		ConfigVersion: ConfigVersionUninitialized,
	}
	if tc.cfg.IsInitialized() {
		req.SetName = tc.cfg.SetName
		req.ConfigVersion = tc.cfg.Version
		if tc.selfIndex >= 0 {
			req.SenderID = tc.selfConfig().ID
		}
	}

	timeout := tc.heartbeatTimeout() - alreadyElapsed
	if timeout < 0 {
		timeout = 0
	}
	return req, timeout
}

// ProcessHeartbeatResponse digests the outcome of one heartbeat attempt and
// returns the follow-up action. The returned Action always carries the time
// the next heartbeat to the same target should start.
func (tc *TopologyCoordinator) ProcessHeartbeatResponse(now time.Time, rtt time.Duration, target string, result HeartbeatResult) Action {
	p := tc.ping(target)
	alreadyElapsed := now.Sub(p.lastHeartbeatStart)

	isUnauthorized := !result.OK() && result.Failure.Kind == HeartbeatFailureUnauthorized
	if result.OK() || isUnauthorized {
		// An unauthorized response proves the host is alive, so it counts
		// toward the round trip average.
		p.hit(rtt)
	} else {
		p.miss()
	}

	if !tc.cfg.IsInitialized() {
		// Before the first config the only interesting response is one
		// carrying a config for us to install.
		if result.OK() && result.Response.Config != nil {
			action := noAction()
			action.Kind = ActionReconfig
			action.NextHeartbeatAt = now.Add(tc.heartbeatInterval())
			return action
		}
		action := noAction()
		action.NextHeartbeatAt = now.Add(tc.heartbeatInterval())
		return action
	}

	nextHeartbeatAt := tc.nextHeartbeatStart(now, alreadyElapsed, result.OK() || isUnauthorized, p)

	if result.OK() && result.Response.ConfigVersion > tc.cfg.Version {
		tc.logger.Info("scheduling reconfig from heartbeat",
			"target", target,
			"remote_config_version", result.Response.ConfigVersion,
			"config_version", tc.cfg.Version,
		)
		action := noAction()
		action.Kind = ActionReconfig
		action.NextHeartbeatAt = nextHeartbeatAt
		return action
	}

	memberIndex := tc.cfg.FindMemberIndexByHost(target)
	if memberIndex == -1 {
		tc.logger.Debug("heartbeat response from host not in config", "target", target)
		action := noAction()
		action.NextHeartbeatAt = nextHeartbeatAt
		return action
	}

	md := &tc.memberData[memberIndex]
	advancedOpTime := false
	switch {
	case result.OK():
		advancedOpTime = md.setUpValues(now, result.Response)
		tc.metrics.IncHeartbeatSuccess(target)
	case isUnauthorized:
		md.setAuthIssue(now)
		tc.metrics.IncHeartbeatFailure(target)
	case p.failed() || alreadyElapsed >= tc.heartbeatTimeout():
		// Retries exhausted; the member is now considered down.
		tc.logger.Info("marking member down after failed heartbeats",
			"target", target,
			"failure", result.Failure.Error(),
			"retries_used", maxHeartbeatRetries-p.retriesLeft(),
		)
		md.setDownValues(now, result.Failure.Error())
		tc.metrics.IncHeartbeatFailure(target)
	default:
		tc.logger.Debug("heartbeat failed, retrying within timeout window",
			"target", target,
			"failure", result.Failure.Error(),
			"retries_left", p.retriesLeft(),
		)
		tc.metrics.IncHeartbeatFailure(target)
	}

	action := tc.updatePrimaryFromHeartbeat(memberIndex, now)
	action.NextHeartbeatAt = nextHeartbeatAt
	action.AdvancedOpTime = advancedOpTime
	return action
}

// nextHeartbeatStart picks when the next attempt to the same target starts: a
// failed attempt with window left retries immediately, an exhausted round
// re-probes at a quarter of the normal cadence, and success waits the full
// interval.
func (tc *TopologyCoordinator) nextHeartbeatStart(now time.Time, alreadyElapsed time.Duration, succeeded bool, p *pingStats) time.Time {
	if succeeded {
		return now.Add(tc.heartbeatInterval())
	}
	if p.trying() && alreadyElapsed < tc.heartbeatTimeout() {
		return now
	}
	return now.Add(tc.heartbeatInterval() / 4)
}

// heartbeatInterval returns the sending cadence. Arbiters and secondaries
// without a sync source probe at twice the configured rate so they locate a
// primary sooner.
func (tc *TopologyCoordinator) heartbeatInterval() time.Duration {
	interval := tc.cfg.Settings.HeartbeatInterval
	if interval == 0 {
		interval = DefaultHeartbeatInterval
	}
	if tc.selfIndex >= 0 {
		if tc.selfConfig().Arbiter || (tc.role == RoleFollower && tc.syncSource == "") {
			return interval / 2
		}
	}
	return interval
}

func (tc *TopologyCoordinator) heartbeatTimeout() time.Duration {
	if tc.cfg.Settings.HeartbeatTimeout == 0 {
		return DefaultHeartbeatTimeout
	}
	return tc.cfg.Settings.HeartbeatTimeout
}

func (tc *TopologyCoordinator) selfHost() string {
	if tc.selfIndex >= 0 {
		return tc.selfConfig().Host
	}
	return ""
}

// PrepareHeartbeatResponse validates an incoming heartbeat and builds our
// answer. The response includes our config when the sender's is older.
func (tc *TopologyCoordinator) PrepareHeartbeatResponse(now time.Time, req HeartbeatRequest) (*HeartbeatResponse, error) {
	if tc.cfg.IsInitialized() && req.SetName != tc.cfg.SetName {
		tc.logger.Error("replica set name in heartbeat does not match ours",
			"remote_set_name", req.SetName,
			"set_name", tc.cfg.SetName,
		)
		return nil, ErrSetNameMismatch
	}
	if tc.selfIndex == -1 && tc.cfg.IsInitialized() {
		return nil, ErrInvalidConfig
	}
	if tc.selfIndex >= 0 && req.SenderID == tc.selfConfig().ID && req.SenderHost != tc.selfConfig().Host {
		return nil, ErrSameMemberID
	}

	// Note when we last heard from this member directly.
	if senderIndex := tc.cfg.FindMemberIndexByHost(req.SenderHost); senderIndex != -1 {
		tc.memberData[senderIndex].lastHeartbeatRecv = now
	}

	state := tc.MemberState()
	resp := &HeartbeatResponse{
		SetName:          tc.cfg.SetName,
		State:            state,
		AppliedOpTime:    tc.MyLastAppliedOpTimeAndWallTime(),
		DurableOpTime:    tc.MyLastDurableOpTimeAndWallTime(),
		PrimaryID:        -1,
		Term:             tc.term,
		SyncSource:       tc.syncSource,
		ConfigVersion:    ConfigVersionUninitialized,
		HeartbeatMessage: tc.heartbeatMessage(now),
	}
	if state == MemberStatePrimary {
		resp.ElectionTime = tc.electionTime
	}
	if primary := tc.currentPrimaryMember(); primary != nil {
		resp.PrimaryID = primary.ID
	}
	if tc.cfg.IsInitialized() {
		resp.ConfigVersion = tc.cfg.Version
		if req.ConfigVersion < tc.cfg.Version {
			cfg := tc.cfg
			resp.Config = &cfg
		}
	}
	return resp, nil
}

// updatePrimaryFromHeartbeat refreshes currentPrimaryIndex from the freshest
// heartbeat data and decides whether the just-updated member's state calls
// for a takeover attempt.
func (tc *TopologyCoordinator) updatePrimaryFromHeartbeat(updatedConfigIndex int, now time.Time) Action {
	if tc.iAmPrimary() {
		// Heartbeat responses never change our own primacy; that is the
		// term update path's job.
		return noAction()
	}

	// Believe the primary with the highest term among up members.
	primaryIndex := -1
	for i := range tc.memberData {
		md := &tc.memberData[i]
		if md.State() != MemberStatePrimary || !md.Up() {
			continue
		}
		if primaryIndex == -1 || tc.memberData[primaryIndex].Term() < md.Term() {
			primaryIndex = i
		}
	}
	tc.currentPrimaryIndex = primaryIndex
	if primaryIndex == -1 {
		return noAction()
	}

	tc.SetMyHeartbeatMessage(now, "")

	// Takeovers are considered only on news from the primary itself, and
	// only once it has caught up to our term.
	if updatedConfigIndex != primaryIndex || tc.memberData[primaryIndex].Term() != tc.term {
		return noAction()
	}
	if tc.selfIndex == -1 || !tc.selfConfig().IsElectable() {
		return noAction()
	}

	scheduleCatchupTakeover := false
	schedulePriorityTakeover := false

	if tc.cfg.Settings.CatchUpTakeoverDelay != CatchUpTakeoverDisabled &&
		tc.memberData[primaryIndex].LastAppliedOpTime().Before(tc.MyLastAppliedOpTime()) {
		tc.logger.Info("the current primary is behind this node, considering catchup takeover",
			"primary", tc.cfg.MemberAt(primaryIndex).Host,
			"primary_applied", tc.memberData[primaryIndex].LastAppliedOpTime().String(),
			"my_applied", tc.MyLastAppliedOpTime().String(),
		)
		scheduleCatchupTakeover = true
	}
	if tc.cfg.MemberAt(primaryIndex).Priority < tc.selfConfig().Priority {
		tc.logger.Info("the current primary has a lower priority than this node, considering priority takeover",
			"primary", tc.cfg.MemberAt(primaryIndex).Host,
			"primary_priority", tc.cfg.MemberAt(primaryIndex).Priority,
			"my_priority", tc.selfConfig().Priority,
		)
		schedulePriorityTakeover = true
	}

	action := noAction()
	action.PrimaryIndex = primaryIndex
	switch {
	case scheduleCatchupTakeover && schedulePriorityTakeover &&
		tc.cfg.PriorityRank(tc.selfConfig().Priority) == 0:
		// The highest priority node prefers the priority takeover so it
		// does not have to wait out the catchup takeover delay.
		action.Kind = ActionPriorityTakeover
	case scheduleCatchupTakeover:
		action.Kind = ActionCatchupTakeover
	case schedulePriorityTakeover:
		action.Kind = ActionPriorityTakeover
	}
	return action
}

// CheckMemberTimeouts expires liveness windows and returns the follow-up: a
// primary that can no longer see members holding a majority of votes must
// step down.
func (tc *TopologyCoordinator) CheckMemberTimeouts(now time.Time) Action {
	for i := range tc.memberData {
		md := &tc.memberData[i]
		if md.IsSelf() || md.LastUpdateStale() {
			continue
		}
		if now.Sub(md.LastUpdate()) >= tc.electionTimeout() {
			md.markLastUpdateStale()
			tc.logger.Info("member has not reported progress within the election timeout",
				"member", md.Host(),
				"last_update", md.LastUpdate().Format(time.RFC3339),
			)
		}
	}

	if tc.iAmPrimary() && !tc.aMajoritySeemsToBeUp() {
		tc.logger.Warn("can't see a majority of the set, relinquishing primary")
		action := noAction()
		action.Kind = ActionStepDownSelf
		action.PrimaryIndex = tc.selfIndex
		return action
	}
	return noAction()
}

func (tc *TopologyCoordinator) electionTimeout() time.Duration {
	if tc.cfg.Settings.ElectionTimeout == 0 {
		return DefaultElectionTimeout
	}
	return tc.cfg.Settings.ElectionTimeout
}

// HealthSummary renders a one line health digest for logs.
func (tc *TopologyCoordinator) HealthSummary() string {
	up := 0
	for i := range tc.memberData {
		if tc.memberData[i].Up() || tc.memberData[i].IsSelf() {
			up++
		}
	}
	return fmt.Sprintf("%d/%d members up, primary index %d, term %d",
		up, len(tc.memberData), tc.currentPrimaryIndex, tc.term)
}
