package repl

import (
	"fmt"
	"strings"
	"time"
)

// unelectableReason is a bitmask of everything currently disqualifying this
// node from standing for election.
type unelectableReason int

const (
	unelectableNoConfig unelectableReason = 1 << iota
	unelectableNotAMember
	unelectableArbiter
	unelectableZeroPriority
	unelectableStepDownActive
	unelectableElectionSleepActive
	unelectableNotSecondary
	unelectableCannotSeeMajority
	unelectableNotCloseEnoughToLatestOpTime
	unelectablePrimaryAlreadyCaughtUp
)

// UpdateTerm feeds an externally observed term into the coordinator. The
// term only moves forward. A primary seeing a higher term must first step
// down unconditionally; TermTriggerStepDown is returned without changing the
// term, and the caller repeats the update once the step-down completes.
func (tc *TopologyCoordinator) UpdateTerm(term int64, now time.Time) UpdateTermResult {
	if term < tc.term {
		return TermBehind
	}
	if term == tc.term {
		return TermAlreadyUpToDate
	}
	if tc.iAmPrimary() {
		return TermTriggerStepDown
	}
	tc.logger.Info("updating term", "term", term, "old_term", tc.term)
	tc.term = term
	tc.metrics.SetTerm(term)
	// Yield to whoever is driving the new term before standing ourselves.
	tc.electionSleepUntil = now.Add(tc.electionTimeout())
	return TermUpdated
}

// ProcessRequestVotes arbitrates a vote solicitation. A granted real vote
// must be made durable by the caller before the response is sent; a dry run
// never binds the voter. The response reason is empty exactly when the vote
// is granted.
func (tc *TopologyCoordinator) ProcessRequestVotes(req VoteRequest, now time.Time) VoteResponse {
	resp := VoteResponse{Term: tc.term}

	switch {
	case req.Term < tc.term:
		resp.Reason = fmt.Sprintf("candidate's term (%d) is lower than mine (%d)", req.Term, tc.term)
	case req.ConfigVersion != tc.cfg.Version:
		resp.Reason = fmt.Sprintf("candidate's config version (%d) differs from mine (%d)",
			req.ConfigVersion, tc.cfg.Version)
	case req.SetName != tc.cfg.SetName:
		resp.Reason = fmt.Sprintf("candidate's set name (%s) differs from mine (%s)",
			req.SetName, tc.cfg.SetName)
	case req.LastAppliedOpTime.Before(tc.MyLastAppliedOpTime()):
		resp.Reason = fmt.Sprintf(
			"candidate's data is staler than mine. candidate's last applied OpTime: %s, my last applied OpTime: %s",
			req.LastAppliedOpTime.String(), tc.MyLastAppliedOpTime().String())
	case !req.DryRun && tc.lastVote.Term == req.Term:
		resp.Reason = fmt.Sprintf("already voted for another candidate (%s) this term (%d)",
			tc.cfg.MemberAt(tc.lastVote.CandidateIndex).Host, tc.lastVote.Term)
	default:
		if tc.selfIndex >= 0 && tc.selfConfig().Arbiter {
			if primaryIndex := tc.findHealthyPrimaryOfEqualOrGreaterPriority(req.CandidateIndex); primaryIndex != -1 {
				resp.Reason = fmt.Sprintf("can see a healthy primary (%s) of equal or greater priority",
					tc.cfg.MemberAt(primaryIndex).Host)
				break
			}
		}
		resp.VoteGranted = true
		if req.DryRun {
			tc.lastDryRunVoteTerm = req.Term
		} else {
			tc.lastVote = LastVote{Term: req.Term, CandidateIndex: req.CandidateIndex}
		}
	}

	if !resp.VoteGranted {
		tc.logger.Info("not granting vote",
			"candidate_index", req.CandidateIndex,
			"vote_term", req.Term,
			"dry_run", req.DryRun,
			"reason", resp.Reason,
		)
	}
	tc.metrics.IncVoteRequest(resp.VoteGranted)
	return resp
}

// BecomeCandidateIfElectable transitions to candidate for the given election
// reason, or explains why the node may not stand.
func (tc *TopologyCoordinator) BecomeCandidateIfElectable(now time.Time, reason StartElectionReason) error {
	switch tc.role {
	case RoleLeader:
		return &NotElectableError{Reason: "already primary"}
	case RoleCandidate:
		return &NotElectableError{Reason: "already candidate"}
	}
	if mask := tc.myUnelectableReason(now, reason); mask != 0 {
		return &NotElectableError{Reason: tc.renderUnelectableReason(mask)}
	}
	tc.role = RoleCandidate
	tc.logger.Info("standing for election", "reason", reason.String(), "term", tc.term)
	tc.metrics.IncElectionStarted(reason.String())
	return nil
}

// IncrementTerm advances into the next term for a real election round and
// returns the new term. The caller must persist the term before soliciting
// votes.
func (tc *TopologyCoordinator) IncrementTerm() int64 {
	tc.term++
	tc.metrics.SetTerm(tc.term)
	return tc.term
}

// VoteForMyself casts this candidate's own real vote for the current term.
// The caller must persist the vote.
func (tc *TopologyCoordinator) VoteForMyself() {
	tc.lastVote = LastVote{Term: tc.term, CandidateIndex: tc.selfIndex}
}

// ProcessWinElection installs won leadership: the node becomes a leader in
// the leader-elect mode, announces itself as primary, and abandons its sync
// source. Writes are not accepted until CompleteTransitionToPrimary.
func (tc *TopologyCoordinator) ProcessWinElection(electionID string, electionTime Timestamp) {
	tc.role = RoleLeader
	tc.leaderMode = LeaderModeLeaderElect
	tc.electionID = electionID
	tc.electionTime = electionTime
	tc.currentPrimaryIndex = tc.selfIndex
	tc.syncSource = ""
	tc.firstOpTimeOfMyTerm = OpTime{}
	tc.logger.Info("election succeeded, assuming primary role",
		"term", tc.term,
		"election_id", electionID,
	)
	tc.metrics.IncElectionWon()
}

// ProcessLoseElection abandons a failed candidacy.
func (tc *TopologyCoordinator) ProcessLoseElection() {
	tc.role = RoleFollower
	tc.leaderMode = LeaderModeNotLeader
	tc.electionID = ""
	tc.electionTime = Timestamp{}
}

// CompleteTransitionToPrimary finishes the drain after an election win. The
// commit point may only advance once an operation from our own term, starting
// at firstOpTimeOfTerm, is majority replicated.
func (tc *TopologyCoordinator) CompleteTransitionToPrimary(firstOpTimeOfTerm OpTime) {
	if tc.leaderMode != LeaderModeLeaderElect {
		return
	}
	tc.leaderMode = LeaderModeMaster
	tc.firstOpTimeOfMyTerm = firstOpTimeOfTerm
}

func (tc *TopologyCoordinator) myUnelectableReason(now time.Time, reason StartElectionReason) unelectableReason {
	var mask unelectableReason
	if !tc.cfg.IsInitialized() {
		mask |= unelectableNoConfig
		return mask
	}
	if tc.selfIndex == -1 {
		mask |= unelectableNotAMember
		return mask
	}
	if tc.selfConfig().Arbiter {
		mask |= unelectableArbiter
	}
	if tc.selfConfig().Priority <= 0 {
		mask |= unelectableZeroPriority
	}
	if tc.stepDownUntil.After(now) {
		mask |= unelectableStepDownActive
	}
	if reason == ElectionTimeout && tc.electionSleepUntil.After(now) {
		mask |= unelectableElectionSleepActive
	}
	if tc.MemberState() != MemberStateSecondary {
		mask |= unelectableNotSecondary
	}
	if !tc.aMajoritySeemsToBeUp() {
		mask |= unelectableCannotSeeMajority
	}
	if reason == PriorityTakeover && !tc.amIFreshEnoughForPriorityTakeover() {
		mask |= unelectableNotCloseEnoughToLatestOpTime
	}
	if reason == CatchupTakeover && !tc.amIFreshEnoughForCatchupTakeover() {
		mask |= unelectablePrimaryAlreadyCaughtUp
	}
	return mask
}

func (tc *TopologyCoordinator) renderUnelectableReason(mask unelectableReason) string {
	var parts []string
	if mask&unelectableNoConfig != 0 {
		parts = append(parts, "node is not yet initialized")
	}
	if mask&unelectableNotAMember != 0 {
		parts = append(parts, "node is not a member of a valid replica set configuration")
	}
	if mask&unelectableArbiter != 0 {
		parts = append(parts, "member is an arbiter")
	}
	if mask&unelectableZeroPriority != 0 {
		parts = append(parts, "member has zero priority")
	}
	if mask&unelectableStepDownActive != 0 {
		parts = append(parts, fmt.Sprintf("I am still waiting for stepdown period to end at %s",
			tc.stepDownUntil.Format(time.RFC3339)))
	}
	if mask&unelectableElectionSleepActive != 0 {
		parts = append(parts, "election backoff period has not ended yet")
	}
	if mask&unelectableNotSecondary != 0 {
		parts = append(parts, "member is not currently a secondary")
	}
	if mask&unelectableCannotSeeMajority != 0 {
		parts = append(parts, "I cannot see a majority")
	}
	if mask&unelectableNotCloseEnoughToLatestOpTime != 0 {
		parts = append(parts, "member is not caught up enough to the most up-to-date member to call for priority takeover")
	}
	if mask&unelectablePrimaryAlreadyCaughtUp != 0 {
		parts = append(parts, "primary is already caught up, so catchup takeover is not needed")
	}
	return strings.Join(parts, "; ")
}

// amIFreshEnoughForPriorityTakeover bounds how far a higher priority node may
// trail the freshest member and still depose the primary: within the
// freshness window in seconds, or within 1000 increments inside the same
// second.
func (tc *TopologyCoordinator) amIFreshEnoughForPriorityTakeover() bool {
	latest := tc.latestKnownOpTime()
	mine := tc.MyLastAppliedOpTime()
	if mine.Term != latest.Term {
		return false
	}
	windowSecs := uint32(tc.options.PriorityTakeoverFreshnessWindow / time.Second)
	if mine.Timestamp.Secs != latest.Timestamp.Secs {
		return mine.Timestamp.Secs+windowSecs >= latest.Timestamp.Secs
	}
	return mine.Timestamp.Inc+1000 >= latest.Timestamp.Inc
}

// amIFreshEnoughForCatchupTakeover requires this node to be the freshest up
// member, strictly ahead of the primary, with a primary that has not yet
// written in the current term.
func (tc *TopologyCoordinator) amIFreshEnoughForCatchupTakeover() bool {
	if tc.currentPrimaryIndex == -1 {
		return false
	}
	mine := tc.MyLastAppliedOpTime()
	if mine.Before(tc.latestKnownOpTime()) {
		return false
	}
	primaryApplied := tc.memberData[tc.currentPrimaryIndex].LastAppliedOpTime()
	if !primaryApplied.Before(mine) {
		return false
	}
	return primaryApplied.Term < tc.term
}
