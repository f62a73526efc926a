package repl

import (
	"fmt"
	"sort"
)

// CommitQuorum names the acknowledgement requirement for a two-phase
// operation such as an index build: either a member count, the reserved
// majority mode, or a custom tag mode from the config settings.
type CommitQuorum struct {
	Mode     string
	NumNodes int
}

func (q CommitQuorum) String() string {
	if q.Mode != "" {
		return q.Mode
	}
	return fmt.Sprintf("%d", q.NumNodes)
}

// LastCommittedOpTime returns the newest majority-committed operation known
// to this node.
func (tc *TopologyCoordinator) LastCommittedOpTime() OpTime {
	return tc.lastCommitted.OpTime
}

// LastCommittedOpTimeAndWallTime returns the commit point with wall time.
func (tc *TopologyCoordinator) LastCommittedOpTimeAndWallTime() OpTimeAndWallTime {
	return tc.lastCommitted
}

// HaveNumNodesReachedOpTime reports whether at least numNodes members,
// ourselves included, have replicated target. Progress reports that are
// somehow ahead of our own do not count until we have caught up ourselves.
func (tc *TopologyCoordinator) HaveNumNodesReachedOpTime(target OpTime, numNodes int, durablyWritten bool) bool {
	myOpTime := tc.MyLastAppliedOpTime()
	if durablyWritten {
		myOpTime = tc.MyLastDurableOpTime()
	}
	if myOpTime.Before(target) {
		return false
	}

	remaining := numNodes
	for i := range tc.memberData {
		md := &tc.memberData[i]
		memberOpTime := md.LastAppliedOpTime()
		if durablyWritten {
			memberOpTime = md.LastDurableOpTime()
		}
		if memberOpTime.AtLeast(target) {
			remaining--
			if remaining <= 0 {
				return true
			}
		}
	}
	return false
}

// HaveTaggedNodesReachedOpTime reports whether the members that replicated
// target collectively satisfy the tag pattern.
func (tc *TopologyCoordinator) HaveTaggedNodesReachedOpTime(target OpTime, pattern TagPattern, durablyWritten bool) bool {
	matcher := NewTagMatcher(pattern)
	for i := range tc.memberData {
		md := &tc.memberData[i]
		memberOpTime := md.LastAppliedOpTime()
		if durablyWritten {
			memberOpTime = md.LastDurableOpTime()
		}
		if !memberOpTime.AtLeast(target) {
			continue
		}
		if matcher.Update(tc.cfg.MemberAt(i).Tags) {
			return true
		}
	}
	return matcher.Satisfied()
}

// UpdateLastCommittedOpTime recomputes the commit point from the reported
// progress of the voting members. Only the primary computes the commit point
// this way; secondaries learn it from metadata. Returns whether the commit
// point advanced.
func (tc *TopologyCoordinator) UpdateLastCommittedOpTime() bool {
	if !tc.iAmPrimary() || tc.selfIndex == -1 {
		return false
	}

	// Arbiters hold votes but no data, so they never contribute an optime.
	var votingOpTimes []OpTimeAndWallTime
	for i := range tc.memberData {
		mc := tc.cfg.MemberAt(i)
		if !mc.IsVoter() || mc.Arbiter {
			continue
		}
		progress := tc.memberData[i].LastAppliedOpTimeAndWallTime()
		if tc.cfg.Settings.WriteConcernMajorityJournal {
			progress = tc.memberData[i].LastDurableOpTimeAndWallTime()
		}
		votingOpTimes = append(votingOpTimes, progress)
	}

	writeMajority := tc.cfg.WriteMajority()
	if len(votingOpTimes) < writeMajority {
		return false
	}
	sort.Slice(votingOpTimes, func(i, j int) bool {
		return votingOpTimes[i].OpTime.Before(votingOpTimes[j].OpTime)
	})
	// The highest optime that a write-majority of voting members reached.
	committed := votingOpTimes[len(votingOpTimes)-writeMajority]
	return tc.AdvanceLastCommittedOpTime(committed, false)
}

// AdvanceLastCommittedOpTime moves the commit point forward to committed,
// subject to the safety guards that keep it on this node's oplog branch.
// fromSyncSource marks commit points learned from replication metadata,
// which may run ahead of our own apply progress and are clamped to it.
func (tc *TopologyCoordinator) AdvanceLastCommittedOpTime(committed OpTimeAndWallTime, fromSyncSource bool) bool {
	if committed.OpTime.IsNull() || tc.selfIndex == -1 {
		return false
	}

	if tc.iAmPrimary() && committed.OpTime.Before(tc.firstOpTimeOfMyTerm) {
		tc.logger.Debug("ignoring older committed snapshot from before I became primary",
			"committed", committed.OpTime.String(),
			"first_optime_of_my_term", tc.firstOpTimeOfMyTerm.String(),
		)
		return false
	}

	if !tc.selfConfig().Arbiter && tc.MyLastAppliedOpTime().Term != committed.OpTime.Term {
		if !fromSyncSource {
			tc.logger.Debug("ignoring commit point with different term than my last applied, since it may not be on the same oplog branch as mine",
				"committed", committed.OpTime.String(),
				"my_applied", tc.MyLastAppliedOpTime().String(),
			)
			return false
		}
		committed = minOpTimeAndWallTime(committed, tc.MyLastAppliedOpTimeAndWallTime())
	}

	if committed.OpTime.AtMost(tc.lastCommitted.OpTime) {
		return false
	}

	tc.logger.Debug("updating commit point", "commit_point", committed.OpTime.String())
	tc.lastCommitted = committed
	tc.metrics.IncCommitPointAdvance()
	return true
}

// CheckIfCommitQuorumCanBeSatisfied reports whether the given candidate
// members could ever satisfy the quorum, regardless of which of them are up.
func (tc *TopologyCoordinator) CheckIfCommitQuorumCanBeSatisfied(quorum CommitQuorum, members []MemberConfig) bool {
	if quorum.Mode != "" && quorum.Mode != MajorityWriteMode {
		pattern, ok := tc.cfg.Settings.CustomWriteModes[quorum.Mode]
		if !ok {
			return false
		}
		matcher := NewTagMatcher(pattern)
		for i := range members {
			if matcher.Update(members[i].Tags) {
				return true
			}
		}
		// Even a write on every candidate would not satisfy the pattern.
		return false
	}

	nodesRemaining := quorum.NumNodes
	if quorum.Mode == MajorityWriteMode {
		nodesRemaining = tc.cfg.WriteMajority()
	}
	for i := range members {
		if members[i].Arbiter {
			continue
		}
		nodesRemaining--
		if nodesRemaining <= 0 {
			return true
		}
	}
	return false
}

// CheckIfCommitQuorumIsSatisfied reports whether the given set of ready
// member hosts satisfies the quorum. Arbiters never count.
func (tc *TopologyCoordinator) CheckIfCommitQuorumIsSatisfied(quorum CommitQuorum, readyHosts []string) bool {
	ready := make([]int, 0, len(readyHosts))
	for _, host := range readyHosts {
		i := tc.cfg.FindMemberIndexByHost(host)
		if i == -1 || tc.cfg.MemberAt(i).Arbiter {
			continue
		}
		ready = append(ready, i)
	}

	switch {
	case quorum.Mode == "":
		return len(ready) >= quorum.NumNodes
	case quorum.Mode == MajorityWriteMode:
		voting := 0
		for _, i := range ready {
			if tc.cfg.MemberAt(i).IsVoter() {
				voting++
			}
		}
		return voting >= tc.cfg.WriteMajority()
	default:
		pattern, ok := tc.cfg.Settings.CustomWriteModes[quorum.Mode]
		if !ok {
			return false
		}
		matcher := NewTagMatcher(pattern)
		for _, i := range ready {
			if matcher.Update(tc.cfg.MemberAt(i).Tags) {
				return true
			}
		}
		return matcher.Satisfied()
	}
}
