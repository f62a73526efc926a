package repl

import (
	"fmt"
	"time"
)

// PrepareForStepDownAttempt begins an operator-requested step-down. It
// returns an abort func that restores normal primary operation if the
// attempt is abandoned before completion.
func (tc *TopologyCoordinator) PrepareForStepDownAttempt() (func(), error) {
	switch tc.leaderMode {
	case LeaderModeSteppingDown, LeaderModeAttemptingStepDown:
		return nil, &StepDownError{
			Kind:    StepDownConflictingOperation,
			Message: "a step down is already in progress",
		}
	case LeaderModeNotLeader:
		return nil, &StepDownError{
			Kind:    StepDownNotPrimary,
			Message: "not primary so can't step down",
		}
	}

	previous := tc.leaderMode
	tc.leaderMode = LeaderModeAttemptingStepDown
	abort := func() {
		if tc.leaderMode == LeaderModeAttemptingStepDown {
			tc.leaderMode = previous
		}
	}
	return abort, nil
}

// AttemptStepDown tries to complete a step-down attempt started with
// PrepareForStepDownAttempt. It returns (true, nil) once the node has stepped
// down, (false, nil) when the caller should keep waiting for a secondary to
// catch up, and a terminal StepDownError when the attempt cannot succeed.
// termAtStart is the term observed when the attempt began; waitUntil bounds
// how long to wait for catch-up and stepDownUntil is the end of the
// post-step-down freeze.
func (tc *TopologyCoordinator) AttemptStepDown(termAtStart int64, now, waitUntil, stepDownUntil time.Time, force bool) (bool, error) {
	if tc.term != termAtStart || tc.leaderMode == LeaderModeSteppingDown {
		return false, &StepDownError{
			Kind:    StepDownTermChanged,
			Message: "while waiting for secondaries to catch up before stepping down, this node decided to step down for other reasons",
		}
	}
	if !now.Before(stepDownUntil) {
		return false, &StepDownError{
			Kind:    StepDownDeadlinePassed,
			Message: "by the time we were ready to step down, we were already past the time we were supposed to step down until",
		}
	}

	if !tc.canCompleteStepDownAttempt(now, waitUntil, force) {
		if !now.Before(waitUntil) {
			return false, &StepDownError{
				Kind: StepDownNoCaughtUpSecondary,
				Message: fmt.Sprintf(
					"no electable secondaries caught up as of %s; use the force argument to step down anyway",
					now.Format(time.RFC3339)),
			}
		}
		// Not an error; a secondary may still catch up before waitUntil.
		return false, nil
	}

	tc.logger.Info("stepping down from primary",
		"term", tc.term,
		"step_down_until", stepDownUntil.Format(time.RFC3339),
		"force", force,
	)
	tc.stepDownUntil = stepDownUntil
	tc.stepDownSelf()
	tc.metrics.IncStepDown("command")
	return true, nil
}

// canCompleteStepDownAttempt allows a forced step-down once waitUntil has
// passed; otherwise the safety conditions must hold.
func (tc *TopologyCoordinator) canCompleteStepDownAttempt(now, waitUntil time.Time, force bool) bool {
	if force && !now.Before(waitUntil) {
		return true
	}
	return tc.IsSafeToStepDown()
}

// IsSafeToStepDown reports whether the primary can step down without data
// loss or an availability gap: a majority of the set has replicated its last
// applied operation and at least one caught-up secondary is electable.
func (tc *TopologyCoordinator) IsSafeToStepDown() bool {
	if !tc.cfg.IsInitialized() || tc.selfIndex < 0 {
		return false
	}
	lastApplied := tc.MyLastAppliedOpTime()
	if !tc.HaveNumNodesReachedOpTime(lastApplied, tc.cfg.WriteMajority(), false) {
		return false
	}
	for i := range tc.memberData {
		if i == tc.selfIndex {
			continue
		}
		if tc.memberIsCaughtUpAndElectable(i, lastApplied) {
			return true
		}
	}
	return false
}

func (tc *TopologyCoordinator) memberIsCaughtUpAndElectable(memberIndex int, target OpTime) bool {
	mc := tc.cfg.MemberAt(memberIndex)
	md := &tc.memberData[memberIndex]
	if !mc.IsElectable() || !md.Up() || md.State() != MemberStateSecondary {
		return false
	}
	return md.LastAppliedOpTime().AtLeast(target)
}

// PrepareForUnconditionalStepDown commits the node to stepping down because
// of an external event such as seeing a higher term. Unlike an attempt, it
// cannot be aborted.
func (tc *TopologyCoordinator) PrepareForUnconditionalStepDown() error {
	if tc.leaderMode == LeaderModeSteppingDown {
		return &StepDownError{
			Kind:    StepDownConflictingOperation,
			Message: "an unconditional step down is already in progress",
		}
	}
	if tc.leaderMode == LeaderModeNotLeader {
		return &StepDownError{
			Kind:    StepDownNotPrimary,
			Message: "not primary so can't step down",
		}
	}
	tc.leaderMode = LeaderModeSteppingDown
	return nil
}

// FinishUnconditionalStepDown completes the step-down committed to by
// PrepareForUnconditionalStepDown.
func (tc *TopologyCoordinator) FinishUnconditionalStepDown() {
	tc.logger.Info("finishing unconditional step down", "term", tc.term)
	tc.stepDownSelf()
	tc.metrics.IncStepDown("unconditional")
}

func (tc *TopologyCoordinator) stepDownSelf() {
	tc.role = RoleFollower
	tc.leaderMode = LeaderModeNotLeader
	tc.followerMode = MemberStateSecondary
	tc.currentPrimaryIndex = -1
	tc.electionID = ""
	tc.electionTime = Timestamp{}
	tc.firstOpTimeOfMyTerm = OpTime{}
}

// ChooseElectionHandoffCandidate picks the member the outgoing primary should
// ask to stand for election immediately: the highest priority electable
// member that is up and caught up to our last applied operation; ties go to
// the lowest member index. Returns -1 when no member qualifies.
func (tc *TopologyCoordinator) ChooseElectionHandoffCandidate() int {
	chosenIndex := -1
	var chosenPriority float64
	lastApplied := tc.MyLastAppliedOpTime()
	for i := range tc.memberData {
		if i == tc.selfIndex {
			continue
		}
		if !tc.memberIsCaughtUpAndElectable(i, lastApplied) {
			continue
		}
		if chosenIndex == -1 || tc.cfg.MemberAt(i).Priority > chosenPriority {
			chosenIndex = i
			chosenPriority = tc.cfg.MemberAt(i).Priority
		}
	}
	return chosenIndex
}
