package repl

import (
	"errors"
	"testing"
	"time"
)

// newPrimaryCoordinator builds a three node set with self elected primary at
// index 0 and the given applied progress.
func newPrimaryCoordinator(t *testing.T, applied OpTime) *TopologyCoordinator {
	t.Helper()
	tc := newSecondaryCoordinator(0)
	receiveUpHeartbeat(tc, testTime(0), "h1:27017", MemberStateSecondary, OpTime{}, 0)
	receiveUpHeartbeat(tc, testTime(0), "h2:27017", MemberStateSecondary, OpTime{}, 0)
	if err := tc.BecomeCandidateIfElectable(testTime(0), ElectionTimeout); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tc.IncrementTerm()
	tc.VoteForMyself()
	tc.ProcessWinElection("election-1", Timestamp{Secs: 1, Inc: 1})
	tc.CompleteTransitionToPrimary(applied)
	tc.SetMyLastAppliedOpTimeAndWallTime(OpTimeAndWallTime{OpTime: applied}, testTime(0), false)
	return tc
}

func stepDownErrorKind(t *testing.T, err error) StepDownErrorKind {
	t.Helper()
	var sde *StepDownError
	if !errors.As(err, &sde) {
		t.Fatalf("expected StepDownError, got %v", err)
	}
	return sde.Kind
}

func TestTopologyCoordinator_PrepareForStepDownAttempt(t *testing.T) {
	tc := newSecondaryCoordinator(0)
	if _, err := tc.PrepareForStepDownAttempt(); stepDownErrorKind(t, err) != StepDownNotPrimary {
		t.Fatalf("expected not-primary error, got %v", err)
	}

	tc = newPrimaryCoordinator(t, opTime(5, 1, 1))
	abort, err := tc.PrepareForStepDownAttempt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tc.PrepareForStepDownAttempt(); stepDownErrorKind(t, err) != StepDownConflictingOperation {
		t.Fatalf("expected conflicting-operation error, got %v", err)
	}

	abort()
	if !tc.CanAcceptWrites() {
		t.Fatalf("expected aborted attempt to restore the master mode")
	}
}

func TestTopologyCoordinator_AttemptStepDown(t *testing.T) {
	applied := opTime(5, 1, 1)
	waitUntil := testTime(10 * time.Second)
	freezeUntil := testTime(time.Minute)

	t.Run("waits while no secondary has caught up", func(t *testing.T) {
		tc := newPrimaryCoordinator(t, applied)
		if _, err := tc.PrepareForStepDownAttempt(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		done, err := tc.AttemptStepDown(tc.Term(), testTime(time.Second), waitUntil, freezeUntil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if done {
			t.Fatalf("expected attempt to keep waiting")
		}
	})

	t.Run("fails terminally once the wait deadline passes", func(t *testing.T) {
		tc := newPrimaryCoordinator(t, applied)
		if _, err := tc.PrepareForStepDownAttempt(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := tc.AttemptStepDown(tc.Term(), testTime(11*time.Second), waitUntil, freezeUntil, false)
		if stepDownErrorKind(t, err) != StepDownNoCaughtUpSecondary {
			t.Fatalf("expected no-caught-up-secondary error, got %v", err)
		}
	})

	t.Run("force succeeds after the wait deadline", func(t *testing.T) {
		tc := newPrimaryCoordinator(t, applied)
		if _, err := tc.PrepareForStepDownAttempt(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		done, err := tc.AttemptStepDown(tc.Term(), testTime(11*time.Second), waitUntil, freezeUntil, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !done {
			t.Fatalf("expected forced step down to complete")
		}
		if tc.Role() != RoleFollower {
			t.Fatalf("expected follower role, got %v", tc.Role())
		}
		if tc.MemberState() != MemberStateSecondary {
			t.Fatalf("expected secondary state, got %v", tc.MemberState())
		}
		if !tc.StepDownUntil().Equal(freezeUntil) {
			t.Fatalf("expected freeze until %v, got %v", freezeUntil, tc.StepDownUntil())
		}
	})

	t.Run("succeeds once a caught up electable secondary exists", func(t *testing.T) {
		tc := newPrimaryCoordinator(t, applied)
		if _, err := tc.PrepareForStepDownAttempt(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Majority of the write-majority voters at our last applied, one of
		// them an electable secondary.
		receiveUpHeartbeat(tc, testTime(time.Second), "h1:27017", MemberStateSecondary, applied, 1)
		done, err := tc.AttemptStepDown(tc.Term(), testTime(2*time.Second), waitUntil, freezeUntil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !done {
			t.Fatalf("expected step down to complete")
		}
	})

	t.Run("fails when the term moved on", func(t *testing.T) {
		tc := newPrimaryCoordinator(t, applied)
		if _, err := tc.PrepareForStepDownAttempt(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := tc.AttemptStepDown(tc.Term()-1, testTime(time.Second), waitUntil, freezeUntil, false)
		if stepDownErrorKind(t, err) != StepDownTermChanged {
			t.Fatalf("expected term-changed error, got %v", err)
		}
	})

	t.Run("fails when already past the freeze deadline", func(t *testing.T) {
		tc := newPrimaryCoordinator(t, applied)
		if _, err := tc.PrepareForStepDownAttempt(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := tc.AttemptStepDown(tc.Term(), testTime(2*time.Minute), waitUntil, freezeUntil, false)
		if stepDownErrorKind(t, err) != StepDownDeadlinePassed {
			t.Fatalf("expected deadline-passed error, got %v", err)
		}
	})
}

func TestTopologyCoordinator_unconditionalStepDown(t *testing.T) {
	tc := newPrimaryCoordinator(t, opTime(5, 1, 1))

	if err := tc.PrepareForUnconditionalStepDown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tc.PrepareForUnconditionalStepDown(); err == nil {
		t.Fatalf("expected conflicting-operation error")
	}

	tc.FinishUnconditionalStepDown()
	if tc.Role() != RoleFollower {
		t.Fatalf("expected follower role, got %v", tc.Role())
	}
	if tc.CurrentPrimaryIndex() != -1 {
		t.Fatalf("expected unknown primary, got %d", tc.CurrentPrimaryIndex())
	}

	// The higher term can now be adopted.
	if got := tc.UpdateTerm(tc.Term()+1, testTime(time.Second)); got != TermUpdated {
		t.Fatalf("expected TermUpdated after step down, got %v", got)
	}
}

func TestTopologyCoordinator_IsSafeToStepDown(t *testing.T) {
	applied := opTime(5, 1, 1)
	tc := newPrimaryCoordinator(t, applied)

	if tc.IsSafeToStepDown() {
		t.Fatalf("expected unsafe with no caught up secondaries")
	}

	// Caught up but not electable: zero priority members don't count.
	cfg := threeNodeConfig(2)
	cfg.Members[1].Priority = 0
	tc.UpdateConfig(cfg, 0, testTime(0))
	receiveUpHeartbeat(tc, testTime(time.Second), "h1:27017", MemberStateSecondary, applied, 1)
	if tc.IsSafeToStepDown() {
		t.Fatalf("expected unsafe with only a zero priority member caught up")
	}

	receiveUpHeartbeat(tc, testTime(time.Second), "h2:27017", MemberStateSecondary, applied, 1)
	if !tc.IsSafeToStepDown() {
		t.Fatalf("expected safe with a caught up electable secondary")
	}
}

func TestTopologyCoordinator_ChooseElectionHandoffCandidate(t *testing.T) {
	applied := opTime(5, 1, 1)

	tc := newPrimaryCoordinator(t, applied)
	if got := tc.ChooseElectionHandoffCandidate(); got != -1 {
		t.Fatalf("expected no candidate, got %d", got)
	}

	// Highest priority wins.
	cfg := threeNodeConfig(2)
	cfg.Members[2].Priority = 5
	tc.UpdateConfig(cfg, 0, testTime(0))
	receiveUpHeartbeat(tc, testTime(time.Second), "h1:27017", MemberStateSecondary, applied, 1)
	receiveUpHeartbeat(tc, testTime(time.Second), "h2:27017", MemberStateSecondary, applied, 1)
	if got := tc.ChooseElectionHandoffCandidate(); got != 2 {
		t.Fatalf("expected member 2 (highest priority), got %d", got)
	}

	// Ties break toward the lowest member index.
	cfg = threeNodeConfig(3)
	tc.UpdateConfig(cfg, 0, testTime(0))
	receiveUpHeartbeat(tc, testTime(time.Second), "h1:27017", MemberStateSecondary, applied, 1)
	receiveUpHeartbeat(tc, testTime(time.Second), "h2:27017", MemberStateSecondary, applied, 1)
	if got := tc.ChooseElectionHandoffCandidate(); got != 1 {
		t.Fatalf("expected member 1 on tie, got %d", got)
	}
}
