package repl

// MemberState is the externally visible replication state of a member.
// The numeric values are part of the status document format and must not be
// reordered.
type MemberState int

// Member states. Down and Unknown describe peers only, never the local node.
const (
	MemberStateStartup    MemberState = 0
	MemberStatePrimary    MemberState = 1
	MemberStateSecondary  MemberState = 2
	MemberStateRecovering MemberState = 3
	MemberStateStartup2   MemberState = 5
	MemberStateUnknown    MemberState = 6
	MemberStateArbiter    MemberState = 7
	MemberStateDown       MemberState = 8
	MemberStateRollback   MemberState = 9
	MemberStateRemoved    MemberState = 10
)

func (s MemberState) String() string {
	switch s {
	case MemberStateStartup:
		return "STARTUP"
	case MemberStatePrimary:
		return "PRIMARY"
	case MemberStateSecondary:
		return "SECONDARY"
	case MemberStateRecovering:
		return "RECOVERING"
	case MemberStateStartup2:
		return "STARTUP2"
	case MemberStateUnknown:
		return "UNKNOWN"
	case MemberStateArbiter:
		return "ARBITER"
	case MemberStateDown:
		return "DOWN"
	case MemberStateRollback:
		return "ROLLBACK"
	case MemberStateRemoved:
		return "REMOVED"
	}
	return "INVALID"
}

// Readable reports whether a member in this state can serve as a sync source.
func (s MemberState) Readable() bool {
	return s == MemberStatePrimary || s == MemberStateSecondary
}

// Role is the coordinator's internal election role, orthogonal to MemberState.
type Role int

// Election roles.
const (
	RoleFollower Role = iota
	RoleCandidate
	RoleLeader
)

func (r Role) String() string {
	switch r {
	case RoleFollower:
		return "follower"
	case RoleCandidate:
		return "candidate"
	case RoleLeader:
		return "leader"
	}
	return "invalid"
}

// LeaderMode is the sub-state a node in RoleLeader moves through: elected but
// still draining (leaderElect), fully writable (master), or on the way out
// (attemptingStepDown for command-initiated attempts, steppingDown for
// unconditional step-downs that may not be aborted).
type LeaderMode int

// Leader modes.
const (
	LeaderModeNotLeader LeaderMode = iota
	LeaderModeLeaderElect
	LeaderModeMaster
	LeaderModeAttemptingStepDown
	LeaderModeSteppingDown
)

func (m LeaderMode) String() string {
	switch m {
	case LeaderModeNotLeader:
		return "not leader"
	case LeaderModeLeaderElect:
		return "leader elect"
	case LeaderModeMaster:
		return "master"
	case LeaderModeAttemptingStepDown:
		return "attempting step down"
	case LeaderModeSteppingDown:
		return "stepping down"
	}
	return "invalid"
}
