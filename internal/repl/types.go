package repl

import (
	"errors"
	"fmt"
	"time"
)

// HeartbeatRequest is the outbound heartbeat sent to one peer.
type HeartbeatRequest struct {
	SetName       string
	ConfigVersion int64
	SenderID      int
	SenderHost    string
	Term          int64
}

// HeartbeatResponse is a peer's answer to a heartbeat.
type HeartbeatResponse struct {
	SetName          string
	State            MemberState
	ElectionTime     Timestamp
	AppliedOpTime    OpTimeAndWallTime
	DurableOpTime    OpTimeAndWallTime
	PrimaryID        int
	Term             int64
	SyncSource       string
	ConfigVersion    int64
	HeartbeatMessage string

	// Config is set only when the responder's config is newer than the
	// version the request carried.
	Config *Config
}

// HeartbeatFailureKind classifies transport-level heartbeat failures.
type HeartbeatFailureKind int

// Heartbeat failure kinds supplied by the network layer.
const (
	HeartbeatFailureTimeout HeartbeatFailureKind = iota
	HeartbeatFailureUnreachable
	HeartbeatFailureUnauthorized
	HeartbeatFailureNodeNotFound
	HeartbeatFailureError
)

func (k HeartbeatFailureKind) String() string {
	switch k {
	case HeartbeatFailureTimeout:
		return "timeout"
	case HeartbeatFailureUnreachable:
		return "host unreachable"
	case HeartbeatFailureUnauthorized:
		return "unauthorized"
	case HeartbeatFailureNodeNotFound:
		return "node not found"
	case HeartbeatFailureError:
		return "error"
	}
	return "invalid"
}

// HeartbeatFailure is a typed heartbeat failure with the transport's message.
type HeartbeatFailure struct {
	Kind    HeartbeatFailureKind
	Message string
}

func (f *HeartbeatFailure) Error() string {
	if f.Message == "" {
		return f.Kind.String()
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// HeartbeatResult carries either a parsed response or a typed failure.
// Exactly one of the fields is set.
type HeartbeatResult struct {
	Response *HeartbeatResponse
	Failure  *HeartbeatFailure
}

// OK reports whether the heartbeat succeeded.
func (r HeartbeatResult) OK() bool { return r.Response != nil }

// ActionKind discriminates the follow-up the caller must take after feeding
// an event into the coordinator.
type ActionKind int

// Action kinds.
const (
	ActionNone ActionKind = iota
	ActionReconfig
	ActionPriorityTakeover
	ActionCatchupTakeover
	ActionStepDownSelf
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "no action"
	case ActionReconfig:
		return "reconfig"
	case ActionPriorityTakeover:
		return "priority takeover"
	case ActionCatchupTakeover:
		return "catchup takeover"
	case ActionStepDownSelf:
		return "step down self"
	}
	return "invalid"
}

// Action is the discriminated result of processing a heartbeat event. The
// coordinator never performs side effects itself; the caller schedules the
// indicated follow-up.
type Action struct {
	Kind ActionKind

	// NextHeartbeatAt is when the next heartbeat to the same target should
	// be sent.
	NextHeartbeatAt time.Time

	// PrimaryIndex is the member index responsible for the decision where
	// relevant (the takeover target, or self for a step-down), -1 otherwise.
	PrimaryIndex int

	// AdvancedOpTime reports that the processed event advanced a member's
	// known progress, which may unblock commit-point recalculation.
	AdvancedOpTime bool
}

func noAction() Action { return Action{Kind: ActionNone, PrimaryIndex: -1} }

// StartElectionReason records why an election attempt was initiated.
type StartElectionReason int

// Election reasons.
const (
	ElectionTimeout StartElectionReason = iota
	PriorityTakeover
	CatchupTakeover
	StepUpRequest
	SingleNodePromotion
)

func (r StartElectionReason) String() string {
	switch r {
	case ElectionTimeout:
		return "election timeout"
	case PriorityTakeover:
		return "priority takeover"
	case CatchupTakeover:
		return "catchup takeover"
	case StepUpRequest:
		return "step up request"
	case SingleNodePromotion:
		return "single node promotion"
	}
	return "invalid"
}

// UpdateTermResult reports the outcome of feeding an externally observed term
// into the coordinator.
type UpdateTermResult int

// UpdateTerm outcomes. TermTriggerStepDown means the node is primary and the
// caller must complete an unconditional step-down before the term is allowed
// to advance.
const (
	TermAlreadyUpToDate UpdateTermResult = iota
	TermBehind
	TermUpdated
	TermTriggerStepDown
)

// VoteRequest is a vote solicitation from a candidate.
type VoteRequest struct {
	SetName           string
	Term              int64
	CandidateIndex    int
	ConfigVersion     int64
	LastAppliedOpTime OpTime
	DryRun            bool
}

// VoteResponse is the voter's decision. Reason is empty iff the vote was
// granted.
type VoteResponse struct {
	Term        int64
	VoteGranted bool
	Reason      string
}

// LastVote is the durable record of the last real vote cast.
type LastVote struct {
	Term           int64 `json:"term"`
	CandidateIndex int   `json:"candidateIndex"`
}

// UpdatePositionResponse acknowledges a progress report. It carries the
// metadata a sync source hands back with replication traffic, which the
// reporter uses to re-evaluate its choice of source.
type UpdatePositionResponse struct {
	Metadata      ReplSetMetadata
	OplogMetadata OplogQueryMetadata
}

// ReplSetMetadata is the consensus metadata attached to replication traffic.
type ReplSetMetadata struct {
	Term                int64
	LastCommittedOpTime OpTimeAndWallTime
	LastOpVisible       OpTime
	ConfigVersion       int64
	PrimaryIndex        int
	SyncSourceIndex     int
}

// OplogQueryMetadata is the per-query metadata returned by a sync source.
type OplogQueryMetadata struct {
	LastCommittedOpTime OpTimeAndWallTime
	LastOpApplied       OpTime
	PrimaryIndex        int
	SyncSourceIndex     int
}

// ChainingPreference selects whether sync source choice honors the config's
// chaining setting or always allows chaining.
type ChainingPreference int

// Chaining preferences.
const (
	ChainingUseConfiguration ChainingPreference = iota
	ChainingAllowed
)

// NotElectableError explains why a node may not stand for election.
type NotElectableError struct {
	Reason string
}

func (e *NotElectableError) Error() string {
	return "not standing for election: " + e.Reason
}

// StepDownErrorKind classifies terminal step-down failures.
type StepDownErrorKind int

// Step-down failure kinds. All are terminal: the attempt must not be retried.
const (
	StepDownNotPrimary StepDownErrorKind = iota
	StepDownConflictingOperation
	StepDownTermChanged
	StepDownDeadlinePassed
	StepDownNoCaughtUpSecondary
)

// StepDownError is a terminal step-down failure.
type StepDownError struct {
	Kind    StepDownErrorKind
	Message string
}

func (e *StepDownError) Error() string { return e.Message }

// UpdatePositionError rejects a progress report from a peer.
type UpdatePositionError struct {
	Message string

	// ConfigVersion carries our config version when the rejection is due to
	// a version mismatch, 0 otherwise.
	ConfigVersion int64
}

func (e *UpdatePositionError) Error() string { return e.Message }

// SyncFromError rejects an operator request to sync from a specific member.
type SyncFromError struct {
	Message string
}

func (e *SyncFromError) Error() string { return e.Message }

// Errors returned for misuse of the coordinator API.
var (
	// ErrNilLogger is returned by NewTopologyCoordinator for a nil logger.
	ErrNilLogger = errors.New("repl: nil logger")

	// ErrNotMember is returned for operations that require membership in the
	// current config.
	ErrNotMember = errors.New("repl: not a member of the current configuration")

	// ErrSetNameMismatch rejects traffic from a different replica set.
	ErrSetNameMismatch = errors.New("repl: replica set name mismatch")

	// ErrInvalidConfig rejects heartbeats while our config does not include
	// us or is uninitialized.
	ErrInvalidConfig = errors.New("repl: replica set configuration is invalid or does not include us")

	// ErrSameMemberID rejects a heartbeat claiming our own member ID.
	ErrSameMemberID = errors.New("repl: received heartbeat from member with our own member ID")
)
