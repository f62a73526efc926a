package repl

import (
	"fmt"
	"time"
)

// Term sentinels. A term of UninitializedTerm means the node has not seen any
// replication progress yet; InitialTerm is the first valid term after a config
// is installed.
const (
	UninitializedTerm int64 = -1
	InitialTerm       int64 = 0
)

// Timestamp is a replication timestamp: wall-clock seconds plus an increment
// that orders operations within the same second.
type Timestamp struct {
	Secs uint32 `json:"t"`
	Inc  uint32 `json:"i"`
}

// IsZero reports whether the timestamp is the zero value.
func (t Timestamp) IsZero() bool {
	return t.Secs == 0 && t.Inc == 0
}

// Before reports whether t orders strictly before other.
func (t Timestamp) Before(other Timestamp) bool {
	if t.Secs != other.Secs {
		return t.Secs < other.Secs
	}
	return t.Inc < other.Inc
}

func (t Timestamp) String() string {
	return fmt.Sprintf("Timestamp(%d, %d)", t.Secs, t.Inc)
}

// OpTime identifies a single operation in the replication history.
// OpTimes are totally ordered by (Term, Timestamp): an operation from a
// higher term always orders after any operation from a lower term, no matter
// their timestamps. Every progress comparison in this package goes through
// Compare.
type OpTime struct {
	Timestamp Timestamp `json:"ts"`
	Term      int64     `json:"t"`
}

// IsNull reports whether the optime carries no progress information.
func (o OpTime) IsNull() bool {
	return o.Timestamp.IsZero()
}

// Compare returns -1, 0, or 1 as o orders before, equal to, or after other.
func (o OpTime) Compare(other OpTime) int {
	switch {
	case o.Term < other.Term:
		return -1
	case o.Term > other.Term:
		return 1
	}
	if o.Timestamp == other.Timestamp {
		return 0
	}
	if o.Timestamp.Before(other.Timestamp) {
		return -1
	}
	return 1
}

// Before reports o < other.
func (o OpTime) Before(other OpTime) bool { return o.Compare(other) < 0 }

// After reports o > other.
func (o OpTime) After(other OpTime) bool { return o.Compare(other) > 0 }

// AtMost reports o <= other.
func (o OpTime) AtMost(other OpTime) bool { return o.Compare(other) <= 0 }

// AtLeast reports o >= other.
func (o OpTime) AtLeast(other OpTime) bool { return o.Compare(other) >= 0 }

func (o OpTime) String() string {
	return fmt.Sprintf("{ ts: %s, t: %d }", o.Timestamp, o.Term)
}

// OpTimeAndWallTime pairs an optime with the wall-clock time the operation was
// generated at on the primary.
type OpTimeAndWallTime struct {
	OpTime   OpTime    `json:"opTime"`
	WallTime time.Time `json:"wallTime"`
}

func minOpTimeAndWallTime(a, b OpTimeAndWallTime) OpTimeAndWallTime {
	if b.OpTime.Before(a.OpTime) {
		return b
	}
	return a
}
