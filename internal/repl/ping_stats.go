package repl

import "time"

// maxHeartbeatRetries is the number of retries allowed within one heartbeat
// timeout window after the initial attempt fails.
const maxHeartbeatRetries = 2

// uninitializedPing marks a pingStats that has never measured a round trip.
const uninitializedPing time.Duration = -1

type heartbeatState int

const (
	heartbeatTrying heartbeatState = iota
	heartbeatSucceeded
	heartbeatFailed
)

// pingStats tracks round-trip statistics and the retry state machine for
// heartbeats to a single host. One heartbeat "round" starts with start and
// ends with either a hit or enough misses to exhaust the retry budget.
type pingStats struct {
	count              int
	average            time.Duration
	lastHeartbeatStart time.Time
	failuresSinceStart int
	state              heartbeatState
}

func newPingStats() *pingStats {
	return &pingStats{average: uninitializedPing, state: heartbeatSucceeded}
}

// start opens a new heartbeat round at now, resetting the retry budget.
func (p *pingStats) start(now time.Time) {
	p.lastHeartbeatStart = now
	p.failuresSinceStart = 0
	p.state = heartbeatTrying
}

// hit records a successful heartbeat and folds the round-trip time into the
// running average, weighting history 4:1.
func (p *pingStats) hit(rtt time.Duration) {
	p.state = heartbeatSucceeded
	p.count++
	if p.average == uninitializedPing {
		p.average = rtt
	} else {
		p.average = (p.average*4 + rtt) / 5
	}
}

// miss records a failed attempt; the round fails once the retry budget is
// exhausted.
func (p *pingStats) miss() {
	p.failuresSinceStart++
	if p.failuresSinceStart > maxHeartbeatRetries {
		p.state = heartbeatFailed
	}
}

// trying reports whether the current round still has attempts in flight.
func (p *pingStats) trying() bool { return p.state == heartbeatTrying }

// failed reports whether the current round exhausted its retries.
func (p *pingStats) failed() bool { return p.state == heartbeatFailed }

// retriesLeft is the number of attempts remaining in the current round.
func (p *pingStats) retriesLeft() int { return maxHeartbeatRetries - p.failuresSinceStart }

// millis returns the smoothed round-trip time, uninitializedPing before the
// first hit.
func (p *pingStats) millis() time.Duration { return p.average }

// pingCount returns the number of successful heartbeats ever recorded.
func (p *pingStats) pingCount() int { return p.count }
