package engine

import "time"

type engineTimer interface {
	C() <-chan time.Time
	Stop() bool
	Reset(d time.Duration) bool
}

type (
	timerFactory func(d time.Duration) engineTimer
	clockFunc    func() time.Time
	jitterFunc   func(max time.Duration) time.Duration
)

type stdTimer struct {
	t *time.Timer
}

func (t *stdTimer) C() <-chan time.Time { return t.t.C }
func (t *stdTimer) Stop() bool          { return t.t.Stop() }
func (t *stdTimer) Reset(d time.Duration) bool {
	return t.t.Reset(d)
}

func defaultTimerFactory(d time.Duration) engineTimer {
	return &stdTimer{t: time.NewTimer(d)}
}
