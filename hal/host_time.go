//go:build !tinygo

package hal

import "time"

// hostTime emits a tick whenever step observes a new wall-clock second.
// The first step always ticks so the face is drawn at startup.
type hostTime struct {
	ch  chan time.Time
	now func() time.Time

	started bool
	last    int64
}

func newHostTime(now func() time.Time) *hostTime {
	return &hostTime{ch: make(chan time.Time, 4), now: now}
}

func (t *hostTime) Ticks() <-chan time.Time { return t.ch }

func (t *hostTime) step() {
	now := t.now()
	sec := now.Unix()
	if t.started && sec == t.last {
		return
	}
	t.started = true
	t.last = sec
	select {
	case t.ch <- now:
	default:
	}
}
