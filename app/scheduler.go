package app

import "time"

// Scheduler coalesces tick marks into redraws: any number of marks between
// two flushes produce one redraw at the latest marked time.
type Scheduler struct {
	dirty   bool
	now     time.Time
	redraws uint64
}

// Mark flags the surface dirty for the tick at now.
func (s *Scheduler) Mark(now time.Time) {
	s.dirty = true
	s.now = now
}

// Dirty reports whether a redraw is pending.
func (s *Scheduler) Dirty() bool { return s.dirty }

// Flush runs redraw once if the surface is dirty and reports whether it
// did.
func (s *Scheduler) Flush(redraw func(now time.Time)) bool {
	if !s.dirty {
		return false
	}
	s.dirty = false
	s.redraws++
	redraw(s.now)
	return true
}

// Redraws returns the number of flushes that drew.
func (s *Scheduler) Redraws() uint64 { return s.redraws }
