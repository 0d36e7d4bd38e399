package sapling

import "time"

// Scheduler runs a callback after a delay without blocking the caller.
// Callbacks must run on the same logical thread as the rest of the session.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// FrameScheduler is a cooperative virtual clock. Callbacks fire only from
// Advance or Drain, on the caller's goroutine, in due-time order; callbacks
// due at the same instant fire in the order they were scheduled.
//
// The view advances it once per frame; the REPL drains it in real time.
type FrameScheduler struct {
	now    time.Duration
	seq    uint64
	timers []timer // sorted by (due, seq)
}

type timer struct {
	due time.Duration
	seq uint64
	fn  func()
}

// NewFrameScheduler creates a scheduler with its clock at zero.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// After schedules fn to run once the clock has advanced by d. Negative
// delays are treated as zero.
func (s *FrameScheduler) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	tm := timer{due: s.now + d, seq: s.seq, fn: fn}
	i := len(s.timers)
	for i > 0 && s.timers[i-1].due > tm.due {
		i--
	}
	s.timers = append(s.timers, timer{})
	copy(s.timers[i+1:], s.timers[i:])
	s.timers[i] = tm
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *FrameScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks waiting to fire.
func (s *FrameScheduler) Pending() int {
	return len(s.timers)
}

// Next returns the delay until the earliest pending callback. The second
// result is false when nothing is pending.
func (s *FrameScheduler) Next() (time.Duration, bool) {
	if len(s.timers) == 0 {
		return 0, false
	}
	return s.timers[0].due - s.now, true
}

// Advance moves the clock forward by dt and fires every callback that has
// become due, including ones scheduled by earlier callbacks in the same
// call. Returns the number of callbacks fired.
func (s *FrameScheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	fired := 0
	for len(s.timers) > 0 && s.timers[0].due <= s.now {
		tm := s.timers[0]
		copy(s.timers, s.timers[1:])
		s.timers[len(s.timers)-1] = timer{}
		s.timers = s.timers[:len(s.timers)-1]
		tm.fn()
		fired++
	}
	return fired
}

// Drain fires every pending callback, including ones scheduled while
// draining. Before each jump of the clock it calls sleep with the gap, so a
// real-time caller can pass time.Sleep. A nil sleep jumps immediately.
func (s *FrameScheduler) Drain(sleep func(time.Duration)) int {
	fired := 0
	for {
		d, ok := s.Next()
		if !ok {
			return fired
		}
		if d > 0 && sleep != nil {
			sleep(d)
		}
		fired += s.Advance(d)
	}
}
