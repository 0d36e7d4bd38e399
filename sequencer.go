package sapling

import (
	"time"

	"github.com/cockroachdb/errors"
)

// DefaultDwell is how long a node stays in each half of its highlight window.
// A full visit (highlight then revert) takes twice this.
const DefaultDwell = 300 * time.Millisecond

// Phase is the state of a Sequencer.
type Phase uint8

const (
	PhaseIdle         Phase = iota // no sequence started yet
	PhaseHighlighting              // step Index is highlighted
	PhaseReverting                 // step Index is reverting to normal
	PhaseComplete                  // the last sequence finished
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseHighlighting:
		return "highlighting"
	case PhaseReverting:
		return "reverting"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// EventType identifies a sequencer event.
type EventType uint8

const (
	EventHighlight   EventType = iota // a step's node becomes highlighted
	EventUnhighlight                  // a step's node reverts to normal
	EventComplete                     // every step has been visited
)

// Step is one node visit. The key is captured when the sequence starts so
// the completion report is stable even if the node's key changes later.
type Step struct {
	Node NodeID
	Key  int
}

// Event is delivered to the handler passed to Sequencer.Start.
type Event struct {
	Type  EventType
	Index int // step index; -1 for EventComplete
	Step  Step
	// Visited holds every step's key in order. Only set on EventComplete.
	Visited []int
}

// Sequencer visits an ordered list of nodes one at a time, highlighting each
// for a fixed dwell and then reverting it before moving on. It is a finite
// state machine
//
//	Idle -> Highlighting(0) -> Reverting(0) -> Highlighting(1) -> ... -> Complete
//
// whose transitions are driven by a Scheduler. At most one sequence runs at a
// time and a started sequence always runs to completion.
type Sequencer struct {
	sched Scheduler
	dwell time.Duration

	steps   []Step
	index   int
	phase   Phase
	handler func(Event)
}

// NewSequencer creates an idle sequencer. A non-positive dwell selects
// DefaultDwell.
func NewSequencer(sched Scheduler, dwell time.Duration) *Sequencer {
	if dwell <= 0 {
		dwell = DefaultDwell
	}
	return &Sequencer{sched: sched, dwell: dwell}
}

// Dwell returns the duration of each half of a highlight window.
func (s *Sequencer) Dwell() time.Duration {
	return s.dwell
}

// Phase returns the current state.
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Index returns the step being visited, or -1 when no step is active.
func (s *Sequencer) Index() int {
	if !s.Busy() {
		return -1
	}
	return s.index
}

// Busy reports whether a sequence is in flight.
func (s *Sequencer) Busy() bool {
	return s.phase == PhaseHighlighting || s.phase == PhaseReverting
}

// Start begins visiting steps in order, delivering events to fn. An empty
// sequence completes synchronously with an empty Visited list. Start fails
// with ErrBusy if a sequence is already running.
func (s *Sequencer) Start(steps []Step, fn func(Event)) error {
	if s.Busy() {
		return errors.Wrap(ErrBusy, "sapling: sequencer start")
	}
	s.steps = append(s.steps[:0], steps...)
	s.index = 0
	s.handler = fn
	if len(s.steps) == 0 {
		s.complete()
		return nil
	}
	s.highlight()
	return nil
}

func (s *Sequencer) highlight() {
	s.phase = PhaseHighlighting
	s.emit(Event{Type: EventHighlight, Index: s.index, Step: s.steps[s.index]})
	s.sched.After(s.dwell, s.revert)
}

func (s *Sequencer) revert() {
	s.phase = PhaseReverting
	s.emit(Event{Type: EventUnhighlight, Index: s.index, Step: s.steps[s.index]})
	s.sched.After(s.dwell, s.advance)
}

func (s *Sequencer) advance() {
	s.index++
	if s.index < len(s.steps) {
		s.highlight()
		return
	}
	s.complete()
}

func (s *Sequencer) complete() {
	visited := make([]int, len(s.steps))
	for i, st := range s.steps {
		visited[i] = st.Key
	}
	s.phase = PhaseComplete
	fn := s.handler
	s.handler = nil
	if fn != nil {
		fn(Event{Type: EventComplete, Index: -1, Visited: visited})
	}
}

func (s *Sequencer) emit(ev Event) {
	if s.handler != nil {
		s.handler(ev)
	}
}
