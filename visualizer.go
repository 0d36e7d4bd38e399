package sapling

import (
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
)

// Presenter is the presentation layer a Visualizer drives. All calls happen
// on the session's single logical thread.
type Presenter interface {
	// Notice shows a user-facing message.
	Notice(msg string)
	// Highlight reports that id changed display state.
	Highlight(id NodeID, on bool)
	// Relayout reports that the tree structure changed and every node has a
	// fresh Layout position.
	Relayout()
}

// DefaultKeys seed the tree at start-up and on Reset.
var DefaultKeys = []int{40, 20, 60, 10, 30, 50}

// Config configures a Visualizer.
type Config struct {
	Layout LayoutConfig
	// Dwell is each half of a node's highlight window. Zero selects DefaultDwell.
	Dwell time.Duration
	// InitialKeys are inserted in order at start-up and on Reset.
	InitialKeys []int
	// Logger receives debug records for every operation. Nil selects slog.Default().
	Logger *slog.Logger
	// Debug enables tree invariant checks after every mutation.
	Debug bool
}

// DefaultConfig returns the default layout and dwell seeded with DefaultKeys.
func DefaultConfig() Config {
	return Config{
		Layout:      DefaultLayoutConfig(),
		Dwell:       DefaultDwell,
		InitialKeys: DefaultKeys,
	}
}

// Result describes the most recent operation that completed.
type Result struct {
	Op    Op
	Order Order // OpTraverse only
	Key   int   // OpInsert, OpDelete, OpSearch
	// Visited lists the keys highlighted by the operation, in order.
	Visited []int
}

// Visualizer is one interactive session: it owns the tree, lays it out after
// every structural change, sequences highlight animations and reports
// everything to a Presenter. Every failed operation is shown as a notice and
// also returned.
//
// While a highlight sequence is running every operation is rejected with
// ErrBusy; Drag is always allowed.
type Visualizer struct {
	tree *Tree
	seq  *Sequencer
	pres Presenter
	cfg  Config
	log  *slog.Logger
	last Result
}

// New creates a session seeded with cfg.InitialKeys. It does not call the
// presenter; the caller draws the initial tree itself.
func New(sched Scheduler, pres Presenter, cfg Config) *Visualizer {
	if pres == nil {
		pres = nopPresenter{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	v := &Visualizer{
		tree: NewTree(),
		seq:  NewSequencer(sched, cfg.Dwell),
		pres: pres,
		cfg:  cfg,
		log:  logger.With("component", "sapling"),
	}
	v.tree.SetDebugMode(cfg.Debug, v.log)
	v.seed()
	Layout(v.tree, v.cfg.Layout)
	return v
}

// Tree returns the session's tree. Callers must not mutate it directly.
func (v *Visualizer) Tree() *Tree {
	return v.tree
}

// LayoutConfig returns the layout the session uses.
func (v *Visualizer) LayoutConfig() LayoutConfig {
	return v.cfg.Layout
}

// Busy reports whether a highlight sequence is running.
func (v *Visualizer) Busy() bool {
	return v.seq.Busy()
}

// Phase returns the sequencer state.
func (v *Visualizer) Phase() Phase {
	return v.seq.Phase()
}

// Step returns the index of the step being highlighted, or -1 when idle.
func (v *Visualizer) Step() int {
	return v.seq.Index()
}

// Last returns the most recently completed operation.
func (v *Visualizer) Last() Result {
	return v.last
}

// Insert parses input and inserts the key, then relays out the tree.
func (v *Visualizer) Insert(input string) error {
	if err := v.guard(OpInsert); err != nil {
		return err
	}
	key, err := ParseKey(input)
	if err != nil {
		return v.fail(OpInsert, 0, err)
	}
	id, err := v.tree.Insert(key)
	if err != nil {
		return v.fail(OpInsert, key, err)
	}
	v.log.Debug("inserted", "key", key, "node", id, "size", v.tree.Len())
	v.relayout()
	v.last = Result{Op: OpInsert, Key: key}
	return nil
}

// Delete parses input, highlights the node holding the key and, once the
// highlight window has finished, deletes it and relays out the tree.
func (v *Visualizer) Delete(input string) error {
	if err := v.guard(OpDelete); err != nil {
		return err
	}
	key, err := ParseKey(input)
	if err != nil {
		return v.fail(OpDelete, 0, err)
	}
	id, err := v.tree.Find(key)
	if err != nil {
		return v.fail(OpDelete, key, err)
	}
	v.log.Debug("deleting", "key", key, "node", id)
	return v.seq.Start([]Step{{Node: id, Key: key}}, func(ev Event) {
		v.onStep(ev)
		if ev.Type != EventComplete {
			return
		}
		if err := v.tree.Delete(key); err != nil {
			_ = v.fail(OpDelete, key, err)
			return
		}
		v.log.Debug("deleted", "key", key, "size", v.tree.Len())
		v.relayout()
		v.last = Result{Op: OpDelete, Key: key, Visited: ev.Visited}
	})
}

// Search parses input and looks the key up. A found node is highlighted and
// reported once its window has finished; a missing key is reported at once.
func (v *Visualizer) Search(input string) error {
	if err := v.guard(OpSearch); err != nil {
		return err
	}
	key, err := ParseKey(input)
	if err != nil {
		return v.fail(OpSearch, 0, err)
	}
	id, err := v.tree.Find(key)
	if err != nil {
		v.last = Result{Op: OpSearch, Key: key}
		return v.fail(OpSearch, key, err)
	}
	return v.seq.Start([]Step{{Node: id, Key: key}}, func(ev Event) {
		v.onStep(ev)
		if ev.Type != EventComplete {
			return
		}
		v.last = Result{Op: OpSearch, Key: key, Visited: ev.Visited}
		v.pres.Notice(FoundNotice(key))
	})
}

// Traverse highlights every node in the given order and reports the visit
// order when the sequence completes.
func (v *Visualizer) Traverse(order Order) error {
	if err := v.guard(OpTraverse); err != nil {
		return err
	}
	ids, err := v.tree.Traverse(order)
	if err != nil {
		return v.fail(OpTraverse, 0, err)
	}
	steps := make([]Step, len(ids))
	for i, id := range ids {
		steps[i] = Step{Node: id, Key: v.tree.nodes[id].Key}
	}
	v.log.Debug("traversing", "order", order, "nodes", len(steps))
	return v.seq.Start(steps, func(ev Event) {
		v.onStep(ev)
		if ev.Type != EventComplete {
			return
		}
		v.last = Result{Op: OpTraverse, Order: order, Visited: ev.Visited}
		v.pres.Notice(TraversalNotice(ev.Visited))
	})
}

// Clear removes every node.
func (v *Visualizer) Clear() error {
	if err := v.guard(OpClear); err != nil {
		return err
	}
	v.tree.Clear()
	v.log.Debug("cleared")
	v.relayout()
	v.last = Result{Op: OpClear}
	return nil
}

// Reset replaces the tree with one built from the configured initial keys.
func (v *Visualizer) Reset() error {
	if err := v.guard(OpReset); err != nil {
		return err
	}
	v.tree.Clear()
	v.seed()
	v.log.Debug("reset", "size", v.tree.Len())
	v.relayout()
	v.last = Result{Op: OpReset}
	return nil
}

// Drag moves a node to (x, y) without changing the tree structure. The
// position holds until the next relayout. The presenter is not notified; it
// is expected to be the caller.
func (v *Visualizer) Drag(id NodeID, x, y float64) bool {
	return v.tree.MoveNode(id, x, y)
}

func (v *Visualizer) seed() {
	for _, k := range v.cfg.InitialKeys {
		if _, err := v.tree.Insert(k); err != nil {
			v.log.Warn("skipping initial key", "key", k, "err", err)
		}
	}
}

func (v *Visualizer) relayout() {
	Layout(v.tree, v.cfg.Layout)
	v.pres.Relayout()
}

func (v *Visualizer) onStep(ev Event) {
	switch ev.Type {
	case EventHighlight:
		v.tree.SetState(ev.Step.Node, StateHighlighted)
		v.pres.Highlight(ev.Step.Node, true)
	case EventUnhighlight:
		v.tree.SetState(ev.Step.Node, StateNormal)
		v.pres.Highlight(ev.Step.Node, false)
	}
}

func (v *Visualizer) guard(op Op) error {
	if v.seq.Busy() {
		return v.fail(op, 0, errors.Wrapf(ErrBusy, "sapling: %s", op))
	}
	return nil
}

func (v *Visualizer) fail(op Op, key int, err error) error {
	v.log.Debug("operation rejected", "op", op, "key", key, "err", err)
	v.pres.Notice(NoticeFor(op, key, err))
	return err
}

type nopPresenter struct{}

func (nopPresenter) Notice(string) {}

func (nopPresenter) Highlight(NodeID, bool) {}

func (nopPresenter) Relayout() {}
