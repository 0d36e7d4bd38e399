package sapling

import (
	"fmt"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// recorder is a Presenter that logs every call.
type recorder struct {
	calls   []string
	notices []string
}

func (r *recorder) Notice(msg string) {
	r.notices = append(r.notices, msg)
	r.calls = append(r.calls, "notice "+msg)
}

func (r *recorder) Highlight(id NodeID, on bool) {
	r.calls = append(r.calls, fmt.Sprintf("highlight %d %v", id, on))
}

func (r *recorder) Relayout() {
	r.calls = append(r.calls, "relayout")
}

func (r *recorder) lastNotice() string {
	if len(r.notices) == 0 {
		return ""
	}
	return r.notices[len(r.notices)-1]
}

func newTestVisualizer(t *testing.T) (*Visualizer, *FrameScheduler, *recorder) {
	t.Helper()
	sched := NewFrameScheduler()
	rec := &recorder{}
	cfg := DefaultConfig()
	cfg.Debug = true
	v := New(sched, rec, cfg)
	require.Empty(t, rec.calls, "New must not call the presenter")
	return v, sched, rec
}

func TestVisualizerSeed(t *testing.T) {
	v, _, _ := newTestVisualizer(t)
	require.Equal(t, []int{10, 20, 30, 40, 50, 60}, v.Tree().Keys())
	root, ok := v.Tree().Position(v.Tree().Root())
	require.True(t, ok)
	require.Equal(t, Vec2{650, 30}, root)
	require.Equal(t, PhaseIdle, v.Phase())
	require.False(t, v.Busy())
}

func TestVisualizerInsert(t *testing.T) {
	v, _, rec := newTestVisualizer(t)

	require.NoError(t, v.Insert(" 25 "))
	require.Equal(t, []string{"relayout"}, rec.calls)
	require.True(t, v.Tree().Contains(25))
	require.Equal(t, Result{Op: OpInsert, Key: 25}, v.Last())

	id, err := v.Tree().Find(25)
	require.NoError(t, err)
	p, _ := v.Tree().Position(id)
	require.Equal(t, Vec2{528.125, 330}, p)
}

func TestVisualizerInsertErrors(t *testing.T) {
	tests := []struct {
		input  string
		target error
		notice string
	}{
		{"40", ErrDuplicateKey, "Node 40 is already present"},
		{"abc", ErrInvalidInput, "Please enter a valid number"},
		{"", ErrInvalidInput, "Please enter a valid number"},
		{"12abc", ErrInvalidInput, "Please enter a valid number"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, _, rec := newTestVisualizer(t)
			err := v.Insert(tt.input)
			require.True(t, errors.Is(err, tt.target), "err = %v", err)
			require.Equal(t, []string{"notice " + tt.notice}, rec.calls)
			require.Equal(t, 6, v.Tree().Len())
		})
	}
}

func TestVisualizerDeleteWaitsForHighlight(t *testing.T) {
	v, sched, rec := newTestVisualizer(t)
	id, err := v.Tree().Find(20)
	require.NoError(t, err)

	require.NoError(t, v.Delete("20"))
	require.True(t, v.Busy())
	require.True(t, v.Tree().Contains(20), "key removed before the highlight window ended")
	n, _ := v.Tree().Node(id)
	require.Equal(t, StateHighlighted, n.State)

	sched.Advance(DefaultDwell)
	require.True(t, v.Tree().Contains(20))
	sched.Advance(DefaultDwell)

	require.False(t, v.Busy())
	require.False(t, v.Tree().Contains(20))
	require.Equal(t, []int{10, 30, 40, 50, 60}, v.Tree().Keys())
	require.Equal(t, []string{
		fmt.Sprintf("highlight %d true", id),
		fmt.Sprintf("highlight %d false", id),
		"relayout",
	}, rec.calls)
	require.Equal(t, Result{Op: OpDelete, Key: 20, Visited: []int{20}}, v.Last())
}

func TestVisualizerDeleteErrors(t *testing.T) {
	v, _, rec := newTestVisualizer(t)

	err := v.Delete("99")
	require.True(t, errors.Is(err, ErrKeyNotFound))
	require.Equal(t, "Node not found", rec.lastNotice())
	require.Equal(t, []int{10, 20, 30, 40, 50, 60}, v.Tree().Keys())

	err = v.Delete("x")
	require.True(t, errors.Is(err, ErrInvalidInput))
	require.Equal(t, "Please enter a valid number to delete", rec.lastNotice())

	require.NoError(t, v.Clear())
	err = v.Delete("10")
	require.True(t, errors.Is(err, ErrEmptyTree))
	require.Equal(t, "Tree is empty, nothing to delete", rec.lastNotice())
	require.False(t, v.Busy())
}

func TestVisualizerSearch(t *testing.T) {
	v, sched, rec := newTestVisualizer(t)

	err := v.Search("99")
	require.True(t, errors.Is(err, ErrKeyNotFound))
	require.Equal(t, []string{"notice Node 99 not found!"}, rec.calls)
	require.False(t, v.Busy())

	rec.calls = nil
	require.NoError(t, v.Search("30"))
	require.Len(t, rec.calls, 1, "found notice must wait for the highlight window")
	sched.Drain(nil)
	require.Equal(t, "notice Node 30 found!", rec.calls[len(rec.calls)-1])
	require.Equal(t, 2*DefaultDwell, sched.Now())
	require.Equal(t, 6, v.Tree().Len())

	err = v.Search("")
	require.True(t, errors.Is(err, ErrInvalidInput))
	require.Equal(t, "Please enter a valid number to search", rec.lastNotice())
}

func TestVisualizerTraversals(t *testing.T) {
	tests := []struct {
		order  Order
		notice string
	}{
		{InOrder, "Traversal Order: 10 → 20 → 30 → 40 → 50 → 60"},
		{PreOrder, "Traversal Order: 40 → 20 → 10 → 30 → 60 → 50"},
		{PostOrder, "Traversal Order: 10 → 30 → 20 → 50 → 60 → 40"},
		{LevelOrder, "Traversal Order: 40 → 20 → 60 → 10 → 30 → 50"},
	}
	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			v, sched, rec := newTestVisualizer(t)
			require.NoError(t, v.Traverse(tt.order))
			require.Empty(t, rec.notices)

			sched.Drain(nil)
			require.Equal(t, []string{tt.notice}, rec.notices)
			require.Equal(t, time.Duration(12)*DefaultDwell, sched.Now())
			require.Equal(t, PhaseComplete, v.Phase())
			require.Equal(t, OpTraverse, v.Last().Op)
			require.Equal(t, tt.order, v.Last().Order)

			// Every node is back to normal.
			for id := range v.Tree().Walk(InOrder) {
				n, _ := v.Tree().Node(id)
				require.Equal(t, StateNormal, n.State, "node %d", n.Key)
			}
		})
	}
}

func TestVisualizerRejectsWhileBusy(t *testing.T) {
	v, sched, rec := newTestVisualizer(t)
	require.NoError(t, v.Traverse(InOrder))
	sched.Advance(DefaultDwell / 2)
	require.Equal(t, 0, v.Step())

	busy := map[string]func() error{
		"insert":   func() error { return v.Insert("5") },
		"delete":   func() error { return v.Delete("10") },
		"search":   func() error { return v.Search("10") },
		"traverse": func() error { return v.Traverse(PreOrder) },
		"clear":    v.Clear,
		"reset":    v.Reset,
	}
	for name, op := range busy {
		rec.notices = nil
		err := op()
		require.True(t, errors.Is(err, ErrBusy), "%s: err = %v", name, err)
		require.Equal(t, []string{"Animation in progress, please wait"}, rec.notices, name)
	}
	require.Equal(t, []int{10, 20, 30, 40, 50, 60}, v.Tree().Keys())

	// Dragging stays available mid-animation.
	require.True(t, v.Drag(v.Tree().Root(), 1, 1))

	sched.Advance(DefaultDwell)
	require.Equal(t, PhaseReverting, v.Phase())
	require.Equal(t, 0, v.Step())
	sched.Advance(DefaultDwell)
	require.Equal(t, 1, v.Step())
	require.Equal(t, PhaseHighlighting, v.Phase())

	sched.Drain(nil)
	require.Equal(t, -1, v.Step())
	require.NoError(t, v.Insert("5"))
}

func TestVisualizerClearAndReset(t *testing.T) {
	v, _, rec := newTestVisualizer(t)
	gen := v.Tree().Generation()

	require.NoError(t, v.Clear())
	require.True(t, v.Tree().Empty())
	require.NotEqual(t, gen, v.Tree().Generation())
	require.Equal(t, []string{"relayout"}, rec.calls)

	err := v.Traverse(InOrder)
	require.True(t, errors.Is(err, ErrEmptyTree))
	require.Equal(t, "Tree is empty", rec.lastNotice())

	require.NoError(t, v.Insert("7"))
	require.NoError(t, v.Reset())
	require.Equal(t, []int{10, 20, 30, 40, 50, 60}, v.Tree().Keys())
	require.Equal(t, OpReset, v.Last().Op)
}

func TestVisualizerDrag(t *testing.T) {
	v, _, rec := newTestVisualizer(t)
	id, _ := v.Tree().Find(60)

	require.True(t, v.Drag(id, 900, 400))
	p, _ := v.Tree().Position(id)
	require.Equal(t, Vec2{900, 400}, p)
	require.Empty(t, rec.calls)
	require.False(t, v.Drag(NoNode, 0, 0))

	// The next structural change snaps the node back.
	require.NoError(t, v.Insert("70"))
	p, _ = v.Tree().Position(id)
	require.Equal(t, Vec2{812.5, 130}, p)
}

func TestVisualizerNilPresenter(t *testing.T) {
	sched := NewFrameScheduler()
	v := New(sched, nil, Config{InitialKeys: []int{2, 1, 3}, Layout: DefaultLayoutConfig()})
	require.NoError(t, v.Traverse(LevelOrder))
	sched.Drain(nil)
	require.Equal(t, []int{2, 1, 3}, v.Last().Visited)
}

func TestVisualizerSkipsDuplicateSeedKeys(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialKeys = []int{5, 5, 6}
	v := New(NewFrameScheduler(), nil, cfg)
	require.Equal(t, []int{5, 6}, v.Tree().Keys())
}
