// Package sapling is the core of an interactive binary search tree
// visualizer: an arena-backed BST, a depth-based layout, and a sequencer that
// highlights nodes one at a time.
//
// The package draws nothing. A [Presenter] (the ebiten view in sapling/view,
// or the terminal REPL in cmd/sapling) receives notices, highlight changes
// and relayout signals from a [Visualizer] and renders [Tree] state.
//
// # Quick start
//
//	sched := sapling.NewFrameScheduler()
//	v := sapling.New(sched, presenter, sapling.DefaultConfig())
//	_ = v.Insert("35")
//	_ = v.Traverse(sapling.InOrder)
//	sched.Drain(time.Sleep) // or sched.Advance(dt) once per frame
//
// # Tree
//
// [Tree] stores nodes in an arena addressed by [NodeID]. Parent links are
// indices, so there are no ownership cycles. Keys are unique: inserting an
// existing key fails with [ErrDuplicateKey]. Deleting a node with two
// children copies its in-order successor's key into it and removes the
// successor instead, so a NodeID can carry a different key afterwards.
//
// # Layout
//
// [Layout] places the root at the horizontal centre and halves the
// horizontal span at every level. Nodes at the same depth never share an x,
// however unbalanced the tree. [Tree.MoveNode] overrides a position until the
// next layout.
//
// # Animation
//
// [Sequencer] is a finite state machine (idle, highlighting, reverting,
// complete) driven by a [Scheduler]. [FrameScheduler] is a cooperative
// virtual clock, so every callback runs on the caller's goroutine.
package sapling
