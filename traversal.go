package sapling

import "iter"

// Walk returns a lazy sequence of the tree's nodes in the given order. The
// sequence is recomputed from the current tree each time it is ranged over.
// An empty tree yields nothing. The tree must not be mutated during iteration.
func (t *Tree) Walk(order Order) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if t.root == NoNode {
			return
		}
		switch order {
		case InOrder:
			t.inOrder(t.root, yield)
		case PreOrder:
			t.preOrder(t.root, yield)
		case PostOrder:
			t.postOrder(t.root, yield)
		case LevelOrder:
			t.levelOrder(yield)
		}
	}
}

// Traverse returns the nodes in the given order. It fails with ErrEmptyTree
// when the tree has no root.
func (t *Tree) Traverse(order Order) ([]NodeID, error) {
	if t.root == NoNode {
		return nil, ErrEmptyTree
	}
	ids := make([]NodeID, 0, t.count)
	for id := range t.Walk(order) {
		ids = append(ids, id)
	}
	return ids, nil
}

// KeysOf maps node IDs to their keys, skipping IDs that are not live.
func (t *Tree) KeysOf(ids []NodeID) []int {
	keys := make([]int, 0, len(ids))
	for _, id := range ids {
		if k, ok := t.Key(id); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// The depth-first helpers return false once yield has asked to stop.

func (t *Tree) inOrder(id NodeID, yield func(NodeID) bool) bool {
	if id == NoNode {
		return true
	}
	n := &t.nodes[id]
	return t.inOrder(n.Left, yield) && yield(id) && t.inOrder(n.Right, yield)
}

func (t *Tree) preOrder(id NodeID, yield func(NodeID) bool) bool {
	if id == NoNode {
		return true
	}
	n := &t.nodes[id]
	return yield(id) && t.preOrder(n.Left, yield) && t.preOrder(n.Right, yield)
}

func (t *Tree) postOrder(id NodeID, yield func(NodeID) bool) bool {
	if id == NoNode {
		return true
	}
	n := &t.nodes[id]
	return t.postOrder(n.Left, yield) && t.postOrder(n.Right, yield) && yield(id)
}

func (t *Tree) levelOrder(yield func(NodeID) bool) {
	queue := []NodeID{t.root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if !yield(id) {
			return
		}
		n := &t.nodes[id]
		if n.Left != NoNode {
			queue = append(queue, n.Left)
		}
		if n.Right != NoNode {
			queue = append(queue, n.Right)
		}
	}
}
