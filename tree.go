package sapling

import "log/slog"

// Node is a single binary search tree node. Nodes live in their Tree's arena
// and refer to each other by NodeID; Parent is an index, never an owning
// reference.
type Node struct {
	// Identity
	ID  NodeID
	Key int

	// Hierarchy
	Left, Right, Parent NodeID

	// Position assigned by Layout, or by MoveNode until the next Layout.
	X, Y float64

	State DisplayState

	live bool
}

// Tree is an unbalanced binary search tree of unique integer keys. It
// exclusively owns its nodes: other components hold NodeIDs only for the
// duration of an operation or animation.
//
// Released arena slots are not reused until Clear, so a NodeID never aliases
// a different node between two Clears.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	nodes []Node // index 0 is the NoNode sentinel
	root  NodeID
	count int
	gen   uint32 // bumped by Clear

	debug  bool
	logger *slog.Logger
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make([]Node, 1, 16)}
}

// Root returns the root node, or NoNode if the tree is empty.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return t.count
}

// Empty reports whether the tree has no root.
func (t *Tree) Empty() bool {
	return t.root == NoNode
}

// Node returns a copy of the node with the given ID. The second result is
// false if id does not refer to a live node.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if !t.valid(id) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// Key returns the key stored at id. The second result is false if id does not
// refer to a live node.
func (t *Tree) Key(id NodeID) (int, bool) {
	if !t.valid(id) {
		return 0, false
	}
	return t.nodes[id].Key, true
}

// Position returns the current position of id.
func (t *Tree) Position(id NodeID) (Vec2, bool) {
	if !t.valid(id) {
		return Vec2{}, false
	}
	n := &t.nodes[id]
	return Vec2{n.X, n.Y}, true
}

// MoveNode overrides the position of id, e.g. when the user drags it. The
// override lasts until the next Layout. Tree structure is not affected.
// Returns false if id is not a live node.
func (t *Tree) MoveNode(id NodeID, x, y float64) bool {
	if !t.valid(id) {
		return false
	}
	t.nodes[id].X = x
	t.nodes[id].Y = y
	return true
}

// SetState sets the display state of id. Returns false if id is not a live node.
func (t *Tree) SetState(id NodeID, st DisplayState) bool {
	if !t.valid(id) {
		return false
	}
	t.nodes[id].State = st
	return true
}

// Depth returns the number of edges between id and the root, or -1 if id is
// not a live node.
func (t *Tree) Depth(id NodeID) int {
	if !t.valid(id) {
		return -1
	}
	depth := 0
	for p := t.nodes[id].Parent; p != NoNode; p = t.nodes[p].Parent {
		depth++
	}
	return depth
}

// Height returns the number of levels in the tree (0 when empty).
func (t *Tree) Height() int {
	return t.height(t.root)
}

func (t *Tree) height(id NodeID) int {
	if id == NoNode {
		return 0
	}
	n := &t.nodes[id]
	return 1 + max(t.height(n.Left), t.height(n.Right))
}

// Contains reports whether key is in the tree.
func (t *Tree) Contains(key int) bool {
	return t.find(t.root, key) != NoNode
}

// Keys returns all keys in ascending order.
func (t *Tree) Keys() []int {
	keys := make([]int, 0, t.count)
	for id := range t.Walk(InOrder) {
		keys = append(keys, t.nodes[id].Key)
	}
	return keys
}

// --- Queries ---

// Find returns the node holding key. It fails with ErrEmptyTree when the tree
// has no root and with ErrKeyNotFound when key is absent.
func (t *Tree) Find(key int) (NodeID, error) {
	if t.root == NoNode {
		return NoNode, ErrEmptyTree
	}
	id := t.find(t.root, key)
	if id == NoNode {
		return NoNode, keyNotFoundError(key)
	}
	return id, nil
}

func (t *Tree) find(id NodeID, key int) NodeID {
	if id == NoNode {
		return NoNode
	}
	n := &t.nodes[id]
	switch {
	case key < n.Key:
		return t.find(n.Left, key)
	case key > n.Key:
		return t.find(n.Right, key)
	default:
		return id
	}
}

// --- Mutations ---

// Insert adds key as a new leaf and returns its ID. If key is already present
// the tree is left unchanged and the error matches ErrDuplicateKey.
func (t *Tree) Insert(key int) (NodeID, error) {
	if t.find(t.root, key) != NoNode {
		return NoNode, duplicateKeyError(key)
	}
	id := t.alloc(key)
	if t.root == NoNode {
		t.root = id
	} else {
		t.insertAt(t.root, id)
	}
	t.count++
	if t.debug {
		t.debugCheck("Insert")
	}
	return id, nil
}

// insertAt descends from at and attaches the already-allocated leaf id.
func (t *Tree) insertAt(at, id NodeID) {
	n := &t.nodes[at]
	key := t.nodes[id].Key
	if key < n.Key {
		if n.Left == NoNode {
			t.setLeft(at, id)
			return
		}
		t.insertAt(n.Left, id)
		return
	}
	if n.Right == NoNode {
		t.setRight(at, id)
		return
	}
	t.insertAt(n.Right, id)
}

// Delete removes key from the tree. A node with two children takes the key
// of its in-order successor, and the successor's node is removed instead, so
// the surviving NodeID may carry a different key afterwards.
//
// Fails with ErrEmptyTree or ErrKeyNotFound without changing the tree.
func (t *Tree) Delete(key int) error {
	if t.root == NoNode {
		return ErrEmptyTree
	}
	if t.find(t.root, key) == NoNode {
		return keyNotFoundError(key)
	}
	t.root = t.deleteAt(t.root, key)
	if t.root != NoNode {
		t.nodes[t.root].Parent = NoNode
	}
	if t.debug {
		t.debugCheck("Delete")
	}
	return nil
}

// deleteAt removes key from the subtree rooted at id and returns the new
// subtree root.
func (t *Tree) deleteAt(id NodeID, key int) NodeID {
	if id == NoNode {
		return NoNode
	}
	n := &t.nodes[id]
	switch {
	case key < n.Key:
		t.setLeft(id, t.deleteAt(n.Left, key))
	case key > n.Key:
		t.setRight(id, t.deleteAt(n.Right, key))
	default:
		if n.Left == NoNode {
			child := n.Right
			t.release(id)
			return child
		}
		if n.Right == NoNode {
			child := n.Left
			t.release(id)
			return child
		}
		succ := t.minNode(n.Right)
		n.Key = t.nodes[succ].Key
		t.setRight(id, t.deleteAt(n.Right, n.Key))
	}
	return id
}

// Clear discards every node. All previously returned NodeIDs become invalid
// and the generation advances.
func (t *Tree) Clear() {
	clear(t.nodes)
	t.nodes = t.nodes[:1]
	t.root = NoNode
	t.count = 0
	t.gen++
}

// Generation identifies the current arena. It changes on every Clear, after
// which NodeIDs may be handed out again.
func (t *Tree) Generation() uint32 {
	return t.gen
}

// --- Arena ---

func (t *Tree) valid(id NodeID) bool {
	return id != NoNode && int(id) < len(t.nodes) && t.nodes[id].live
}

func (t *Tree) alloc(key int) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{ID: id, Key: key, live: true})
	return id
}

// release marks id dead. The slot stays allocated until Clear.
func (t *Tree) release(id NodeID) {
	t.nodes[id] = Node{}
	t.count--
}

func (t *Tree) setLeft(parent, child NodeID) {
	t.nodes[parent].Left = child
	if child != NoNode {
		t.nodes[child].Parent = parent
	}
}

func (t *Tree) setRight(parent, child NodeID) {
	t.nodes[parent].Right = child
	if child != NoNode {
		t.nodes[child].Parent = parent
	}
}

func (t *Tree) minNode(id NodeID) NodeID {
	for t.nodes[id].Left != NoNode {
		id = t.nodes[id].Left
	}
	return id
}
