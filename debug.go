package sapling

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// debugMaxTreeDepth is the height beyond which sibling offsets drop below a
// pixel at the default layout width.
const debugMaxTreeDepth = 10

// SetDebugMode enables or disables debug checks. When enabled, every Insert
// and Delete validates the tree and panics on a violated invariant, and a
// warning is logged when the tree grows deeper than the layout can resolve.
// A nil logger disables the warnings.
func (t *Tree) SetDebugMode(enabled bool, logger *slog.Logger) {
	t.debug = enabled
	t.logger = logger
}

// debugCheck panics with a descriptive message if the tree is corrupt. Only
// called in debug mode; release mode skips it entirely.
func (t *Tree) debugCheck(op string) {
	if err := t.Validate(); err != nil {
		panic(fmt.Sprintf("sapling debug: %s left the tree invalid: %v", op, err))
	}
	if h := t.Height(); h > debugMaxTreeDepth && t.logger != nil {
		t.logger.Warn("tree deeper than layout resolution",
			"op", op, "height", h, "threshold", debugMaxTreeDepth)
	}
}

// Validate checks the structural invariants: the BST ordering (which also
// implies unique keys), parent links that mirror child links, a root without
// a parent, and a live-node count that matches the reachable nodes.
func (t *Tree) Validate() error {
	if t.root == NoNode {
		if t.count != 0 {
			return errors.Newf("empty tree reports %d nodes", t.count)
		}
		return nil
	}
	if !t.valid(t.root) {
		return errors.Newf("root %d is not a live node", t.root)
	}
	if p := t.nodes[t.root].Parent; p != NoNode {
		return errors.Newf("root %d has parent %d", t.root, p)
	}
	seen := 0
	if err := t.validate(t.root, nil, nil, &seen); err != nil {
		return err
	}
	if seen != t.count {
		return errors.Newf("reachable nodes = %d, count = %d", seen, t.count)
	}
	return nil
}

// validate checks the subtree at id against the open bounds (lo, hi); a nil
// bound is unbounded.
func (t *Tree) validate(id NodeID, lo, hi *int, seen *int) error {
	if id == NoNode {
		return nil
	}
	if !t.valid(id) {
		return errors.Newf("node %d is not live", id)
	}
	*seen++
	n := &t.nodes[id]
	if lo != nil && n.Key <= *lo {
		return errors.Newf("key %d at node %d is not greater than %d", n.Key, id, *lo)
	}
	if hi != nil && n.Key >= *hi {
		return errors.Newf("key %d at node %d is not less than %d", n.Key, id, *hi)
	}
	for _, child := range [2]NodeID{n.Left, n.Right} {
		if child != NoNode && t.valid(child) && t.nodes[child].Parent != id {
			return errors.Newf("node %d has parent %d, want %d", child, t.nodes[child].Parent, id)
		}
	}
	key := n.Key
	if err := t.validate(n.Left, lo, &key, seen); err != nil {
		return err
	}
	return t.validate(n.Right, &key, hi, seen)
}
