package sapling

import (
	"fmt"
	"strings"
)

// String renders the tree one node per line, root first. Children are
// indented two spaces per level and prefixed with L or R. Intended for small
// trees (REPL output and tests).
//
//	40
//	  L 20
//	    L 10
//	  R 60
func (t *Tree) String() string {
	if t == nil || t.root == NoNode {
		return "(empty)"
	}
	var b strings.Builder
	t.print(&b, t.root, "", 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func (t *Tree) print(b *strings.Builder, id NodeID, side string, depth int) {
	if id == NoNode {
		return
	}
	n := &t.nodes[id]
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(side)
	fmt.Fprintf(b, "%d\n", n.Key)
	t.print(b, n.Left, "L ", depth+1)
	t.print(b, n.Right, "R ", depth+1)
}
