package sapling

// LayoutConfig sizes the layout. The zero value is not useful; start from
// DefaultLayoutConfig.
type LayoutConfig struct {
	// Width is the full horizontal extent. The root is centred at Width/2.
	Width float64
	// TopOffset is the y of the root.
	TopOffset float64
	// LevelHeight is the vertical distance between consecutive depths.
	LevelHeight float64
}

// DefaultLayoutConfig returns a 1300-wide layout with the root at y=30 and
// 100 pixels between levels.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{Width: 1300, TopOffset: 30, LevelHeight: 100}
}

// Layout assigns every node a position from the current tree shape,
// overwriting any MoveNode overrides.
//
// The pass is top-down from the root at x = Width/2 with a span of Width/4.
// Each child is offset from its parent by half the span, and the span halves
// at every level, so the room for a subtree at depth d is proportional to
// Width/2^(d+1) and nodes at the same depth never share an x.
func Layout(t *Tree, cfg LayoutConfig) {
	if t.root == NoNode {
		return
	}
	t.place(t.root, 0, cfg.Width/2, cfg.Width/4, &cfg)
}

func (t *Tree) place(id NodeID, depth int, x, span float64, cfg *LayoutConfig) {
	if id == NoNode {
		return
	}
	n := &t.nodes[id]
	n.X = x
	n.Y = cfg.TopOffset + float64(depth)*cfg.LevelHeight
	t.place(n.Left, depth+1, x-span/2, span/2, cfg)
	t.place(n.Right, depth+1, x+span/2, span/2, cfg)
}

// Edge connects a parent to one of its children.
type Edge struct {
	Parent, Child NodeID
}

// Edges returns every parent-child edge in pre-order. Presenters use it to
// draw connecting lines between node positions.
func (t *Tree) Edges() []Edge {
	edges := make([]Edge, 0, max(t.count-1, 0))
	for id := range t.Walk(PreOrder) {
		n := &t.nodes[id]
		if n.Left != NoNode {
			edges = append(edges, Edge{id, n.Left})
		}
		if n.Right != NoNode {
			edges = append(edges, Edge{id, n.Right})
		}
	}
	return edges
}
