package sapling

// Vec2 is a 2D point used for node positions. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// NodeID addresses a node in a Tree's arena. NoNode is never a live node.
type NodeID uint32

// NoNode is the absent-node sentinel used for empty child, parent and root slots.
const NoNode NodeID = 0

// DisplayState is the visual state of a node.
type DisplayState uint8

const (
	StateNormal      DisplayState = iota // drawn with the normal fill
	StateHighlighted                     // currently visited by an animation
)

// String returns the state name.
func (s DisplayState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHighlighted:
		return "highlighted"
	default:
		return "unknown"
	}
}

// Order selects a traversal order.
type Order uint8

const (
	InOrder    Order = iota // left, node, right
	PreOrder                // node, left, right
	PostOrder               // left, right, node
	LevelOrder              // breadth-first, one depth at a time
)

// String returns the human-readable name of the order, e.g. "in-order".
func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	default:
		return "unknown"
	}
}

// Orders lists every traversal order in display order.
var Orders = [...]Order{InOrder, PreOrder, PostOrder, LevelOrder}
