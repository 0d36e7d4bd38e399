package view

import "github.com/phanxgames/sapling"

// sprite is the on-screen state of one tree node. Its position trails the
// node's layout position while a glide is running and is set directly while
// the node is dragged.
type sprite struct {
	id   sapling.NodeID
	X, Y float64
	Fill Color

	glide   *tweenGroup
	fade    *tweenGroup
	removed bool
}

func newSprite(id sapling.NodeID, at sapling.Vec2) *sprite {
	return &sprite{id: id, X: at.X, Y: at.Y, Fill: ColorNode}
}

// hit reports whether (x, y) lies on the sprite's circle.
func (sp *sprite) hit(x, y float64) bool {
	return HitCircle{CenterX: sp.X, CenterY: sp.Y, Radius: NodeRadius}.Contains(x, y)
}

// moveTo places the sprite immediately, cancelling any glide.
func (sp *sprite) moveTo(x, y float64) {
	sp.X, sp.Y = x, y
	sp.glide = nil
}

// update advances the sprite's tweens by dt seconds and reports whether any
// is still running.
func (sp *sprite) update(dt float32) bool {
	running := false
	for _, g := range [2]**tweenGroup{&sp.glide, &sp.fade} {
		if *g == nil {
			continue
		}
		(*g).Update(dt)
		if (*g).Done {
			*g = nil
			continue
		}
		running = true
	}
	return running
}
