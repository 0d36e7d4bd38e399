package view

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenGroup animates up to 4 float64 fields on a sprite simultaneously.
// Create one via tweenPosition or tweenColor and call Update(dt) each frame.
// If the target sprite has been removed from the scene the group stops
// immediately.
type tweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *sprite
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target sprite has been removed, Done is set to true and no
// writes occur.
func (g *tweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.removed {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// tweenPosition creates a tweenGroup that glides a sprite to (toX, toY) over
// the specified duration using the easing function.
func tweenPosition(sp *sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *tweenGroup {
	g := &tweenGroup{count: 2, target: sp}
	g.tweens[0] = gween.New(float32(sp.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(sp.Y), float32(toY), duration, fn)
	g.fields[0] = &sp.X
	g.fields[1] = &sp.Y
	return g
}

// tweenColor creates a tweenGroup that animates all four components of a
// sprite's fill to the target color over the specified duration.
func tweenColor(sp *sprite, to Color, duration float32, fn ease.TweenFunc) *tweenGroup {
	g := &tweenGroup{count: 4, target: sp}
	g.tweens[0] = gween.New(float32(sp.Fill.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(sp.Fill.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(sp.Fill.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(sp.Fill.A), float32(to.A), duration, fn)
	g.fields[0] = &sp.Fill.R
	g.fields[1] = &sp.Fill.G
	g.fields[2] = &sp.Fill.B
	g.fields[3] = &sp.Fill.A
	return g
}
