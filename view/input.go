package view

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/sapling"
)

const defaultDragDeadZone = 4.0 // pixels

// --- Hit shapes ---

// HitRect is an axis-aligned rectangular hit area in screen coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r HitRect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// HitCircle is a circular hit area in screen coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-frame input ---

// frameInput is everything the scene reads from the user in one frame. It is
// filled either from the real devices or from the inject queue.
type frameInput struct {
	x, y    float64
	pressed bool
	chars   []rune
	keys    []ebiten.Key // keys that went down this frame
}

// readInput samples the mouse and keyboard.
func (s *Scene) readInput() frameInput {
	mx, my := ebiten.CursorPosition()
	in := frameInput{
		x:       float64(mx),
		y:       float64(my),
		pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	s.charBuf = ebiten.AppendInputChars(s.charBuf[:0])
	s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
	in.chars = s.charBuf
	in.keys = s.keyBuf
	return in
}

// --- Pointer state machine ---

type targetKind uint8

const (
	targetNone targetKind = iota
	targetNode
	targetButton
	targetField
	targetNotice
)

// target is what a pointer press landed on.
type target struct {
	kind   targetKind
	node   sapling.NodeID
	button *button
}

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hit      target
	grabDX   float64 // pointer offset from the node centre at press time
	grabDY   float64
	dragging bool
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// hitTest finds what lies under (x, y). An open notice captures every press.
// Nodes are tested topmost first, in reverse draw order.
func (s *Scene) hitTest(x, y float64) target {
	if s.notice.visible {
		return target{kind: targetNotice}
	}
	for _, b := range s.buttons {
		if b.rect.Contains(x, y) {
			return target{kind: targetButton, button: b}
		}
	}
	if s.field.rect.Contains(x, y) {
		return target{kind: targetField}
	}
	for i := len(s.drawOrder) - 1; i >= 0; i-- {
		id := s.drawOrder[i]
		if sp := s.sprites[id]; sp != nil && sp.hit(x, y) {
			return target{kind: targetNode, node: id}
		}
	}
	return target{}
}

// processPointer runs the pointer state machine for the mouse.
func (s *Scene) processPointer(x, y float64, pressed bool) {
	ps := &s.pointer

	switch {
	case pressed && !ps.down:
		// Just pressed.
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.hit = s.hitTest(x, y)
		ps.dragging = false
		if ps.hit.kind == targetNode {
			sp := s.sprites[ps.hit.node]
			ps.grabDX, ps.grabDY = x-sp.X, y-sp.Y
		}
		if ps.hit.kind == targetButton {
			ps.hit.button.pressed = true
		}

	case !pressed && ps.down:
		// Just released.
		if ps.dragging {
			s.dragNode(ps.hit.node, x, y)
		} else if s.hitTest(x, y) == ps.hit {
			s.click(ps.hit)
		}
		if ps.hit.button != nil {
			ps.hit.button.pressed = false
		}
		ps.down = false
		ps.hit = target{}
		ps.dragging = false
		ps.lastX, ps.lastY = x, y

	case pressed && ps.down:
		// Held down, possibly moved.
		if x != ps.lastX || y != ps.lastY {
			if !ps.dragging && ps.hit.kind == targetNode {
				dx := x - ps.startX
				dy := y - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
					ps.dragging = true
				}
			}
			if ps.dragging {
				s.dragNode(ps.hit.node, x, y)
			}
		}
		ps.lastX, ps.lastY = x, y

	default:
		// Hover.
		ps.lastX, ps.lastY = x, y
	}
}

// dragNode moves a node so that it keeps its offset from the pointer. Edges
// follow because they are drawn from sprite positions.
func (s *Scene) dragNode(id sapling.NodeID, x, y float64) {
	sp := s.sprites[id]
	if sp == nil {
		return
	}
	nx, ny := x-s.pointer.grabDX, y-s.pointer.grabDY
	if !s.vis.Drag(id, nx, ny) {
		return
	}
	sp.moveTo(nx, ny)
}

// click handles a press and release over the same target.
func (s *Scene) click(t target) {
	switch t.kind {
	case targetNotice:
		s.notice.dismiss()
	case targetButton:
		s.press(t.button)
	case targetField:
		s.field.focused = true
	case targetNone:
		s.field.focused = false
	}
}

// --- Keyboard ---

// processKeys feeds typed characters to the text field and handles the
// editing and confirmation keys.
func (s *Scene) processKeys(chars []rune, keys []ebiten.Key) {
	for _, k := range keys {
		switch k {
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			if s.notice.visible {
				s.notice.dismiss()
				continue
			}
			s.submit()
		case ebiten.KeyEscape:
			s.notice.dismiss()
		case ebiten.KeyBackspace:
			if !s.notice.visible {
				s.field.backspace()
			}
		}
	}
	if s.notice.visible || !s.field.focused {
		return
	}
	for _, r := range chars {
		s.field.typeRune(r)
	}
}
