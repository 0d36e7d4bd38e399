package view

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticText
	syntheticKey
)

// syntheticEvent represents a single injected input event. Each one is
// consumed by one frame, in place of the real devices.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	pressed bool
	text    string
	key     ebiten.Key
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next frame's Update.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticPointer, x: x, y: y, pressed: true,
	})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticPointer, x: x, y: y, pressed: true,
	})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticPointer, x: x, y: y, pressed: false,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// InjectText queues typed characters, delivered together in one frame.
func (s *Scene) InjectText(text string) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticText, text: text})
}

// InjectKey queues a single key press.
func (s *Scene) InjectKey(key ebiten.Key) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticKey, key: key})
}

// popInjected pops one event from the inject queue and turns it into a
// frame's input. Keyboard events leave the pointer where it was. Returns
// false if the queue is empty, in which case the real devices are read.
func (s *Scene) popInjected() (frameInput, bool) {
	if len(s.injectQueue) == 0 {
		return frameInput{}, false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	in := frameInput{x: s.pointer.lastX, y: s.pointer.lastY, pressed: s.pointer.down}
	switch evt.kind {
	case syntheticPointer:
		in.x, in.y, in.pressed = evt.x, evt.y, evt.pressed
	case syntheticText:
		in.chars = []rune(evt.text)
	case syntheticKey:
		in.keys = []ebiten.Key{evt.key}
	}
	return in, true
}
