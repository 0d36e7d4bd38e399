package view

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/phanxgames/sapling"
)

// maxFieldLen bounds the text field; longer keys do not fit a node anyway.
const maxFieldLen = 9

// button is a toolbar button. Its action receives the text field contents.
type button struct {
	label   string
	rect    HitRect
	pressed bool
	action  func(input string) error
	// consumes marks buttons whose action reads the field.
	consumes bool
}

// textField is a single-line numeric input.
type textField struct {
	rect    HitRect
	text    string
	focused bool
}

// typeRune appends r if it can be part of an integer key.
func (f *textField) typeRune(r rune) {
	if len(f.text) >= maxFieldLen {
		return
	}
	if (r >= '0' && r <= '9') || r == '-' {
		f.text += string(r)
	}
}

func (f *textField) backspace() {
	if f.text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.text)
	f.text = f.text[:len(f.text)-size]
}

// notice is a modal message box. While visible it captures the pointer.
type notice struct {
	msg     string
	visible bool
}

func (n *notice) show(msg string) {
	n.msg = msg
	n.visible = true
}

func (n *notice) dismiss() {
	n.visible = false
}

// newToolbar lays out the text field and buttons along the bottom edge of a
// width x height window.
func (s *Scene) newToolbar(width, height int) {
	y := float64(height) - toolbarHeight + (toolbarHeight-widgetHeight)/2
	s.field = textField{
		rect:    HitRect{X: toolbarPad, Y: y, Width: fieldWidth, Height: widgetHeight},
		focused: true,
	}

	v := s.vis
	traverse := func(o sapling.Order) func(string) error {
		return func(string) error { return v.Traverse(o) }
	}
	specs := []struct {
		label    string
		action   func(string) error
		consumes bool
	}{
		{"Insert", v.Insert, true},
		{"Delete", v.Delete, true},
		{"Search", v.Search, true},
		{"In-order", traverse(sapling.InOrder), false},
		{"Pre-order", traverse(sapling.PreOrder), false},
		{"Post-order", traverse(sapling.PostOrder), false},
		{"Level-order", traverse(sapling.LevelOrder), false},
		{"Clear", func(string) error { return v.Clear() }, false},
		{"Reset", func(string) error { return v.Reset() }, false},
	}

	x := toolbarPad + fieldWidth + toolbarPad
	s.buttons = s.buttons[:0]
	for _, sp := range specs {
		s.buttons = append(s.buttons, &button{
			label:    sp.label,
			rect:     HitRect{X: x, Y: y, Width: buttonWidth, Height: widgetHeight},
			action:   sp.action,
			consumes: sp.consumes,
		})
		x += buttonWidth + buttonGap
	}
}

// buttonByLabel returns the toolbar button with the given label, or nil.
func (s *Scene) buttonByLabel(label string) *button {
	for _, b := range s.buttons {
		if b.label == label {
			return b
		}
	}
	return nil
}

// press runs a button's action. Insert, Delete and Search empty the field
// once they have read it, whether or not the operation succeeds. A rejection
// while busy never reads the field, so the text is kept for a retry.
func (s *Scene) press(b *button) {
	input := s.field.text
	err := b.action(input)
	if b.consumes && !errors.Is(err, sapling.ErrBusy) {
		s.field.text = ""
	}
	if err != nil {
		s.debugf("%s %q: %v", b.label, input, err)
	}
}

// submit is Enter in the text field: an insert.
func (s *Scene) submit() {
	if b := s.buttonByLabel("Insert"); b != nil {
		s.press(b)
	}
}
