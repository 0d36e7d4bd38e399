package view

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const lineSpacing = 16

var labelFace = text.NewGoXFace(basicfont.Face7x13)

// drawText draws s with its anchor at (x, y). align controls the horizontal
// anchor; the text is always vertically centred.
func drawText(dst *ebiten.Image, s string, x, y float64, align text.Align, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = lineSpacing
	text.Draw(dst, s, labelFace, op)
}

func fillRect(dst *ebiten.Image, r HitRect, c Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.toRGBA(), false)
}

func strokeRect(dst *ebiten.Image, r HitRect, c Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, c.toRGBA(), false)
}

// drawEdges draws a line from every parent to each child, between their
// sprites' current positions. Returns the number of edges drawn.
func (s *Scene) drawEdges(screen *ebiten.Image) int {
	ink := ColorInk.toRGBA()
	n := 0
	for _, e := range s.vis.Tree().Edges() {
		p, c := s.sprites[e.Parent], s.sprites[e.Child]
		if p == nil || c == nil {
			continue
		}
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(c.X), float32(c.Y), edgeWidth, ink, true)
		n++
	}
	return n
}

// drawNodes draws each node as an outlined circle with its key. Returns the
// number of nodes drawn.
func (s *Scene) drawNodes(screen *ebiten.Image) int {
	ink := ColorInk.toRGBA()
	n := 0
	for _, id := range s.drawOrder {
		sp := s.sprites[id]
		if sp == nil {
			continue
		}
		x, y := float32(sp.X), float32(sp.Y)
		vector.DrawFilledCircle(screen, x, y, NodeRadius, sp.Fill.toRGBA(), true)
		vector.StrokeCircle(screen, x, y, NodeRadius, strokeWidth, ink, true)
		drawText(screen, s.label(id), sp.X, sp.Y, text.AlignCenter, ColorInk)
		n++
	}
	return n
}

func (s *Scene) drawToolbar(screen *ebiten.Image) {
	bar := HitRect{X: 0, Y: float64(s.height) - toolbarHeight, Width: float64(s.width), Height: toolbarHeight}
	fillRect(screen, bar, ColorToolbar)

	f := s.field
	fillRect(screen, f.rect, ColorBackground)
	strokeRect(screen, f.rect, ColorInk)
	content := f.text
	if f.focused && !s.notice.visible {
		content += "_"
	}
	_, cy := f.rect.Center()
	drawText(screen, content, f.rect.X+6, cy, text.AlignStart, ColorInk)

	busy := s.vis.Busy()
	for _, b := range s.buttons {
		fill := ColorButton
		if b.pressed {
			fill = ColorButtonDown
		}
		fillRect(screen, b.rect, fill)
		strokeRect(screen, b.rect, ColorInk)
		ink := ColorInk
		if busy {
			ink.A = 0.4
		}
		x, y := b.rect.Center()
		drawText(screen, b.label, x, y, text.AlignCenter, ink)
	}
}

func (s *Scene) drawNotice(screen *ebiten.Image) {
	if !s.notice.visible {
		return
	}
	fillRect(screen, HitRect{Width: float64(s.width), Height: float64(s.height)}, ColorOverlay)

	w := min(noticeWidth, float64(s.width)-20)
	lines := wrapText(s.notice.msg, int((w-40)/float64(basicCharWidth)))
	h := max(noticeHeight, float64(len(lines)*lineSpacing)+70)
	box := HitRect{X: (float64(s.width) - w) / 2, Y: (float64(s.height) - h) / 2, Width: w, Height: h}
	fillRect(screen, box, ColorBackground)
	strokeRect(screen, box, ColorInk)

	cx, cy := box.Center()
	drawText(screen, strings.Join(lines, "\n"), cx, cy-10, text.AlignCenter, ColorInk)
	drawText(screen, "Click or press Enter to close", cx, box.Y+box.Height-18, text.AlignCenter, Color{0.4, 0.4, 0.4, 1})
}

// basicCharWidth is the advance of every glyph in basicfont.Face7x13.
const basicCharWidth = 7

// wrapText breaks msg at spaces into lines of at most width characters. A
// single word longer than width gets a line of its own.
func wrapText(msg string, width int) []string {
	width = max(width, 1)
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(msg) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 || len(lines) == 0 {
		lines = append(lines, line.String())
	}
	return lines
}
