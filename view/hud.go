package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// fpsCounter displays the current FPS and TPS in the top-left corner. The
// text is refreshed every ~0.5 seconds.
type fpsCounter struct {
	sinceUpdate float64
	label       string
}

func (f *fpsCounter) update(dt float64) {
	f.sinceUpdate += dt
	if f.label != "" && f.sinceUpdate < 0.5 {
		return
	}
	f.sinceUpdate = 0
	f.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (f *fpsCounter) draw(screen *ebiten.Image) {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	vector.DrawFilledRect(screen, 0, 0, 100, 32, color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrintAt(screen, f.label, 2, 0)
}
