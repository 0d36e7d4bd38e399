package view

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sapling"
)

// capture is a queued screenshot and the session state it was requested in.
// The state goes into the file name, so a scripted run leaves frames that
// say which tree and which highlight step they show.
type capture struct {
	label string
	gen   uint32
	size  int
	phase sapling.Phase
	step  int // -1 unless a highlight sequence is running
}

// filename is <seq>_<label>_g<gen>_n<size>_<phase>[-<step>].png.
func (c capture) filename(seq int) string {
	phase := c.phase.String()
	if c.step >= 0 {
		phase = fmt.Sprintf("%s-%d", phase, c.step)
	}
	return fmt.Sprintf("%03d_%s_g%d_n%d_%s.png", seq, sanitizeLabel(c.label), c.gen, c.size, phase)
}

// Screenshot queues a capture of the next drawn frame, tagged with the
// current tree generation, size and sequencer position.
func (s *Scene) Screenshot(label string) {
	tree := s.vis.Tree()
	s.screenshotQueue = append(s.screenshotQueue, capture{
		label: label,
		gen:   tree.Generation(),
		size:  tree.Len(),
		phase: s.vis.Phase(),
		step:  s.vis.Step(),
	})
}

// flushScreenshots writes every queued capture of screen. Files go to a
// per-run directory under ScreenshotDir named after the first capture time.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if s.shotStamp == "" {
		s.shotStamp = time.Now().Format("20060102_150405")
	}
	dir := filepath.Join(s.ScreenshotDir, s.shotStamp)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.warnf("screenshot: %v", errors.Wrapf(err, "mkdir %s", dir))
		return
	}

	img := frameImage(screen)
	for _, c := range s.screenshotQueue {
		s.shotSeq++
		path := filepath.Join(dir, c.filename(s.shotSeq))
		if err := writePNG(path, img); err != nil {
			s.warnf("screenshot: %v", err)
			continue
		}
		s.debugf("screenshot %s", path)
	}
}

// frameImage copies the frame out of the GPU. ReadPixels yields
// premultiplied RGBA, which is image.RGBA's own layout.
func frameImage(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

// sanitizeLabel keeps letters, digits, '-' and '.', maps everything else to
// '_', and names an empty label "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
