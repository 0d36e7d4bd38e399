package view

import (
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/sapling"
)

const (
	glideDuration   = 0.35 // seconds
	maxFadeDuration = 150 * time.Millisecond
)

// Scene is the interactive window for one visualizer session. It implements
// ebiten.Game for the window and sapling.Presenter for the session: the
// visualizer reports notices, highlights and relayouts, and the scene turns
// them into tweens on per-node sprites.
//
// All state is touched only from Update and Draw, which ebiten calls on one
// goroutine.
type Scene struct {
	vis           *sapling.Visualizer
	sched         *sapling.FrameScheduler
	width, height int

	// Sprites keyed by node, valid for tree generation gen.
	sprites   map[sapling.NodeID]*sprite
	drawOrder []sapling.NodeID
	gen       uint32
	fadeDur   float32

	// Widgets
	field   textField
	buttons []*button
	notice  notice

	// Input state
	pointer      pointerState
	dragDeadZone float64
	charBuf      []rune
	keyBuf       []ebiten.Key

	// Automation
	injectQueue     []syntheticEvent
	runner          *ScriptRunner
	exitAfterScript bool
	screenshotQueue []capture
	shotSeq         int
	shotStamp       string

	// ScreenshotDir is the directory where screenshots are saved.
	// Defaults to "screenshots".
	ScreenshotDir string

	showFPS bool
	fps     fpsCounter
	debug   bool
}

// NewScene creates a scene for a width x height window and starts a session
// with cfg. A zero layout width selects the window width.
func NewScene(cfg sapling.Config, width, height int) *Scene {
	if cfg.Layout.Width <= 0 {
		cfg.Layout.Width = float64(width)
	}
	dwell := cfg.Dwell
	if dwell <= 0 {
		dwell = sapling.DefaultDwell
	}
	s := &Scene{
		sched:         sapling.NewFrameScheduler(),
		width:         width,
		height:        height,
		sprites:       make(map[sapling.NodeID]*sprite),
		fadeDur:       float32(min(dwell/2, maxFadeDuration).Seconds()),
		dragDeadZone:  defaultDragDeadZone,
		ScreenshotDir: "screenshots",
	}
	s.vis = sapling.New(s.sched, s, cfg)
	s.gen = s.vis.Tree().Generation()
	s.newToolbar(width, height)
	s.syncSprites(false)
	return s
}

// Visualizer returns the session the scene presents.
func (s *Scene) Visualizer() *sapling.Visualizer {
	return s.vis
}

// SetDebugMode enables or disables per-frame draw stats and diagnostics on
// stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetShowFPS toggles the FPS overlay.
func (s *Scene) SetShowFPS(show bool) {
	s.showFPS = show
}

// --- sapling.Presenter ---

// Notice opens the modal message box.
func (s *Scene) Notice(msg string) {
	s.notice.show(msg)
}

// Highlight fades a node's fill to or from the highlight color.
func (s *Scene) Highlight(id sapling.NodeID, on bool) {
	sp := s.sprites[id]
	if sp == nil {
		return
	}
	to := ColorNode
	if on {
		to = ColorHighlight
	}
	sp.fade = tweenColor(sp, to, s.fadeDur, ease.Linear)
}

// Relayout glides every node to its new layout position.
func (s *Scene) Relayout() {
	s.syncSprites(true)
}

// syncSprites brings the sprite set in line with the tree: new nodes appear
// at their layout position, moved nodes glide there (or jump when glide is
// false) and removed nodes are dropped. A Clear invalidates every sprite.
func (s *Scene) syncSprites(glide bool) {
	tree := s.vis.Tree()
	if g := tree.Generation(); g != s.gen {
		for id, sp := range s.sprites {
			sp.removed = true
			delete(s.sprites, id)
		}
		s.gen = g
	}

	s.drawOrder = s.drawOrder[:0]
	for id := range tree.Walk(sapling.PreOrder) {
		s.drawOrder = append(s.drawOrder, id)
		n, _ := tree.Node(id)
		sp := s.sprites[id]
		if sp == nil {
			sp = newSprite(id, sapling.Vec2{X: n.X, Y: n.Y})
			if n.State == sapling.StateHighlighted {
				sp.Fill = ColorHighlight
			}
			s.sprites[id] = sp
			continue
		}
		switch {
		case sp.X == n.X && sp.Y == n.Y:
			sp.glide = nil
		case glide:
			sp.glide = tweenPosition(sp, n.X, n.Y, glideDuration, ease.OutQuad)
		default:
			sp.moveTo(n.X, n.Y)
		}
	}

	for id, sp := range s.sprites {
		if _, ok := tree.Node(id); !ok {
			sp.removed = true
			delete(s.sprites, id)
		}
	}
}

// --- ebiten.Game ---

// Update runs the script, reads one frame of input (injected events take
// precedence over the real devices), advances the session clock and steps
// every tween.
func (s *Scene) Update() error {
	if s.runner != nil {
		if s.exitAfterScript && s.runner.Done() && len(s.screenshotQueue) == 0 && !s.vis.Busy() {
			return ebiten.Termination
		}
		s.runner.step(s)
	}
	in, ok := s.popInjected()
	if !ok {
		in = s.readInput()
	}
	s.tick(time.Second/time.Duration(ebiten.TPS()), in)
	return nil
}

// tick advances the scene by one frame of length dt with the given input.
func (s *Scene) tick(dt time.Duration, in frameInput) {
	s.processPointer(in.x, in.y, in.pressed)
	s.processKeys(in.chars, in.keys)
	s.sched.Advance(dt)

	sec := float32(dt.Seconds())
	for _, sp := range s.sprites {
		sp.update(sec)
	}
	if s.showFPS {
		s.fps.update(dt.Seconds())
	}
}

// Draw renders edges, nodes, the toolbar and any open notice, then writes
// queued screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground.toRGBA())

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	stats.edgeCount = s.drawEdges(screen)

	if s.debug {
		stats.edgeTime = time.Since(t0)
		t0 = time.Now()
	}

	stats.nodeCount = s.drawNodes(screen)

	if s.debug {
		stats.nodeTime = time.Since(t0)
		t0 = time.Now()
	}

	s.drawToolbar(screen)
	s.drawNotice(screen)
	if s.showFPS {
		s.fps.draw(screen)
	}

	if s.debug {
		stats.uiTime = time.Since(t0)
		stats.tweens = s.runningTweens()
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

// Layout reports the fixed logical screen size.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width, s.height
}

func (s *Scene) runningTweens() int {
	n := 0
	for _, sp := range s.sprites {
		if sp.glide != nil {
			n++
		}
		if sp.fade != nil {
			n++
		}
	}
	return n
}

// label returns the text drawn inside a node.
func (s *Scene) label(id sapling.NodeID) string {
	key, ok := s.vis.Tree().Key(id)
	if !ok {
		return ""
	}
	return strconv.Itoa(key)
}
