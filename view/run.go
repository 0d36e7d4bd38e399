package view

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sapling"
)

// RunConfig holds window and tooling settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	Debug         bool
	// ScreenshotDir overrides the default "screenshots" directory.
	ScreenshotDir string
	// Script is the path of a JSON script to play back. See ScriptRunner.
	Script string
	// ExitAfterScript closes the window once the script has finished and
	// every animation has settled.
	ExitAfterScript bool
}

// DefaultRunConfig returns a 1300x700 window.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:  "Sapling: Binary Search Tree Visualizer",
		Width:  1300,
		Height: 700,
	}
}

// Run opens a window presenting a new session and blocks until it is closed.
// The layout width follows the window width.
func Run(cfg sapling.Config, rc RunConfig) error {
	def := DefaultRunConfig()
	if rc.Width <= 0 {
		rc.Width = def.Width
	}
	if rc.Height <= 0 {
		rc.Height = def.Height
	}
	if rc.Title == "" {
		rc.Title = def.Title
	}

	var runner *ScriptRunner
	if rc.Script != "" {
		data, err := os.ReadFile(rc.Script)
		if err != nil {
			return errors.Wrap(err, "read script")
		}
		if runner, err = LoadScript(data); err != nil {
			return errors.Wrapf(err, "%s", rc.Script)
		}
	}

	cfg.Layout.Width = float64(rc.Width)
	s := NewScene(cfg, rc.Width, rc.Height)
	s.SetDebugMode(rc.Debug)
	s.SetShowFPS(rc.ShowFPS)
	if rc.ScreenshotDir != "" {
		s.ScreenshotDir = rc.ScreenshotDir
	}
	if runner != nil {
		s.SetScript(runner)
		s.exitAfterScript = rc.ExitAfterScript
	}

	ebiten.SetWindowTitle(rc.Title)
	ebiten.SetWindowSize(rc.Width, rc.Height)
	if err := ebiten.RunGame(s); err != nil {
		return errors.Wrap(err, "run window")
	}
	return nil
}
