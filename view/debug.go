package view

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	edgeTime  time.Duration
	nodeTime  time.Duration
	uiTime    time.Duration
	nodeCount int
	edgeCount int
	tweens    int
}

// debugLog prints timing and draw stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.edgeTime + stats.nodeTime + stats.uiTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[sapling] edges: %v | nodes: %v | ui: %v | total: %v\n",
		stats.edgeTime, stats.nodeTime, stats.uiTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[sapling] nodes: %d | edges: %d | running tweens: %d | phase: %v\n",
		stats.nodeCount, stats.edgeCount, stats.tweens, s.vis.Phase())
}

// debugf prints a one-line diagnostic to stderr in debug mode.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[sapling] "+format+"\n", args...)
}

// warnf prints a one-line warning to stderr regardless of debug mode.
func (s *Scene) warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[sapling] "+format+"\n", args...)
}
