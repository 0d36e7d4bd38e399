package view

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"in-order → done", "in-order___done"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := newTestScene(t)
	s.Screenshot("a")
	s.Screenshot("b")
	s.Screenshot("c")
	if len(s.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(s.screenshotQueue))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := s.screenshotQueue[i].label; got != want {
			t.Errorf("queue[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestScreenshotRecordsSessionState(t *testing.T) {
	s := newTestScene(t)
	s.Screenshot("seed")

	clickButton(t, s, "Level-order")
	// Two dwells in: the second step is highlighted.
	for i := 0; s.vis.Step() < 1; i++ {
		if i > 120 {
			t.Fatal("traversal never reached its second step")
		}
		runFrames(s, 1)
	}
	s.Screenshot("mid traversal")

	runUntilIdle(t, s)
	s.notice.dismiss()
	clickButton(t, s, "Clear")
	s.Screenshot("cleared")

	tests := []struct {
		c    capture
		want string
	}{
		{s.screenshotQueue[0], "001_seed_g0_n6_idle.png"},
		{s.screenshotQueue[1], "002_mid_traversal_g0_n6_highlighting-1.png"},
		{s.screenshotQueue[2], "003_cleared_g1_n0_complete.png"},
	}
	for i, tt := range tests {
		if got := tt.c.filename(i + 1); got != tt.want {
			t.Errorf("filename = %q, want %q", got, tt.want)
		}
	}
}

func TestScreenshotQueueSurvivesTicks(t *testing.T) {
	s := newTestScene(t)
	s.Screenshot("before")
	runFrames(s, 3)
	if len(s.screenshotQueue) != 1 {
		t.Errorf("queue len = %d, want 1 until the next Draw", len(s.screenshotQueue))
	}
}
