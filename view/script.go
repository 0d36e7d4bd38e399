package view

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Text   string  `json:"text,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure of a script file.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptKeys = map[string]ebiten.Key{
	"enter":     ebiten.KeyEnter,
	"escape":    ebiten.KeyEscape,
	"backspace": ebiten.KeyBackspace,
}

// ScriptRunner sequences injected input events and screenshots across
// frames for automated runs. Attach to a Scene via SetScript.
//
// Actions:
//
//	type        {"text": "25"}          type characters into the field
//	key         {"key": "enter"}        enter, escape or backspace
//	button      {"label": "Insert"}     click a toolbar button
//	click       {"x": 650, "y": 30}
//	drag        {"fromX", "fromY", "toX", "toY", "frames"}
//	wait        {"frames": 60}
//	screenshot  {"label": "after-insert"}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and returns a ScriptRunner ready to be
// attached to a Scene via SetScript.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	if len(sc.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "type", "button", "click", "drag", "wait", "screenshot":
		case "key":
			if _, ok := scriptKeys[strings.ToLower(st.Key)]; !ok {
				return nil, errors.Newf("parse script: step %d: unknown key %q", i, st.Key)
			}
		default:
			return nil, errors.Newf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches a ScriptRunner to the scene. The runner's step method
// is called from Scene.Update before input is processed each frame.
func (s *Scene) SetScript(runner *ScriptRunner) {
	s.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "type":
		s.InjectText(st.Text)
	case "key":
		s.InjectKey(scriptKeys[strings.ToLower(st.Key)])
	case "button":
		if b := s.buttonByLabel(st.Label); b != nil {
			s.InjectClick(b.rect.Center())
		} else {
			s.debugf("script: no button %q", st.Label)
		}
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
