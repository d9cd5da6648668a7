package sapling

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Width  int     `yaml:"width,omitempty"`
	Height int     `yaml:"height,omitempty"`
	Button string  `yaml:"button,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	Text   string  `yaml:"text,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// testScript is the top-level structure of a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner sequences injected input and screenshots across polls of a
// HeadlessWindow. Attach it with HeadlessWindow.SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

var errNoSteps = errors.New("no steps")

// LoadTestScript parses a test script in YAML or JSON:
//
//	steps:
//	  - {action: click, x: 100, y: 200}
//	  - {action: key, key: backspace}
//	  - {action: type, text: "hello"}
//	  - {action: wait, frames: 3}
//	  - {action: screenshot, label: after-typing}
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", errNoSteps)
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "screenshot", "move", "click", "drag", "scroll", "type",
		"resize", "focus", "blur", "leave", "wait", "close":
		return nil
	case "press", "release":
		if _, ok := buttonNames[st.Button]; !ok {
			return fmt.Errorf("unknown button %q", st.Button)
		}
		return nil
	case "key":
		if _, ok := scanNames[st.Key]; !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
		return nil
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

var buttonNames = map[string]MouseButton{
	"":       MouseButtonLeft,
	"left":   MouseButtonLeft,
	"middle": MouseButtonMiddle,
	"right":  MouseButtonRight,
}

var scanNames = map[string]ScanCode{
	"backspace": ScanBackspace,
	"left":      ScanLeft,
	"right":     ScanRight,
	"up":        ScanUp,
	"down":      ScanDown,
	"delete":    ScanDelete,
	"enter":     ScanEnter,
	"ctrl":      ScanLeftCtrl,
	"rctrl":     ScanRightCtrl,
	"shift":     ScanLeftShift,
	"rshift":    ScanRightShift,
	"alt":       ScanLeftAlt,
	"ralt":      ScanRightAlt,
	"escape":    ScanEscape,
	"home":      ScanHome,
	"a":         ScanA,
	"c":         ScanC,
	"v":         ScanV,
	"x":         ScanX,
}

// SetTestRunner attaches runner to the window. The runner advances at the
// start of every Update.
func (w *HeadlessWindow) SetTestRunner(runner *TestRunner) {
	w.runner = runner
}

// Done reports whether every step has been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one poll of w.
func (r *TestRunner) step(w *HeadlessWindow) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(w.queue) > 0 {
		return
	}
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
		w.Screenshot(st.Label)
	case "move":
		w.InjectMove(st.X, st.Y)
	case "leave":
		w.InjectLeave()
	case "click":
		w.InjectClick(st.X, st.Y)
	case "press":
		w.InjectPress(st.X, st.Y, buttonNames[st.Button])
	case "release":
		w.InjectRelease(st.X, st.Y, buttonNames[st.Button])
	case "drag":
		w.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		w.InjectScroll(st.X, st.Y)
	case "key":
		w.InjectKey(scanNames[st.Key])
	case "type":
		w.InjectText(st.Text)
	case "resize":
		w.InjectResize(st.Width, st.Height)
	case "focus":
		w.InjectFocus(true)
	case "blur":
		w.InjectFocus(false)
	case "close":
		w.InjectClose()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this poll counts as one
		}
	}
}

// settle marks the runner done once every step ran and its injections
// have been applied. Called at the end of Update.
func (r *TestRunner) settle(w *HeadlessWindow) {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(w.queue) == 0 {
		r.done = true
	}
}
