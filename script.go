package adscene

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep represents a single action in a scene script.
type scriptStep struct {
	Action string `json:"action"`
	Object string `json:"object,omitempty"`
	Target string `json:"target,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Frames int    `json:"frames,omitempty"`
	Millis int    `json:"ms,omitempty"`
}

// sceneScript is the top-level JSON structure for a scene script.
type sceneScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays a sequence of scene actions across frames, for demos and
// automated walk-through tests. Attach to a Scene via SetScript.
//
// Actions:
//
//	walk        object, x, y   send an actor to (x, y)
//	waitIdle    object         wait until the actor stops walking
//	wait        frames         wait a number of updates
//	scroll      x, y           ScrollTo
//	skip        x, y           SkipTo
//	activate    target         enable a waypoint group or main-layer region
//	deactivate  target         disable a waypoint group or main-layer region
//	fadeOut     ms             fade the screen out
//	fadeIn      ms             fade the screen in
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	waitActor *Actor
	done      bool
	err       error
}

// LoadScript parses a JSON scene script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script sceneScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scene script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scene script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Err returns the first step that could not be executed, or nil. The runner
// stops at that step.
func (r *ScriptRunner) Err() error {
	return r.err
}

// step advances the runner by one frame. Called from Scene.UpdateDelta.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitActor != nil {
		if r.waitActor.State() != ActorIdle {
			return
		}
		r.waitActor = nil
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

	if err := r.exec(s, st); err != nil {
		r.err = fmt.Errorf("script step %d (%s): %w", r.cursor-1, st.Action, err)
		diagf("%v", r.err)
		r.done = true
		return
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.waitActor == nil {
		r.done = true
	}
}

func (r *ScriptRunner) exec(s *Scene, st scriptStep) error {
	switch st.Action {
	case "walk":
		a, err := scriptActor(s, st.Object)
		if err != nil {
			return err
		}
		a.GoTo(st.X, st.Y)
	case "waitIdle":
		a, err := scriptActor(s, st.Object)
		if err != nil {
			return err
		}
		r.waitActor = a
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "scroll":
		s.ScrollTo(st.X, st.Y)
	case "skip":
		s.SkipTo(st.X, st.Y)
	case "activate", "deactivate":
		return setActive(s, st.Target, st.Action == "activate")
	case "fadeOut":
		s.fader.FadeOut(time.Duration(st.Millis) * time.Millisecond)
	case "fadeIn":
		s.fader.FadeIn(time.Duration(st.Millis) * time.Millisecond)
	default:
		return fmt.Errorf("unknown action")
	}
	return nil
}

func scriptActor(s *Scene, name string) (*Actor, error) {
	a, ok := s.Object(name).(*Actor)
	if !ok {
		return nil, fmt.Errorf("no actor %q", name)
	}
	return a, nil
}

func setActive(s *Scene, name string, active bool) error {
	if g := s.WaypointGroup(name); g != nil {
		g.Active = active
		return nil
	}
	if s.mainLayer != nil {
		if r := s.mainLayer.Region(name); r != nil {
			r.Active = active
			return nil
		}
	}
	return fmt.Errorf("no waypoint group or region %q", name)
}
