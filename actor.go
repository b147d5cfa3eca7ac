package adscene

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ActorState is the walking state of an Actor.
type ActorState int

const (
	// ActorIdle stands still.
	ActorIdle ActorState = iota
	// ActorSearching waits for the planner to accept its path request.
	ActorSearching
	// ActorWaiting waits for the planner to finish its path.
	ActorWaiting
	// ActorFollowing walks along a solved path.
	ActorFollowing
)

func (s ActorState) String() string {
	switch s {
	case ActorIdle:
		return "idle"
	case ActorSearching:
		return "searching"
	case ActorWaiting:
		return "waiting"
	case ActorFollowing:
		return "following"
	}
	return "unknown"
}

// Actor is a movable object that walks to a target through the scene's path
// planner. It may carry an exclusion region and "walk around me" waypoints
// that follow it, scaled with the depth curve.
type Actor struct {
	ActorName string
	// W and H are the actor's visual size at 100% scale.
	W, H int
	// Speed is the walking speed in pixels per update at 100% scale.
	Speed float64
	// Zoomable actors are scaled by the scene's depth curve and region zoom.
	Zoomable bool
	Color    Color
	Disabled bool
	// Flag3D marks the actor as depth-projected.
	Flag3D bool
	// Stick anchors the actor to a region's content pass. May be nil.
	Stick *Region

	// BlockTemplate is mimicked at the actor's position into its block
	// region every update. May be nil.
	BlockTemplate *Region
	// WaypointTemplate is mimicked at the actor's position into its waypoint
	// group every update. May be nil.
	WaypointTemplate *WaypointGroup

	scene *Scene

	x, y   float64
	state  ActorState
	path   *Path
	target Point

	blockRegion *Region
	wptGroup    *WaypointGroup
}

// NewActor creates an idle, zoomable actor at (x, y).
func NewActor(name string, x, y int) *Actor {
	return &Actor{
		ActorName: name,
		W:         20,
		H:         60,
		Speed:     2,
		Zoomable:  true,
		Color:     ColorWhite,
		x:         float64(x),
		y:         float64(y),
		path:      NewPath(),
	}
}

// Name returns the actor's name.
func (a *Actor) Name() string { return a.ActorName }

// Active reports whether the actor is enabled.
func (a *Actor) Active() bool { return !a.Disabled }

// Is3D reports whether the actor is depth-projected.
func (a *Actor) Is3D() bool { return a.Flag3D }

// Height returns the visual height at 100% scale.
func (a *Actor) Height() int { return a.H }

// StickRegion returns the region the actor is drawn with, or nil.
func (a *Actor) StickRegion() *Region { return a.Stick }

// BlockRegion returns the exclusion region placed at the actor's position,
// or nil without a BlockTemplate.
func (a *Actor) BlockRegion() *Region { return a.blockRegion }

// WaypointGroup returns the waypoints placed around the actor, or nil
// without a WaypointTemplate.
func (a *Actor) WaypointGroup() *WaypointGroup { return a.wptGroup }

// Position returns the actor's feet position rounded to whole pixels.
func (a *Actor) Position() Point {
	return Point{X: int(math.Round(a.x)), Y: int(math.Round(a.y))}
}

// SetPosition teleports the actor and stops any walk.
func (a *Actor) SetPosition(x, y int) {
	a.x, a.y = float64(x), float64(y)
	a.state = ActorIdle
	a.updateBlockRegion()
}

// State returns the walking state.
func (a *Actor) State() ActorState { return a.state }

// Path returns the path the actor is following or waiting for.
func (a *Actor) Path() *Path { return a.path }

// Target returns the corrected walk target.
func (a *Actor) Target() Point { return a.target }

// Scene returns the scene the actor was added to, or nil.
func (a *Actor) Scene() *Scene { return a.scene }

// GoTo starts walking to (x, y). The target is first moved onto walkable
// ground. Repeating the current target while following is a no-op. Does
// nothing until the actor is added to a scene.
func (a *Actor) GoTo(x, y int) {
	if a.scene == nil {
		return
	}
	if a.state == ActorFollowing && x == a.target.X && y == a.target.Y {
		return
	}
	if a.state != ActorWaiting {
		a.path.Reset()
	} else {
		// The planner still writes into the old path; take a fresh one.
		a.path = NewPath()
	}
	p := a.Position()
	a.target.X, a.target.Y = a.scene.CorrectTargetPoint(p.X, p.Y, x, y, true, a)
	a.state = ActorSearching
}

// Stop abandons the current walk.
func (a *Actor) Stop() {
	if a.state == ActorWaiting {
		a.path = NewPath()
	}
	a.state = ActorIdle
}

// Update advances the walk state machine by one tick.
func (a *Actor) Update() {
	switch a.state {
	case ActorSearching:
		if a.scene != nil && a.scene.RequestPath(a.path, a.Position(), a.target, a) {
			a.state = ActorWaiting
		}
	case ActorWaiting:
		if a.path.Ready() {
			a.followPath()
		}
	case ActorFollowing:
		a.walk()
	}
	a.updateBlockRegion()
}

// followPath starts walking a solved path, or goes idle if it is empty.
// Leading points at the actor's position are skipped. The first point
// differs from it when the planner moved a blocked start onto free ground.
func (a *Actor) followPath() {
	pos := a.Position()
	pt, ok := a.path.First()
	for ok && pt == pos {
		pt, ok = a.path.Next()
	}
	if !ok {
		a.state = ActorIdle
		return
	}
	a.state = ActorFollowing
}

// walk moves toward the current path point, advancing to the next point on
// arrival.
func (a *Actor) walk() {
	step := a.Speed * a.scale() / 100
	for step > 0 {
		next, ok := a.path.Current()
		if !ok {
			a.state = ActorIdle
			return
		}
		dx := float64(next.X) - a.x
		dy := float64(next.Y) - a.y
		d := math.Hypot(dx, dy)
		if d > step {
			a.x += dx / d * step
			a.y += dy / d * step
			return
		}
		a.x, a.y = float64(next.X), float64(next.Y)
		step -= d
		if _, ok := a.path.Next(); !ok {
			a.state = ActorIdle
			return
		}
	}
}

// scale returns the actor's current depth scale in percent.
func (a *Actor) scale() float64 {
	if !a.Zoomable || a.scene == nil {
		return DefaultScale
	}
	p := a.Position()
	return a.scene.ZoomAt(p.X, p.Y)
}

// updateBlockRegion moves the exclusion region and waypoint markers to the
// actor's position, scaled by the depth curve when zoomable.
func (a *Actor) updateBlockRegion() {
	scale := DefaultScale
	p := a.Position()
	if a.Zoomable && a.scene != nil {
		scale = a.scene.ScaleAt(p.Y)
	}
	if a.BlockTemplate != nil {
		if a.blockRegion == nil {
			a.blockRegion = NewRegion(a.ActorName+" block", nil)
			a.blockRegion.Blocked = true
		}
		a.blockRegion.Mimic(a.BlockTemplate, scale, p.X, p.Y)
	}
	if a.WaypointTemplate != nil {
		if a.wptGroup == nil {
			a.wptGroup = NewWaypointGroup(a.ActorName+" waypoints", nil)
		}
		a.wptGroup.Mimic(a.WaypointTemplate, scale, p.X, p.Y)
	}
}

// Display draws the actor as a rectangle standing on its position, scaled
// and tinted by the region under its feet.
func (a *Actor) Display(f *Frame) {
	if f.Target == nil {
		return
	}
	scale := a.scale() / 100
	w := float32(float64(a.W) * scale)
	h := float32(float64(a.H) * scale)
	p := a.Position()
	x, y := f.ScreenPos(p.X, p.Y)

	c := a.Color
	if a.scene != nil {
		c.A *= float64(a.scene.AlphaAt(p.X, p.Y, false)>>24) / 255
	}
	vector.DrawFilledRect(f.Target, x-w/2, y-h, w, h, c.NRGBA(), false)
}
