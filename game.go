package adscene

import "time"

// Game holds the state shared by every scene: global objects that travel
// between scenes, the default scene viewport, the camera's main object, the
// global draw offset and the game clock.
type Game struct {
	// ScreenWidth and ScreenHeight are the full-screen viewport used when
	// neither the scene nor the game defines one.
	ScreenWidth, ScreenHeight int

	// SceneViewport is the default viewport for scenes without their own.
	SceneViewport *Rect

	// MainObject is the object auto-scroll tracks, usually the player actor.
	MainObject Movable

	// Events receives path completion events. May be nil.
	Events EventSink

	// Metrics records planner activity. May be nil.
	Metrics *PlannerMetrics

	objects   []Movable
	viewports []*Rect
	offsetX   int
	offsetY   int
	elapsed   time.Duration
}

// NewGame creates a game with the given screen size.
func NewGame(screenWidth, screenHeight int) *Game {
	return &Game{ScreenWidth: screenWidth, ScreenHeight: screenHeight}
}

// AddObject registers a global object, drawn and updated in every scene.
func (g *Game) AddObject(obj Movable) {
	g.objects = append(g.objects, obj)
}

// RemoveObject unregisters a global object. No-op if absent.
func (g *Game) RemoveObject(obj Movable) {
	g.objects = removeMovable(g.objects, obj)
	if g.MainObject == obj {
		g.MainObject = nil
	}
}

// Objects returns the global objects. The returned slice MUST NOT be mutated.
func (g *Game) Objects() []Movable {
	return g.objects
}

// PushViewport makes r the active viewport until the matching PopViewport.
func (g *Game) PushViewport(r *Rect) {
	g.viewports = append(g.viewports, r)
}

// PopViewport restores the previously active viewport.
func (g *Game) PopViewport() {
	if len(g.viewports) == 0 {
		panic("adscene: viewport stack underflow")
	}
	g.viewports[len(g.viewports)-1] = nil
	g.viewports = g.viewports[:len(g.viewports)-1]
}

// ActiveViewport returns the innermost pushed viewport, or the full screen.
func (g *Game) ActiveViewport() Rect {
	if n := len(g.viewports); n > 0 {
		return *g.viewports[n-1]
	}
	return Rect{Width: g.ScreenWidth, Height: g.ScreenHeight}
}

// SetOffset sets the global draw offset.
func (g *Game) SetOffset(x, y int) {
	g.offsetX, g.offsetY = x, y
}

// Offset returns the global draw offset.
func (g *Game) Offset() (x, y int) {
	return g.offsetX, g.offsetY
}

// Elapsed returns the game clock, advanced by Advance.
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

// Advance moves the game clock forward by dt.
func (g *Game) Advance(dt time.Duration) {
	g.elapsed += dt
}

func removeMovable(list []Movable, obj Movable) []Movable {
	for i, o := range list {
		if o == obj {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}
