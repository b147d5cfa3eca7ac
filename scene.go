package adscene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Geometry3D is the optional 3D geometry of a depth-projected scene. Scenes
// without it are 2D only: 3D entities are skipped and projections fail.
type Geometry3D interface {
	// Project maps a 3D position to scene coordinates. ok is false when the
	// position is outside the camera.
	Project(x, y, z float64) (p Point, ok bool)
}

// Scene is one adventure location: ordered layers of entities and regions,
// waypoint groups, scene-owned objects, the depth scale curve, the camera
// scroll state and the path planner.
type Scene struct {
	Name   string
	Config SceneConfig

	// Viewport overrides the game's scene viewport. May be nil.
	Viewport *Rect
	// Geometry is the optional 3D geometry. May be nil.
	Geometry Geometry3D
	// ShieldColor is drawn over everything before a close-up layer.
	// Transparent by default: the shield then only marks CloseUpActive.
	ShieldColor Color

	game           *Game
	layers         []*Layer
	mainLayer      *Layer
	waypointGroups []*WaypointGroup
	objects        []Movable
	scaleLevels    []ScaleLevel
	rotLevels      []RotationLevel

	planner *Planner
	scroll  scrollState
	fader   *Fader
	script  *ScriptRunner

	ready         bool
	closeUpActive bool
	warnedNoMain  bool

	drawn   map[Movable]bool
	sortBuf []Movable

	dt    time.Duration
	debug bool
	stats debugStats
}

// NewScene creates an empty scene bound to game. A nil game gets a
// headless default with a zero-sized screen.
func NewScene(name string, game *Game) *Scene {
	if game == nil {
		game = NewGame(0, 0)
	}
	s := &Scene{
		Name:   name,
		Config: DefaultSceneConfig(),
		game:   game,
		fader:  NewFader(),
		drawn:  make(map[Movable]bool),
	}
	s.planner = NewPlanner(s)
	return s
}

// Game returns the game this scene belongs to.
func (s *Scene) Game() *Game {
	return s.game
}

// Planner returns the scene's path planner.
func (s *Scene) Planner() *Planner {
	return s.planner
}

// Fader returns the screen fader drawn over the scene.
func (s *Scene) Fader() *Fader {
	return s.fader
}

// --- Layers ---

// AddLayer appends a layer. Panics if l is a second main layer.
func (s *Scene) AddLayer(l *Layer) {
	if l.Main {
		if s.mainLayer != nil {
			panic("adscene: scene already has a main layer")
		}
		s.mainLayer = l
	}
	s.layers = append(s.layers, l)
}

// Layers returns the layer list. The returned slice MUST NOT be mutated.
func (s *Scene) Layers() []*Layer {
	return s.layers
}

// Layer returns the first layer with the given name, or nil.
func (s *Scene) Layer(name string) *Layer {
	for _, l := range s.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// MainLayer returns the main layer, or nil.
func (s *Scene) MainLayer() *Layer {
	return s.mainLayer
}

// Width returns the main layer width, or 0 without a main layer.
func (s *Scene) Width() int {
	if s.mainLayer == nil {
		return 0
	}
	return s.mainLayer.Width
}

// Height returns the main layer height, or 0 without a main layer.
func (s *Scene) Height() int {
	if s.mainLayer == nil {
		return 0
	}
	return s.mainLayer.Height
}

// --- Waypoints ---

// AddWaypointGroup registers a scene waypoint group.
func (s *Scene) AddWaypointGroup(g *WaypointGroup) {
	s.waypointGroups = append(s.waypointGroups, g)
}

// WaypointGroups returns the scene groups. The returned slice MUST NOT be mutated.
func (s *Scene) WaypointGroups() []*WaypointGroup {
	return s.waypointGroups
}

// WaypointGroup returns the scene group with the given name, or nil.
func (s *Scene) WaypointGroup(name string) *WaypointGroup {
	for _, g := range s.waypointGroups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// --- Objects ---

// AddObject registers a scene-owned object. Actors are bound to the scene.
func (s *Scene) AddObject(obj Movable) {
	s.objects = append(s.objects, obj)
	if a, ok := obj.(*Actor); ok {
		a.scene = s
	}
}

// RemoveObject unregisters a scene-owned object. No-op if absent.
func (s *Scene) RemoveObject(obj Movable) {
	s.objects = removeMovable(s.objects, obj)
	delete(s.drawn, obj)
}

// Objects returns the scene-owned objects. The returned slice MUST NOT be mutated.
func (s *Scene) Objects() []Movable {
	return s.objects
}

// Object returns the scene or global object with the given name, or nil.
func (s *Scene) Object(name string) Movable {
	for _, o := range s.objects {
		if o.Name() == name {
			return o
		}
	}
	for _, o := range s.game.objects {
		if o.Name() == name {
			return o
		}
	}
	return nil
}

// Project3D maps a 3D position through the scene geometry. ok is false when
// the scene has no geometry.
func (s *Scene) Project3D(x, y, z float64) (Point, bool) {
	if s.Geometry == nil {
		return Point{}, false
	}
	return s.Geometry.Project(x, y, z)
}

// --- State ---

// Ready reports whether the camera has reached its scroll target (always
// true once updated with auto-scroll disabled).
func (s *Scene) Ready() bool {
	return s.ready
}

// CloseUpActive reports whether the last display pass drew a close-up layer.
func (s *Scene) CloseUpActive() bool {
	return s.closeUpActive
}

// SetDebugMode enables per-frame timing stats on the diagnostic output and
// debug colors in AlphaAt.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetScript attaches a script runner stepped at the start of every update.
func (s *Scene) SetScript(r *ScriptRunner) {
	s.script = r
}

// --- Loop ---

// Update advances the scene by one tick at the current ebiten TPS.
func (s *Scene) Update() {
	s.UpdateDelta(time.Second / time.Duration(ebiten.TPS()))
}

// UpdateDelta advances the game clock by dt, runs the script, spends up to
// Config.PathMaxTime on path finding and runs the update traversal.
func (s *Scene) UpdateDelta(dt time.Duration) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.dt = dt
	s.game.Advance(dt)
	if s.script != nil {
		s.script.step(s)
	}

	steps := s.planner.Run(time.Now().Add(s.Config.PathMaxTime))

	if s.debug {
		s.stats.pathSteps = steps
		s.stats.pathTime = time.Since(t0)
		t0 = time.Now()
	}

	s.Traverse(true, &Frame{Scene: s})

	if s.debug {
		s.stats.updateTime = time.Since(t0)
	}
}

// Draw runs the display traversal onto target.
func (s *Scene) Draw(target *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.Traverse(false, &Frame{Target: target, Scene: s})

	if s.debug {
		s.stats.displayTime = time.Since(t0)
		s.debugLog(s.stats)
	}
}
