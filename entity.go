package adscene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Frame carries the per-pass drawing state handed to Display calls. Target
// may be nil (headless update/tests); implementations must tolerate that.
type Frame struct {
	Target *ebiten.Image

	// OffsetX and OffsetY are the current scroll offset for the layer being
	// traversed. Scene coordinates map to screen as (x-OffsetX, y-OffsetY).
	OffsetX, OffsetY int

	// Viewport is the screen rectangle the scene renders into.
	Viewport Rect

	Scene *Scene
}

// ScreenPos converts scene coordinates to target coordinates.
func (f *Frame) ScreenPos(x, y int) (float32, float32) {
	return float32(x - f.OffsetX), float32(y - f.OffsetY)
}

// Entity is a static scene element referenced by a layer's entity node.
type Entity interface {
	Name() string
	Active() bool
	Update()
	Display(f *Frame)
}

// Spatial3D is implemented by entities and objects that are depth-projected.
// 3D entities are skipped by the traversal when the scene has no 3D geometry.
type Spatial3D interface {
	Is3D() bool
}

func is3D(e Entity) bool {
	s, ok := e.(Spatial3D)
	return ok && s.Is3D()
}

// StaticEntity is a solid rectangle placed by a scene description. It has no
// behavior of its own.
type StaticEntity struct {
	EntityName string
	X, Y       int
	Width      int
	Height     int
	Color      Color
	Disabled   bool

	updates int
}

// NewStaticEntity creates an enabled white rectangle entity.
func NewStaticEntity(name string, x, y, w, h int) *StaticEntity {
	return &StaticEntity{EntityName: name, X: x, Y: y, Width: w, Height: h, Color: ColorWhite}
}

// Name returns the entity's name.
func (e *StaticEntity) Name() string { return e.EntityName }

// Active reports whether the entity is enabled.
func (e *StaticEntity) Active() bool { return !e.Disabled }

// Update counts ticks; a static entity has no behavior of its own.
func (e *StaticEntity) Update() { e.updates++ }

// Display fills the entity's rectangle on the frame target.
func (e *StaticEntity) Display(f *Frame) {
	if f.Target == nil || e.Width <= 0 || e.Height <= 0 {
		return
	}
	x, y := f.ScreenPos(e.X, e.Y)
	vector.DrawFilledRect(f.Target, x, y, float32(e.Width), float32(e.Height), e.Color.NRGBA(), false)
}
