package adscene

// WaypointGroup is a named, togglable set of path-planning shortcut points.
// Scene groups are loaded with the scene; a movable object may own a group
// that mimics a template at its current position ("walk around me" markers).
type WaypointGroup struct {
	Name   string
	Active bool

	points []Point

	mimicked       bool
	lastMimicScale float64
	lastMimicX     int
	lastMimicY     int
}

// NewWaypointGroup creates an active group holding a copy of points.
func NewWaypointGroup(name string, points []Point) *WaypointGroup {
	return &WaypointGroup{
		Name:   name,
		Active: true,
		points: append([]Point(nil), points...),
	}
}

// Activate enables the group for path planning.
func (g *WaypointGroup) Activate() { g.Active = true }

// Deactivate removes the group from path planning.
func (g *WaypointGroup) Deactivate() { g.Active = false }

// Points returns the group's points. The returned slice MUST NOT be mutated.
func (g *WaypointGroup) Points() []Point {
	return g.points
}

// AddPoint appends a point to the group.
func (g *WaypointGroup) AddPoint(x, y int) {
	g.points = append(g.points, Point{x, y})
}

// Mimic replaces the group's points with src's, scaled by scale percent and
// translated by (x, y). Repeating a call with unchanged parameters does not
// touch the points again. The first call always applies.
func (g *WaypointGroup) Mimic(src *WaypointGroup, scale float64, x, y int) {
	if g.mimicked && scale == g.lastMimicScale && x == g.lastMimicX && y == g.lastMimicY {
		return
	}
	g.points = g.points[:0]
	for _, p := range src.points {
		g.points = append(g.points, Point{
			X: int(float64(p.X)*scale/100) + x,
			Y: int(float64(p.Y)*scale/100) + y,
		})
	}
	g.mimicked = true
	g.lastMimicScale = scale
	g.lastMimicX = x
	g.lastMimicY = y
}
