package adscene

// Path is a solved route: an ordered list of points walked with a cursor,
// plus a ready flag set once the planner has finished with it. A ready path
// with no points means the target was unreachable.
type Path struct {
	points []Point
	cursor int
	ready  bool
}

// NewPath returns an empty, not-ready path.
func NewPath() *Path {
	return &Path{}
}

// Reset clears the points and the ready flag so the path can be reused for a
// new request.
func (p *Path) Reset() {
	p.points = p.points[:0]
	p.cursor = 0
	p.ready = false
}

// Ready reports whether the planner has finished with this path.
func (p *Path) Ready() bool { return p.ready }

// SetReady sets the ready flag.
func (p *Path) SetReady(ready bool) { p.ready = ready }

// Points returns the route. The returned slice MUST NOT be mutated.
func (p *Path) Points() []Point { return p.points }

// Len returns the number of points.
func (p *Path) Len() int { return len(p.points) }

// AddPoint appends a point.
func (p *Path) AddPoint(pt Point) {
	p.points = append(p.points, pt)
}

// prependPoint inserts pt at the front.
func (p *Path) prependPoint(pt Point) {
	p.points = append(p.points, Point{})
	copy(p.points[1:], p.points)
	p.points[0] = pt
}

// First moves the cursor to the first point and returns it.
func (p *Path) First() (Point, bool) {
	p.cursor = 0
	return p.Current()
}

// Next advances the cursor and returns the new current point. ok is false
// once the end is passed.
func (p *Path) Next() (Point, bool) {
	if p.cursor < len(p.points) {
		p.cursor++
	}
	return p.Current()
}

// Current returns the point under the cursor.
func (p *Path) Current() (Point, bool) {
	if p.cursor < 0 || p.cursor >= len(p.points) {
		return Point{}, false
	}
	return p.points[p.cursor], true
}

// Last returns the final point.
func (p *Path) Last() (Point, bool) {
	if len(p.points) == 0 {
		return Point{}, false
	}
	return p.points[len(p.points)-1], true
}
