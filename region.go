package adscene

// Region is a polygon that tags an area of a scene as walkable, blocked, or
// purely decorative. Points may describe a non-convex polygon in either
// winding order.
type Region struct {
	Name string

	// Active regions take part in every query; inactive ones are ignored.
	Active bool
	// Blocked marks the area as not walkable.
	Blocked bool
	// Decoration regions are visual only and ignored by all walkability and
	// depth predicates.
	Decoration bool
	// Alpha is the packed ARGB tint applied to objects standing inside.
	Alpha uint32
	// Zoom overrides the depth scale curve (percent). Zero means no override.
	Zoom float64

	points []Point
	bounds Rect

	mimicked       bool
	lastMimicScale float64
	lastMimicX     int
	lastMimicY     int
}

// NewRegion creates an active, walkable region from the given vertices.
func NewRegion(name string, points []Point) *Region {
	r := &Region{
		Name:   name,
		Active: true,
		Alpha:  AlphaOpaque,
	}
	r.SetPoints(points)
	return r
}

// Points returns the region's vertices. The returned slice MUST NOT be mutated.
func (r *Region) Points() []Point {
	return r.points
}

// SetPoints replaces the vertices and recomputes the cached bounds.
func (r *Region) SetPoints(points []Point) {
	r.points = append(r.points[:0], points...)
	r.updateBounds()
}

// AddPoint appends a vertex.
func (r *Region) AddPoint(x, y int) {
	r.points = append(r.points, Point{x, y})
	r.updateBounds()
}

// Bounds returns the bounding rectangle of the vertices.
func (r *Region) Bounds() Rect {
	return r.bounds
}

func (r *Region) updateBounds() {
	if len(r.points) == 0 {
		r.bounds = Rect{}
		return
	}
	minX, minY := r.points[0].X, r.points[0].Y
	maxX, maxY := minX, minY
	for _, p := range r.points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	r.bounds = Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether (x, y) lies inside the polygon. Points exactly on
// an edge are inside. Regions with fewer than 3 vertices contain nothing.
func (r *Region) Contains(x, y int) bool {
	n := len(r.points)
	if n < 3 || !r.bounds.Contains(x, y) {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := r.points[i], r.points[j]
		if onSegment(a, b, x, y) {
			return true
		}
		// Even-odd crossing test on a horizontal ray toward +X.
		if (a.Y > y) != (b.Y > y) {
			xinters := float64(b.X-a.X)*float64(y-a.Y)/float64(b.Y-a.Y) + float64(a.X)
			if float64(x) < xinters {
				inside = !inside
			}
		}
	}
	return inside
}

// onSegment reports whether (x, y) lies on the segment a-b.
func onSegment(a, b Point, x, y int) bool {
	cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
	if cross != 0 {
		return false
	}
	return x >= min(a.X, b.X) && x <= max(a.X, b.X) &&
		y >= min(a.Y, b.Y) && y <= max(a.Y, b.Y)
}

// Mimic replaces this region's vertices with src's, scaled by scale percent
// and translated by (x, y). Repeating a call with unchanged parameters is a
// no-op. The first call always applies, also on a zero-value Region.
func (r *Region) Mimic(src *Region, scale float64, x, y int) {
	if r.mimicked && scale == r.lastMimicScale && x == r.lastMimicX && y == r.lastMimicY {
		return
	}
	r.points = r.points[:0]
	for _, p := range src.points {
		r.points = append(r.points, Point{
			X: int(float64(p.X)*scale/100) + x,
			Y: int(float64(p.Y)*scale/100) + y,
		})
	}
	r.updateBounds()
	r.mimicked = true
	r.lastMimicScale = scale
	r.lastMimicX = x
	r.lastMimicY = y
}
