package adscene

import (
	"time"
)

// Blocker answers the walkability question the planner's line-of-sight test
// asks. *Scene implements it.
type Blocker interface {
	IsBlockedAt(x, y int, checkFreeObjects bool, requester Movable) bool
	IsWalkableAt(x, y int, checkFreeObjects bool, requester Movable) bool
}

// pathPoint is one node of the search graph. origin indexes the predecessor
// in the planner's pool, -1 for none.
type pathPoint struct {
	x, y   int
	dist   int
	marked bool
	origin int
}

// Planner is an incremental Dijkstra search over the source, the target and
// the waypoint points of a scene. Edges exist between any two points with an
// unblocked straight line between them; their cost is the Chebyshev length of
// that line.
//
// One request is in flight at a time. The search advances only through Step
// or Run, so a long search can be spread over several frames.
type Planner struct {
	// Tolerance is the radius searched for a walkable start point when the
	// source is blocked.
	Tolerance int

	// Events receives a PathEvent when a request finishes. May be nil.
	Events EventSink
	// Metrics records finished requests. May be nil.
	Metrics *PlannerMetrics

	blocker Blocker

	// points is the scratch pool; only the first count entries are live.
	points []pathPoint
	count  int

	path      *Path
	target    Point
	requester Movable
	busy      bool

	steps   int
	started time.Time
}

// NewPlanner creates an idle planner testing walkability against b.
func NewPlanner(b Blocker) *Planner {
	return &Planner{Tolerance: 2, blocker: b}
}

// Busy reports whether a request is in flight.
func (pl *Planner) Busy() bool {
	return pl.busy
}

// Start begins a search from src to dst, filling path once done. waypoints
// are the extra graph nodes. Returns false without touching path if another
// request is in flight.
func (pl *Planner) Start(path *Path, src, dst Point, requester Movable, waypoints []Point) bool {
	if pl.busy {
		return false
	}
	if path == nil {
		panic("adscene: nil path")
	}
	path.Reset()

	pl.path = path
	pl.target = dst
	pl.requester = requester
	pl.count = 0
	pl.steps = 0
	pl.started = time.Now()
	pl.busy = true

	src = pl.freeStart(src)
	pl.addPoint(src.X, src.Y, 0)
	pl.addPoint(dst.X, dst.Y, maxDist)
	for _, wp := range waypoints {
		pl.addPoint(wp.X, wp.Y, maxDist)
	}
	return true
}

// freeStart returns src, or the walkable point nearest to it within
// Tolerance if src is blocked. Nearest is by Manhattan distance, first found
// on ties (x outer, y inner).
func (pl *Planner) freeStart(src Point) Point {
	if !pl.blocker.IsBlockedAt(src.X, src.Y, true, pl.requester) {
		return src
	}
	free := src
	best := -1
	tol := pl.Tolerance
	for x := src.X - tol; x <= src.X+tol; x++ {
		for y := src.Y - tol; y <= src.Y+tol; y++ {
			if !pl.blocker.IsWalkableAt(x, y, true, pl.requester) {
				continue
			}
			d := absInt(x-src.X) + absInt(y-src.Y)
			if best < 0 || d < best {
				free = Point{X: x, Y: y}
				best = d
			}
		}
	}
	return free
}

func (pl *Planner) addPoint(x, y, dist int) {
	if pl.count == len(pl.points) {
		pl.points = append(pl.points, pathPoint{})
	}
	pl.points[pl.count] = pathPoint{x: x, y: y, dist: dist, origin: -1}
	pl.count++
}

// Step runs one iteration of the search. It returns true while the request
// still needs more steps.
func (pl *Planner) Step() bool {
	if !pl.busy {
		return false
	}
	pl.steps++

	lowest := -1
	for i := 0; i < pl.count; i++ {
		p := &pl.points[i]
		if p.marked || p.dist == maxDist {
			continue
		}
		if lowest < 0 || p.dist < pl.points[lowest].dist {
			lowest = i
		}
	}

	if lowest < 0 {
		pl.finish()
		return false
	}

	lp := &pl.points[lowest]
	lp.marked = true

	if lp.x == pl.target.X && lp.y == pl.target.Y {
		pl.reconstruct(lowest)
		pl.finish()
		return false
	}

	from := Point{X: lp.x, Y: lp.y}
	for i := 0; i < pl.count; i++ {
		p := &pl.points[i]
		if p.marked {
			continue
		}
		j := pl.PointsDist(from, Point{X: p.x, Y: p.y}, pl.requester)
		if j != -1 && lp.dist+j < p.dist {
			p.dist = lp.dist + j
			p.origin = lowest
		}
	}
	return true
}

// reconstruct fills the path by following origin links back from idx.
func (pl *Planner) reconstruct(idx int) {
	for n := 0; idx != -1; n++ {
		if idx < 0 || idx >= pl.count || n > pl.count {
			panic("adscene: corrupt path point origin")
		}
		p := &pl.points[idx]
		pl.path.prependPoint(Point{X: p.x, Y: p.y})
		idx = p.origin
	}
}

func (pl *Planner) finish() {
	pl.path.SetReady(true)
	pl.busy = false

	ev := PathEvent{
		Requester: movableName(pl.requester),
		Found:     pl.path.Len() > 0,
		Points:    pl.path.Len(),
		Steps:     pl.steps,
		Duration:  time.Since(pl.started),
	}
	pl.path = nil
	pl.requester = nil

	if pl.Metrics != nil {
		pl.Metrics.observe(ev)
	}
	if pl.Events != nil {
		pl.Events.EmitPathEvent(ev)
	}
}

// Run steps the current request until it finishes or deadline passes, and
// returns the number of steps taken. At least one step runs if a request is
// in flight.
func (pl *Planner) Run(deadline time.Time) int {
	n := 0
	for pl.busy {
		pl.Step()
		n++
		if !time.Now().Before(deadline) {
			break
		}
	}
	return n
}

// PointsDist returns the cost of the straight line from p1 to p2, or -1 if
// any sampled pixel on it is blocked for requester. The line is sampled once
// per pixel along its longer axis, end point excluded; the cost is the
// longer axis length.
func (pl *Planner) PointsDist(p1, p2 Point, requester Movable) int {
	x1, y1, x2, y2 := p1.X, p1.Y, p2.X, p2.Y
	xLen := absInt(x2 - x1)
	yLen := absInt(y2 - y1)

	if xLen > yLen {
		if x1 > x2 {
			x1, x2 = x2, x1
			y1, y2 = y2, y1
		}
		yStep := float64(y2-y1) / float64(xLen)
		y := float64(y1)
		for x := x1; x < x2; x++ {
			if pl.blocker.IsBlockedAt(x, int(y), true, requester) {
				return -1
			}
			y += yStep
		}
		return xLen
	}

	if yLen == 0 {
		return 0
	}
	if y1 > y2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}
	xStep := float64(x2-x1) / float64(yLen)
	x := float64(x1)
	for y := y1; y < y2; y++ {
		if pl.blocker.IsBlockedAt(int(x), y, true, requester) {
			return -1
		}
		x += xStep
	}
	return yLen
}

// --- Scene entry points ---

// FindPath starts a search from src to dst on behalf of requester (may be
// nil) and returns the path it will fill. ok is false, and the path nil, if
// a request is already in flight.
func (s *Scene) FindPath(src, dst Point, requester Movable) (*Path, bool) {
	p := NewPath()
	if !s.RequestPath(p, src, dst, requester) {
		return nil, false
	}
	return p, true
}

// RequestPath is FindPath into a caller-owned path. The path is reset and
// left not ready until the search finishes during later updates.
func (s *Scene) RequestPath(path *Path, src, dst Point, requester Movable) bool {
	if s.planner.Busy() {
		if s.debug {
			diagf("path request from %s refused: planner busy", movableName(requester))
		}
		return false
	}
	s.planner.Tolerance = s.Config.StartTolerance
	s.planner.Events = s.game.Events
	s.planner.Metrics = s.game.Metrics
	return s.planner.Start(path, src, dst, requester, s.pathWaypoints(requester))
}

// pathWaypoints collects the non-blocked points of the active scene waypoint
// groups, then of the active waypoint groups of every other active object
// (scene objects first, then global ones).
func (s *Scene) pathWaypoints(requester Movable) []Point {
	var pts []Point
	add := func(g *WaypointGroup) {
		if g == nil || !g.Active {
			return
		}
		for _, p := range g.points {
			if !s.IsBlockedAt(p.X, p.Y, true, requester) {
				pts = append(pts, p)
			}
		}
	}
	for _, g := range s.waypointGroups {
		add(g)
	}
	for _, objs := range [][]Movable{s.objects, s.game.objects} {
		for _, o := range objs {
			if o == requester || !o.Active() {
				continue
			}
			add(o.WaypointGroup())
		}
	}
	return pts
}

func movableName(m Movable) string {
	if m == nil {
		return ""
	}
	return m.Name()
}
