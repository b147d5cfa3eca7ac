package adscene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solve runs the planner to completion and returns the number of steps.
func solve(t *testing.T, s *Scene, p *Path) int {
	t.Helper()
	steps := 0
	for !p.Ready() {
		s.Planner().Step()
		steps++
		require.Less(t, steps, 10000, "planner did not terminate")
	}
	return steps
}

// requireValidPath checks that every segment of p is a line-of-sight edge
// and that it runs from src to dst.
func requireValidPath(t *testing.T, s *Scene, p *Path, src, dst Point, requester Movable) {
	t.Helper()
	pts := p.Points()
	require.GreaterOrEqual(t, len(pts), 2)
	assert.Equal(t, src, pts[0], "first point")
	assert.Equal(t, dst, pts[len(pts)-1], "last point")
	for i := 1; i < len(pts); i++ {
		assert.GreaterOrEqual(t, s.Planner().PointsDist(pts[i-1], pts[i], requester), 0,
			"segment %v -> %v is blocked", pts[i-1], pts[i])
	}
}

// newWallScene returns a 100x100 floor with a blocked wall at x 40..60
// covering y 0..wallBottom.
func newWallScene(wallBottom int) (*Scene, *Layer) {
	s, l := newFloorScene(100, 100)
	l.AddRegion(blockedRegion("wall", box(40, 0, 60, wallBottom)))
	return s, l
}

func TestFindPath_DirectLine(t *testing.T) {
	s, _ := newFloorScene(100, 100)

	p, ok := s.FindPath(Point{0, 0}, Point{99, 99}, nil)
	require.True(t, ok)
	assert.False(t, p.Ready(), "path must not be ready before the planner runs")

	solve(t, s, p)
	assert.Equal(t, []Point{{0, 0}, {99, 99}}, p.Points())
	assert.Equal(t, 99, s.Planner().PointsDist(Point{0, 0}, Point{99, 99}, nil))
}

func TestFindPath_RoutesThroughWaypoints(t *testing.T) {
	s, _ := newWallScene(70)
	s.AddWaypointGroup(NewWaypointGroup("left", []Point{{30, 85}}))
	s.AddWaypointGroup(NewWaypointGroup("right", []Point{{70, 85}}))

	src, dst := Point{10, 10}, Point{90, 10}
	require.Equal(t, -1, s.Planner().PointsDist(src, dst, nil), "direct line should be blocked")

	p, ok := s.FindPath(src, dst, nil)
	require.True(t, ok)
	solve(t, s, p)

	require.GreaterOrEqual(t, p.Len(), 3)
	requireValidPath(t, s, p, src, dst, nil)
	assert.Equal(t, []Point{{10, 10}, {30, 85}, {70, 85}, {90, 10}}, p.Points())
}

func TestFindPath_Unreachable(t *testing.T) {
	s, _ := newWallScene(99)
	s.AddWaypointGroup(NewWaypointGroup("left", []Point{{30, 50}}))
	s.AddWaypointGroup(NewWaypointGroup("right", []Point{{70, 50}}))

	p, ok := s.FindPath(Point{10, 10}, Point{90, 10}, nil)
	require.True(t, ok)
	steps := solve(t, s, p)

	assert.True(t, p.Ready())
	assert.Equal(t, 0, p.Len())
	assert.LessOrEqual(t, steps, 5, "unreachable search should stop once the source side is exhausted")
	assert.False(t, s.Planner().Busy())
}

func TestFindPath_InactiveGroupIgnored(t *testing.T) {
	s, _ := newWallScene(70)
	g := NewWaypointGroup("around", []Point{{30, 85}, {70, 85}})
	g.Deactivate()
	s.AddWaypointGroup(g)

	p, ok := s.FindPath(Point{10, 10}, Point{90, 10}, nil)
	require.True(t, ok)
	solve(t, s, p)
	assert.Equal(t, 0, p.Len())
}

func TestFindPath_SkipsBlockedWaypoints(t *testing.T) {
	s, _ := newWallScene(70)
	s.AddWaypointGroup(NewWaypointGroup("mixed", []Point{{50, 50}, {30, 85}}))

	_, ok := s.FindPath(Point{10, 10}, Point{90, 10}, nil)
	require.True(t, ok)
	// source + target + the one walkable waypoint
	assert.Equal(t, 3, s.planner.count)
}

func TestFindPath_ObjectWaypoints(t *testing.T) {
	s, _ := newWallScene(70)
	helper := &testObject{name: "helper", wpt: NewWaypointGroup("h", []Point{{30, 85}, {70, 85}})}
	s.AddObject(helper)

	p, ok := s.FindPath(Point{10, 10}, Point{90, 10}, nil)
	require.True(t, ok)
	solve(t, s, p)
	requireValidPath(t, s, p, Point{10, 10}, Point{90, 10}, nil)

	// The requester's own markers are never used.
	p, ok = s.FindPath(Point{10, 10}, Point{90, 10}, helper)
	require.True(t, ok)
	solve(t, s, p)
	assert.Equal(t, 0, p.Len())
}

func TestFindPath_AvoidsOtherObjects(t *testing.T) {
	s, _ := newFloorScene(100, 100)
	guard := &testObject{name: "guard", block: blockedRegion("gb", box(40, 0, 60, 70))}
	s.AddObject(guard)
	s.AddWaypointGroup(NewWaypointGroup("around", []Point{{30, 85}, {70, 85}}))

	src, dst := Point{10, 10}, Point{90, 10}
	p, ok := s.FindPath(src, dst, nil)
	require.True(t, ok)
	solve(t, s, p)
	assert.Equal(t, 4, p.Len())
	requireValidPath(t, s, p, src, dst, nil)

	// The guard itself walks straight through its own block region.
	p, ok = s.FindPath(src, dst, guard)
	require.True(t, ok)
	solve(t, s, p)
	assert.Equal(t, []Point{src, dst}, p.Points())
}

func TestFindPath_BlockedSourceUsesNearestFreePoint(t *testing.T) {
	s, l := newFloorScene(100, 100)
	l.AddRegion(blockedRegion("crate", box(0, 0, 1, 1)))

	p, ok := s.FindPath(Point{0, 0}, Point{50, 50}, nil)
	require.True(t, ok)
	solve(t, s, p)
	// (0,2) and (2,0) are both 2 away; x-major scan finds (0,2) first.
	assert.Equal(t, []Point{{0, 2}, {50, 50}}, p.Points())
}

func TestFindPath_RefusedWhileBusy(t *testing.T) {
	s, _ := newFloorScene(100, 100)

	first, ok := s.FindPath(Point{0, 0}, Point{50, 50}, nil)
	require.True(t, ok)
	assert.True(t, s.Planner().Busy())

	other := NewPath()
	other.AddPoint(Point{1, 1})
	assert.False(t, s.RequestPath(other, Point{0, 0}, Point{10, 10}, nil))
	assert.Equal(t, 1, other.Len(), "refused request must not touch the path")

	_, ok = s.FindPath(Point{0, 0}, Point{10, 10}, nil)
	assert.False(t, ok)

	solve(t, s, first)
	_, ok = s.FindPath(Point{0, 0}, Point{10, 10}, nil)
	assert.True(t, ok, "planner should accept requests once idle")
}

func TestFindPath_TargetEqualsSource(t *testing.T) {
	s, _ := newFloorScene(100, 100)
	p, ok := s.FindPath(Point{20, 20}, Point{20, 20}, nil)
	require.True(t, ok)
	solve(t, s, p)
	assert.Equal(t, []Point{{20, 20}}, p.Points())
}

func TestPlanner_StepIdle(t *testing.T) {
	s, _ := newFloorScene(10, 10)
	assert.False(t, s.Planner().Step())
	assert.Equal(t, 0, s.Planner().Run(time.Now().Add(time.Second)))
}

func TestPlanner_RunTakesAtLeastOneStep(t *testing.T) {
	s, _ := newFloorScene(100, 100)
	p, ok := s.FindPath(Point{0, 0}, Point{99, 99}, nil)
	require.True(t, ok)

	n := s.Planner().Run(time.Now().Add(-time.Second))
	assert.Equal(t, 1, n)
	assert.False(t, p.Ready())

	n = s.Planner().Run(time.Now().Add(time.Second))
	assert.Equal(t, 1, n)
	assert.True(t, p.Ready())
}

func TestPlanner_UpdateRunsSearch(t *testing.T) {
	s, _ := newFloorScene(100, 100)
	p, ok := s.FindPath(Point{0, 0}, Point{99, 99}, nil)
	require.True(t, ok)

	s.UpdateDelta(16 * time.Millisecond)
	assert.True(t, p.Ready())
	assert.Equal(t, 2, p.Len())
}

func TestPlanner_ScratchPoolReused(t *testing.T) {
	s, _ := newWallScene(70)
	s.AddWaypointGroup(NewWaypointGroup("around", []Point{{30, 85}, {70, 85}}))

	p, _ := s.FindPath(Point{10, 10}, Point{90, 10}, nil)
	solve(t, s, p)
	grown := cap(s.planner.points)

	p, _ = s.FindPath(Point{10, 10}, Point{20, 10}, nil)
	solve(t, s, p)
	assert.Equal(t, grown, cap(s.planner.points), "pool should not be reallocated")
	assert.Equal(t, []Point{{10, 10}, {20, 10}}, p.Points())
}

func TestPlanner_CorruptOriginPanics(t *testing.T) {
	s, _ := newFloorScene(10, 10)
	pl := s.Planner()
	pl.points = []pathPoint{{x: 1, y: 1, origin: 7}}
	pl.count = 1
	pl.path = NewPath()

	assert.Panics(t, func() { pl.reconstruct(0) })
}

func TestPlanner_StartNilPathPanics(t *testing.T) {
	s, _ := newFloorScene(10, 10)
	assert.Panics(t, func() { s.Planner().Start(nil, Point{}, Point{}, nil, nil) })
}

func TestPointsDist(t *testing.T) {
	s, l := newFloorScene(100, 100)
	l.AddRegion(blockedRegion("post", box(50, 50, 52, 52)))
	pl := s.Planner()

	tests := []struct {
		name   string
		p1, p2 Point
		want   int
	}{
		{"zero length", Point{5, 5}, Point{5, 5}, 0},
		{"horizontal", Point{0, 10}, Point{30, 10}, 30},
		{"vertical reversed", Point{10, 40}, Point{10, 0}, 40},
		{"steep diagonal", Point{0, 0}, Point{10, 40}, 40},
		{"through post", Point{0, 51}, Point{99, 51}, -1},
		{"past post", Point{0, 60}, Point{99, 60}, 99},
		{"end point not sampled", Point{0, 51}, Point{50, 51}, 50},
		{"leaving the floor", Point{90, 10}, Point{120, 10}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pl.PointsDist(tt.p1, tt.p2, nil))
		})
	}
}

func TestPointsDist_Symmetric(t *testing.T) {
	s, l := newFloorScene(100, 100)
	l.AddRegion(blockedRegion("post", box(50, 50, 52, 52)))
	pl := s.Planner()

	pairs := [][2]Point{
		{{0, 0}, {99, 99}},
		{{10, 90}, {90, 10}},
		{{0, 20}, {99, 30}},
	}
	for _, pr := range pairs {
		a := pl.PointsDist(pr[0], pr[1], nil)
		b := pl.PointsDist(pr[1], pr[0], nil)
		assert.Equal(t, a, b, "%v <-> %v", pr[0], pr[1])
	}
}
