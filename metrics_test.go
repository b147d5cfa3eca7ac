package adscene

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlannerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPlannerMetrics(reg)
	require.NoError(t, err)

	s, _ := newWallScene(99)
	s.Game().Metrics = m

	p, ok := s.FindPath(Point{10, 10}, Point{30, 10}, nil)
	require.True(t, ok)
	solve(t, s, p)

	p, ok = s.FindPath(Point{10, 10}, Point{90, 10}, nil)
	require.True(t, ok)
	solve(t, s, p)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unreachable")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.steps))
	assert.Equal(t, 1, testutil.CollectAndCount(m.pathLengths))

	n, err := testutil.GatherAndCount(reg,
		"adscene_planner_requests_total",
		"adscene_planner_steps",
		"adscene_planner_duration_seconds",
		"adscene_planner_path_points",
	)
	require.NoError(t, err)
	assert.Equal(t, 5, n, "two request series plus three histograms")
}

func TestPlannerMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPlannerMetrics(reg)
	require.NoError(t, err)

	_, err = NewPlannerMetrics(reg)
	assert.Error(t, err)
}

func TestPlannerEvents(t *testing.T) {
	s, _ := newFloorScene(100, 100)
	var got []PathEvent
	s.Game().Events = EventFunc(func(ev PathEvent) { got = append(got, ev) })

	hero := &testObject{name: "hero"}
	p, ok := s.FindPath(Point{0, 0}, Point{50, 50}, hero)
	require.True(t, ok)
	solve(t, s, p)

	require.Len(t, got, 1)
	assert.Equal(t, "hero", got[0].Requester)
	assert.True(t, got[0].Found)
	assert.Equal(t, 2, got[0].Points)
	assert.Equal(t, 2, got[0].Steps)
}
