package adscene

import "time"

// SceneConfig holds per-scene tuning. Zero values are not usable; start from
// DefaultSceneConfig.
type SceneConfig struct {
	// AutoScroll makes the camera follow the game's main object.
	AutoScroll bool
	// Parallax scrolls each layer proportionally to its size instead of
	// applying the main offset to every layer.
	Parallax bool

	// ScrollPixelsH and ScrollPixelsV are the step sizes of one scroll tick.
	ScrollPixelsH, ScrollPixelsV int
	// ScrollTimeH and ScrollTimeV are the minimum game time between ticks.
	ScrollTimeH, ScrollTimeV time.Duration

	// PathMaxTime is the wall-clock budget spent on path finding per update.
	PathMaxTime time.Duration
	// StartTolerance is the radius searched for a walkable start point when a
	// path request starts inside a blocked area.
	StartTolerance int
}

// DefaultSceneConfig returns the standard tuning: auto-scroll on, one pixel
// every 10ms on both axes and a 15ms path finding budget.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		AutoScroll:     true,
		ScrollPixelsH:  1,
		ScrollPixelsV:  1,
		ScrollTimeH:    10 * time.Millisecond,
		ScrollTimeV:    10 * time.Millisecond,
		PathMaxTime:    15 * time.Millisecond,
		StartTolerance: 2,
	}
}
