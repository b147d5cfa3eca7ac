package adscene

import "time"

// scrollState is the camera: the current offset moves toward the target
// offset a few pixels per tick while auto-scroll is on.
type scrollState struct {
	offsetLeft, offsetTop int
	targetLeft, targetTop int
	lastTimeH, lastTimeV  time.Duration
}

// viewportRect returns the rectangle the scene renders into: the scene's own
// viewport, else the game's scene viewport, else the full screen.
func (s *Scene) viewportRect() Rect {
	switch {
	case s.Viewport != nil:
		return *s.Viewport
	case s.game.SceneViewport != nil:
		return *s.game.SceneViewport
	}
	return Rect{Width: s.game.ScreenWidth, Height: s.game.ScreenHeight}
}

// Offset returns the current camera offset.
func (s *Scene) Offset() (left, top int) {
	return s.scroll.offsetLeft, s.scroll.offsetTop
}

// TargetOffset returns the offset the camera is scrolling toward.
func (s *Scene) TargetOffset() (left, top int) {
	return s.scroll.targetLeft, s.scroll.targetTop
}

// ScrollTo aims the camera so (x, y) is centered, clamped to the scene. The
// offset catches up during later updates. While the game's main object is
// 3D, target changes under 5 pixels are ignored.
func (s *Scene) ScrollTo(x, y int) {
	vp := s.viewportRect()
	origLeft, origTop := s.scroll.targetLeft, s.scroll.targetTop

	s.scroll.targetLeft = clampInt(x-vp.Width/2, 0, s.Width()-vp.Width)
	s.scroll.targetTop = clampInt(y-vp.Height/2, 0, s.Height()-vp.Height)

	if mo := s.game.MainObject; mo != nil && mo.Is3D() {
		if absInt(origLeft-s.scroll.targetLeft) < 5 {
			s.scroll.targetLeft = origLeft
		}
		if absInt(origTop-s.scroll.targetTop) < 5 {
			s.scroll.targetTop = origTop
		}
	}
	s.ready = false
}

// SkipTo centers the camera on (x, y) immediately.
func (s *Scene) SkipTo(x, y int) {
	vp := s.viewportRect()
	s.scroll.offsetLeft = clampInt(x-vp.Width/2, 0, s.Width()-vp.Width)
	s.scroll.offsetTop = clampInt(y-vp.Height/2, 0, s.Height()-vp.Height)
	s.scroll.targetLeft = s.scroll.offsetLeft
	s.scroll.targetTop = s.scroll.offsetTop
}

// ScrollToObject scrolls to the visual center of obj.
func (s *Scene) ScrollToObject(obj Movable) {
	if obj == nil {
		return
	}
	p := obj.Position()
	s.ScrollTo(p.X, p.Y-obj.Height()/2)
}

// SkipToObject snaps the camera to the visual center of obj.
func (s *Scene) SkipToObject(obj Movable) {
	if obj == nil {
		return
	}
	p := obj.Position()
	s.SkipTo(p.X, p.Y-obj.Height()/2)
}

// updateScroll moves the offset toward the target. Each axis steps when its
// scroll time has elapsed on the game clock; after a stall it catches up at
// most two steps at once.
func (s *Scene) updateScroll() {
	if !s.Config.AutoScroll {
		s.ready = true
		return
	}
	now := s.game.Elapsed()
	st := &s.scroll

	if n, ok := scrollTicks(now, &st.lastTimeH, s.Config.ScrollTimeH); ok {
		st.offsetLeft = stepToward(st.offsetLeft, st.targetLeft, s.Config.ScrollPixelsH*n)
	}
	if n, ok := scrollTicks(now, &st.lastTimeV, s.Config.ScrollTimeV); ok {
		st.offsetTop = stepToward(st.offsetTop, st.targetTop, s.Config.ScrollPixelsV*n)
	}

	if st.offsetLeft == st.targetLeft && st.offsetTop == st.targetTop {
		s.ready = true
	}
}

// scrollTicks returns how many scroll intervals have passed since *last,
// capped at 2, and restarts the interval when at least one has.
func scrollTicks(now time.Duration, last *time.Duration, interval time.Duration) (int, bool) {
	elapsed := now - *last
	if interval <= 0 {
		*last = now
		return 1, true
	}
	if elapsed < interval {
		return 0, false
	}
	*last = now
	return int(min(elapsed/interval, 2)), true
}

func stepToward(v, target, step int) int {
	switch {
	case v < target:
		return min(v+step, target)
	case v > target:
		return max(v-step, target)
	}
	return v
}
