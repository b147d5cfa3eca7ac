package adscene

// thickness is how far past a candidate the ray checks for more
// walkable ground, so a target is never snapped onto a sliver.
const thickness = 5

// CorrectTargetPoint moves a walk target that is not walkable onto nearby
// walkable ground and returns the corrected point.
//
// Four rays are cast from the target (right, left, up, down) up to the main
// layer edges. A ray hits at the first walkable sample whose neighbor
// thickness pixels further along is also walkable. The nearer hit on each
// axis is kept, then only the axis with the smaller offset is applied (ties
// go vertical). If that still lands off walkable ground, the straight line
// from the target back to (startX, startY) is searched instead. The target
// is returned unchanged when it is already walkable, when there is no main
// layer, or when nothing walkable is found.
func (s *Scene) CorrectTargetPoint(startX, startY, targetX, targetY int, checkFreeObjects bool, requester Movable) (int, int) {
	if s.mainLayer == nil || s.IsWalkableAt(targetX, targetY, checkFreeObjects, requester) {
		return targetX, targetY
	}
	walkable := func(x, y int) bool {
		return s.IsWalkableAt(x, y, checkFreeObjects, requester)
	}
	w, h := s.mainLayer.Width, s.mainLayer.Height

	right, foundRight := 0, false
	for x := targetX; x < w; x, right = x+1, right+1 {
		if walkable(x, targetY) && walkable(x+thickness, targetY) {
			foundRight = true
			break
		}
	}
	left, foundLeft := 0, false
	for x := targetX; x >= 0; x, left = x-1, left-1 {
		if walkable(x, targetY) && walkable(x-thickness, targetY) {
			foundLeft = true
			break
		}
	}
	up, foundUp := 0, false
	for y := targetY; y >= 0; y, up = y-1, up-1 {
		if walkable(targetX, y) && walkable(targetX, y-thickness) {
			foundUp = true
			break
		}
	}
	down, foundDown := 0, false
	for y := targetY; y < h; y, down = y+1, down+1 {
		if walkable(targetX, y) && walkable(targetX, y+thickness) {
			foundDown = true
			break
		}
	}

	offX, okX := nearerOffset(left, foundLeft, right, foundRight)
	offY, okY := nearerOffset(up, foundUp, down, foundDown)

	x, y := targetX, targetY
	switch {
	case okX && (!okY || absInt(offX) < absInt(offY)):
		x += offX
	case okY:
		y += offY
	}

	if walkable(x, y) {
		return x, y
	}
	return s.correctAlongLine(startX, startY, targetX, targetY, walkable)
}

// nearerOffset picks the ray offset with the smaller magnitude, preferring b
// on ties.
func nearerOffset(a int, foundA bool, b int, foundB bool) (int, bool) {
	switch {
	case foundA && foundB:
		if absInt(a) < absInt(b) {
			return a, true
		}
		return b, true
	case foundA:
		return a, true
	case foundB:
		return b, true
	}
	return 0, false
}

// correctAlongLine walks the straight line from the target toward the start,
// one pixel along the longer axis at a time, and returns the first walkable
// sample. The target is returned unchanged if there is none.
func (s *Scene) correctAlongLine(startX, startY, targetX, targetY int, walkable func(x, y int) bool) (int, int) {
	dx := startX - targetX
	dy := startY - targetY
	n := max(absInt(dx), absInt(dy))
	for i := 0; i <= n; i++ {
		x, y := targetX, targetY
		if n > 0 {
			x = targetX + dx*i/n
			y = targetY + dy*i/n
		}
		if walkable(x, y) {
			return x, y
		}
	}
	return targetX, targetY
}
