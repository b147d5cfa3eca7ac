package adscene

// IsBlockedAt reports whether (x, y) is not walkable for requester.
//
// With checkFreeObjects set, the exclusion regions of other active objects
// (scene and global) block first; the requester never blocks itself. Then the
// main layer's active, non-decoration regions are scanned in node order and
// the last one containing the point decides. A point no region covers is
// blocked.
func (s *Scene) IsBlockedAt(x, y int, checkFreeObjects bool, requester Movable) bool {
	if checkFreeObjects && s.inFreeObject(x, y, requester) {
		return true
	}
	r := s.coveringRegion(x, y)
	if r == nil {
		return true
	}
	return r.Blocked
}

// IsWalkableAt reports whether (x, y) is walkable for requester. Same
// precedence as IsBlockedAt, but a point no region covers is not walkable
// either: the two only agree on uncovered points.
func (s *Scene) IsWalkableAt(x, y int, checkFreeObjects bool, requester Movable) bool {
	if checkFreeObjects && s.inFreeObject(x, y, requester) {
		return false
	}
	r := s.coveringRegion(x, y)
	if r == nil {
		return false
	}
	return !r.Blocked
}

// coveringRegion returns the last active, non-decoration region of the main
// layer containing (x, y), or nil.
func (s *Scene) coveringRegion(x, y int) *Region {
	if s.mainLayer == nil {
		return nil
	}
	var found *Region
	for _, n := range s.mainLayer.nodes {
		rn, ok := n.(*RegionNode)
		if !ok {
			continue
		}
		r := rn.Region
		if r.Active && !r.Decoration && r.Contains(x, y) {
			found = r
		}
	}
	return found
}

// inFreeObject reports whether (x, y) lies in the block region of an active
// object other than requester.
func (s *Scene) inFreeObject(x, y int, requester Movable) bool {
	return blockedByObjects(s.objects, x, y, requester) ||
		blockedByObjects(s.game.objects, x, y, requester)
}

func blockedByObjects(objs []Movable, x, y int, requester Movable) bool {
	for _, o := range objs {
		if o == requester || !o.Active() {
			continue
		}
		if br := o.BlockRegion(); br != nil && br.Contains(x, y) {
			return true
		}
	}
	return false
}

// ZoomAt returns the depth scale (percent) at (x, y): the zoom of the topmost
// active, walkable, non-decoration region containing the point that sets
// one, else ScaleAt(y).
func (s *Scene) ZoomAt(x, y int) float64 {
	if s.mainLayer != nil {
		nodes := s.mainLayer.nodes
		for i := len(nodes) - 1; i >= 0; i-- {
			rn, ok := nodes[i].(*RegionNode)
			if !ok {
				continue
			}
			r := rn.Region
			if r.Active && !r.Blocked && !r.Decoration && r.Zoom != 0 && r.Contains(x, y) {
				return r.Zoom
			}
		}
	}
	return s.ScaleAt(y)
}

// AlphaAt returns the packed ARGB tint at (x, y): the alpha of the topmost
// active, walkable, non-decoration region containing the point, else opaque
// white. With colorCheck set and the scene in debug mode, blocked regions
// also stop the search and uncovered or blocked points report red.
func (s *Scene) AlphaAt(x, y int, colorCheck bool) uint32 {
	colorCheck = colorCheck && s.debug
	ret := AlphaOpaque
	if colorCheck {
		ret = AlphaDebugMiss
	}
	if s.mainLayer == nil {
		return ret
	}
	nodes := s.mainLayer.nodes
	for i := len(nodes) - 1; i >= 0; i-- {
		rn, ok := nodes[i].(*RegionNode)
		if !ok {
			continue
		}
		r := rn.Region
		if !r.Active || r.Decoration || (r.Blocked && !colorCheck) || !r.Contains(x, y) {
			continue
		}
		if !r.Blocked {
			ret = r.Alpha
		}
		break
	}
	return ret
}
