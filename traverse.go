package adscene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Traverse runs one update (doUpdate) or display pass over the scene graph.
//
// Layers are visited in order, nodes within a layer in order. Entity nodes
// are updated or displayed. On display, each walkable region draws the
// objects stuck to it sorted by Y, and the main layer draws the remaining
// free objects sorted by Y. On update, the main layer updates every active
// object and aims the camera at the game's main object. The fader runs last.
//
// f may be nil on update passes.
func (s *Scene) Traverse(doUpdate bool, f *Frame) {
	if f == nil {
		f = &Frame{}
	}
	f.Scene = s

	pushed := true
	switch {
	case s.Viewport != nil:
		s.game.PushViewport(s.Viewport)
	case s.game.SceneViewport != nil:
		s.game.PushViewport(s.game.SceneViewport)
	default:
		pushed = false
	}

	if doUpdate {
		s.updateScroll()
	} else {
		s.closeUpActive = false
	}
	clear(s.drawn)

	if s.mainLayer == nil && !s.warnedNoMain {
		diagf("scene %q has no main layer; size is 0x0", s.Name)
		s.warnedNoMain = true
	}

	vp := s.viewportRect()
	f.Viewport = vp
	widthRatio := scrollRatio(s.scroll.offsetLeft, s.Width()-vp.Width)
	heightRatio := scrollRatio(s.scroll.offsetTop, s.Height()-vp.Height)

	origX, origY := s.game.Offset()
	setOffset := func(x, y int) {
		s.game.SetOffset(x, y)
		f.OffsetX, f.OffsetY = x, y
	}

	freeDone := false
	for _, l := range s.layers {
		if !l.Active {
			continue
		}

		if !doUpdate && l.CloseUp {
			s.drawShield(f)
			s.closeUpActive = true
		}

		if s.Config.Parallax {
			setOffset(
				int(widthRatio*float64(l.Width-vp.Width)-float64(vp.X)),
				int(heightRatio*float64(l.Height-vp.Height)-float64(vp.Y)),
			)
		} else {
			setOffset(s.scroll.offsetLeft-vp.X, s.scroll.offsetTop-vp.Y)
		}

		for _, node := range l.nodes {
			switch n := node.(type) {
			case *EntityNode:
				e := n.Entity
				if !e.Active() || (is3D(e) && s.Geometry == nil) {
					continue
				}
				if doUpdate {
					e.Update()
				} else {
					e.Display(f)
				}
			case *RegionNode:
				r := n.Region
				if !r.Active || r.Blocked || r.Decoration {
					continue
				}
				if !doUpdate {
					s.displayRegionContent(r, f)
				}
			default:
				panic(fmt.Sprintf("adscene: unknown scene node type %T", node))
			}
		}

		if l == s.mainLayer {
			s.freeObjectsPass(doUpdate, f)
			freeDone = true
		}
	}

	if !freeDone {
		setOffset(s.scroll.offsetLeft-vp.X, s.scroll.offsetTop-vp.Y)
		s.freeObjectsPass(doUpdate, f)
	}

	setOffset(origX, origY)

	if doUpdate {
		s.fader.Update(s.dt)
	} else {
		s.fader.Display(f)
	}

	if pushed {
		s.game.PopViewport()
	}
}

func scrollRatio(offset, scrollable int) float64 {
	if scrollable <= 0 {
		return 0
	}
	return float64(offset) / float64(scrollable)
}

func (s *Scene) freeObjectsPass(doUpdate bool, f *Frame) {
	if !doUpdate {
		s.displayRegionContent(nil, f)
		return
	}
	for _, objs := range [][]Movable{s.game.objects, s.objects} {
		for _, o := range objs {
			if o.Active() {
				o.Update()
			}
		}
	}
	if s.Config.AutoScroll && s.game.MainObject != nil {
		s.ScrollToObject(s.game.MainObject)
	}
}

// displayRegionContent draws the not yet drawn objects stuck to region, or
// every not yet drawn object when region is nil, in ascending Y order.
// Global objects come before scene objects at equal Y.
func (s *Scene) displayRegionContent(region *Region, f *Frame) {
	objs := s.sortBuf[:0]
	for _, list := range [][]Movable{s.game.objects, s.objects} {
		for _, o := range list {
			if !o.Active() || s.drawn[o] {
				continue
			}
			if region == nil || o.StickRegion() == region {
				objs = append(objs, o)
			}
		}
	}
	sortByY(objs)

	for i, o := range objs {
		s.drawn[o] = true
		if !o.Is3D() || s.Geometry != nil {
			o.Display(f)
		}
		objs[i] = nil
	}
	s.sortBuf = objs[:0]
}

// drawShield covers the viewport with ShieldColor before a close-up layer.
func (s *Scene) drawShield(f *Frame) {
	if f.Target == nil || s.ShieldColor.A <= 0 {
		return
	}
	vp := f.Viewport
	vector.DrawFilledRect(f.Target, float32(vp.X), float32(vp.Y),
		float32(vp.Width), float32(vp.Height), s.ShieldColor.NRGBA(), false)
}
