package adscene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	debugWalkable   = color.NRGBA{0, 200, 0, 200}
	debugBlocked    = color.NRGBA{220, 0, 0, 200}
	debugDecoration = color.NRGBA{120, 120, 120, 160}
	debugWaypoint   = color.NRGBA{0, 160, 255, 255}
	debugPath       = color.NRGBA{255, 220, 0, 255}
)

// DrawDebugOverlay outlines the main layer regions, marks waypoints and
// draws the routes of walking actors, all at the current camera offset.
func DrawDebugOverlay(screen *ebiten.Image, s *Scene) {
	vp := s.viewportRect()
	ox := s.scroll.offsetLeft - vp.X
	oy := s.scroll.offsetTop - vp.Y
	f := &Frame{Target: screen, OffsetX: ox, OffsetY: oy, Viewport: vp, Scene: s}

	if s.mainLayer != nil {
		for _, n := range s.mainLayer.nodes {
			rn, ok := n.(*RegionNode)
			if !ok || !rn.Region.Active {
				continue
			}
			r := rn.Region
			c := debugWalkable
			switch {
			case r.Decoration:
				c = debugDecoration
			case r.Blocked:
				c = debugBlocked
			}
			strokePolygon(f, r.points, c)
			if r.Name != "" {
				x, y := f.ScreenPos(r.bounds.X, r.bounds.Y)
				ebitenutil.DebugPrintAt(screen, r.Name, int(x)+2, int(y)+2)
			}
		}
	}

	for _, g := range s.waypointGroups {
		if g.Active {
			drawWaypoints(f, g.points)
		}
	}

	for _, objs := range [][]Movable{s.game.objects, s.objects} {
		for _, o := range objs {
			if !o.Active() {
				continue
			}
			if br := o.BlockRegion(); br != nil {
				strokePolygon(f, br.points, debugBlocked)
			}
			if g := o.WaypointGroup(); g != nil && g.Active {
				drawWaypoints(f, g.points)
			}
			if a, ok := o.(*Actor); ok && a.state == ActorFollowing {
				drawPath(f, a.Position(), a.path)
			}
		}
	}
}

func strokePolygon(f *Frame, pts []Point, c color.Color) {
	if len(pts) < 2 {
		return
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		x0, y0 := f.ScreenPos(a.X, a.Y)
		x1, y1 := f.ScreenPos(b.X, b.Y)
		vector.StrokeLine(f.Target, x0, y0, x1, y1, 1, c, false)
	}
}

func drawWaypoints(f *Frame, pts []Point) {
	for _, p := range pts {
		x, y := f.ScreenPos(p.X, p.Y)
		vector.DrawFilledCircle(f.Target, x, y, 3, debugWaypoint, false)
	}
}

// drawPath draws the remaining route from the actor's position.
func drawPath(f *Frame, from Point, p *Path) {
	x0, y0 := f.ScreenPos(from.X, from.Y)
	for _, pt := range p.points[p.cursor:] {
		x1, y1 := f.ScreenPos(pt.X, pt.Y)
		vector.StrokeLine(f.Target, x0, y0, x1, y1, 2, debugPath, false)
		x0, y0 = x1, y1
	}
}
