package adscene

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMultipleMainLayers is returned when a scene file declares more than
	// one main layer.
	ErrMultipleMainLayers = errors.New("adscene: more than one main layer")
	// ErrInvalidPoint is returned for a point that is not an [x, y] pair.
	ErrInvalidPoint = errors.New("adscene: point must be an [x, y] pair")
	// ErrInvalidNode is returned for a layer node that is not exactly one of
	// region or entity.
	ErrInvalidNode = errors.New("adscene: node must set exactly one of region or entity")
)

type sceneFile struct {
	Name           string          `yaml:"name"`
	Config         *configFile     `yaml:"config"`
	Viewport       *Rect           `yaml:"viewport"`
	Layers         []layerFile     `yaml:"layers"`
	Waypoints      []waypointFile  `yaml:"waypoints"`
	ScaleLevels    []ScaleLevel    `yaml:"scale_levels"`
	RotationLevels []RotationLevel `yaml:"rotation_levels"`
	Actors         []actorFile     `yaml:"actors"`
}

type configFile struct {
	AutoScroll     *bool `yaml:"auto_scroll"`
	Parallax       *bool `yaml:"parallax"`
	ScrollPixelsH  *int  `yaml:"scroll_pixels_h"`
	ScrollPixelsV  *int  `yaml:"scroll_pixels_v"`
	ScrollTimeHMs  *int  `yaml:"scroll_time_h_ms"`
	ScrollTimeVMs  *int  `yaml:"scroll_time_v_ms"`
	PathMaxTimeMs  *int  `yaml:"path_max_time_ms"`
	StartTolerance *int  `yaml:"start_tolerance"`
}

type layerFile struct {
	Name    string     `yaml:"name"`
	Width   int        `yaml:"width"`
	Height  int        `yaml:"height"`
	Active  *bool      `yaml:"active"`
	Main    bool       `yaml:"main"`
	CloseUp bool       `yaml:"close_up"`
	Nodes   []nodeFile `yaml:"nodes"`
}

type nodeFile struct {
	Region *regionFile `yaml:"region"`
	Entity *entityFile `yaml:"entity"`
}

type regionFile struct {
	Name       string  `yaml:"name"`
	Active     *bool   `yaml:"active"`
	Blocked    bool    `yaml:"blocked"`
	Decoration bool    `yaml:"decoration"`
	Alpha      *uint32 `yaml:"alpha"`
	Zoom       float64 `yaml:"zoom"`
	Points     [][]int `yaml:"points"`
}

type entityFile struct {
	Name   string    `yaml:"name"`
	X      int       `yaml:"x"`
	Y      int       `yaml:"y"`
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Color  []float64 `yaml:"color"`
	Active *bool     `yaml:"active"`
}

type waypointFile struct {
	Name   string  `yaml:"name"`
	Active *bool   `yaml:"active"`
	Points [][]int `yaml:"points"`
}

type actorFile struct {
	Name      string  `yaml:"name"`
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	Zoomable  *bool   `yaml:"zoomable"`
	Stick     string  `yaml:"stick"`
	Block     [][]int `yaml:"block"`
	Waypoints [][]int `yaml:"waypoints"`
	Global    bool    `yaml:"global"`
	Main      bool    `yaml:"main"`
}

// LoadScene reads a YAML scene description and builds the scene for game.
// Actors marked global are added to the game instead of the scene; the
// actor marked main becomes the game's main object.
//
// Malformed geometry that can still be loaded (regions with fewer than 3
// points, a scene without a main layer) only produces diagnostics.
func LoadScene(r io.Reader, game *Game) (*Scene, error) {
	var f sceneFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("adscene: decode scene: %w", err)
	}

	s := NewScene(f.Name, game)
	if f.Config != nil {
		f.Config.apply(&s.Config)
	}
	if f.Viewport != nil {
		vp := *f.Viewport
		s.Viewport = &vp
	}

	regions := make(map[string]*Region)
	for i, lf := range f.Layers {
		l, err := buildLayer(lf, regions)
		if err != nil {
			return nil, fmt.Errorf("adscene: layer %d (%s): %w", i, lf.Name, err)
		}
		if l.Main && s.mainLayer != nil {
			return nil, fmt.Errorf("adscene: layer %d (%s): %w", i, lf.Name, ErrMultipleMainLayers)
		}
		debugCheckRegions(l)
		s.AddLayer(l)
	}
	if s.mainLayer == nil {
		diagf("scene %q has no main layer; size is 0x0", s.Name)
		s.warnedNoMain = true
	}

	for _, wf := range f.Waypoints {
		pts, err := toPoints(wf.Points)
		if err != nil {
			return nil, fmt.Errorf("adscene: waypoint group %s: %w", wf.Name, err)
		}
		g := NewWaypointGroup(wf.Name, pts)
		g.Active = boolOr(wf.Active, true)
		s.AddWaypointGroup(g)
	}

	s.SetScaleLevels(f.ScaleLevels)
	s.SetRotationLevels(f.RotationLevels)

	for _, af := range f.Actors {
		a, err := buildActor(af, regions)
		if err != nil {
			return nil, fmt.Errorf("adscene: actor %s: %w", af.Name, err)
		}
		if af.Global {
			s.game.AddObject(a)
			a.scene = s
		} else {
			s.AddObject(a)
		}
		if af.Main {
			s.game.MainObject = a
		}
		a.updateBlockRegion()
	}

	return s, nil
}

func (c *configFile) apply(cfg *SceneConfig) {
	if c.AutoScroll != nil {
		cfg.AutoScroll = *c.AutoScroll
	}
	if c.Parallax != nil {
		cfg.Parallax = *c.Parallax
	}
	if c.ScrollPixelsH != nil {
		cfg.ScrollPixelsH = *c.ScrollPixelsH
	}
	if c.ScrollPixelsV != nil {
		cfg.ScrollPixelsV = *c.ScrollPixelsV
	}
	if c.ScrollTimeHMs != nil {
		cfg.ScrollTimeH = time.Duration(*c.ScrollTimeHMs) * time.Millisecond
	}
	if c.ScrollTimeVMs != nil {
		cfg.ScrollTimeV = time.Duration(*c.ScrollTimeVMs) * time.Millisecond
	}
	if c.PathMaxTimeMs != nil {
		cfg.PathMaxTime = time.Duration(*c.PathMaxTimeMs) * time.Millisecond
	}
	if c.StartTolerance != nil {
		cfg.StartTolerance = *c.StartTolerance
	}
}

func buildLayer(lf layerFile, regions map[string]*Region) (*Layer, error) {
	l := NewLayer(lf.Name, lf.Width, lf.Height)
	l.Active = boolOr(lf.Active, true)
	l.Main = lf.Main
	l.CloseUp = lf.CloseUp

	for i, nf := range lf.Nodes {
		switch {
		case nf.Region != nil && nf.Entity == nil:
			rf := nf.Region
			pts, err := toPoints(rf.Points)
			if err != nil {
				return nil, fmt.Errorf("node %d: region %s: %w", i, rf.Name, err)
			}
			r := NewRegion(rf.Name, pts)
			r.Active = boolOr(rf.Active, true)
			r.Blocked = rf.Blocked
			r.Decoration = rf.Decoration
			r.Zoom = rf.Zoom
			if rf.Alpha != nil {
				r.Alpha = *rf.Alpha
			}
			l.AddRegion(r)
			if _, dup := regions[r.Name]; !dup && r.Name != "" {
				regions[r.Name] = r
			}
		case nf.Entity != nil && nf.Region == nil:
			ef := nf.Entity
			e := NewStaticEntity(ef.Name, ef.X, ef.Y, ef.Width, ef.Height)
			e.Disabled = !boolOr(ef.Active, true)
			if len(ef.Color) > 0 {
				c, err := toColor(ef.Color)
				if err != nil {
					return nil, fmt.Errorf("node %d: entity %s: %w", i, ef.Name, err)
				}
				e.Color = c
			}
			l.AddEntity(e)
		default:
			return nil, fmt.Errorf("node %d: %w", i, ErrInvalidNode)
		}
	}
	return l, nil
}

func buildActor(af actorFile, regions map[string]*Region) (*Actor, error) {
	a := NewActor(af.Name, af.X, af.Y)
	if af.Width > 0 {
		a.W = af.Width
	}
	if af.Height > 0 {
		a.H = af.Height
	}
	if af.Speed > 0 {
		a.Speed = af.Speed
	}
	a.Zoomable = boolOr(af.Zoomable, true)

	if af.Stick != "" {
		r, ok := regions[af.Stick]
		if !ok {
			return nil, fmt.Errorf("unknown stick region %q", af.Stick)
		}
		a.Stick = r
	}
	if len(af.Block) > 0 {
		pts, err := toPoints(af.Block)
		if err != nil {
			return nil, fmt.Errorf("block: %w", err)
		}
		a.BlockTemplate = NewRegion(af.Name+" block template", pts)
	}
	if len(af.Waypoints) > 0 {
		pts, err := toPoints(af.Waypoints)
		if err != nil {
			return nil, fmt.Errorf("waypoints: %w", err)
		}
		a.WaypointTemplate = NewWaypointGroup(af.Name+" waypoint template", pts)
	}
	return a, nil
}

func toPoints(raw [][]int) ([]Point, error) {
	pts := make([]Point, 0, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d: %w", i, ErrInvalidPoint)
		}
		pts = append(pts, Point{X: p[0], Y: p[1]})
	}
	return pts, nil
}

func toColor(c []float64) (Color, error) {
	switch len(c) {
	case 3:
		return Color{R: c[0], G: c[1], B: c[2], A: 1}, nil
	case 4:
		return Color{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
	}
	return Color{}, fmt.Errorf("color must have 3 or 4 components, got %d", len(c))
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
