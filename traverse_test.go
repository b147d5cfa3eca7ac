package adscene

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkLog(t *testing.T, got, want []string) {
	t.Helper()
	assert.Equal(t, want, got, "traversal order")
}

func TestTraverse_FreeObjectsSortedStable(t *testing.T) {
	s, _ := newFloorScene(100, 100)
	var log []string
	s.AddObject(&testObject{name: "A", pos: Point{0, 50}, log: &log})
	s.AddObject(&testObject{name: "B", pos: Point{0, 50}, log: &log})
	s.AddObject(&testObject{name: "C", pos: Point{0, 10}, log: &log})

	s.Draw(nil)
	checkLog(t, log, []string{"C", "A", "B"})

	log = log[:0]
	s.Draw(nil)
	checkLog(t, log, []string{"C", "A", "B"})
}

func TestTraverse_GlobalBeforeSceneAtEqualY(t *testing.T) {
	s, _ := newFloorScene(100, 100)
	var log []string
	s.AddObject(&testObject{name: "local", pos: Point{0, 50}, log: &log})
	s.Game().AddObject(&testObject{name: "global", pos: Point{0, 50}, log: &log})

	s.Draw(nil)
	checkLog(t, log, []string{"global", "local"})
}

func TestTraverse_StickRegionOrder(t *testing.T) {
	s, l := newTestScene(100, 100)
	var log []string
	l.AddEntity(&testEntity{name: "E1", log: &log})
	stage := l.AddRegion(NewRegion("stage", box(0, 0, 99, 99))).Region
	l.AddEntity(&testEntity{name: "E2", log: &log})

	s.AddObject(&testObject{name: "free", pos: Point{0, 0}, log: &log})
	s.AddObject(&testObject{name: "stuck", pos: Point{0, 90}, stick: stage, log: &log})

	s.Draw(nil)
	checkLog(t, log, []string{"E1", "stuck", "E2", "free"})
}

func TestTraverse_BlockedStickRegionFallsToFreePass(t *testing.T) {
	s, l := newTestScene(100, 100)
	var log []string
	wall := l.AddRegion(blockedRegion("wall", box(0, 0, 99, 99))).Region
	l.AddEntity(&testEntity{name: "E", log: &log})

	s.AddObject(&testObject{name: "stuck", pos: Point{0, 10}, stick: wall, log: &log})
	s.AddObject(&testObject{name: "free", pos: Point{0, 50}, log: &log})

	s.Draw(nil)
	checkLog(t, log, []string{"E", "stuck", "free"})
}

func TestTraverse_InactiveSkipped(t *testing.T) {
	s, l := newFloorScene(100, 100)
	var log []string
	l.AddEntity(&testEntity{name: "off", disabled: true, log: &log})
	s.AddObject(&testObject{name: "gone", inactive: true, log: &log})

	hidden := NewLayer("hidden", 100, 100)
	hidden.Active = false
	hidden.AddEntity(&testEntity{name: "hidden", log: &log})
	s.AddLayer(hidden)

	s.Draw(nil)
	s.UpdateDelta(0)
	assert.Empty(t, log)
}

func TestTraverse_UpdateOrder(t *testing.T) {
	s, l := newFloorScene(100, 100)
	var log []string
	l.AddEntity(&testEntity{name: "E", log: &log})
	s.AddObject(&testObject{name: "local", log: &log})
	s.Game().AddObject(&testObject{name: "global", log: &log})

	fg := NewLayer("fg", 100, 100)
	fg.AddEntity(&testEntity{name: "F", log: &log})
	s.AddLayer(fg)

	s.UpdateDelta(0)
	checkLog(t, log, []string{"update:E", "update:global", "update:local", "update:F"})
}

func TestTraverse_NoMainLayer(t *testing.T) {
	var buf bytes.Buffer
	SetDiagnosticOutput(&buf)
	defer SetDiagnosticOutput(nil)

	s := NewScene("bare", NewGame(100, 100))
	var log []string
	bg := NewLayer("bg", 100, 100)
	bg.AddEntity(&testEntity{name: "E", log: &log})
	s.AddLayer(bg)
	s.AddObject(&testObject{name: "O", log: &log})

	s.Draw(nil)
	s.Draw(nil)
	checkLog(t, log, []string{"E", "O", "E", "O"})
	assert.Equal(t, 1, strings.Count(buf.String(), "no main layer"), "no-main-layer warning count")
}

func TestTraverse_3DGating(t *testing.T) {
	s, l := newFloorScene(100, 100)
	var log []string
	l.AddEntity(&testEntity{name: "flat", log: &log})
	l.AddEntity(&testEntity{name: "deep", threeD: true, log: &log})
	obj := &testObject{name: "actor3d", threeD: true, log: &log}
	s.AddObject(obj)

	s.Draw(nil)
	checkLog(t, log, []string{"flat"})
	assert.True(t, s.drawn[obj], "3D object should be marked drawn even when not displayed")

	log = log[:0]
	s.Geometry = flatGeometry{}
	s.Draw(nil)
	checkLog(t, log, []string{"flat", "deep", "actor3d"})
}

func TestTraverse_CloseUp(t *testing.T) {
	s, _ := newFloorScene(100, 100)
	cu := NewLayer("inventory", 100, 100)
	cu.CloseUp = true
	s.AddLayer(cu)

	s.UpdateDelta(0)
	assert.False(t, s.CloseUpActive(), "update pass should not set CloseUpActive")
	s.Draw(nil)
	assert.True(t, s.CloseUpActive(), "CloseUpActive should be set after drawing a close-up layer")

	cu.Active = false
	s.Draw(nil)
	assert.False(t, s.CloseUpActive(), "CloseUpActive should clear when no close-up layer is drawn")
}

type bogusNode struct{}

func (bogusNode) sceneNode() {}

func TestTraverse_UnknownNodePanics(t *testing.T) {
	s, l := newFloorScene(100, 100)
	l.InsertNode(bogusNode{}, 0)

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic for an unknown node type")
		msg, _ := r.(string)
		assert.Contains(t, msg, "unknown scene node type")
	}()
	s.Draw(nil)
}

// viewportRecorder records the game's active viewport while displayed.
type viewportRecorder struct {
	game *Game
	seen Rect
}

func (v *viewportRecorder) Name() string     { return "viewport" }
func (v *viewportRecorder) Active() bool     { return true }
func (v *viewportRecorder) Update()          {}
func (v *viewportRecorder) Display(f *Frame) { v.seen = v.game.ActiveViewport() }

func TestTraverse_ViewportAndOffsetRestored(t *testing.T) {
	s, l := newFloorScene(1000, 100)
	s.Game().ScreenWidth = 200
	vp := &Rect{X: 5, Y: 5, Width: 150, Height: 80}
	s.Game().SceneViewport = vp
	rec := &viewportRecorder{game: s.Game()}
	l.AddEntity(rec)

	s.Game().SetOffset(7, 8)
	s.Draw(nil)

	assert.Equal(t, *vp, rec.seen, "viewport during display")
	assert.Equal(t, Rect{Width: 200, Height: 100}, s.Game().ActiveViewport(), "viewport after traversal")
	x, y := s.Game().Offset()
	assert.Equal(t, Point{7, 8}, Point{x, y}, "offset after traversal")
}

func TestTraverse_LayerOffsets(t *testing.T) {
	newScene := func() (*Scene, *testEntity, *testEntity) {
		s := NewScene("p", NewGame(200, 100))
		bg := NewLayer("bg", 600, 100)
		bgEnt := &testEntity{name: "bg"}
		bg.AddEntity(bgEnt)
		s.AddLayer(bg)

		main := NewLayer("main", 1000, 100)
		main.Main = true
		mainEnt := &testEntity{name: "main"}
		main.AddEntity(mainEnt)
		s.AddLayer(main)

		s.SkipTo(500, 50)
		return s, bgEnt, mainEnt
	}

	tests := []struct {
		name           string
		parallax       bool
		viewport       *Rect
		wantBg, wantMn int
	}{
		{"flat", false, nil, 400, 400},
		{"parallax", true, nil, 200, 400},
		{"parallax in viewport", true, &Rect{X: 20, Width: 200, Height: 100}, 180, 380},
		{"flat in viewport", false, &Rect{X: 20, Width: 200, Height: 100}, 380, 380},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, bgEnt, mainEnt := newScene()
			s.Config.Parallax = tt.parallax
			s.Viewport = tt.viewport
			s.Draw(nil)
			assert.Equal(t, tt.wantBg, bgEnt.lastOffX, "bg offset")
			assert.Equal(t, tt.wantMn, mainEnt.lastOffX, "main offset")
			assert.Zero(t, bgEnt.lastOffY)
			assert.Zero(t, mainEnt.lastOffY)
		})
	}
}
