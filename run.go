package adscene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Background fills the screen before the scene is drawn.
	Background Color
	// ShowFPS prints FPS and TPS in the top-left corner.
	ShowFPS bool
	// DebugOverlay draws regions, waypoints and paths over the scene.
	DebugOverlay bool
	// OnUpdate, if set, is called before every scene update. A non-nil error
	// ends the loop and is returned by Run.
	OnUpdate func() error
	// OnDraw, if set, is called after the scene and overlays are drawn.
	OnDraw func(screen *ebiten.Image)
}

// Run opens a window and drives scene until the window is closed. The
// game's screen size is taken from cfg when unset.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("adscene: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	g := scene.Game()
	if g.ScreenWidth == 0 && g.ScreenHeight == 0 {
		g.ScreenWidth, g.ScreenHeight = cfg.Width, cfg.Height
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&gameShell{scene: scene, cfg: cfg})
}

// gameShell implements ebiten.Game for Run.
type gameShell struct {
	scene *Scene
	cfg   RunConfig
}

func (g *gameShell) Update() error {
	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(); err != nil {
			return err
		}
	}
	g.scene.Update()
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	if g.cfg.Background.A > 0 {
		screen.Fill(g.cfg.Background.NRGBA())
	}
	g.scene.Draw(screen)
	if g.cfg.DebugOverlay {
		DrawDebugOverlay(screen, g.scene)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(screen)
	}
}

func (g *gameShell) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
