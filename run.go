package scrollfx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// ShowFPS draws the FPS/TPS/scroll overlay.
	ShowFPS bool
	// HUD appends extra overlay lines when ShowFPS is set.
	HUD func() string
}

// gameShell adapts a Scene to ebiten.Game. Layout reports the outside size
// unchanged and resizes the scene viewport to match.
type gameShell struct {
	scene *Scene
}

func (g *gameShell) Update() error {
	return g.scene.Update()
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *gameShell) Layout(outsideW, outsideH int) (int, int) {
	g.scene.SetViewport(float64(outsideW), float64(outsideH))
	return outsideW, outsideH
}

// Run opens a window and drives scene until the window closes or the scene's
// update callback returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = int(scene.viewport.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(scene.viewport.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.ShowFPS {
		scene.ShowHUD(cfg.HUD)
	}
	return ebiten.RunGame(&gameShell{scene: scene})
}
