package scrollfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudRefresh is how often the HUD text is rebuilt, in seconds.
const hudRefresh = 0.5

// hudState caches the HUD text and its backdrop image.
type hudState struct {
	extra   func() string
	img     *ebiten.Image
	elapsed float64
	text    string
}

// ShowHUD enables an overlay in the top-left corner with FPS, TPS and the
// scroll offset. extra, when non-nil, appends caller-provided lines.
// The text is refreshed every ~0.5 seconds.
func (s *Scene) ShowHUD(extra func() string) {
	s.hud = &hudState{extra: extra, elapsed: hudRefresh}
}

// HideHUD removes the overlay.
func (s *Scene) HideHUD() {
	if s.hud != nil && s.hud.img != nil {
		s.hud.img.Deallocate()
	}
	s.hud = nil
}

// drawHUD refreshes the HUD text when due and draws it on top of the frame.
func (s *Scene) drawHUD(screen *ebiten.Image) {
	h := s.hud
	h.elapsed += FrameTime()
	if h.elapsed >= hudRefresh {
		h.elapsed = 0
		h.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nscroll: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS(), s.scrollY)
		if h.extra != nil {
			if more := h.extra(); more != "" {
				h.text += "\n" + more
			}
		}
		if h.img == nil {
			// 160x96 fits the base lines plus a few extra.
			h.img = ebiten.NewImage(160, 96)
		}
		h.img.Clear()
		// Semi-transparent background for readability
		h.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(h.img, h.text)
	}
	if h.img != nil {
		screen.DrawImage(h.img, nil)
	}
}
