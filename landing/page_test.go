package landing

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/scrollfx"
	"github.com/phanxgames/scrollfx/sticker"
)

// neverLoads is a model source whose load never completes.
var neverLoads = sticker.ModelSourceFunc(func() (*sticker.Mesh, error) {
	select {}
})

func immediateConfig() Config {
	cfg := DefaultConfig()
	cfg.Scrub = 0
	cfg.Lerp = 0
	return cfg
}

func newTestPage(t *testing.T, w, h float64, cfg Config) *Page {
	t.Helper()
	scene := scrollfx.NewScene(w, h)
	p, err := NewPage(scene, cfg, WithModelSource(neverLoads))
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}
	return p
}

func TestMobilePageSkipsHeavyEffects(t *testing.T) {
	p := newTestPage(t, 500, 800, DefaultConfig())
	if !p.Mobile() {
		t.Fatal("width 500 should be mobile")
	}
	if p.Stage != nil {
		t.Error("mobile page should not build a sticker stage")
	}
	if p.Sequencer.Len() != 0 {
		t.Errorf("mobile Sequencer.Len() = %d, want 0", p.Sequencer.Len())
	}
	if _, ok := p.Scene.Scroller().(*scrollfx.DirectScroller); !ok {
		t.Errorf("mobile scroller = %T, want *scrollfx.DirectScroller", p.Scene.Scroller())
	}
	if p.Entrance.Len() != 2 {
		t.Errorf("Entrance.Len() = %d, want 2", p.Entrance.Len())
	}
	p.step(300, 1.0/60)
	if p.BodyProgress() != 0 {
		t.Errorf("BodyProgress on mobile = %f, want 0", p.BodyProgress())
	}
}

func TestDesktopPageBuildsSectionsAndStage(t *testing.T) {
	p := newTestPage(t, 1280, 800, DefaultConfig())
	if p.Mobile() {
		t.Fatal("width 1280 should not be mobile")
	}
	if p.Stage == nil {
		t.Fatal("desktop page should build a sticker stage")
	}
	if p.Sequencer.Len() != 3 {
		t.Errorf("Sequencer.Len() = %d, want 3", p.Sequencer.Len())
	}
	for _, name := range []string{SectionInfo, SectionLab, SectionBody} {
		if p.Sequencer.Section(name) == nil {
			t.Errorf("missing section %q", name)
		}
	}
	if _, ok := p.Scene.Scroller().(*scrollfx.SmoothScroller); !ok {
		t.Errorf("desktop scroller = %T, want *scrollfx.SmoothScroller", p.Scene.Scroller())
	}
}

func TestBackgroundOwnershipIsPartitioned(t *testing.T) {
	p := newTestPage(t, 1280, 800, DefaultConfig())
	hex2 := p.Scene.QueryOne(SelectorHex2)
	wrap := p.Scene.QueryOne(SelectorHex2Wrap)
	glowWrap := p.Scene.QueryOne(SelectorGlowWrap)

	if owner, _ := p.Sequencer.Owner(hex2, scrollfx.PropRotation); owner != SectionInfo {
		t.Errorf("hex-2 rotation owner = %q, want %q", owner, SectionInfo)
	}
	if owner, _ := p.Sequencer.Owner(wrap, scrollfx.PropRotation); owner != SectionLab {
		t.Errorf("hex-2-wrap rotation owner = %q, want %q", owner, SectionLab)
	}
	if owner, _ := p.Sequencer.Owner(glowWrap, scrollfx.PropAlpha); owner != SectionInfo {
		t.Errorf("glow wrap alpha owner = %q, want %q", owner, SectionInfo)
	}
	if _, ok := p.Sequencer.Owner(p.Scene.QueryOne(SelectorGlow), scrollfx.PropAlpha); ok {
		t.Error("glow alpha belongs to the entrance, not to a section")
	}
}

func TestMissingStickerContainerSkipsStage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sticker = false
	p := newTestPage(t, 1280, 800, cfg)
	if p.Stage != nil {
		t.Error("stage should be skipped without a sticker container")
	}
	if p.Sequencer.Len() != 3 {
		t.Errorf("Sequencer.Len() = %d, want 3", p.Sequencer.Len())
	}
	p.step(100, 1.0/60)
}

type snapshot struct {
	anchorX, x, rotation, scale, alpha float64
}

func snap(n *scrollfx.Node) snapshot {
	return snapshot{n.AnchorX, n.X, n.Rotation, n.ScaleX, n.Alpha}
}

func TestScrollRoundTripRestoresStart(t *testing.T) {
	p := newTestPage(t, 1280, 800, immediateConfig())
	nodes := p.Scene.QueryAll(SelectorHex1, SelectorHex2, SelectorHex3, SelectorHex4,
		SelectorHex2Wrap, SelectorHex4Wrap, SelectorGlowWrap)
	if len(nodes) != 7 {
		t.Fatalf("found %d background nodes, want 7", len(nodes))
	}

	p.step(0, 0)
	before := make([]snapshot, len(nodes))
	for i, n := range nodes {
		before[i] = snap(n)
	}

	end := p.Layout.MaxScroll(800)
	p.step(end, 0)
	if got := p.Scene.QueryOne(SelectorHex2).AnchorX; got != 0.5 {
		t.Errorf("hex-2 anchorX at the end = %f, want 0.5", got)
	}
	if got := p.Scene.QueryOne(SelectorHex2Wrap).X; math.Abs(got+13*12.8) > 1e-9 {
		t.Errorf("hex-2-wrap X at the end = %f, want %f", got, -13*12.8)
	}
	if p.BodyProgress() != 1 {
		t.Errorf("BodyProgress at max scroll = %f, want 1", p.BodyProgress())
	}

	p.step(-500, 0)
	for i, n := range nodes {
		if got := snap(n); got != before[i] {
			t.Errorf("%s after round trip = %+v, want %+v", n.Name, got, before[i])
		}
	}
}

func TestScrollIsIdempotent(t *testing.T) {
	p := newTestPage(t, 1280, 800, immediateConfig())
	hex4 := p.Scene.QueryOne(SelectorHex4)
	p.step(1000, 0)
	first := snap(hex4)
	p.step(2000, 0)
	p.step(1000, 0)
	if got := snap(hex4); got != first {
		t.Errorf("hex-4 at the same offset = %+v, want %+v", got, first)
	}
}

func TestEntranceRevealsGlowAndHeader(t *testing.T) {
	p := newTestPage(t, 1280, 800, DefaultConfig())
	glow := p.Scene.QueryOne(SelectorGlow)
	header := p.Scene.QueryOne(SelectorHeader)
	if glow.Alpha != 0 || header.Alpha != 0 {
		t.Fatalf("initial alphas glow=%f header=%f, want 0", glow.Alpha, header.Alpha)
	}

	p.step(0, 0.5)
	if header.Alpha != 0 {
		t.Errorf("header alpha before its 1s offset = %f, want 0", header.Alpha)
	}
	for i := 0; i < 60; i++ {
		p.step(0, 0.1)
	}
	if !p.Entrance.Done {
		t.Fatal("entrance should be done after 6.5s")
	}
	if glow.Alpha != 1 || glow.ScaleX != 1 {
		t.Errorf("glow alpha=%f scale=%f, want 1, 1", glow.Alpha, glow.ScaleX)
	}
	if header.Alpha != 1 || header.Y != 0 {
		t.Errorf("header alpha=%f y=%f, want 1, 0", header.Alpha, header.Y)
	}
}

func TestPageDrawsWithoutModel(t *testing.T) {
	p := newTestPage(t, 320, 200, DefaultConfig())
	p.step(50, 1.0/60)
	p.Scene.Draw(ebiten.NewImage(320, 200))

	d := newTestPage(t, 1280, 800, DefaultConfig())
	for i := 0; i < 120; i++ {
		d.step(float64(i)*10, 1.0/60)
	}
	d.Scene.Draw(ebiten.NewImage(128, 80))
	if d.Stage.Model() != nil {
		t.Error("model should stay unset when loading never completes")
	}
	if d.HUD() == "" {
		t.Error("HUD should report page state")
	}
}

func TestPageResizeUpdatesScrollLimit(t *testing.T) {
	p := newTestPage(t, 1280, 800, immediateConfig())
	p.Scene.SetViewport(1280, 1000)
	p.Scene.Scroller().ScrollTo(1e9)
	if got, want := p.Scene.Scroller().Update(0), p.Layout.MaxScroll(1000); got != want {
		t.Errorf("scroll offset clamped to %f, want %f", got, want)
	}
	if got := p.Stage.Camera().Viewport().Height; got != 1000 {
		t.Errorf("camera viewport height = %f, want 1000", got)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigIgnoresEnvironment(t *testing.T) {
	t.Setenv("SCROLLFX_WIDTH", "500")
	t.Setenv("SCROLLFX_DEBUG", "true")
	cfg := DefaultConfig()
	if cfg.Width != 1280 || cfg.Height != 800 {
		t.Errorf("size = %dx%d, want 1280x800", cfg.Width, cfg.Height)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
	if cfg.ModelPath != "assets/models/sticker.glb" || !cfg.Sticker || cfg.ExitAt != 0.85 {
		t.Errorf("sticker defaults = %q %v %v", cfg.ModelPath, cfg.Sticker, cfg.ExitAt)
	}
	if cfg.SmokeCount != 180 || cfg.SmokeSeed != 7 || cfg.ScreenshotScale != 1 {
		t.Errorf("smoke/screenshot defaults = %d %d %v", cfg.SmokeCount, cfg.SmokeSeed, cfg.ScreenshotScale)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SCROLLFX_WIDTH", "500")
	t.Setenv("SCROLLFX_STICKER", "false")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 500 || cfg.Sticker {
		t.Errorf("cfg = %+v, want width 500 and no sticker", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Setenv("SCROLLFX_LERP", "not-a-number")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadConfigRejectsExitThreshold(t *testing.T) {
	t.Setenv("SCROLLFX_EXIT_AT", "1.5")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for exit threshold above 1")
	}
}
