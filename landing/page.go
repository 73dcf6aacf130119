package landing

import (
	"fmt"
	"os"

	"github.com/phanxgames/scrollfx"
	"github.com/phanxgames/scrollfx/sticker"
)

// pointerGain scales the cursor offset from the viewport center into the
// tilt input of the sticker's idle level.
const pointerGain = 0.0005

// Option customizes NewPage.
type Option func(*pageOptions)

type pageOptions struct {
	source sticker.ModelSource
	sink   sticker.EventSink
}

// WithModelSource replaces the GLB file named by Config.ModelPath.
func WithModelSource(src sticker.ModelSource) Option {
	return func(o *pageOptions) { o.source = src }
}

// WithEventSink receives sticker phase transitions.
func WithEventSink(sink sticker.EventSink) Option {
	return func(o *pageOptions) { o.sink = sink }
}

// Page wires the landing page onto a scene: markup, scrolling, the entrance,
// the background sections and the sticker stage.
type Page struct {
	Scene     *scrollfx.Scene
	Config    Config
	Layout    *scrollfx.Layout
	Elements  *Elements
	Sequencer *scrollfx.Sequencer
	Entrance  *scrollfx.Sequence
	// Stage is nil on mobile viewports and when the page has no sticker
	// container.
	Stage *sticker.Stage

	body   *scrollfx.Section
	mobile bool
}

// NewPage builds the page for the scene's current viewport. Below
// cfg.MobileBreakpoint it builds only the markup and the entrance: scrolling
// is immediate, and neither background sections nor the sticker stage
// exist. The mobile decision is made once, here.
func NewPage(scene *scrollfx.Scene, cfg Config, opts ...Option) (*Page, error) {
	var o pageOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil && cfg.ModelPath != "" {
		o.source = sticker.GLBFile{Path: cfg.ModelPath}
	}

	vp := scene.Viewport()
	p := &Page{
		Scene:  scene,
		Config: cfg,
		Layout: NewLayout(),
		mobile: vp.IsMobile(cfg.MobileBreakpoint),
	}
	scene.ClearColor = colorBackground
	p.Elements = BuildElements(scene.Root(), vp, cfg.Sticker)
	p.Sequencer = scrollfx.NewSequencer(p.Layout)
	p.Entrance = newEntrance(scene)

	if !p.mobile {
		scene.SetScroller(scrollfx.NewSmoothScroller(cfg.Lerp))
		for _, s := range backgroundSections(scene, cfg.Scrub) {
			if err := p.Sequencer.Add(s); err != nil {
				return nil, fmt.Errorf("new page: %w", err)
			}
		}
		p.body = bodySection(cfg.Scrub)
		if err := p.Sequencer.Add(p.body); err != nil {
			return nil, fmt.Errorf("new page: %w", err)
		}
		if scene.QueryOne(SelectorSticker) != nil {
			p.Stage = sticker.NewStage(p.stageConfig(o), vp)
			scene.OnLayer(LayerContent, p.Stage.Draw)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "[scrollfx] landing: no %s, sticker skipped\n", SelectorSticker)
		}
	}
	scene.Scroller().SetLimit(p.Layout.MaxScroll(vp.Height))

	scene.OnResize(p.resize)
	scene.SetUpdateFunc(p.update)
	return p, nil
}

func (p *Page) stageConfig(o pageOptions) sticker.StageConfig {
	exit := sticker.DefaultExitMotion()
	exit.Start = p.Config.ExitAt
	smoke := sticker.DefaultSmokeConfig()
	smoke.Count = p.Config.SmokeCount
	smoke.Seed = p.Config.SmokeSeed
	return sticker.StageConfig{
		Source:       o.source,
		Exit:         &exit,
		Smoke:        &smoke,
		SmokeTexture: p.Config.SmokeTexture,
		Sink:         o.sink,
	}
}

// Mobile reports whether the page was built for a mobile viewport.
func (p *Page) Mobile() bool {
	return p.mobile
}

// BodyProgress returns the scrubbed progress through the whole page, or 0
// on mobile.
func (p *Page) BodyProgress() float64 {
	if p.body == nil {
		return 0
	}
	return p.body.Progress()
}

func (p *Page) resize(vp scrollfx.Viewport) {
	p.Elements.Resize(vp, p.Layout)
	p.Scene.Scroller().SetLimit(p.Layout.MaxScroll(vp.Height))
	if p.Stage != nil {
		p.Stage.Resize(vp)
	}
}

// update runs once per frame after the scroll offset has been advanced.
func (p *Page) update() error {
	p.step(p.Scene.ScrollY(), scrollfx.FrameTime())
	return nil
}

// step advances the page to scroll offset scrollY after dt seconds.
func (p *Page) step(scrollY, dt float64) {
	vp := p.Scene.Viewport()

	p.Entrance.Update(float32(dt))
	p.Elements.ScrollTo(scrollY)
	p.Sequencer.Update(scrollY, vp.Height, dt)

	if p.Stage != nil {
		p.Stage.Update(sticker.FrameContext{
			Dt:       dt,
			Progress: p.body.Progress(),
			Pointer:  p.Scene.PointerOffset(pointerGain),
		})
	}
}

// HUD returns the debug overlay lines for the page.
func (p *Page) HUD() string {
	s := fmt.Sprintf("body: %.3f", p.BodyProgress())
	if p.Stage != nil {
		s += "\nsticker: " + p.Stage.Phase().Name()
	}
	return s
}

// Dispose tears down the sections and the stage.
func (p *Page) Dispose() {
	p.Sequencer.Dispose()
	if p.Stage != nil {
		p.Stage.Dispose()
	}
}
