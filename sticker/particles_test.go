package sticker

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSmokeAtZeroProgressMatchesInitial(t *testing.T) {
	s := NewSmoke(DefaultSmokeConfig())
	s.Update(12.34, 0)
	for i := 0; i < s.Len(); i++ {
		if s.Position(i) != s.Initial(i) {
			t.Fatalf("particle %d at p=0 = %v, want initial %v", i, s.Position(i), s.Initial(i))
		}
	}
	if s.Opacity() != 0.15 {
		t.Errorf("Opacity at p=0 = %f, want 0.15", s.Opacity())
	}
}

func TestSmokeAtFullProgressFadesOut(t *testing.T) {
	s := NewSmoke(DefaultSmokeConfig())
	s.Update(3, 1)
	if s.Opacity() != 0 {
		t.Errorf("Opacity at p=1 = %f, want 0", s.Opacity())
	}
	cfg := DefaultSmokeConfig()
	for i := 0; i < s.Len(); i++ {
		if d := s.Position(i).Sub(cfg.Center).Len(); d > cfg.Jitter*math.Sqrt(2.25)+1e-9 {
			t.Fatalf("particle %d distance from center = %f, want within jitter", i, d)
		}
	}
}

func TestSmokeRoundTripRestoresInitial(t *testing.T) {
	s := NewSmoke(DefaultSmokeConfig())
	s.Update(1, 0)
	before := make([]mgl64.Vec3, s.Len())
	for i := range before {
		before[i] = s.Position(i)
	}
	s.Update(2, 1)
	s.Update(5, 0)
	for i := range before {
		if s.Position(i) != before[i] {
			t.Fatalf("particle %d after round trip = %v, want %v", i, s.Position(i), before[i])
		}
	}
	if s.Opacity() != 0.15 {
		t.Errorf("Opacity after round trip = %f, want 0.15", s.Opacity())
	}
}

func TestSmokeDeterministicForSeed(t *testing.T) {
	a := NewSmoke(DefaultSmokeConfig())
	b := NewSmoke(DefaultSmokeConfig())
	a.Update(4, 0.4)
	b.Update(4, 0.4)
	for i := 0; i < a.Len(); i++ {
		if a.Position(i) != b.Position(i) {
			t.Fatalf("particle %d differs between equal seeds", i)
		}
	}
}

func TestSmokeOpacityCurve(t *testing.T) {
	s := NewSmoke(DefaultSmokeConfig())
	cfg := DefaultSmokeConfig()
	if got := s.OpacityAt(cfg.PeakAt); math.Abs(got-cfg.PeakOpacity) > 1e-12 {
		t.Errorf("OpacityAt(peak) = %f, want %f", got, cfg.PeakOpacity)
	}
	if s.OpacityAt(-1) != cfg.BaseOpacity {
		t.Error("opacity below 0 should clamp to base")
	}
	if s.OpacityAt(2) != 0 {
		t.Error("opacity above 1 should clamp to 0")
	}
	prev := s.OpacityAt(cfg.PeakAt)
	for p := cfg.PeakAt + 0.05; p <= 1; p += 0.05 {
		cur := s.OpacityAt(p)
		if cur > prev {
			t.Errorf("opacity rose after the peak at p=%f", p)
		}
		prev = cur
	}
}

func TestConvergenceClamps(t *testing.T) {
	if Convergence(-0.5) != 1 || Convergence(0) != 1 {
		t.Error("Convergence at or below 0 should be 1")
	}
	if Convergence(1.5) != 0 {
		t.Error("Convergence above 1 should be 0")
	}
}

func TestProceduralSmokeTexture(t *testing.T) {
	img := ProceduralSmokeTexture(32)
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Fatalf("bounds = %v, want 32x32", img.Bounds())
	}
	_, _, _, center := img.At(16, 16).RGBA()
	_, _, _, corner := img.At(0, 0).RGBA()
	if center == 0 || corner != 0 {
		t.Errorf("alpha center=%d corner=%d, want opaque center and clear corner", center, corner)
	}
}

func TestLoadSmokeTextureMissing(t *testing.T) {
	if _, err := LoadSmokeTexture("does/not/exist.png"); err == nil {
		t.Error("expected error for missing file")
	}
}
