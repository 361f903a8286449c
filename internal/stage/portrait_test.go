package stage

import (
	"image"
	"image/color"
	"testing"

	"chosenoffset.com/footlights/internal/render"
)

type fakeGeoM struct {
	tx, ty float64
}

func (g *fakeGeoM) Translate(tx, ty float64) { g.tx += tx; g.ty += ty }

type fakeImage struct {
	w, h  int
	draws []*render.DrawImageOptions
}

func (i *fakeImage) Bounds() image.Rectangle   { return image.Rect(0, 0, i.w, i.h) }
func (i *fakeImage) Size() (int, int)          { return i.w, i.h }
func (i *fakeImage) Fill(clr color.Color)      {}
func (i *fakeImage) Clear()                    {}
func (i *fakeImage) Dispose()                  {}
func (i *fakeImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	i.draws = append(i.draws, opts)
}

func useFakeGeoM(t *testing.T) {
	t.Helper()
	prev := render.NewGeoM
	render.NewGeoM = func() render.GeoM { return &fakeGeoM{} }
	t.Cleanup(func() { render.NewGeoM = prev })
}

func TestPortraitDrawAnchorsBottomCentre(t *testing.T) {
	useFakeGeoM(t)
	screen := &fakeImage{w: 1280, h: 720}
	p := NewPortrait(&fakeImage{w: 200, h: 400})
	p.SetBlendMode(render.BlendDarken)
	p.SetTint(DimTint)

	p.Draw(screen, 640, 700, 0.5)

	if len(screen.draws) != 1 {
		t.Fatalf("Expected 1 draw, got %d", len(screen.draws))
	}
	opts := screen.draws[0]
	geo := opts.GeoM.(*fakeGeoM)
	if geo.tx != 540 || geo.ty != 300 {
		t.Errorf("Expected translation (540, 300), got (%v, %v)", geo.tx, geo.ty)
	}
	if opts.Blend != render.BlendDarken {
		t.Errorf("Expected darken blend, got %v", opts.Blend)
	}
	want := render.TintScale(DimTint, 0.5)
	if opts.ColorScale == nil || *opts.ColorScale != want {
		t.Errorf("Expected colour scale %+v, got %+v", want, opts.ColorScale)
	}
}

func TestPortraitClearTintDrawsUntinted(t *testing.T) {
	useFakeGeoM(t)
	screen := &fakeImage{w: 100, h: 100}
	p := NewPortrait(&fakeImage{w: 10, h: 10})
	p.SetTint(DimTint)
	p.ClearTint()

	if _, ok := p.Tint(); ok {
		t.Fatal("Expected no tint after ClearTint")
	}
	p.Draw(screen, 50, 50, 1)
	cs := screen.draws[0].ColorScale
	if cs.R != 1 || cs.G != 1 || cs.B != 1 || cs.A != 1 {
		t.Errorf("Expected identity colour scale, got %+v", *cs)
	}
}

func TestPortraitWithoutImageDrawsNothing(t *testing.T) {
	screen := &fakeImage{w: 100, h: 100}
	NewPortrait(nil).Draw(screen, 0, 0, 1)
	if len(screen.draws) != 0 {
		t.Errorf("Expected no draws, got %d", len(screen.draws))
	}
}

func TestCharacterWithPortrait(t *testing.T) {
	scene := &fakeScene{width: 800}
	p := NewPortrait(&fakeImage{w: 10, h: 10})
	c := New(scene, p, "Alice", 0, 0, 0)

	if tint, ok := p.Tint(); !ok || tint != DimTint {
		t.Errorf("Expected new character's portrait dimmed, got %#x (ok=%v)", tint, ok)
	}
	if p.BlendMode() != render.BlendDarken {
		t.Errorf("Expected darken blend, got %v", p.BlendMode())
	}
	c.Focus()
	if _, ok := p.Tint(); ok {
		t.Error("Expected focus to clear the portrait tint")
	}
}
