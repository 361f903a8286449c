package stage

import "chosenoffset.com/footlights/internal/render"

// Portrait is a Sprite backed by a single image, drawn with its bottom edge
// centred on the character's position.
type Portrait struct {
	img    render.Image
	tint   uint32
	tinted bool
	blend  render.Blend
}

// NewPortrait wraps img. The image stays owned by the caller.
func NewPortrait(img render.Image) *Portrait {
	return &Portrait{img: img}
}

// SetTint multiplies the portrait's colours by rgb.
func (p *Portrait) SetTint(rgb uint32) {
	p.tint = rgb
	p.tinted = true
}

// ClearTint removes any tint.
func (p *Portrait) ClearTint() {
	p.tint = 0
	p.tinted = false
}

// Tint returns the current tint and whether one is set.
func (p *Portrait) Tint() (uint32, bool) {
	return p.tint, p.tinted
}

// SetBlendMode sets how the portrait is composited.
func (p *Portrait) SetBlendMode(b render.Blend) {
	p.blend = b
}

// BlendMode returns the current blend mode.
func (p *Portrait) BlendMode() render.Blend {
	return p.blend
}

// Draw renders the portrait onto dst.
func (p *Portrait) Draw(dst render.Image, x, y, alpha float64) {
	if p.img == nil {
		return
	}
	w, h := p.img.Size()

	tint := uint32(0xffffff)
	if p.tinted {
		tint = p.tint
	}
	cs := render.TintScale(tint, alpha)

	opts := &render.DrawImageOptions{
		ColorScale: &cs,
		Blend:      p.blend,
	}
	opts.GeoM = render.NewGeoM()
	opts.GeoM.Translate(x-float64(w)/2, y-float64(h))
	dst.DrawImage(p.img, opts)
}
