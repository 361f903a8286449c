// Package stage models the characters standing on a visual-novel stage:
// who is present, who is speaking, and where each of them stands.
//
// Every operation runs synchronously on the game loop. Animations are handed
// to the scene and never awaited.
package stage

import (
	"time"

	"github.com/tanema/gween/ease"

	"chosenoffset.com/footlights/internal/render"
	"chosenoffset.com/footlights/internal/tween"
)

const (
	// DimTint is applied to characters who are not speaking.
	DimTint uint32 = 0xbababa

	// FadeDuration is the length of the entry and exit fades.
	FadeDuration = 250 * time.Millisecond

	// MoveDuration is how long a character takes to walk to a new slot.
	MoveDuration = 500 * time.Millisecond
)

// Log is the scene's ordered dialogue buffer.
type Log interface {
	Push(line string)
}

// Scene is what a character needs from the scene hosting it.
type Scene interface {
	// Width is the horizontal extent used for slot layout.
	Width() float64
	// Play starts an animation and returns immediately.
	Play(t *tween.Tween)
	// Script returns the dialogue log that Say appends to.
	Script() Log
}

// Sprite is the display object a character wears. The hosting scene owns it;
// a character only changes its tint and blend mode.
type Sprite interface {
	SetTint(rgb uint32)
	ClearTint()
	SetBlendMode(b render.Blend)
	Draw(dst render.Image, x, y, alpha float64)
}

// Character is one person on stage.
type Character struct {
	scene  Scene
	sprite Sprite
	name   string
	index  int

	visible bool
	focused bool

	x, y  float64
	alpha float64

	fadeIn  *tween.Tween
	fadeOut *tween.Tween
	move    *tween.Tween

	hasTarget bool
}

// New places a character in scene at (x, y). It starts dimmed and hidden.
func New(scene Scene, sprite Sprite, name string, index int, x, y float64) *Character {
	c := &Character{
		scene:  scene,
		sprite: sprite,
		name:   name,
		index:  index,
		x:      x,
		y:      y,
	}
	c.sprite.SetBlendMode(render.BlendDarken)
	c.Unfocus()

	c.fadeIn = &tween.Tween{
		Target:   &c.alpha,
		From:     0,
		To:       1,
		Duration: FadeDuration,
		Ease:     ease.InOutSine,
	}
	c.fadeOut = &tween.Tween{
		Target:   &c.alpha,
		From:     1,
		To:       0,
		Duration: FadeDuration,
		Ease:     ease.InOutSine,
	}
	c.move = &tween.Tween{
		Target:      &c.x,
		FromCurrent: true,
		Duration:    MoveDuration,
		Ease:        ease.InOutSine,
	}

	c.alpha = 0
	c.visible = false
	return c
}

// Name returns the character's name.
func (c *Character) Name() string { return c.name }

// Index returns the character's position in the reference roster.
func (c *Character) Index() int { return c.index }

// Visible reports whether the character is present on stage.
func (c *Character) Visible() bool { return c.visible }

// Focused reports whether the character is highlighted.
func (c *Character) Focused() bool { return c.focused }

// X returns the current horizontal position.
func (c *Character) X() float64 { return c.x }

// Alpha returns the current opacity.
func (c *Character) Alpha() float64 { return c.alpha }

// Target returns the x coordinate layout last sent the character to, and
// false if layout has never placed it.
func (c *Character) Target() (float64, bool) {
	return c.move.To, c.hasTarget
}

// Say appends "<name>:\n<message>" to the scene's script.
func (c *Character) Say(message string) {
	c.scene.Script().Push(c.name + ":\n" + message)
}

// Focus highlights the character.
func (c *Character) Focus() {
	c.focused = true
	c.sprite.ClearTint()
}

// Unfocus dims the character.
func (c *Character) Unfocus() {
	c.focused = false
	c.sprite.SetTint(DimTint)
}

// Draw renders the character at its current transform.
func (c *Character) Draw(dst render.Image) {
	if c.alpha <= 0 {
		return
	}
	c.sprite.Draw(dst, c.x, c.y, c.alpha)
}

func (c *Character) moveTo(x float64) {
	c.move.To = x
	c.hasTarget = true
	c.scene.Play(c.move)
}
