// Package theater hosts a play: it owns the animation scheduler, the script
// buffer and the roster, and turns player input into stage directions.
package theater

import (
	"image/color"
	"log"
	"path/filepath"
	"time"

	"chosenoffset.com/footlights/internal/dialogue"
	"chosenoffset.com/footlights/internal/placeholders"
	"chosenoffset.com/footlights/internal/play"
	"chosenoffset.com/footlights/internal/render"
	"chosenoffset.com/footlights/internal/stage"
	"chosenoffset.com/footlights/internal/tween"
)

// tick is the fixed update step (ebiten runs Update at 60 TPS).
const tick = time.Second / 60

const boxHeight = 140

// Theater is the running scene. It implements stage.Scene and render.Game.
type Theater struct {
	ScreenWidth  int
	ScreenHeight int

	Renderer render.Renderer
	InputMgr render.InputManager

	tweens   *tween.Scheduler
	script   *dialogue.Script
	roster   *stage.Roster
	director *play.Director
	box      *dialogue.Box

	backdrop color.RGBA
	finished bool
}

// New creates an empty theater for a screen of the given size.
func New(r render.Renderer, input render.InputManager, width, height int) *Theater {
	box := dialogue.NewBox(r, 0, 0, width, boxHeight)
	box.Resize(width, height)

	return &Theater{
		ScreenWidth:  width,
		ScreenHeight: height,
		Renderer:     r,
		InputMgr:     input,
		tweens:       tween.NewScheduler(),
		script:       dialogue.NewScript(),
		roster:       stage.NewRoster(),
		box:          box,
		backdrop:     color.RGBA{232, 226, 214, 255},
	}
}

// Width implements stage.Scene.
func (t *Theater) Width() float64 {
	return float64(t.ScreenWidth)
}

// Play implements stage.Scene.
func (t *Theater) Play(tw *tween.Tween) {
	t.tweens.Play(tw)
}

// Script implements stage.Scene.
func (t *Theater) Script() stage.Log {
	return t.script
}

// Roster returns the characters on the bill.
func (t *Theater) Roster() *stage.Roster {
	return t.roster
}

// Lines returns every line spoken so far.
func (t *Theater) Lines() []string {
	return t.script.Lines()
}

// Finished reports whether the play has run out of cues and lines.
func (t *Theater) Finished() bool {
	return t.finished
}

// Cast builds the roster for p and readies its director. Portraits are read
// from portraitDir; a missing or unreadable portrait is replaced by a
// generated placeholder.
func (t *Theater) Cast(p *play.Play, loader render.ResourceLoader, portraitDir string) {
	floor := float64(t.ScreenHeight - boxHeight/2)

	t.roster = stage.NewRoster()
	for i, member := range p.Cast {
		img := t.loadPortrait(member, loader, portraitDir)
		c := stage.New(t, stage.NewPortrait(img), member.Name, i, t.Width()/2, floor)
		t.roster.Add(c)
	}
	t.director = play.NewDirector(p, t.roster)
	t.finished = false
	log.Printf("Cast %d characters for %q", t.roster.Len(), p.Title)
}

func (t *Theater) loadPortrait(member play.CastMember, loader render.ResourceLoader, dir string) render.Image {
	if member.Portrait != "" {
		path := filepath.Join(dir, member.Portrait)
		img, err := loader.LoadImage(path)
		if err == nil {
			return img
		}
		log.Printf("Warning: Failed to load portrait %s: %v", path, err)
	}
	return loader.NewImageFromImage(placeholders.Portrait(member.Name, placeholders.PortraitWidth, placeholders.PortraitHeight))
}

// Update advances animations and reacts to input.
func (t *Theater) Update() error {
	t.tweens.Update(tick)

	if t.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		log.Println("Curtain")
		return render.Termination
	}

	if t.advancePressed() {
		t.Advance()
	}
	return nil
}

func (t *Theater) advancePressed() bool {
	return t.InputMgr.IsKeyJustPressed(render.KeySpace) ||
		t.InputMgr.IsKeyJustPressed(render.KeyEnter) ||
		t.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft)
}

// Advance moves the play forward by one beat. Running animations are
// finished first; otherwise the next line of the script is shown, asking the
// director for more cues once the script is drained.
func (t *Theater) Advance() {
	if t.tweens.Active() > 0 {
		t.tweens.Finish()
		return
	}

	if t.script.Pending() == 0 && t.director != nil {
		t.director.Advance()
	}

	line, ok := t.script.Next()
	if !ok {
		if !t.finished {
			log.Println("End of play")
		}
		t.finished = true
		t.box.Clear()
		return
	}
	t.box.SetText(line)
}

// Draw renders the backdrop, the characters and the dialogue box.
func (t *Theater) Draw(screen render.Image) {
	screen.Fill(t.backdrop)

	for _, c := range t.roster.Characters() {
		c.Draw(screen)
	}

	t.box.Draw(screen)
}

// Layout handles window resize. A width change re-flows the stage.
func (t *Theater) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != t.ScreenWidth || outsideHeight != t.ScreenHeight {
		widthChanged := outsideWidth != t.ScreenWidth
		t.ScreenWidth = outsideWidth
		t.ScreenHeight = outsideHeight
		t.box.Resize(outsideWidth, outsideHeight)
		if widthChanged {
			stage.Layout(t.roster)
		}
	}
	return outsideWidth, outsideHeight
}
