package stage

// FocusEveryone highlights every character in r.
func FocusEveryone(r *Roster) {
	for _, p := range r.Characters() {
		p.Focus()
	}
}

// UnfocusEveryone dims every character in r, the speaker included.
func UnfocusEveryone(r *Roster) {
	for _, p := range r.Characters() {
		p.Unfocus()
	}
}

// UnfocusEveryoneElse dims everyone in r except c, whose focus is left as is.
func (c *Character) UnfocusEveryoneElse(r *Roster) {
	for _, p := range r.Characters() {
		if p != c {
			p.Unfocus()
		}
	}
}

// Enter brings c on stage, re-flows everyone present and fades c in.
func (c *Character) Enter(r *Roster) {
	c.visible = true
	Layout(r)
	c.scene.Play(c.fadeIn)
}

// Exit takes c off stage. The remaining characters re-flow into the gap while
// c fades out where it stands.
func (c *Character) Exit(r *Roster) {
	c.visible = false
	c.scene.Play(c.fadeOut)
	Layout(r)
}

// EnterEveryone brings the whole roster on stage.
func EnterEveryone(r *Roster) {
	chars := r.Characters()
	// Mark first so layout sees the complete set.
	for _, p := range chars {
		p.visible = true
	}
	for _, p := range chars {
		if p.visible {
			p.scene.Play(p.fadeIn)
		}
	}
	Layout(r)
}

// ExitEveryone clears the stage. Only characters that were present fade out.
func ExitEveryone(r *Roster) {
	chars := r.Characters()
	for _, p := range chars {
		if p.visible {
			p.scene.Play(p.fadeOut)
		}
	}
	for _, p := range chars {
		p.visible = false
	}
}
