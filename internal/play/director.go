package play

import (
	"log"

	"chosenoffset.com/footlights/internal/stage"
)

// Director walks a play's cues and applies them to a roster.
type Director struct {
	play   *Play
	roster *stage.Roster
	next   int
}

// NewDirector creates a director for p. The roster must hold a character for
// every cast member.
func NewDirector(p *Play, roster *stage.Roster) *Director {
	return &Director{play: p, roster: roster}
}

// Done reports whether every cue has run.
func (d *Director) Done() bool {
	return d.next >= len(d.play.Cues)
}

// Advance runs cues until one of them adds a line to the script or the play
// runs out. It returns false when there was nothing left to run.
func (d *Director) Advance() bool {
	if d.Done() {
		return false
	}
	for !d.Done() {
		cue := d.play.Cues[d.next]
		d.next++
		if d.apply(cue) {
			break
		}
	}
	return true
}

// apply performs one cue and reports whether it spoke a line.
func (d *Director) apply(cue Cue) bool {
	switch cue.Action {
	case ActionEnterAll:
		stage.EnterEveryone(d.roster)
		return false
	case ActionExitAll:
		stage.ExitEveryone(d.roster)
		return false
	case ActionFocusAll:
		stage.FocusEveryone(d.roster)
		return false
	case ActionUnfocusAll:
		stage.UnfocusEveryone(d.roster)
		return false
	}

	c, ok := d.roster.Get(cue.Who)
	if !ok {
		log.Printf("Skipping %s cue for %q: not on the roster", cue.Action, cue.Who)
		return false
	}

	switch cue.Action {
	case ActionEnter:
		c.Enter(d.roster)
	case ActionExit:
		c.Exit(d.roster)
	case ActionFocus:
		c.Focus()
	case ActionUnfocus:
		c.Unfocus()
	case ActionSay:
		c.Focus()
		c.UnfocusEveryoneElse(d.roster)
		c.Say(cue.Line)
		return true
	}
	return false
}
