// Package play loads scripted plays and runs them cue by cue against a
// stage roster.
package play

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Errors returned while loading a play.
var (
	ErrEmptyCast          = errors.New("play has no cast")
	ErrDuplicateCharacter = errors.New("duplicate cast member")
	ErrUnknownCharacter   = errors.New("unknown cast member")
	ErrUnknownAction      = errors.New("unknown cue action")
	ErrMissingLine        = errors.New("say cue without a line")
	ErrInvalidName        = errors.New("cast name must not contain path elements")
)

// Action is what a cue does.
type Action string

// Cue actions
const (
	ActionEnter      Action = "enter"
	ActionExit       Action = "exit"
	ActionEnterAll   Action = "enter_all"
	ActionExitAll    Action = "exit_all"
	ActionFocus      Action = "focus"
	ActionUnfocus    Action = "unfocus"
	ActionFocusAll   Action = "focus_all"
	ActionUnfocusAll Action = "unfocus_all"
	ActionSay        Action = "say"
)

// needsWho reports whether the action targets a single character.
func (a Action) needsWho() bool {
	switch a {
	case ActionEnter, ActionExit, ActionFocus, ActionUnfocus, ActionSay:
		return true
	}
	return false
}

func (a Action) valid() bool {
	switch a {
	case ActionEnter, ActionExit, ActionEnterAll, ActionExitAll,
		ActionFocus, ActionUnfocus, ActionFocusAll, ActionUnfocusAll, ActionSay:
		return true
	}
	return false
}

// CastMember describes one character of the play.
type CastMember struct {
	Name     string `json:"name"`
	Portrait string `json:"portrait,omitempty"` // Relative to the portrait directory
}

// Cue is a single stage direction.
type Cue struct {
	Action Action `json:"action"`
	Who    string `json:"who,omitempty"`
	Line   string `json:"line,omitempty"`
}

// Play is a loaded play file.
type Play struct {
	Title string       `json:"title"`
	Cast  []CastMember `json:"cast"`
	Cues  []Cue        `json:"cues"`
}

// Load reads and validates a play from a JSON file.
func Load(path string) (*Play, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read play file %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("play file %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a play.
func Parse(data []byte) (*Play, error) {
	var p Play
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse play: %w", err)
	}
	if err := validate(&p); err != nil {
		return nil, fmt.Errorf("invalid play: %w", err)
	}
	return &p, nil
}

// validate checks that every cue names a known action and cast member.
func validate(p *Play) error {
	if len(p.Cast) == 0 {
		return ErrEmptyCast
	}

	names := make(map[string]bool, len(p.Cast))
	for _, m := range p.Cast {
		if m.Name == "" {
			return fmt.Errorf("cast member without a name: %w", ErrUnknownCharacter)
		}
		if strings.ContainsAny(m.Name, `/\`) || strings.Contains(m.Name, "..") {
			return fmt.Errorf("%q: %w", m.Name, ErrInvalidName)
		}
		if names[m.Name] {
			return fmt.Errorf("%q: %w", m.Name, ErrDuplicateCharacter)
		}
		names[m.Name] = true
	}

	for i, cue := range p.Cues {
		if !cue.Action.valid() {
			return fmt.Errorf("cue %d: %q: %w", i, cue.Action, ErrUnknownAction)
		}
		if cue.Action.needsWho() && !names[cue.Who] {
			return fmt.Errorf("cue %d: %q: %w", i, cue.Who, ErrUnknownCharacter)
		}
		if cue.Action == ActionSay && cue.Line == "" {
			return fmt.Errorf("cue %d: %w", i, ErrMissingLine)
		}
	}

	return nil
}
