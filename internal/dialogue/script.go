// Package dialogue holds the scene's script buffer and the text box that
// shows it.
package dialogue

// Script is an ordered log of dialogue lines with a read cursor.
// Lines are only ever appended; reading does not remove them.
type Script struct {
	lines  []string
	cursor int
}

// NewScript creates an empty script.
func NewScript() *Script {
	return &Script{}
}

// Push appends a line.
func (s *Script) Push(line string) {
	s.lines = append(s.lines, line)
}

// Len returns the number of lines pushed so far.
func (s *Script) Len() int {
	return len(s.lines)
}

// Lines returns a copy of every line in order.
func (s *Script) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Pending returns how many lines have not been read yet.
func (s *Script) Pending() int {
	return len(s.lines) - s.cursor
}

// Next returns the next unread line and advances the cursor.
func (s *Script) Next() (string, bool) {
	if s.cursor >= len(s.lines) {
		return "", false
	}
	line := s.lines[s.cursor]
	s.cursor++
	return line, true
}

// Current returns the most recently read line.
func (s *Script) Current() (string, bool) {
	if s.cursor == 0 {
		return "", false
	}
	return s.lines[s.cursor-1], true
}
