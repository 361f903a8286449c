package stage

// Roster maps names to characters and remembers insertion order, which is
// the left-to-right order used by Layout.
type Roster struct {
	order  []string
	byName map[string]*Character
}

// NewRoster creates a roster holding chars in the given order.
func NewRoster(chars ...*Character) *Roster {
	r := &Roster{byName: make(map[string]*Character, len(chars))}
	for _, c := range chars {
		r.Add(c)
	}
	return r
}

// Add registers c under its name. Re-adding a name replaces the character
// but keeps its original position.
func (r *Roster) Add(c *Character) {
	if _, ok := r.byName[c.name]; !ok {
		r.order = append(r.order, c.name)
	}
	r.byName[c.name] = c
}

// Remove drops the character registered under name.
func (r *Roster) Remove(name string) {
	if _, ok := r.byName[name]; !ok {
		return
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get looks up a character by name.
func (r *Roster) Get(name string) (*Character, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Len returns the number of characters.
func (r *Roster) Len() int {
	return len(r.order)
}

// Names returns the character names in order.
func (r *Roster) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Characters returns the characters in order.
func (r *Roster) Characters() []*Character {
	chars := make([]*Character, 0, len(r.order))
	for _, name := range r.order {
		chars = append(chars, r.byName[name])
	}
	return chars
}
