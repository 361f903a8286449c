package stage

// CountVisible returns how many characters in r are on stage.
func CountVisible(r *Roster) int {
	n := 0
	for _, p := range r.Characters() {
		if p.visible {
			n++
		}
	}
	return n
}

// SlotX returns the x coordinate of 1-based slot when count characters share
// a stage of the given width. The characters split the width into count+1
// equal gaps.
func SlotX(width float64, slot, count int) float64 {
	return width * float64(slot) / float64(count+1)
}

// Layout walks every present character in roster order to its slot.
// Absent characters are left where they are.
func Layout(r *Roster) {
	count := CountVisible(r)
	slot := 1
	for _, p := range r.Characters() {
		if !p.visible {
			continue
		}
		p.moveTo(SlotX(p.scene.Width(), slot, count))
		slot++
	}
}
