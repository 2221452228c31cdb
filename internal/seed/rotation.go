package seed

// Rotation cycles through a fixed list of strings. Its position survives
// across calls so consecutive users of one Rotation never restart at the
// first item.
type Rotation struct {
	items []string
	next  int
}

// NewRotation returns a Rotation over items, starting at items[0].
func NewRotation(items []string) *Rotation {
	return &Rotation{items: items}
}

// Next returns the current item and advances.
func (r *Rotation) Next() string {
	if len(r.items) == 0 {
		return ""
	}
	item := r.items[r.next%len(r.items)]
	r.next++
	return item
}

// Calls returns how many times Next has been called since the last Reset.
func (r *Rotation) Calls() int {
	return r.next
}

// Reset rewinds to the first item.
func (r *Rotation) Reset() {
	r.next = 0
}
