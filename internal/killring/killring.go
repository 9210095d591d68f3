// ABOUTME: Emacs-style kill ring for ctrl+k / ctrl+y in the plain-text editor
// ABOUTME: Fixed capacity; the oldest kill is overwritten when full

package killring

// DefaultSize is the capacity used by New.
const DefaultSize = 32

// Ring holds killed text, newest last.
type Ring struct {
	entries []string
	size    int
	yankIdx int
}

// New returns an empty ring with DefaultSize capacity.
func New() *Ring {
	return &Ring{size: DefaultSize}
}

// Push adds killed text. Empty kills are ignored.
func (r *Ring) Push(text string) {
	if text == "" {
		return
	}
	if len(r.entries) == r.size {
		r.entries = append(r.entries[:0], r.entries[1:]...)
	}
	r.entries = append(r.entries, text)
	r.yankIdx = len(r.entries) - 1
}

// Yank returns the newest kill, or "" when empty.
func (r *Ring) Yank() string {
	if len(r.entries) == 0 {
		return ""
	}
	r.yankIdx = len(r.entries) - 1
	return r.entries[r.yankIdx]
}

// YankPop steps to the next older kill, wrapping to the newest.
func (r *Ring) YankPop() string {
	if len(r.entries) == 0 {
		return ""
	}
	r.yankIdx = (r.yankIdx - 1 + len(r.entries)) % len(r.entries)
	return r.entries[r.yankIdx]
}

// Len returns the number of kills held.
func (r *Ring) Len() int { return len(r.entries) }
