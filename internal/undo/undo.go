// ABOUTME: Bounded undo/redo history of editor snapshots
// ABOUTME: Undo and Redo take the current state so nothing is lost when switching direction

package undo

// History keeps at most depth snapshots in each direction.
type History[S any] struct {
	past   []S
	future []S
	depth  int
}

// New returns an empty History. depth < 1 is treated as 1.
func New[S any](depth int) *History[S] {
	return &History[S]{depth: max(depth, 1)}
}

// Record saves the state before a change and clears the redo side.
func (h *History[S]) Record(before S) {
	h.past = pushBounded(h.past, before, h.depth)
	h.future = h.future[:0]
}

// Undo returns the last recorded state and moves current onto the redo side.
func (h *History[S]) Undo(current S) (S, bool) {
	prev, ok := pop(&h.past)
	if ok {
		h.future = pushBounded(h.future, current, h.depth)
	}
	return prev, ok
}

// Redo reverses the last Undo.
func (h *History[S]) Redo(current S) (S, bool) {
	next, ok := pop(&h.future)
	if ok {
		h.past = pushBounded(h.past, current, h.depth)
	}
	return next, ok
}

// Len returns how many undo steps are available.
func (h *History[S]) Len() int { return len(h.past) }

func pushBounded[S any](stack []S, s S, depth int) []S {
	if len(stack) >= depth {
		stack = append(stack[:0], stack[len(stack)-depth+1:]...)
	}
	return append(stack, s)
}

func pop[S any](stack *[]S) (S, bool) {
	var zero S
	n := len(*stack)
	if n == 0 {
		return zero, false
	}
	s := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	return s, true
}
