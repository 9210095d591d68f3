// ABOUTME: AttachmentSet: ordered, ID-unique set of committed candidates
// ABOUTME: Used by plain-text hosts that sync mentions to a roster collaborator

package mention

import "slices"

// AttachmentSet keeps candidates in first-commit order, unique by ID.
// The zero value is ready to use.
type AttachmentSet struct {
	items []Candidate
}

// Add appends c unless a candidate with the same ID is present.
func (s *AttachmentSet) Add(c Candidate) bool {
	if s.Contains(c.ID) {
		return false
	}
	s.items = append(s.items, c)
	return true
}

// Remove drops the candidate with the given ID and returns it.
func (s *AttachmentSet) Remove(id string) (Candidate, bool) {
	i := s.index(id)
	if i < 0 {
		return Candidate{}, false
	}
	c := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return c, true
}

// Contains reports membership by ID.
func (s *AttachmentSet) Contains(id string) bool {
	return s.index(id) >= 0
}

// Items returns a copy of the set in order.
func (s *AttachmentSet) Items() []Candidate {
	return slices.Clone(s.items)
}

// Len returns the number of attachments.
func (s *AttachmentSet) Len() int {
	return len(s.items)
}

func (s *AttachmentSet) index(id string) int {
	return slices.IndexFunc(s.items, func(c Candidate) bool { return c.ID == id })
}
