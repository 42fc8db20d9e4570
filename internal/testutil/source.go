// Package testutil provides fakes for headless tests of the game engine.
package testutil

// SequenceSource is a deterministic randomness source that replays a fixed
// sequence of values. Each call to Intn returns the next value reduced modulo n.
// After the sequence is exhausted it starts over.
type SequenceSource struct {
	vals []int
	pos  int
}

// NewSequenceSource returns a source replaying vals.
//
// Precondition: vals must be non-empty and non-negative.
func NewSequenceSource(vals ...int) *SequenceSource {
	return &SequenceSource{vals: vals}
}

// Intn returns the next value in the sequence modulo n.
//
// Precondition: n > 0.
// Postcondition: 0 <= result < n.
func (s *SequenceSource) Intn(n int) int {
	if n <= 0 {
		panic("testutil: Intn called with n <= 0")
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v % n
}
