// Package dice provides the randomness abstraction and uniform range draws
// used by combat.
package dice

import "fmt"

// Source is the randomness provider for all draws.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Range is an inclusive integer interval [Min, Max].
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Validate reports whether the range is non-negative and ordered.
//
// Postcondition: returns nil iff 0 <= Min <= Max.
func (r Range) Validate() error {
	if r.Min < 0 {
		return fmt.Errorf("range min must be >= 0, got %d", r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("range max %d is below min %d", r.Max, r.Min)
	}
	return nil
}

// String renders the range as "min-max".
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Between draws a value uniformly from r using src.
//
// Precondition: r.Validate() == nil; src must be non-nil.
// Postcondition: r.Min <= result <= r.Max.
func Between(src Source, r Range) int {
	return r.Min + src.Intn(r.Max-r.Min+1)
}
