// Package maxsub finds the contiguous subrange of a fixed integer sequence
// whose element sum is maximal.
//
// The main solver is the divide-and-conquer algorithm from CLRS chapter 4:
// split at the midpoint, solve both halves, then reconcile them with a
// linear scan for the best range crossing the midpoint. Linear is a single
// pass alternative used to cross-check the result.
//
// Elements are int32 and all sums are accumulated in int64, so a sum can
// only overflow for sequences of 2^32 elements or more.
package maxsub

import "fmt"

// Sequence is the input array. The solvers never modify it.
type Sequence []int32

// Range is a contiguous run of indices; both ends are inclusive.
type Range struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Len returns the number of elements covered by r.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Contains reports whether index i lies inside r.
func (r Range) Contains(i int) bool {
	return r.Start <= i && i <= r.End
}

// Candidate is a range together with the exact sum of its elements.
type Candidate struct {
	Range `yaml:",inline"`
	Sum   int64 `yaml:"sum"`
}

func (c Candidate) String() string {
	return fmt.Sprintf("[%d,%d] sum=%d", c.Start, c.End, c.Sum)
}

// sample is the array from CLRS figure 4.3; its answer is [7,10] with sum 43.
var sample = Sequence{13, -3, -25, 20, -3, -16, -23, 18, 20, -7, 12, -5, -22, 15, -4, 7}

// Sample returns a copy of the reference sequence.
func Sample() Sequence {
	s := make(Sequence, len(sample))
	copy(s, sample)
	return s
}
