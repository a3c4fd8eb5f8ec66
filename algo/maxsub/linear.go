package maxsub

// Given a sequence of integers, find the contiguous subarray with the largest
// sum in a single pass.

// Linear finds a maximum-sum range in one pass.
//
// Time: O(n)
// Space: O(1)
// A running sum that drops below zero can only hurt whatever follows it, so
// it is discarded and the next range starts at the following index.
//
// The sum always matches Solve. On ties Linear keeps the first maximal range
// it meets, which may differ from the range Solve picks.
func Linear(seq Sequence) (Candidate, error) {
	if len(seq) == 0 {
		return Candidate{}, ErrEmptySequence
	}

	best := Candidate{Sum: negInf}
	start := 0
	var subSum int64
	for i, it := range seq {
		subSum += int64(it)
		if subSum > best.Sum {
			best = Candidate{Range: Range{Start: start, End: i}, Sum: subSum}
		}
		if subSum < 0 {
			subSum = 0
			start = i + 1
		}
	}
	return best, nil
}
