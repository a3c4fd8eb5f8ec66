package maxsub

// Given a sequence of integers, find the contiguous subarray (at least one
// element) with the largest sum, by divide and conquer: the answer lies wholly
// in the left half, wholly in the right half, or crosses the midpoint.

// Solve returns the maximum-sum contiguous range of the whole sequence.
func Solve(seq Sequence) (Candidate, error) {
	return SolveRange(seq, 0, len(seq)-1)
}

// SolveRange returns the maximum-sum contiguous range inside seq[low:high+1].
//
// When several ranges share the maximal sum the choice is deterministic:
// at every split the left half's answer beats the right half's, which beats
// the crossing range.
func SolveRange(seq Sequence, low, high int) (Candidate, error) {
	if err := checkRange(seq, low, high); err != nil {
		return Candidate{}, err
	}
	return recursiveSolve(seq, low, high), nil
}

// Time: O(n log n)
// Space: O(log n) stack
func recursiveSolve(seq Sequence, low, high int) Candidate {
	if low == high {
		return Candidate{Range: Range{Start: low, End: high}, Sum: int64(seq[low])}
	}

	mid := low + (high-low)/2
	left := recursiveSolve(seq, low, mid)
	right := recursiveSolve(seq, mid+1, high)
	cross := crossingScan(seq, low, mid, high)

	switch {
	case left.Sum >= right.Sum && left.Sum >= cross.Sum:
		return left
	case right.Sum >= left.Sum && right.Sum >= cross.Sum:
		return right
	default:
		return cross
	}
}
