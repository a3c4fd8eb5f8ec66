package maxsub

import (
	"math/rand"
	"testing"
)

// bruteForce returns the best sum over every non-empty range of seq[low:high+1].
func bruteForce(seq Sequence, low, high int) int64 {
	best := int64(negInf)
	for i := low; i <= high; i++ {
		var sum int64
		for j := i; j <= high; j++ {
			sum += int64(seq[j])
			if sum > best {
				best = sum
			}
		}
	}
	return best
}

func rangeSum(seq Sequence, r Range) int64 {
	var sum int64
	for i := r.Start; i <= r.End; i++ {
		sum += int64(seq[i])
	}
	return sum
}

func randomSequence(rng *rand.Rand, n, limit int) Sequence {
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = int32(rng.Intn(2*limit+1) - limit)
	}
	return seq
}

// eachSequence calls fn with every sequence of length n over [-limit, limit].
func eachSequence(n, limit int, fn func(Sequence)) {
	seq := make(Sequence, n)
	var fill func(int)
	fill = func(i int) {
		if i == n {
			fn(seq)
			return
		}
		for v := -limit; v <= limit; v++ {
			seq[i] = int32(v)
			fill(i + 1)
		}
	}
	fill(0)
}

func assertValid(t *testing.T, seq Sequence, low, high int, got Candidate) {
	t.Helper()
	if got.Start < low || got.End > high || got.Start > got.End {
		t.Fatalf("range %v outside [%d,%d] for %v", got.Range, low, high, seq)
	}
	if sum := rangeSum(seq, got.Range); sum != got.Sum {
		t.Fatalf("sum of %v is %d, candidate says %d (seq %v)", got.Range, sum, got.Sum, seq)
	}
}
