package maxsub

// Given low <= mid < high, find the maximum-sum contiguous range that spans
// both mid and mid+1.

import "math"

// negInf is smaller than any real sum, so the first comparison in a scan
// always succeeds.
const negInf = math.MinInt64

// crossingScan returns the best range that contains both mid and mid+1.
// It requires low <= mid < high.
//
// Time: O(high-low+1)
// The best range through the split is the best suffix of [low,mid] joined
// with the best prefix of [mid+1,high]; the two halves are independent so
// each is found with one running sum.
func crossingScan(seq Sequence, low, mid, high int) Candidate {
	leftSum := int64(negInf)
	maxLeft := mid
	var sum int64
	for i := mid; i >= low; i-- {
		sum += int64(seq[i])
		if sum > leftSum {
			leftSum = sum
			maxLeft = i
		}
	}

	rightSum := int64(negInf)
	maxRight := mid + 1
	sum = 0
	for j := mid + 1; j <= high; j++ {
		sum += int64(seq[j])
		if sum > rightSum {
			rightSum = sum
			maxRight = j
		}
	}

	return Candidate{Range: Range{Start: maxLeft, End: maxRight}, Sum: leftSum + rightSum}
}
