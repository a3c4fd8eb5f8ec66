package maxsub

import "github.com/pkg/errors"

var (
	// ErrEmptySequence is returned when there is no element to choose.
	ErrEmptySequence = errors.New("maxsub: empty sequence")
	// ErrInvalidRange is returned for low > high or bounds outside the sequence.
	ErrInvalidRange = errors.New("maxsub: invalid range")
)

func checkRange(seq Sequence, low, high int) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	bounds := Range{Start: 0, End: len(seq) - 1}
	if low > high || !bounds.Contains(low) || !bounds.Contains(high) {
		return errors.Wrapf(ErrInvalidRange, "low=%d high=%d len=%d", low, high, len(seq))
	}
	return nil
}
