package indexsafe

import (
	"golang.org/x/exp/constraints"
)

// Check validates index against length without touching any storage.
//
// The unsigned comparison is done only after the sign check, and uint64
// holds every non-negative value of every integer type, so nothing wraps.
// A negative length is treated as zero.
func Check[I constraints.Integer](index I, length int) error {
	if length < 0 {
		length = 0
	}
	if index < 0 {
		return ErrIndexTooLow{Index: int64(index), Length: length}
	}
	if uint64(index) >= uint64(length) {
		return ErrIndexTooHigh{Index: uint64(index), Length: length}
	}
	return nil
}

// Get returns s[index], or the zero value and an OutOfRangeError.
func Get[T any](s []T, index int) (T, error) {
	if err := Check(index, len(s)); err != nil {
		var zeroValue T
		return zeroValue, err
	}
	return s[index], nil
}

// GetAt is Get for an index of any integer type.
func GetAt[T any, I constraints.Integer](s []T, index I) (T, error) {
	if err := Check(index, len(s)); err != nil {
		var zeroValue T
		return zeroValue, err
	}
	return s[int(index)], nil
}

// GetFrom is Get over a Sequence. seq.At is invoked only for a valid index.
func GetFrom[T any, I constraints.Integer](seq Sequence[T], index I) (T, error) {
	if err := Check(index, seq.Len()); err != nil {
		var zeroValue T
		return zeroValue, err
	}
	return seq.At(int(index)), nil
}

// GetOr returns s[index], or fallback if index is out of range.
func GetOr[T any](s []T, index int, fallback T) T {
	v, err := Get(s, index)
	if err != nil {
		return fallback
	}
	return v
}
