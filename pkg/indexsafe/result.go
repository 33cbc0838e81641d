package indexsafe

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Result is the tagged form of a lookup. Value is meaningful only
// when Outcome is OutcomeValue.
type Result[T any] struct {
	Outcome Outcome
	Value   T
	// Index is the requested index clamped to math.MaxInt64. An unsigned
	// index above that is reported exactly by Err as ErrIndexTooHigh.
	Index  int64
	Length int

	err error
}

// Lookup is GetFrom returning a Result instead of (T, error).
func Lookup[T any, I constraints.Integer](seq Sequence[T], index I) Result[T] {
	length := seq.Len()
	v, err := GetFrom(seq, index)
	if length < 0 {
		length = 0
	}
	return NewResult(v, clampIndex(index), length, err)
}

// NewResult builds a Result from the (T, error) form. It is used by
// transports that carry the outcome over the wire.
func NewResult[T any](value T, index int64, length int, err error) Result[T] {
	r := Result[T]{
		Outcome: OutcomeOf(err),
		Index:   index,
		Length:  length,
		err:     err,
	}
	if r.Outcome == OutcomeValue {
		r.Value = value
	}
	return r
}

func (r Result[T]) OK() bool {
	return r.Outcome == OutcomeValue
}

// Err returns nil for a value and the classified failure otherwise.
func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Get() (T, error) {
	return r.Value, r.err
}

func (r Result[T]) String() string {
	if r.OK() {
		return fmt.Sprintf("%v", r.Value)
	}
	return fmt.Sprintf("%s: %v", r.Outcome, r.err)
}

// clampIndex maps index into int64 for reporting. Only unsigned indices
// above math.MaxInt64 are affected, and those are always too high anyway.
func clampIndex[I constraints.Integer](index I) int64 {
	if index < 0 {
		return int64(index)
	}
	if uint64(index) > 1<<63-1 {
		return 1<<63 - 1
	}
	return int64(index)
}
