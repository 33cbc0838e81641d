package indexsafe

import (
	"errors"
	"fmt"
)

// OutOfRangeError is implemented by both failure kinds.
type OutOfRangeError interface {
	error
	OutOfRange() Outcome
}

// ErrIndexTooLow is returned for any negative index.
type ErrIndexTooLow struct {
	Index  int64
	Length int
}

var _ OutOfRangeError = ErrIndexTooLow{}

func (e ErrIndexTooLow) Error() string {
	return fmt.Sprintf("index %d is negative (length %d)", e.Index, e.Length)
}

func (ErrIndexTooLow) OutOfRange() Outcome {
	return OutcomeIndexTooLow
}

// ErrIndexTooHigh is returned for any index not less than the length.
type ErrIndexTooHigh struct {
	Index  uint64
	Length int
}

var _ OutOfRangeError = ErrIndexTooHigh{}

func (e ErrIndexTooHigh) Error() string {
	return fmt.Sprintf("index %d is out of range (length %d)", e.Index, e.Length)
}

func (ErrIndexTooHigh) OutOfRange() Outcome {
	return OutcomeIndexTooHigh
}

// OutcomeOf classifies err: nil is OutcomeValue, a (wrapped)
// OutOfRangeError is its kind, anything else is UndefinedOutcome.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeValue
	}
	var oor OutOfRangeError
	if errors.As(err, &oor) {
		return oor.OutOfRange()
	}
	return UndefinedOutcome
}
