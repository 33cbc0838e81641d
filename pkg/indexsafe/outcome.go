package indexsafe

import (
	"fmt"
	"strings"
)

// Outcome is the classification of a single lookup.
type Outcome int

const (
	UndefinedOutcome = Outcome(iota)
	OutcomeValue
	OutcomeIndexTooLow
	OutcomeIndexTooHigh
	EndOfOutcome
)

func (o Outcome) String() string {
	switch o {
	case UndefinedOutcome:
		return "<undefined>"
	case OutcomeValue:
		return "value"
	case OutcomeIndexTooLow:
		return "index_too_low"
	case OutcomeIndexTooHigh:
		return "index_too_high"
	default:
		return fmt.Sprintf("<unexpected_value_%d>", int(o))
	}
}

// OutcomeFromString is the inverse of Outcome.String. It is
// case-insensitive and returns UndefinedOutcome for unknown input.
func OutcomeFromString(s string) Outcome {
	s = strings.ToLower(strings.TrimSpace(s))
	for o := UndefinedOutcome + 1; o < EndOfOutcome; o++ {
		if o.String() == s {
			return o
		}
	}
	return UndefinedOutcome
}

// IsOutOfRange reports whether the outcome is one of the failure kinds.
func (o Outcome) IsOutOfRange() bool {
	return o == OutcomeIndexTooLow || o == OutcomeIndexTooHigh
}

func (o Outcome) MarshalText() ([]byte, error) {
	if o <= UndefinedOutcome || o >= EndOfOutcome {
		return nil, fmt.Errorf("unable to marshal outcome %d", int(o))
	}
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	v := OutcomeFromString(string(b))
	if v == UndefinedOutcome {
		return fmt.Errorf("unknown outcome %q", b)
	}
	*o = v
	return nil
}
