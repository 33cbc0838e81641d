// Package indexsafe provides a bounds-checked element accessor over
// fixed-length sequences.
//
// Both bounds are validated by a single gate (Check) before any read, and
// a rejected index is never used to touch the sequence, not even to
// describe the failure. Failures are classified as ErrIndexTooLow or
// ErrIndexTooHigh; whether those are programming errors or expected input
// is left to the caller.
//
// Functions in this package are pure and safe for concurrent use as long
// as nobody mutates the sequence during the call.
package indexsafe
