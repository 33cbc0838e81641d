// sequence.go defines the length-queryable sequence view used by the accessor.

package indexsafe

// Sequence is a fixed-length, index-addressable, read-only view.
//
// At is called only with an index already validated against Len,
// so implementations may index their storage directly.
type Sequence[T any] interface {
	Len() int
	At(index int) T
}

// Slice adapts a plain slice to Sequence.
type Slice[T any] []T

var _ Sequence[int] = Slice[int](nil)

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) At(index int) T {
	return s[index]
}
