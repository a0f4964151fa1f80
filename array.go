package xvec

import (
	"fmt"
	"iter"
)

// Array is a fixed-capacity sequence whose elements are all live from
// construction: size equals capacity for the array's whole lifetime, so it
// has no growth, erase or resize operations. It shares the vector's access
// contract (checked At/SetAt, unchecked Get/Set) and iteration surface.
// Not goroutine-safe.
type Array[T any] struct {
	data []T
}

// NewArray creates an array of n zero-valued elements. n <= 0 yields an
// empty array.
func NewArray[T any](n int) *Array[T] {
	if n <= 0 {
		return &Array[T]{}
	}
	return &Array[T]{data: make([]T, n)}
}

// ArrayOf creates an array holding a copy of the given values.
func ArrayOf[T any](values ...T) *Array[T] {
	if len(values) == 0 {
		return &Array[T]{}
	}
	data := make([]T, len(values))
	copy(data, values)
	return &Array[T]{data: data}
}

// Len returns the element count. O(1).
func (a *Array[T]) Len() int { return len(a.data) }

// Empty reports whether the array has zero elements.
func (a *Array[T]) Empty() bool { return len(a.data) == 0 }

// Front returns the first element. Fails with ErrOutOfRange on an empty
// array.
func (a *Array[T]) Front() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, fmt.Errorf("xvec: front of empty array: %w", ErrOutOfRange)
	}
	return a.data[0], nil
}

// Back returns the last element. Fails with ErrOutOfRange on an empty
// array.
func (a *Array[T]) Back() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, fmt.Errorf("xvec: back of empty array: %w", ErrOutOfRange)
	}
	return a.data[len(a.data)-1], nil
}

// At returns the element at pos. Fails with ErrOutOfRange when pos is
// outside [0, Len()).
func (a *Array[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= len(a.data) {
		var zero T
		return zero, a.boundsErr(pos)
	}
	return a.data[pos], nil
}

// SetAt replaces the element at pos. Fails with ErrOutOfRange when pos is
// outside [0, Len()).
func (a *Array[T]) SetAt(pos int, value T) error {
	if pos < 0 || pos >= len(a.data) {
		return a.boundsErr(pos)
	}
	a.data[pos] = value
	return nil
}

// Get returns the element at pos without a range check; out-of-range
// positions panic.
func (a *Array[T]) Get(pos int) T { return a.data[pos] }

// Set writes the element at pos without a range check; out-of-range
// positions panic.
func (a *Array[T]) Set(pos int, value T) { a.data[pos] = value }

// All returns an iterator over (position, element) pairs, front to back.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns a non-owning view of the elements. Writes through the view
// are visible to the array; the view's capacity is capped at Len().
func (a *Array[T]) Slice() []T {
	return a.data[:len(a.data):len(a.data)]
}

func (a *Array[T]) boundsErr(pos int) error {
	return fmt.Errorf("xvec: index %d out of range [0, %d): %w", pos, len(a.data), ErrOutOfRange)
}
