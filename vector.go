// Package xvec implements growable and fixed-capacity sequence containers
// with pluggable storage allocation.
// Typical usage: create one Vector per workload, append and index it with
// explicit error reporting, and pick the Allocator (heap, arena, pool) that
// matches the workload's allocation pattern.
package xvec

import "fmt"

// Vector is an owning, contiguous, growable sequence of T. Storage is
// acquired and retired through an Allocator, so the growth policy and the
// size/capacity split are the vector's own responsibility rather than the
// runtime's. Positions [0, Len()) are live; positions [Len(), Cap()) are
// reserved capacity holding zero values.
//
// The zero value is an empty vector backed by HeapAllocator. Not
// goroutine-safe; use SafeVector for concurrent access.
type Vector[T any] struct {
	alloc Allocator[T]
	data  []T // backing block; len(data) == Cap(), nil iff Cap() == 0
	size  int // live element count

	grows  uint64 // storage migrations
	moved  uint64 // elements copied by migrations
	allocs uint64 // Alloc calls issued
	frees  uint64 // Free calls issued
}

// New creates an empty vector backed by the heap allocator.
// No storage is allocated until the first append or resize.
func New[T any]() *Vector[T] {
	return &Vector[T]{alloc: HeapAllocator[T]{}}
}

// NewWith creates an empty vector backed by the given allocator.
// A nil allocator falls back to HeapAllocator.
func NewWith[T any](alloc Allocator[T]) *Vector[T] {
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}
	return &Vector[T]{alloc: alloc}
}

// Allocator returns the allocator backing this vector.
func (v *Vector[T]) Allocator() Allocator[T] {
	if v.alloc == nil {
		return HeapAllocator[T]{}
	}
	return v.alloc
}

// Len returns the number of live elements. O(1).
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of element slots in the backing storage. O(1).
func (v *Vector[T]) Cap() int { return len(v.data) }

// Empty reports whether the vector holds no live elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Append adds value after the current last element, growing storage when
// size equals capacity. The first allocation holds exactly one element;
// every later growth doubles capacity. On allocator failure the error is
// returned unchanged and the vector is left unmodified.
func (v *Vector[T]) Append(value T) error {
	// Fast path: a reserved slot is available.
	if v.size < len(v.data) {
		v.data[v.size] = value
		v.size++
		return nil
	}
	if err := v.grow(v.size + 1); err != nil {
		return err
	}
	v.data[v.size] = value
	v.size++
	return nil
}

// AppendSlice appends all values in order, growing at most once. Growth
// follows the same doubling ladder as Append. On allocator failure nothing
// is appended. values may alias the vector's own storage.
func (v *Vector[T]) AppendSlice(values ...T) error {
	if len(values) == 0 {
		return nil
	}
	need := v.size + len(values)
	if need <= len(v.data) {
		copy(v.data[v.size:], values)
		v.size = need
		return nil
	}
	newCap := len(v.data)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < need {
		newCap *= 2
	}
	if v.alloc == nil {
		v.alloc = HeapAllocator[T]{}
	}
	block, err := v.alloc.Alloc(newCap)
	if err != nil {
		return err
	}
	v.allocs++
	copy(block, v.data[:v.size])
	// Copy values before retiring: they may point into the old block,
	// which retire zeroes.
	copy(block[v.size:], values)
	v.retire(v.data, v.size)
	v.data = block
	v.grows++
	v.moved += uint64(v.size)
	v.size = need
	return nil
}

// Pop removes and returns the last element. Returns the zero value and
// false on an empty vector. The vacated slot is zeroed so values it
// referenced become collectible; capacity is retained.
func (v *Vector[T]) Pop() (T, bool) {
	var zero T
	if v.size == 0 {
		return zero, false
	}
	v.size--
	value := v.data[v.size]
	v.data[v.size] = zero
	return value, true
}

// EraseAt removes the element at pos, shifting every later element one slot
// left. The vacated tail slot is zeroed. Never reallocates. Returns
// ErrOutOfRange when pos is outside [0, Len()); erasing at Len() is invalid,
// not a no-op.
func (v *Vector[T]) EraseAt(pos int) error {
	if pos < 0 || pos >= v.size {
		return v.boundsErr(pos)
	}
	copy(v.data[pos:v.size-1], v.data[pos+1:v.size])
	v.size--
	var zero T
	v.data[v.size] = zero
	return nil
}

// Clear removes all elements and releases the backing storage through the
// allocator. Both size and capacity become zero afterwards. Use Reset to
// empty the vector while keeping its storage.
func (v *Vector[T]) Clear() {
	v.retire(v.data, v.size)
	v.data = nil
	v.size = 0
}

// Reset removes all elements but keeps the backing storage for reuse.
// Live slots are zeroed; capacity is unchanged.
func (v *Vector[T]) Reset() {
	clear(v.data[:v.size])
	v.size = 0
}

// Resize sets the live size to n. Growing exposes zero-valued elements;
// shrinking zeroes the truncated slots and retains capacity. When n exceeds
// capacity the new storage holds exactly n elements (a precise request, not
// the doubling ladder). Returns ErrOutOfRange for negative n, or the
// allocator's error if new storage cannot be obtained.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeWith(n, zero)
}

// ResizeWith is Resize with an explicit fill value for newly exposed
// elements.
func (v *Vector[T]) ResizeWith(n int, fill T) error {
	if n < 0 {
		return fmt.Errorf("xvec: resize to %d out of range: %w", n, ErrOutOfRange)
	}
	if n < v.size {
		clear(v.data[n:v.size])
		v.size = n
		return nil
	}
	if n > len(v.data) {
		// Precise request: storage for exactly n, unlike the append ladder.
		if err := v.migrate(n); err != nil {
			return err
		}
	}
	for i := v.size; i < n; i++ {
		v.data[i] = fill
	}
	v.size = n
	return nil
}

// At returns the element at pos. Fails with ErrOutOfRange when pos is
// outside [0, Len()), including pos 0 on an empty vector.
func (v *Vector[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= v.size {
		var zero T
		return zero, v.boundsErr(pos)
	}
	return v.data[pos], nil
}

// SetAt replaces the element at pos. Fails with ErrOutOfRange when pos is
// outside [0, Len()).
func (v *Vector[T]) SetAt(pos int, value T) error {
	if pos < 0 || pos >= v.size {
		return v.boundsErr(pos)
	}
	v.data[pos] = value
	return nil
}

// Get returns the element at pos without a range check. Positions outside
// [0, Len()) are the caller's responsibility: a position in reserved
// capacity reads a zero value, one beyond capacity panics.
func (v *Vector[T]) Get(pos int) T { return v.data[pos] }

// Set writes the element at pos without a range check. Writing a reserved
// slot breaks the zero-value invariant the checked operations rely on, so
// callers should stay within [0, Len()).
func (v *Vector[T]) Set(pos int, value T) { v.data[pos] = value }

// grow migrates storage to the doubling ladder's next fit: capacity 0
// becomes 1, then capacity doubles until minCap fits.
func (v *Vector[T]) grow(minCap int) error {
	newCap := len(v.data)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < minCap {
		newCap *= 2
	}
	return v.migrate(newCap)
}

// migrate moves the live prefix into a fresh block of exactly newCap slots
// and retires the old block. The vector is unchanged if Alloc fails.
func (v *Vector[T]) migrate(newCap int) error {
	if v.alloc == nil {
		v.alloc = HeapAllocator[T]{}
	}
	block, err := v.alloc.Alloc(newCap)
	if err != nil {
		return err
	}
	v.allocs++
	copy(block, v.data[:v.size])
	v.retire(v.data, v.size)
	v.data = block
	v.grows++
	v.moved += uint64(v.size)
	return nil
}

// retire zeroes the live prefix of an outgoing block and hands it back to
// the allocator. Reserved slots are already zero by invariant.
func (v *Vector[T]) retire(block []T, live int) {
	if block == nil {
		return
	}
	clear(block[:live])
	v.alloc.Free(block)
	v.frees++
}

func (v *Vector[T]) boundsErr(pos int) error {
	return fmt.Errorf("xvec: index %d out of range [0, %d): %w", pos, v.size, ErrOutOfRange)
}
