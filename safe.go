package xvec

import "sync"

// SafeVector is a mutex-protected wrapper around Vector for concurrent
// access. All operations are thread-safe but come with the overhead of
// mutex locking; the wrapped vector itself stays single-threaded, which is
// the required usage for the plain Vector type.
type SafeVector[T any] struct {
	mu sync.Mutex
	v  *Vector[T]
}

// NewSafe creates a new thread-safe vector backed by the heap allocator.
func NewSafe[T any]() *SafeVector[T] {
	return &SafeVector[T]{v: New[T]()}
}

// NewSafeWith creates a new thread-safe vector backed by the given
// allocator. A nil allocator falls back to HeapAllocator.
func NewSafeWith[T any](alloc Allocator[T]) *SafeVector[T] {
	return &SafeVector[T]{v: NewWith[T](alloc)}
}

// Len thread-safely returns the number of live elements.
func (s *SafeVector[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Len()
}

// Cap thread-safely returns the capacity.
func (s *SafeVector[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Cap()
}

// Empty thread-safely reports whether the vector holds no live elements.
func (s *SafeVector[T]) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Empty()
}

// Append thread-safely adds value after the current last element.
func (s *SafeVector[T]) Append(value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Append(value)
}

// AppendSlice thread-safely appends all values in order.
func (s *SafeVector[T]) AppendSlice(values ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.AppendSlice(values...)
}

// Pop thread-safely removes and returns the last element.
func (s *SafeVector[T]) Pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Pop()
}

// EraseAt thread-safely removes the element at pos.
func (s *SafeVector[T]) EraseAt(pos int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.EraseAt(pos)
}

// Clear thread-safely removes all elements and releases storage.
func (s *SafeVector[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Clear()
}

// Reset thread-safely removes all elements, keeping storage for reuse.
func (s *SafeVector[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Reset()
}

// Resize thread-safely sets the live size to n.
func (s *SafeVector[T]) Resize(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Resize(n)
}

// ResizeWith thread-safely sets the live size to n with an explicit fill
// value.
func (s *SafeVector[T]) ResizeWith(n int, fill T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.ResizeWith(n, fill)
}

// At thread-safely returns the element at pos with a range check.
func (s *SafeVector[T]) At(pos int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.At(pos)
}

// SetAt thread-safely replaces the element at pos with a range check.
func (s *SafeVector[T]) SetAt(pos int, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.SetAt(pos, value)
}

// CopySlice thread-safely returns a copy of the live range. A copy rather
// than a view: an aliasing view would escape the lock.
func (s *SafeVector[T]) CopySlice() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.v.Len() == 0 {
		return nil
	}
	out := make([]T, s.v.Len())
	copy(out, s.v.Slice())
	return out
}

// Allocator returns the allocator backing the wrapped vector.
func (s *SafeVector[T]) Allocator() Allocator[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Allocator()
}
