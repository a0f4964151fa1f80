package xvec

import "iter"

// All returns an iterator over (position, element) pairs of the live range,
// front to back, for use with range-over-func. Mutating the vector during
// iteration is invalid: a migration or shrink leaves the remaining yields
// unspecified.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements, front to back. Same
// invalidation contract as All.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over (position, element) pairs of the live
// range, back to front. Same invalidation contract as All.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Slice returns a non-owning view of the live range. The view's capacity is
// capped at Len(), so appending to it cannot write into reserved slots. The
// view is invalidated by any operation that migrates, shrinks or releases
// storage (growth, EraseAt, Resize, Pop, Reset, Clear): reads through a
// stale view observe retired, zeroed storage.
func (v *Vector[T]) Slice() []T {
	return v.data[:v.size:v.size]
}
