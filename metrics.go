package xvec

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no storage.
func (v *Vector[T]) Utilization() float64 {
	if len(v.data) == 0 {
		return 0
	}
	return float64(v.size) / float64(len(v.data))
}

// Metrics returns a snapshot of vector statistics, including the growth
// accounting kept across migrations.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.size,
		Cap:         len(v.data),
		Utilization: v.Utilization(),
		Grows:       v.grows,
		ElemsMoved:  v.moved,
		Allocs:      v.allocs,
		Frees:       v.frees,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Live element count
	Cap         int     // Element slots in backing storage
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
	Grows       uint64  // Storage migrations performed
	ElemsMoved  uint64  // Elements copied by migrations
	Allocs      uint64  // Alloc calls issued to the allocator
	Frees       uint64  // Free calls issued to the allocator
}

// ElemsInUse returns the total number of elements currently carved out of
// the arena.
func (a *ArenaAllocator[T]) ElemsInUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inUse
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *ArenaAllocator[T]) NumChunks() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.chunks)
}

// Capacity returns the total capacity (in elements) of all chunks.
func (a *ArenaAllocator[T]) Capacity() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.capacityLocked()
}

// Utilization returns the ratio of carved elements to total capacity
// (0.0 to 1.0). Returns 0.0 if the arena has no capacity.
func (a *ArenaAllocator[T]) Utilization() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.utilizationLocked()
}

// ChunkElems returns the default chunk capacity used by this arena.
func (a *ArenaAllocator[T]) ChunkElems() int {
	return a.chunkElems
}

// Limit returns the configured element limit, 0 meaning unlimited.
func (a *ArenaAllocator[T]) Limit() int {
	return a.limit
}

// Metrics returns a snapshot of arena statistics taken under one lock.
func (a *ArenaAllocator[T]) Metrics() ArenaMetrics {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ArenaMetrics{
		ElemsInUse:  a.inUse,
		Capacity:    a.capacityLocked(),
		NumChunks:   len(a.chunks),
		ChunkElems:  a.chunkElems,
		Limit:       a.limit,
		Utilization: a.utilizationLocked(),
	}
}

func (a *ArenaAllocator[T]) capacityLocked() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

func (a *ArenaAllocator[T]) utilizationLocked() float64 {
	capacity := a.capacityLocked()
	if capacity == 0 {
		return 0
	}
	return float64(a.inUse) / float64(capacity)
}

// ArenaMetrics contains statistical information about an arena allocator.
type ArenaMetrics struct {
	ElemsInUse  int     // Elements currently carved out
	Capacity    int     // Total capacity in elements
	NumChunks   int     // Number of chunks
	ChunkElems  int     // Default chunk capacity
	Limit       int     // Configured element limit, 0 = unlimited
	Utilization float64 // Ratio of carved to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeVector

// Utilization thread-safely returns the ratio of live elements to capacity.
func (s *SafeVector[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Utilization()
}

// Metrics thread-safely returns a snapshot of vector statistics.
func (s *SafeVector[T]) Metrics() VectorMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Metrics()
}
