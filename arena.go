package xvec

import (
	"fmt"
	"sync"
)

// DefaultChunkElems is the default chunk capacity for new arena allocators,
// in elements.
const DefaultChunkElems = 1 << 12

// chunk is a single storage chunk within an arena allocator.
type chunk[T any] struct {
	buf []T // backing storage
	off int // carve offset within buf
}

// ArenaAllocator is a chunked bump allocator implementing Allocator.
// Blocks are carved sequentially from element-typed chunks; individual
// blocks are never reclaimed, so Free is a no-op and storage is recovered
// in bulk with Reset or Release. One arena may back many containers; all
// operations are safe for concurrent use.
//
// Typical usage: create one arena per workload phase, point several
// short-lived vectors at it, then Reset() at the end of the phase.
type ArenaAllocator[T any] struct {
	mu         sync.Mutex
	chunks     []chunk[T]
	chunkElems int
	limit      int // max elements handed out, 0 means unlimited
	inUse      int // elements currently carved out
}

// NewArena creates an arena allocator with the specified chunk capacity in
// elements. If chunkElems <= 0, DefaultChunkElems is used.
func NewArena[T any](chunkElems int) *ArenaAllocator[T] {
	if chunkElems <= 0 {
		chunkElems = DefaultChunkElems
	}
	a := &ArenaAllocator[T]{chunkElems: chunkElems}
	a.grow(chunkElems)
	return a
}

// NewArenaWithLimit creates an arena allocator that refuses to carve out
// more than limit elements in total between resets. A limit <= 0 means
// unlimited.
func NewArenaWithLimit[T any](chunkElems, limit int) *ArenaAllocator[T] {
	a := NewArena[T](chunkElems)
	if limit > 0 {
		a.limit = limit
	}
	return a
}

// Alloc carves a block of n zero-valued elements out of the arena.
// Returns nil storage if n <= 0, and ErrAllocFailure when a configured
// limit would be exceeded. The block's capacity equals n, so callers
// cannot grow it into neighbouring carves.
func (a *ArenaAllocator[T]) Alloc(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.panicIfReleased()

	if a.limit > 0 && a.inUse+n > a.limit {
		return nil, fmt.Errorf("xvec: arena limit %d reached (in use %d, requested %d): %w",
			a.limit, a.inUse, n, ErrAllocFailure)
	}

	c := &a.chunks[len(a.chunks)-1]
	if c.off+n > len(c.buf) {
		a.grow(n)
		c = &a.chunks[len(a.chunks)-1]
	}

	block := c.buf[c.off : c.off+n : c.off+n]
	clear(block)
	c.off += n
	a.inUse += n
	return block, nil
}

// Free is a no-op. Arena storage is reclaimed in bulk with Reset or Release.
func (a *ArenaAllocator[T]) Free([]T) {}

// EnsureCapacity ensures the current chunk can carve at least n more
// elements without growing mid-allocation, adding a chunk if needed.
func (a *ArenaAllocator[T]) EnsureCapacity(n int) {
	if n <= 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.panicIfReleased()
	c := &a.chunks[len(a.chunks)-1]
	if c.off+n > len(c.buf) {
		a.grow(n)
	}
}

// Reset rewinds all carve offsets to zero and zeroes chunk storage so that
// values referenced by retired carves become collectible. Chunks are kept
// for reuse. O(total capacity).
func (a *ArenaAllocator[T]) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.panicIfReleased()
	for i := range a.chunks {
		clear(a.chunks[i].buf)
		a.chunks[i].off = 0
	}
	a.inUse = 0
}

// Release drops all chunks and makes the arena unusable. Any subsequent
// Alloc, EnsureCapacity or Reset panics.
func (a *ArenaAllocator[T]) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.chunks = nil
	a.inUse = 0
}

// grow appends a new chunk of at least min elements. Caller holds mu (or is
// a constructor).
func (a *ArenaAllocator[T]) grow(min int) {
	size := a.chunkElems
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, size)})
}

// panicIfReleased panics if the arena has been released. Caller holds mu.
func (a *ArenaAllocator[T]) panicIfReleased() {
	if a.chunks == nil {
		panic("xvec: arena use after Release()")
	}
}
