package xvec

import "sync"

// Allocator abstracts how a container acquires and retires backing storage.
// Alloc returns a block of exactly n zero-valued element slots; implementations
// must bring recycled memory back to the zero state before handing it out, so
// a container never observes stale values in fresh storage. Free retires a
// block previously obtained from Alloc on the same allocator.
//
// Allocators may be shared between containers and must tolerate concurrent
// Alloc/Free calls; the containers themselves remain single-threaded.
type Allocator[T any] interface {
	// Alloc returns storage for n elements, all zero-valued.
	// Returns nil storage if n <= 0. Fails with ErrAllocFailure when the
	// allocator cannot satisfy the request.
	Alloc(n int) ([]T, error)

	// Free retires a block obtained from Alloc. Implementations that do
	// not reclaim individual blocks (such as arenas) may treat this as a
	// no-op.
	Free(block []T)
}

// HeapAllocator delegates to the Go runtime. Free is a no-op; the garbage
// collector reclaims retired blocks once the container drops its references.
// It is the default strategy for containers constructed without an explicit
// allocator.
type HeapAllocator[T any] struct{}

// Alloc returns a freshly made slice of n zero values.
func (HeapAllocator[T]) Alloc(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Free is a no-op for heap storage.
func (HeapAllocator[T]) Free([]T) {}

// DefaultPoolClass is the default recycled block capacity for PoolAllocator,
// in elements.
const DefaultPoolClass = 1024

// PoolAllocator recycles fixed-class blocks through a sync.Pool. Requests at
// or below the class size are served from the pool; larger requests fall
// through to the runtime and are never recycled. Blocks are zeroed when they
// are returned to the pool, so recycled storage is indistinguishable from
// fresh storage.
type PoolAllocator[T any] struct {
	class int
	pool  sync.Pool
}

// NewPool creates a PoolAllocator recycling blocks of the given element
// capacity. If class <= 0, DefaultPoolClass is used.
func NewPool[T any](class int) *PoolAllocator[T] {
	if class <= 0 {
		class = DefaultPoolClass
	}
	p := &PoolAllocator[T]{class: class}
	p.pool.New = func() any {
		b := make([]T, class)
		return &b
	}
	return p
}

// Alloc returns a zero-valued block of n elements. Blocks within the class
// size may be recycled ones; larger blocks come straight from the runtime.
func (p *PoolAllocator[T]) Alloc(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > p.class {
		return make([]T, n), nil
	}
	b := *p.pool.Get().(*[]T)
	return b[:n], nil
}

// Free returns class-sized blocks to the pool after zeroing them. Blocks of
// any other capacity are left to the garbage collector.
func (p *PoolAllocator[T]) Free(block []T) {
	if cap(block) != p.class {
		return
	}
	full := block[:p.class]
	clear(full)
	p.pool.Put(&full)
}

// Class returns the recycled block capacity of this pool, in elements.
func (p *PoolAllocator[T]) Class() int {
	return p.class
}
