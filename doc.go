// Package xvec implements sequence containers that own their storage: a
// growable Vector and a fixed-capacity Array, generic over the element
// type, with backing storage acquired through a pluggable Allocator.
//
// # Overview
//
// A Vector keeps an explicit split between size (live elements) and
// capacity (allocated slots) and manages that storage itself instead of
// leaning on built-in append. This is particularly useful for:
//
//   - Predictable growth: first allocation holds one element, then
//     capacity doubles; Resize beyond capacity allocates the exact size
//   - Element-lifetime hygiene: every slot leaving the live range is
//     zeroed, so references held by removed elements become collectible
//   - Pluggable allocation strategies: heap, chunked arena, pool recycling
//   - Growth diagnostics: migration and allocator-call counters
//
// # Basic Usage
//
//	v := xvec.New[string]()
//	if err := v.Append("hello"); err != nil {
//		// only an allocator can fail an append
//	}
//
//	val, err := v.At(0)   // checked: ErrOutOfRange outside [0, Len())
//	first := v.Get(0)     // unchecked: caller guarantees the range
//
//	for i, s := range v.All() {
//		fmt.Println(i, s)
//	}
//
// # Allocators
//
// Storage strategies implement Allocator and may be shared between
// containers:
//
//	arena := xvec.NewArena[int](0) // default chunk size
//	defer arena.Release()          // bulk cleanup
//
//	v := xvec.NewWith[int](arena)
//	w := xvec.NewWith[int](arena) // same arena, independent vectors
//
// A Registry maps strategy names ("heap", "arena", "pool") to factories so
// the choice can come from a flag or a config file.
//
// # Thread Safety
//
// Vector and Array are not thread-safe; concurrent use requires external
// serialization. SafeVector wraps a Vector with one mutex:
//
//	sv := xvec.NewSafe[int]()
//	_ = sv.Append(1) // safe from any goroutine
//
// Allocators themselves tolerate concurrent Alloc/Free, so one arena can
// back vectors owned by different goroutines.
//
// # Storage Lifecycle
//
// Shrinking operations (Pop, EraseAt, Resize to a smaller size, Reset)
// retain capacity for reuse. Clear is the only operation that releases
// storage back to the allocator. Growth migrates the live prefix into a
// fresh block and zeroes the old one before retiring it.
//
// # Performance Characteristics
//
//   - Append: O(1) amortized
//   - Pop, At, SetAt, Get, Set: O(1)
//   - EraseAt: O(Len() - pos)
//   - Clear: O(Len()) zeroing plus one Free
//   - Arena Reset: O(total chunk capacity), chunks kept for reuse
//
// # Important Notes
//
//   - Slice() views are invalidated by any migrating or shrinking operation
//   - Checked operations report ErrOutOfRange; unchecked ones do not guard
//   - Allocation failure (such as an arena limit) surfaces as
//     ErrAllocFailure from Append, AppendSlice, Resize and ResizeWith
//   - Using an arena allocator after Release() panics
//
// # Metrics and Monitoring
//
// Containers and arenas expose snapshot metrics for growth analysis:
//
//	m := v.Metrics()
//	fmt.Printf("utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("migrations: %d, elements moved: %d\n", m.Grows, m.ElemsMoved)
package xvec
