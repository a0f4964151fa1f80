package xvec

import "errors"

// Sentinel errors reported by checked container operations. Wrap-aware:
// callers should test with errors.Is.
var (
	// ErrOutOfRange is returned by checked element access (At, SetAt,
	// Front, Back) and by EraseAt/Resize when the requested position or
	// size is not valid for the current container state.
	ErrOutOfRange = errors.New("xvec: index out of range")

	// ErrAllocFailure is returned when an Allocator cannot satisfy a
	// requested capacity (for example an arena configured with a limit).
	// It is propagated to the caller unrecovered.
	ErrAllocFailure = errors.New("xvec: allocation failure")
)
