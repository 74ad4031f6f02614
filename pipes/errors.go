package pipes

import "errors"

// Sentinel errors returned by Pipe operations.
var (
	// ErrSizeMismatch is returned by ToArray when the destination length
	// differs from the number of elements in the pipe.
	ErrSizeMismatch = errors.New("pipes: destination length does not match pipe size")

	// ErrElementType is returned by FromContainer when a container element
	// is not of the requested element type.
	ErrElementType = errors.New("pipes: container element has unexpected type")
)
