package persistent

import (
	"errors"
	"fmt"
)

// Errors returned by operations on sequences. Sub-packages wrap them with context,
// clients should test with errors.Is.
var (
	// ErrEmptyCollection is returned when an operation requires at least one element.
	ErrEmptyCollection = errors.New("persistent: operation on empty collection")

	// ErrIndexOutOfRange is returned for a scalar index outside the bounds of a sequence.
	ErrIndexOutOfRange = errors.New("persistent: index out of range")

	// ErrNegativeIndex is returned by operations which accept non-negative indices only.
	ErrNegativeIndex = errors.New("persistent: negative index")

	// ErrLengthMismatch is returned when zipping sequences of different length.
	ErrLengthMismatch = errors.New("persistent: sequences differ in length")

	// ErrInvalidSize is returned for chunk sizes and worker counts less than 1.
	ErrInvalidSize = errors.New("persistent: size must be positive")

	// ErrNotASequence is the cause of a ValidationError for input which is not an
	// ordered sequence.
	ErrNotASequence = errors.New("persistent: input is not an ordered sequence")
)

// ValidationError reports an element of an input sequence which failed validation.
// Index is the position of the element, or -1 if the input as a whole has been rejected.
type ValidationError struct {
	Index int
	Cause error
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("validation failed: %v", e.Cause)
	}
	return fmt.Sprintf("validation failed at index %d: %v", e.Index, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// IndexError wraps ErrIndexOutOfRange with the offending index and the sequence length.
func IndexError(i, length int) error {
	return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, length)
}

// NegativeIndexError wraps ErrNegativeIndex with the offending index.
func NegativeIndexError(i int) error {
	return fmt.Errorf("%w: %d", ErrNegativeIndex, i)
}
