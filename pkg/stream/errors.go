package stream

import (
	"errors"
	"fmt"

	"github.com/blockberries/sfstream/internal/wire"
)

// Sentinel errors for common conditions.
// These can be checked using errors.Is().
var (
	// ErrInsufficientData indicates fewer unread bytes than the operation needs.
	ErrInsufficientData = errors.New("sfstream: insufficient data")

	// ErrOutOfBounds indicates an offset outside [0, Len()].
	ErrOutOfBounds = errors.New("sfstream: offset out of bounds")

	// ErrCapacityExceeded indicates the stream could not grow to hold a write.
	ErrCapacityExceeded = errors.New("sfstream: capacity limit exceeded")

	// ErrInvalidArgument indicates a nil stream, nil writer or non-positive amount.
	ErrInvalidArgument = errors.New("sfstream: invalid argument")

	// ErrViewInvalidated indicates a View was used after the stream was
	// reallocated, purged or reset.
	ErrViewInvalidated = errors.New("sfstream: view used after buffer mutation")

	// ErrFrameTooLarge indicates a frame length above Limits.MaxFrameSize.
	ErrFrameTooLarge = errors.New("sfstream: frame too large")

	// ErrUnsupportedSize indicates an integer width other than 1, 2, 4 or 8.
	ErrUnsupportedSize = errors.New("sfstream: unsupported integer size")

	// ErrVarintOverflow indicates a varint that does not fit in 64 bits.
	ErrVarintOverflow = wire.ErrVarintOverflow

	// ErrInvalidUTF16 indicates an odd number of bytes for a UTF-16 string.
	ErrInvalidUTF16 = errors.New("sfstream: invalid UTF-16 data")
)

// DecodeError provides detailed context for read failures.
// It implements the error interface and supports error unwrapping.
type DecodeError struct {
	// Op is the operation that failed, such as "ReadUint32".
	Op string

	// Offset is the read position at which the operation started.
	Offset int

	// Message describes what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a formatted error message.
func (e *DecodeError) Error() string {
	if e.Op != "" {
		if e.Offset >= 0 {
			return fmt.Sprintf("sfstream: %s at offset %d: %s", e.Op, e.Offset, e.Message)
		}
		return fmt.Sprintf("sfstream: %s: %s", e.Op, e.Message)
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("sfstream: decode at offset %d: %s", e.Offset, e.Message)
	}
	return fmt.Sprintf("sfstream: decode: %s", e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether the error matches the target.
func (e *DecodeError) Is(target error) bool {
	return e.Cause != nil && errors.Is(e.Cause, target)
}

// NewDecodeErrorAt creates a new DecodeError for op at offset.
func NewDecodeErrorAt(op string, offset int, message string, cause error) *DecodeError {
	return &DecodeError{
		Op:      op,
		Offset:  offset,
		Message: message,
		Cause:   cause,
	}
}

// EncodeError provides detailed context for write failures.
type EncodeError struct {
	// Op is the operation that failed.
	Op string

	// Offset is the write position at which the operation started.
	Offset int

	// Written is the number of bytes that were stored before the failure.
	Written int

	// Message describes what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a formatted error message.
func (e *EncodeError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("sfstream: %s at offset %d: %s (%d bytes written)", e.Op, e.Offset, e.Message, e.Written)
	}
	return fmt.Sprintf("sfstream: encode: %s", e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether the error matches the target.
func (e *EncodeError) Is(target error) bool {
	return e.Cause != nil && errors.Is(e.Cause, target)
}

// NewEncodeErrorAt creates a new EncodeError for op at offset.
func NewEncodeErrorAt(op string, offset, written int, message string, cause error) *EncodeError {
	return &EncodeError{
		Op:      op,
		Offset:  offset,
		Written: written,
		Message: message,
		Cause:   cause,
	}
}

// IsInsufficientData reports whether err means the stream ran out of bytes.
// Streaming callers use it to wait for more input instead of failing.
func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData) || errors.Is(err, wire.ErrVarintTruncated)
}

// IsLimitExceeded returns true if the error indicates a configured limit was exceeded.
func IsLimitExceeded(err error) bool {
	switch {
	case errors.Is(err, ErrCapacityExceeded),
		errors.Is(err, ErrFrameTooLarge):
		return true
	default:
		return false
	}
}

// IsFatal returns true if the error indicates a programming error
// that should not occur in correct code.
func IsFatal(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrViewInvalidated),
		errors.Is(err, ErrUnsupportedSize):
		return true
	default:
		return false
	}
}
