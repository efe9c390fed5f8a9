package span

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned by the checked accessors when an index or
	// sub-view lies outside the span.
	ErrOutOfRange = errors.New("span: out of range")
	// ErrExtentMismatch is returned when a fixed-extent span is built from a
	// slice of a different length.
	ErrExtentMismatch = errors.New("span: extent mismatch")
	// ErrSizeMismatch is returned when reinterpreting elements of a different size.
	ErrSizeMismatch = errors.New("span: element size mismatch")
	// ErrPointerElement is returned when reinterpreting to or from an element
	// type that holds pointers.
	ErrPointerElement = errors.New("span: element type holds pointers")
)
