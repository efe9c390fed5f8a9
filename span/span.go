// Package span provides Span, a non-owning view over contiguous memory.
//
// A Span is a slice header plus an extent. Copying a Span copies the header,
// never the elements. The storage a Span refers to must outlive it, and must
// not be reallocated while the Span is in use: a Span built from a slice that
// later grows past its capacity keeps pointing at the old array.
//
// Element access (At, Ref, Front, Back) and the sub-view methods (First, Last,
// Subspan) do no checks beyond Go's own slice bounds, so misuse panics the
// same way indexing a slice does. Get and SubspanChecked are the checked
// alternatives and report ErrOutOfRange instead.
package span

import (
	"iter"
	"reflect"
	"slices"
	"unsafe"

	"github.com/pkg/errors"
)

// DynamicExtent is the extent of a span whose length is only known at run time.
const DynamicExtent = -1

// Span is a view over len contiguous elements of type T.
//
// The zero value is an empty span of dynamic extent.
type Span[T any] struct {
	elems []T
	fixed bool
}

// New returns a span over the elements of s.
// Pass arr[:] for an array. The span does not track later changes to len(s).
func New[T any](s []T) Span[T] {
	return Span[T]{elems: s}
}

// Fixed returns a span whose extent is fixed at n. It fails with
// ErrExtentMismatch unless len(s) == n.
func Fixed[T any](s []T, n int) (Span[T], error) {
	if len(s) != n {
		return Span[T]{}, errors.Wrapf(ErrExtentMismatch, "extent %d, got %d elements", n, len(s))
	}
	return Span[T]{elems: s, fixed: true}, nil
}

// FromPtr returns a span over n elements starting at p.
// p must point into an allocation holding at least n elements.
func FromPtr[T any](p *T, n int) Span[T] {
	return Span[T]{elems: unsafe.Slice(p, n)}
}

// FromPtrs returns a span over [first, last). Both pointers must point into the
// same allocation and last must not precede first.
func FromPtrs[T any](first, last *T) Span[T] {
	size := unsafe.Sizeof(*first)
	if size == 0 {
		return Span[T]{elems: unsafe.Slice(first, 0)}
	}
	n := int(uintptr(unsafe.Pointer(last))-uintptr(unsafe.Pointer(first))) / int(size)
	return Span[T]{elems: unsafe.Slice(first, n)}
}

// Bytes returns a span over a character buffer.
func Bytes(b []byte) Span[byte] {
	return New(b)
}

// Len returns the number of elements.
func (s Span[T]) Len() int {
	return len(s.elems)
}

// SizeBytes returns Len multiplied by the size of T.
func (s Span[T]) SizeBytes() int {
	var zero T
	return len(s.elems) * int(unsafe.Sizeof(zero))
}

func (s Span[T]) Empty() bool {
	return len(s.elems) == 0
}

// Extent returns the fixed element count, or DynamicExtent.
func (s Span[T]) Extent() int {
	if s.fixed {
		return len(s.elems)
	}
	return DynamicExtent
}

// Dynamic returns the same span with dynamic extent.
func (s Span[T]) Dynamic() Span[T] {
	s.fixed = false
	return s
}

// window is the single place sub-views are cut. The three-index form keeps
// off+n from reaching past len into spare capacity.
func (s Span[T]) window(off, n int, fixed bool) Span[T] {
	return Span[T]{elems: s.elems[off : off+n : len(s.elems)], fixed: fixed}
}

// First returns a span over the first n elements.
func (s Span[T]) First(n int) Span[T] {
	return s.window(0, n, false)
}

// Last returns a span over the last n elements.
func (s Span[T]) Last(n int) Span[T] {
	return s.window(len(s.elems)-n, n, false)
}

// Subspan returns a span over n elements starting at off.
// n == DynamicExtent selects everything from off to the end.
func (s Span[T]) Subspan(off, n int) Span[T] {
	if n == DynamicExtent {
		n = len(s.elems) - off
	}
	return s.window(off, n, false)
}

// FirstN is First with the result's extent fixed at n.
func (s Span[T]) FirstN(n int) Span[T] {
	return s.window(0, n, true)
}

// LastN is Last with the result's extent fixed at n.
func (s Span[T]) LastN(n int) Span[T] {
	return s.window(len(s.elems)-n, n, true)
}

// SubspanN is Subspan with the result's extent fixed at n.
func (s Span[T]) SubspanN(off, n int) Span[T] {
	return s.window(off, n, true)
}

// SubspanChecked is Subspan that reports ErrOutOfRange instead of panicking.
func (s Span[T]) SubspanChecked(off, n int) (Span[T], error) {
	if off < 0 || off > len(s.elems) {
		return Span[T]{}, errors.Wrapf(ErrOutOfRange, "offset %d, length %d", off, len(s.elems))
	}
	if n == DynamicExtent {
		n = len(s.elems) - off
	}
	if n < 0 || off+n > len(s.elems) {
		return Span[T]{}, errors.Wrapf(ErrOutOfRange, "offset %d count %d, length %d", off, n, len(s.elems))
	}
	return s.window(off, n, false), nil
}

func (s Span[T]) At(i int) T {
	return s.elems[i]
}

// Ref returns a pointer to the i-th element. Writes through it are visible in the underlying storage.
func (s Span[T]) Ref(i int) *T {
	return &s.elems[i]
}

// Get is the checked form of At.
func (s Span[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(s.elems) {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, len(s.elems))
	}
	return s.elems[i], nil
}

func (s Span[T]) Front() T {
	return s.elems[0]
}

func (s Span[T]) Back() T {
	return s.elems[len(s.elems)-1]
}

// Data returns the address of the first element. For an empty span it may be
// nil or may point just past a parent span's elements.
func (s Span[T]) Data() *T {
	return unsafe.SliceData(s.elems)
}

// Slice returns the viewed elements as a slice that shares storage with the span.
// Its capacity is capped at its length.
func (s Span[T]) Slice() []T {
	return s.elems[:len(s.elems):len(s.elems)]
}

func (s Span[T]) Values() iter.Seq[T] {
	return slices.Values(s.Slice())
}

func (s Span[T]) ReverseValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range slices.Backward(s.Slice()) {
			if !yield(v) {
				return
			}
		}
	}
}

func (s Span[T]) All() iter.Seq2[int, T] {
	return slices.All(s.Slice())
}

func (s Span[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(s.Slice())
}

// Same reports whether a and b view the same memory: equal address and length.
func Same[T any](a, b Span[T]) bool {
	return a.Data() == b.Data() && a.Len() == b.Len()
}

// Cast reinterprets the memory of s as elements of type U. It fails with
// ErrSizeMismatch unless U and T have the same size, so the byte size never
// changes, and with ErrPointerElement unless both types are free of pointers.
func Cast[U, T any](s Span[T]) (Span[U], error) {
	var (
		t T
		u U
	)
	if unsafe.Sizeof(t) != unsafe.Sizeof(u) {
		return Span[U]{}, errors.Wrapf(ErrSizeMismatch, "%d-byte element as %d-byte element", unsafe.Sizeof(t), unsafe.Sizeof(u))
	}
	for _, typ := range []reflect.Type{reflect.TypeFor[T](), reflect.TypeFor[U]()} {
		if !pointerFree(typ) {
			return Span[U]{}, errors.Wrapf(ErrPointerElement, "cast %s to %s", reflect.TypeFor[T](), reflect.TypeFor[U]())
		}
	}
	if s.Data() == nil {
		return Span[U]{fixed: s.fixed}, nil
	}
	return Span[U]{
		elems: unsafe.Slice((*U)(unsafe.Pointer(s.Data())), s.Len()),
		fixed: s.fixed,
	}, nil
}

// pointerFree reports whether values of typ are plain memory: numbers, bools,
// and arrays or structs built only from them.
func pointerFree(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(typ.Elem())
	case reflect.Struct:
		for i := range typ.NumField() {
			if !pointerFree(typ.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
