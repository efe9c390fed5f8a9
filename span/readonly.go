package span

import (
	"iter"
	"unsafe"
)

// ReadOnly is a Span that gives no way to modify or take the address of its elements.
type ReadOnly[T any] struct {
	s Span[T]
}

// ReadOnly returns a read-only view of the same memory.
func (s Span[T]) ReadOnly() ReadOnly[T] {
	return ReadOnly[T]{s: s}
}

// String returns a read-only byte view of str without copying it.
func String(str string) ReadOnly[byte] {
	return ReadOnly[byte]{s: Span[byte]{elems: unsafe.Slice(unsafe.StringData(str), len(str))}}
}

func (r ReadOnly[T]) Len() int { return r.s.Len() }
func (r ReadOnly[T]) SizeBytes() int { return r.s.SizeBytes() }
func (r ReadOnly[T]) Empty() bool { return r.s.Empty() }
func (r ReadOnly[T]) Extent() int { return r.s.Extent() }
func (r ReadOnly[T]) At(i int) T { return r.s.At(i) }
func (r ReadOnly[T]) Front() T { return r.s.Front() }
func (r ReadOnly[T]) Back() T { return r.s.Back() }
func (r ReadOnly[T]) Get(i int) (T, error) {
	return r.s.Get(i)
}

// Addr returns the address of the first element for identity comparisons.
func (r ReadOnly[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(r.s.Data()))
}

func (r ReadOnly[T]) First(n int) ReadOnly[T] {
	return ReadOnly[T]{s: r.s.First(n)}
}

func (r ReadOnly[T]) Last(n int) ReadOnly[T] {
	return ReadOnly[T]{s: r.s.Last(n)}
}

func (r ReadOnly[T]) Subspan(off, n int) ReadOnly[T] {
	return ReadOnly[T]{s: r.s.Subspan(off, n)}
}

func (r ReadOnly[T]) Values() iter.Seq[T] {
	return r.s.Values()
}

func (r ReadOnly[T]) ReverseValues() iter.Seq[T] {
	return r.s.ReverseValues()
}

// Clone returns a copy of the elements that the caller owns.
func (r ReadOnly[T]) Clone() []T {
	c := make([]T, r.s.Len())
	copy(c, r.s.elems)
	return c
}

// CastReadOnly is Cast for read-only views.
func CastReadOnly[U, T any](r ReadOnly[T]) (ReadOnly[U], error) {
	s, err := Cast[U](r.s)
	if err != nil {
		return ReadOnly[U]{}, err
	}
	return ReadOnly[U]{s: s}, nil
}
