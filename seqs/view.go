package seqs

import "iter"

// Pass describes how many times a Range may be traversed.
type Pass int

const (
	// SinglePass ranges are exhausted by their first traversal.
	SinglePass Pass = iota
	// MultiPass ranges yield the same elements on every traversal.
	MultiPass
)

func (p Pass) String() string {
	switch p {
	case SinglePass:
		return "single-pass"
	case MultiPass:
		return "multi-pass"
	default:
		return "unknown"
	}
}

// Range is a sequence that reports its traversal capability and, when known, its size.
type Range[T any] interface {
	// All returns the elements in order. Nothing is produced until the result is ranged over.
	All() iter.Seq[T]

	// Pass reports whether All may be called more than once.
	Pass() Pass

	// Len returns the number of elements and true, or 0 and false when the size
	// is not known ahead of traversal (streams, unbounded iota).
	Len() (int, bool)
}

// Bidirectional is a source that can be walked from either end.
type Bidirectional[T any] interface {
	Values() iter.Seq[T]
	ReverseValues() iter.Seq[T]
}

// View is the Range produced by the factories in this package.
// A View is a small value; copying it never copies elements.
type View[T any] struct {
	seq   iter.Seq[T]
	pass  Pass
	n     int
	sized bool

	// elems is the backing slice of a View built by Of.
	elems []T
}

func sizedView[T any](seq iter.Seq[T], n int) View[T] {
	return View[T]{seq: seq, pass: MultiPass, n: n, sized: true}
}

func unsizedView[T any](seq iter.Seq[T], pass Pass) View[T] {
	return View[T]{seq: seq, pass: pass}
}

// Of returns a multi-pass View over the elements of s.
// s is referenced, not copied: later writes to its elements are visible through the View.
func Of[T any](s []T) View[T] {
	v := sizedView(All(s), len(s))
	v.elems = s
	return v
}

func (v View[T]) All() iter.Seq[T] {
	if v.seq == nil {
		return func(func(T) bool) {}
	}
	return v.seq
}

func (v View[T]) Pass() Pass {
	return v.pass
}

func (v View[T]) Len() (int, bool) {
	if !v.sized {
		return 0, false
	}
	return v.n, true
}

// Empty reports whether the View has no elements.
// For views of unknown size this pulls at most one element.
func (v View[T]) Empty() bool {
	if v.sized {
		return v.n == 0
	}
	_, ok := First(v.All())
	return !ok
}

// Front returns the first element. It is the only element pulled.
func (v View[T]) Front() (T, bool) {
	return First(v.All())
}

// Common returns the canonical iter.Seq form of any Range.
// Order and values are unchanged; code that accepts only iter.Seq can consume it directly.
func Common[T any](r Range[T]) iter.Seq[T] {
	return r.All()
}
