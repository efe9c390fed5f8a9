package seqs

import (
	"iter"
	"math"
)

// Empty returns a View with no elements. Its size is always known to be zero.
func Empty[T any]() View[T] {
	return sizedView(func(func(T) bool) {}, 0)
}

// Single returns a View holding exactly value.
func Single[T any](value T) View[T] {
	return sizedView(func(yield func(T) bool) {
		yield(value)
	}, 1)
}

// Iota returns the unbounded increasing sequence start, start+1, start+2, ...
//
// Its size is unknown. Pair it with Take, TakeWhile or another bound before
// handing it to anything that consumes the whole sequence (Sum, Count, Reduce).
func Iota[I Integer](start I) View[I] {
	return unsizedView(func(yield func(I) bool) {
		for i := start; ; i++ {
			if !yield(i) {
				return
			}
		}
	}, MultiPass)
}

// IotaRange returns start, start+1, ..., stop-1.
// When stop is not greater than start the View is empty. When the count does
// not fit in an int, Len reports the size as unknown.
func IotaRange[I Integer](start, stop I) View[I] {
	seq := func(yield func(I) bool) {
		for i := start; i < stop; i++ {
			if !yield(i) {
				return
			}
		}
	}
	if stop <= start {
		return sizedView(seq, 0)
	}
	// two's complement wrap-around keeps the difference exact for signed types
	d := uint64(stop) - uint64(start)
	if d > math.MaxInt {
		return unsizedView(seq, MultiPass)
	}
	return sizedView(seq, int(d))
}

// Repeat returns a View yielding value count times.
func Repeat[T any](value T, count int) View[T] {
	count = max(count, 0)
	return sizedView(func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}, count)
}

// Step yields start, start+step, ... up to but excluding end.
// A negative step counts down; a zero step yields nothing.
func Step(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}
