package seqs

import "iter"

func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Join flattens one level of nesting: the inner sequences are concatenated
// in outer-then-inner order.
func Join[T any](nested iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return FlatMap(nested, func(inner iter.Seq[T]) iter.Seq[T] {
		return inner
	})
}

// JoinSlices is Join for a sequence of slices.
func JoinSlices[T any](nested iter.Seq[[]T]) iter.Seq[T] {
	return FlatMap(nested, All[T])
}

// JoinStrings flattens a sequence of strings into its runes.
func JoinStrings(strs iter.Seq[string]) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for s := range strs {
			for _, r := range s {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// Reverse yields the elements of b from last to first.
// Nothing is copied; b walks itself backwards as elements are requested.
func Reverse[T any](b Bidirectional[T]) iter.Seq[T] {
	return b.ReverseValues()
}

// ReverseSlice yields the elements of s from last to first.
func ReverseSlice[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}
