package span

import "iter"

// The functions below mirror the iteration methods so that generic code can
// take either a method value or a plain function.

func Values[T any](s Span[T]) iter.Seq[T] {
	return s.Values()
}

func ReverseValues[T any](s Span[T]) iter.Seq[T] {
	return s.ReverseValues()
}

func All[T any](s Span[T]) iter.Seq2[int, T] {
	return s.All()
}

func Backward[T any](s Span[T]) iter.Seq2[int, T] {
	return s.Backward()
}
