package seqs_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rangekit/seqs"
	"rangekit/span"
)

func isEven(x int) bool { return x%2 == 0 }

func TestAdapters(t *testing.T) {
	v := []int{1, 2, 3, 4, 5}

	t.Run("All", func(t *testing.T) {
		assert.Equal(t, 15, seqs.Sum(seqs.All(v)))
	})

	t.Run("Filter", func(t *testing.T) {
		r := seqs.Filter(seqs.All(v), isEven)
		assert.Equal(t, []int{2, 4}, slices.Collect(r))
		assert.Equal(t, 6, seqs.Sum(r))
	})

	t.Run("Map", func(t *testing.T) {
		r := seqs.Map(seqs.All(v), func(x int) int { return x * 2 })
		assert.Equal(t, 30, seqs.Sum(r))
	})

	t.Run("MapProjection", func(t *testing.T) {
		type record struct {
			id   int
			name string
		}
		records := []record{{1, "Alice"}, {2, "Bob"}, {3, "Charlie"}}

		names := seqs.Map(seqs.All(records), func(r record) string { return r.name })
		got := seqs.Reduce(names, "", func(acc, s string) string { return acc + s })
		assert.Equal(t, "AliceBobCharlie", got)
	})

	t.Run("Take", func(t *testing.T) {
		assert.Equal(t, 6, seqs.Sum(seqs.Take(seqs.All(v), 3)))
		assert.Equal(t, v, slices.Collect(seqs.Take(seqs.All(v), 10)))
		assert.Empty(t, slices.Collect(seqs.Take(seqs.All(v), 0)))
	})

	t.Run("TakeWhile", func(t *testing.T) {
		r := seqs.TakeWhile(seqs.All(v), func(x int) bool { return x < 4 })
		for x := range r {
			assert.Less(t, x, 4)
		}
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(r))
	})

	t.Run("Drop", func(t *testing.T) {
		assert.Equal(t, 9, seqs.Sum(seqs.Drop(seqs.All(v), 3)))
		assert.Empty(t, slices.Collect(seqs.Drop(seqs.All(v), 6)))
		assert.Equal(t, v, slices.Collect(seqs.Drop(seqs.All(v), 0)))
	})

	t.Run("DropWhile", func(t *testing.T) {
		r := seqs.DropWhile(seqs.All(v), func(x int) bool { return x < 3 })
		assert.Equal(t, 12, seqs.Sum(r))
		// only the leading run is dropped
		r = seqs.DropWhile(seqs.All([]int{1, 5, 1}), func(x int) bool { return x < 3 })
		assert.Equal(t, []int{5, 1}, slices.Collect(r))
	})

	t.Run("Common", func(t *testing.T) {
		r := seqs.Common[int](seqs.Of(v))
		assert.Equal(t, 15, seqs.Sum(r))
		assert.Equal(t, v, slices.Collect(r))
	})

	t.Run("Reverse", func(t *testing.T) {
		r := seqs.ReverseSlice(v)
		assert.Equal(t, []int{5, 4, 3, 2, 1}, slices.Collect(r))
		assert.Equal(t, 15, seqs.Sum(r))
		last, ok := seqs.Last(r)
		assert.True(t, ok)
		assert.Equal(t, 1, last)

		s := span.New(v)
		assert.Equal(t, []int{5, 4, 3, 2, 1}, slices.Collect(seqs.Reverse[int](s)))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, v)
	})
}

func TestJoin(t *testing.T) {
	t.Run("Nested", func(t *testing.T) {
		vv := [][]int{{1, 2}, {3, 4}, {5}}

		r := seqs.JoinSlices(seqs.All(vv))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(r))
		assert.Equal(t, 15, seqs.Sum(r))

		inner := seqs.Map(seqs.All(vv), seqs.All[int])
		assert.Equal(t, slices.Collect(r), slices.Collect(seqs.Join(inner)))
	})

	t.Run("Strings", func(t *testing.T) {
		vs := []string{"Alice", "Bob", "Charlie"}
		var sb strings.Builder
		for c := range seqs.JoinStrings(seqs.All(vs)) {
			sb.WriteRune(c)
		}
		assert.Equal(t, "AliceBobCharlie", sb.String())
	})

	t.Run("LengthIsSumOfInner", func(t *testing.T) {
		vv := [][]int{{}, {1}, {2, 3, 4}, {}, {5, 6}}
		want := 0
		for _, inner := range vv {
			want += len(inner)
		}
		assert.Equal(t, want, seqs.Count(seqs.JoinSlices(seqs.All(vv))))
	})
}

func TestAdapters_Lazy(t *testing.T) {
	v := []int{1, 2, 3, 4, 5}
	pulled := 0
	source := seqs.Peek(seqs.All(v), func(int) { pulled++ })

	r := seqs.Take(seqs.Map(seqs.Filter(source, isEven), func(x int) int { return x * 10 }), 1)
	assert.Zero(t, pulled, "building a view must not read the source")

	first, ok := seqs.First(r)
	assert.True(t, ok)
	assert.Equal(t, 20, first)
	assert.Equal(t, 2, pulled, "only elements up to the first even one are read")

	// restartable: the slice source yields the same elements again
	assert.Equal(t, []int{20}, slices.Collect(r))
}

func TestAdapters_Properties(t *testing.T) {
	inputs := [][]int{
		{},
		{7},
		{1, 2, 3, 4, 5},
		{5, -3, 8, 8, 0, 11, -2, 4},
	}

	for _, s := range inputs {
		// filter keeps the relative order of the kept elements
		var want []int
		for _, x := range s {
			if isEven(x) {
				want = append(want, x)
			}
		}
		assert.Equal(t, want, slices.Collect(seqs.Filter(seqs.All(s), isEven)))

		// map keeps length and position
		mapped := slices.Collect(seqs.Map(seqs.All(s), func(x int) int { return x*x + 1 }))
		assert.Len(t, mapped, len(s))
		for i, x := range s {
			assert.Equal(t, x*x+1, mapped[i])
		}

		for n := 0; n <= len(s)+1; n++ {
			prefix := slices.Collect(seqs.Take(seqs.All(s), n))
			assert.Len(t, prefix, min(n, len(s)))

			first := seqs.Sum(seqs.Take(seqs.All(s), n))
			direct := 0
			for _, x := range s[:min(n, len(s))] {
				direct += x
			}
			assert.Equal(t, direct, first)

			// take(n) followed by drop(n) rebuilds the input
			whole := seqs.Concat(seqs.Take(seqs.All(s), n), seqs.Drop(seqs.All(s), n))
			assert.Equal(t, s, append([]int{}, slices.Collect(whole)...))
		}
	}
}
