/*
Package seqs provides lazy views over Go 1.23+ iterators (iter.Seq).

A view describes a computation over a source; no element is produced until the
view is ranged over. Adapters compose by plain function application:

	evens := seqs.Filter(seqs.All(v), func(x int) bool { return x%2 == 0 })
	firstTwo := seqs.Take(evens, 2)

The package is organized as:

  - **Adapters**: [Filter], [Map], [Take], [TakeWhile], [Drop], [DropWhile],
    [Join], [JoinSlices], [JoinStrings], [Reverse], [Common].
  - **Splitting**: [LazySplit] for single-pass sources, [Split] and [SplitRange]
    for sources that can be scanned repeatedly.
  - **Factories**: [Of], [Empty], [Single], [Iota], [IotaRange], [Repeat] and
    the token-reading [Stream].
  - **Sinks**: [Sum], [Reduce], [Count], [First], [Last].

# Single-pass and multi-pass

Every factory returns a [Range], which reports its [Pass] and, when known, its
size. A slice-backed view can be traversed any number of times. A [Stream]
consumes its reader and can be traversed only once. Adapters inherit the
capability of their source.

# Unbounded views

[Iota] never ends and reports no size. Bound it with [Take] or [TakeWhile]
before passing it to a sink that consumes everything.
*/
package seqs
