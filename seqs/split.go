package seqs

import (
	"iter"
	"slices"

	"github.com/eapache/queue"
	"github.com/pkg/errors"
)

// ErrSinglePass is returned by operations that must traverse their source more than once.
var ErrSinglePass = errors.New("seqs: range is single-pass")

// LazySplit splits seq into the segments between occurrences of delim.
// delim may be a single element or a run of elements; an empty delim
// puts every element in a segment of its own.
//
// LazySplit reads seq exactly once, so it works over single-pass sources such
// as a Stream. The price is that the segments share one cursor into seq:
//   - a segment must be ranged over before the outer sequence advances; a segment
//     left unread is skipped when the next one is requested
//   - ranging over a segment a second time resumes where the first pass stopped
//
// Empty input yields no segments. A trailing delimiter yields a trailing empty segment.
func LazySplit[T comparable](seq iter.Seq[T], delim ...T) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		next, stop := iter.Pull(seq)
		defer stop()

		s := &lazySplitter[T]{
			next:    next,
			delim:   delim,
			pending: queue.New(),
		}
		if !s.prime() {
			return
		}
		for {
			s.segDone = false
			if !yield(s.run) {
				return
			}
			// skip whatever the consumer left unread
			s.run(func(T) bool { return true })
			if !s.more {
				return
			}
		}
	}
}

type lazySplitter[T comparable] struct {
	next  func() (T, bool)
	delim []T

	held    T
	hasHeld bool

	// pending holds elements read from the source that still match a prefix of delim.
	pending *queue.Queue

	segDone bool
	more    bool

	// consumed counts the elements handed out by read.
	consumed int
}

// prime reports whether the source has at least one element.
func (s *lazySplitter[T]) prime() bool {
	v, ok := s.next()
	if !ok {
		return false
	}
	s.held, s.hasHeld = v, true
	return true
}

func (s *lazySplitter[T]) read() (T, bool) {
	if s.hasHeld {
		v := s.held
		var zero T
		s.held, s.hasHeld = zero, false
		s.consumed++
		return v, true
	}
	v, ok := s.next()
	if ok {
		s.consumed++
	}
	return v, ok
}

func (s *lazySplitter[T]) pendingIsPrefix() bool {
	for i := 0; i < s.pending.Length(); i++ {
		if s.pending.Get(i).(T) != s.delim[i] {
			return false
		}
	}
	return true
}

// run yields the rest of the current segment.
func (s *lazySplitter[T]) run(yield func(T) bool) {
	if len(s.delim) == 0 {
		s.runSingles(yield)
		return
	}
	for !s.segDone {
		for s.pending.Length() > 0 && !s.pendingIsPrefix() {
			if !yield(s.pending.Remove().(T)) {
				return
			}
		}
		if s.pending.Length() == len(s.delim) {
			for s.pending.Length() > 0 {
				s.pending.Remove()
			}
			s.segDone, s.more = true, true
			return
		}

		v, ok := s.read()
		if !ok {
			// an unfinished delimiter at the end belongs to the last segment
			s.segDone, s.more = true, false
			for s.pending.Length() > 0 {
				if !yield(s.pending.Remove().(T)) {
					return
				}
			}
			return
		}
		s.pending.Add(v)
	}
}

func (s *lazySplitter[T]) runSingles(yield func(T) bool) {
	if s.segDone {
		return
	}
	v, ok := s.read()
	s.segDone = true
	if !ok {
		s.more = false
		return
	}
	s.more = s.prime()
	yield(v)
}

// Split splits s into the sub-slices between occurrences of delim.
//
// Split needs random access to its source, so it only accepts slices; a
// single-pass source cannot be passed to it. The segments alias s and are
// capped so that appending to one never overwrites its neighbour. Because
// nothing is buffered, Split is the cheaper choice whenever the input is
// already in memory.
//
// The segment rules match LazySplit.
func Split[S ~[]E, E comparable](s S, delim ...E) iter.Seq[S] {
	return func(yield func(S) bool) {
		if len(s) == 0 {
			return
		}
		if len(delim) == 0 {
			for i := range s {
				if !yield(s[i : i+1 : i+1]) {
					return
				}
			}
			return
		}

		start := 0
		for i := 0; i+len(delim) <= len(s); {
			if slices.Equal([]E(s[i:i+len(delim)]), delim) {
				if !yield(s[start:i:i]) {
					return
				}
				i += len(delim)
				start = i
				continue
			}
			i++
		}
		yield(s[start:len(s):len(s)])
	}
}

// SplitRange splits a multi-pass Range. Each segment is an independent,
// restartable view into r, so segments may be kept and re-read in any order.
// It returns ErrSinglePass for single-pass ranges; use LazySplit for those.
//
// A View built by Of is split in place with Split. Any other Range is
// traversed once while the segments are read in order; a segment read again,
// or after the outer sequence has moved past it, scans r up to its offset.
func SplitRange[T comparable](r Range[T], delim ...T) (iter.Seq[iter.Seq[T]], error) {
	if r.Pass() != MultiPass {
		return nil, errors.Wrapf(ErrSinglePass, "split requires a multi-pass range, got %s", r.Pass())
	}
	if v, ok := r.(View[T]); ok && v.elems != nil {
		return Map(Split(v.elems, delim...), All[T]), nil
	}
	return func(yield func(iter.Seq[T]) bool) {
		next, stop := iter.Pull(r.All())
		defer stop()

		s := &lazySplitter[T]{
			next:    next,
			delim:   delim,
			pending: queue.New(),
		}
		if !s.prime() {
			return
		}
		for {
			s.segDone = false
			seg := &rangeSegment[T]{split: s, r: r, delim: delim, off: s.consumed}
			if !yield(seg.All) {
				return
			}
			s.run(func(T) bool { return true })

			seg.split = nil
			seg.n = s.consumed - seg.off
			if s.more {
				seg.n -= len(delim)
			}
			if !s.more {
				return
			}
		}
	}, nil
}

// rangeSegment is one segment of SplitRange. While split is set the segment is
// the current one and its first traversal reads from the shared cursor; once
// the outer sequence moves on, off and n locate it in r.
type rangeSegment[T comparable] struct {
	split   *lazySplitter[T]
	started bool

	r     Range[T]
	delim []T
	off   int
	n     int
}

func (g *rangeSegment[T]) All(yield func(T) bool) {
	if g.split != nil && !g.started {
		g.started = true
		g.split.run(yield)
		return
	}
	if g.split == nil {
		for v := range Take(Drop(g.r.All(), g.off), g.n) {
			if !yield(v) {
				return
			}
		}
		return
	}
	// re-read while still current: the end is not known yet
	for seg := range LazySplit(Drop(g.r.All(), g.off), g.delim...) {
		for v := range seg {
			if !yield(v) {
				return
			}
		}
		return
	}
}
