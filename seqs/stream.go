package seqs

import (
	"bufio"
	"io"
	"iter"
	"strconv"

	"github.com/pkg/errors"
)

// Stream is a single-pass Range whose elements are parsed from tokens of an io.Reader.
//
// Each step of a traversal reads exactly one token. The number of elements is
// never known in advance. A Stream can only be traversed once: the first call
// to All owns the reader, and any later traversal yields nothing.
type Stream[T any] struct {
	scanner *bufio.Scanner
	parse   func(string) (T, error)
	started bool
	err     error
}

type StreamOption func(*streamConfig)

type streamConfig struct {
	split  bufio.SplitFunc
	buffer int
}

// WithSplitFunc sets how the input is cut into tokens. The default is bufio.ScanWords.
func WithSplitFunc(split bufio.SplitFunc) StreamOption {
	return func(c *streamConfig) {
		if split != nil {
			c.split = split
		}
	}
}

// WithMaxTokenSize raises the longest token the Stream accepts.
func WithMaxTokenSize(size int) StreamOption {
	return func(c *streamConfig) {
		if size > 0 {
			c.buffer = size
		}
	}
}

// NewStream returns a Stream that reads tokens from r and converts them with parse.
// Reading stops at the end of input or at the first token parse rejects;
// see Err.
func NewStream[T any](r io.Reader, parse func(string) (T, error), opts ...StreamOption) *Stream[T] {
	cfg := streamConfig{split: bufio.ScanWords, buffer: bufio.MaxScanTokenSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	sc := bufio.NewScanner(r)
	sc.Split(cfg.split)
	sc.Buffer(make([]byte, 0, min(cfg.buffer, 4096)), cfg.buffer)
	return &Stream[T]{scanner: sc, parse: parse}
}

// Ints is a Stream of whitespace-separated decimal integers.
func Ints(r io.Reader, opts ...StreamOption) *Stream[int] {
	return NewStream(r, strconv.Atoi, opts...)
}

// Words is a Stream of the raw whitespace-separated tokens.
func Words(r io.Reader, opts ...StreamOption) *Stream[string] {
	return NewStream(r, func(s string) (string, error) { return s, nil }, opts...)
}

func (s *Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.started {
			return
		}
		s.started = true
		for s.scanner.Scan() {
			tok := s.scanner.Text()
			v, err := s.parse(tok)
			if err != nil {
				s.err = errors.Wrapf(err, "parse token %q", tok)
				return
			}
			if !yield(v) {
				return
			}
		}
		if err := s.scanner.Err(); err != nil {
			s.err = errors.Wrap(err, "read stream")
		}
	}
}

func (s *Stream[T]) Pass() Pass {
	return SinglePass
}

func (s *Stream[T]) Len() (int, bool) {
	return 0, false
}

// Err returns the read or parse error that ended the traversal, if any.
func (s *Stream[T]) Err() error {
	return s.err
}
