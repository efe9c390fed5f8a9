package lists

import "iter"

/*
Cursor is a bidirectional position in a LinkedList.
Stepping off either end leaves the cursor on a sentinel, where it is invalid
but can step back.
*/
type Cursor[T any] struct {
	current *node[T]
	list    *LinkedList[T]
}

// FrontCursor returns a cursor at the first element.
// For an empty list the cursor is invalid.
func (ll *LinkedList[T]) FrontCursor() *Cursor[T] {
	return &Cursor[T]{current: ll.headSentinel.next, list: ll}
}

// BackCursor returns a cursor at the last element.
// For an empty list the cursor is invalid.
func (ll *LinkedList[T]) BackCursor() *Cursor[T] {
	return &Cursor[T]{current: ll.tailSentinel.prev, list: ll}
}

// IsValid checks if the cursor is at an element rather than a sentinel.
func (c *Cursor[T]) IsValid() bool {
	return c.current != nil && c.list != nil &&
		c.current != c.list.headSentinel && c.current != c.list.tailSentinel
}

// Value returns the element under the cursor, or the zero value when the cursor is invalid.
func (c *Cursor[T]) Value() (val T) {
	if !c.IsValid() {
		return val
	}
	return c.current.val
}

// Next moves the cursor one element towards the back.
func (c *Cursor[T]) Next() {
	if c.current == nil || c.current == c.list.tailSentinel {
		return
	}
	c.current = c.current.next
}

// Prev moves the cursor one element towards the front.
func (c *Cursor[T]) Prev() {
	if c.current == nil || c.current == c.list.headSentinel {
		return
	}
	c.current = c.current.prev
}

// Seq yields the elements from the cursor to the back. The cursor does not move.
func (c *Cursor[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !c.IsValid() {
			return
		}
		for current := c.current; current != c.list.tailSentinel; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

// BackwardSeq yields the elements from the cursor to the front. The cursor does not move.
func (c *Cursor[T]) BackwardSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !c.IsValid() {
			return
		}
		for current := c.current; current != c.list.headSentinel; current = current.prev {
			if !yield(current.val) {
				return
			}
		}
	}
}
