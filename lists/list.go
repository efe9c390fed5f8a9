// Package lists provides a doubly linked list.
//
// A LinkedList can be walked from either end but not indexed, so it is the
// plain bidirectional source: seqs.Reverse accepts it, while anything that
// needs random access (span, seqs.Split) does not.
package lists

import (
	"fmt"
	"iter"
	"strings"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func New[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	return ll
}

// Of returns a list holding values in order.
func Of[T any](values ...T) *LinkedList[T] {
	ll := New[T]()
	ll.PushBack(values...)
	return ll
}

// insertAfter links newNode right after at.
func (ll *LinkedList[T]) insertAfter(at *node[T], newNode *node[T]) {
	newNode.prev = at
	newNode.next = at.next
	at.next.prev = newNode
	at.next = newNode
	ll.size++
}

// PushBack appends values to the end of the list.
func (ll *LinkedList[T]) PushBack(values ...T) {
	for _, value := range values {
		ll.insertAfter(ll.tailSentinel.prev, &node[T]{val: value})
	}
}

// PushFront inserts value before the first element.
func (ll *LinkedList[T]) PushFront(value T) {
	ll.insertAfter(ll.headSentinel, &node[T]{val: value})
}

func (ll *LinkedList[T]) Len() int {
	return ll.size
}

// Front returns the first element, or false if the list is empty.
func (ll *LinkedList[T]) Front() (val T, ok bool) {
	if ll.size == 0 {
		return val, false
	}
	return ll.headSentinel.next.val, true
}

// Back returns the last element, or false if the list is empty.
func (ll *LinkedList[T]) Back() (val T, ok bool) {
	if ll.size == 0 {
		return val, false
	}
	return ll.tailSentinel.prev.val, true
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		current := ll.headSentinel.next
		for current != ll.tailSentinel {
			if !yield(current.val) {
				break
			}
			current = current.next
		}
	}
}

// ReverseValues walks the list from the back. No copy is made.
func (ll *LinkedList[T]) ReverseValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		current := ll.tailSentinel.prev
		for current != ll.headSentinel {
			if !yield(current.val) {
				break
			}
			current = current.prev
		}
	}
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	current := ll.headSentinel.next
	for current != ll.tailSentinel {
		fmt.Fprintf(&sb, "%v", current.val)
		if current.next != ll.tailSentinel {
			sb.WriteString(", ")
		}
		current = current.next
	}
	sb.WriteString("]")
	return sb.String()
}
