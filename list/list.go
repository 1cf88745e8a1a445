// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

// List implements a doubly-linked list with asymmetric links. The
// chain of [next] pointers starting at [head] is the owning path that
// reaches every element exactly once; [prev] pointers and [tail] are
// non-owning back-references kept only for O(1) back access and
// reverse traversal, and are maintained as the exact inverse of the
// forward chain on every mutation.
//
// It offers similar functionality as container/list but uses generics
// and supports push/pop/peek at both ends.
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type List[T any] struct {
	head *Element[T]
	tail *Element[T]
	size int
}

type Element[T any] struct {
	next *Element[T] // owning link, nil at the back
	prev *Element[T] // back-reference, nil at the front

	value T
}

// Next returns the element after e, or nil if e is the last element.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// Prev returns the element before e, or nil if e is the first element.
func (e *Element[T]) Prev() *Element[T] {
	return e.prev
}

func (e *Element[T]) Value() T {
	return e.value
}

// Ref returns a pointer to the element's value for in-place mutation.
// Mutating the value never changes the element's position in the list.
func (e *Element[T]) Ref() *T {
	return &e.value
}

// Size returns the number of elements in l.
func (l *List[T]) Size() int {
	return l.size
}

// First returns the first element of l, or nil if l is empty.
func (l *List[T]) First() *Element[T] {
	return l.head
}

// Last returns the last element of l, or nil if l is empty.
func (l *List[T]) Last() *Element[T] {
	return l.tail
}

// PushFront inserts [v] at the front of l and returns the new element.
func (l *List[T]) PushFront(v T) *Element[T] {
	e := &Element[T]{value: v, next: l.head}
	if l.head == nil {
		l.tail = e
	} else {
		l.head.prev = e
	}
	l.head = e
	l.size++
	return e
}

// PushBack inserts [v] at the back of l and returns the new element.
func (l *List[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.size++
	return e
}

// PopFront removes and returns the first value of l. It returns the
// zero value and false if l is empty.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	e := l.head
	l.head = e.next
	if l.head == nil {
		// The list just became empty, so the tail back-reference
		// must be dropped with the last element.
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	e.next = nil
	l.size--
	return e.value, true
}

// PopBack removes and returns the last value of l. It returns the
// zero value and false if l is empty.
//
// Unlike PopFront, the departing element is not reachable through an
// owning link held by l itself: it is unlinked through its
// predecessor's [next] pointer, found by following the non-owning
// [prev] back-reference.
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	e := l.tail
	l.tail = e.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	e.prev = nil
	l.size--
	return e.value, true
}

// PeekFront returns the first value of l without removing it. It
// returns the zero value and false if l is empty.
func (l *List[T]) PeekFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// PeekBack returns the last value of l without removing it. It
// returns the zero value and false if l is empty.
func (l *List[T]) PeekBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}
