// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

import "iter"

// Iterator walks a list from both ends at once. Next and NextBack
// return pointers into the live elements, so callers may mutate values
// in place while iterating.
//
// The list's structure must not be modified while an iterator is in
// use; values obtained from it must not be used after the element they
// point into has been popped.
type Iterator[T any] struct {
	front *Element[T]
	back  *Element[T]
}

// Iter returns an iterator positioned at both ends of l.
func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{front: l.head, back: l.tail}
}

// Next yields the front cursor's value and advances forward, or
// returns nil once the iterator is exhausted.
//
// The cursors are compared by identity before advancing: when the
// front cursor reaches the same element as the back cursor, both are
// dropped so that alternating Next/NextBack calls yield every element
// exactly once. Comparing values instead would terminate early on
// duplicates.
func (it *Iterator[T]) Next() *T {
	e := it.front
	if e == nil {
		return nil
	}
	if e == it.back {
		it.front = nil
		it.back = nil
	} else {
		it.front = e.next
	}
	return &e.value
}

// NextBack yields the back cursor's value and advances backward along
// the prev back-references, or returns nil once the iterator is
// exhausted.
func (it *Iterator[T]) NextBack() *T {
	e := it.back
	if e == nil {
		return nil
	}
	if e == it.front {
		it.front = nil
		it.back = nil
	} else {
		it.back = e.prev
	}
	return &e.value
}

// Drain consumes a list as it iterates: every advance pops one element
// off the corresponding end. Once exhausted, the list is empty and may
// be reused.
type Drain[T any] struct {
	list *List[T]
}

// Drain returns a consuming iterator over l.
func (l *List[T]) Drain() *Drain[T] {
	return &Drain[T]{list: l}
}

// Next removes and returns the first remaining value, or the zero
// value and false once the list is empty.
func (d *Drain[T]) Next() (T, bool) {
	return d.list.PopFront()
}

// NextBack removes and returns the last remaining value, or the zero
// value and false once the list is empty.
func (d *Drain[T]) NextBack() (T, bool) {
	return d.list.PopBack()
}

// Values returns a forward iterator over the values of l, intended for
// use with a range statement.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over the values of l, walking
// the prev back-references from the tail.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.tail; e != nil; e = e.prev {
			if !yield(e.value) {
				return
			}
		}
	}
}
