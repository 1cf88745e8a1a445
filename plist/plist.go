// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package plist implements a persistent singly-linked list. Deriving a
// new list shares the nodes of the one it came from; shared nodes are
// never mutated, so any number of lists may alias the same chain and
// each remains valid independently.
package plist

import "iter"

// List is an immutable list value. The zero value is the empty list.
type List[T any] struct {
	head *node[T]
	size int
}

type node[T any] struct {
	next  *node[T]
	value T
}

// New returns the empty list.
func New[T any]() List[T] {
	return List[T]{}
}

// Cons returns the list whose head is [v] and whose tail is [l].
func Cons[T any](v T, l List[T]) List[T] {
	return l.Prepend(v)
}

// Prepend returns a new list with [v] at the front. l is unchanged and
// its nodes are shared as the new list's tail.
func (l List[T]) Prepend(v T) List[T] {
	return List[T]{
		head: &node[T]{next: l.head, value: v},
		size: l.size + 1,
	}
}

// Head returns the first value of l, or the zero value and false if l
// is empty.
func (l List[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Tail returns the list without its first value. The tail of the empty
// list is the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return l
	}
	return List[T]{head: l.head.next, size: l.size - 1}
}

// Len returns the number of values in l.
func (l List[T]) Len() int {
	return l.size
}

// Values returns an iterator over the values of l from front to back.
func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
