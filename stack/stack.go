// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stack

import "iter"

// Stack implements a LIFO container backed by a single owning chain of
// nodes. There are no back-references: every node is reachable through
// exactly one path from the top.
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type Stack[T any] struct {
	top  *node[T]
	size int
}

type node[T any] struct {
	next  *node[T]
	value T
}

// Size returns the number of values in s.
func (s *Stack[T]) Size() int {
	return s.size
}

// Push places [v] on top of s.
func (s *Stack[T]) Push(v T) {
	s.top = &node[T]{next: s.top, value: v}
	s.size++
}

// Pop removes and returns the top value of s. It returns the zero
// value and false if s is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}
	n := s.top
	s.top = n.next
	n.next = nil
	s.size--
	return n.value, true
}

// Peek returns the top value of s without removing it. It returns the
// zero value and false if s is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}
	return s.top.value, true
}

// Ref returns a pointer to the top value for in-place mutation, or nil
// if s is empty.
func (s *Stack[T]) Ref() *T {
	if s.top == nil {
		return nil
	}
	return &s.top.value
}

// Values returns an iterator over the values of s from top to bottom,
// without removing them.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.top; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Drain returns a consuming iterator over s: every value yielded is
// popped first, so an interrupted drain leaves the remaining values on
// the stack.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
