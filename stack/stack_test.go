// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushPop(t *testing.T) {
	require := require.New(t)
	s := &Stack[int]{}

	require.Zero(s.Size())
	_, ok := s.Pop()
	require.False(ok)
	_, ok = s.Peek()
	require.False(ok)
	require.Nil(s.Ref())

	for i := 1; i <= 3; i++ {
		s.Push(i)
		v, ok := s.Peek()
		require.True(ok)
		require.Equal(i, v)
	}
	require.Equal(3, s.Size())

	for i := 3; i >= 1; i-- {
		v, ok := s.Pop()
		require.True(ok)
		require.Equal(i, v)
	}
	_, ok = s.Pop()
	require.False(ok)
	require.Zero(s.Size())
}

func TestRefMutation(t *testing.T) {
	require := require.New(t)
	s := &Stack[string]{}

	s.Push("bottom")
	s.Push("top")
	*s.Ref() = "replaced"

	v, ok := s.Pop()
	require.True(ok)
	require.Equal("replaced", v)
	v, ok = s.Pop()
	require.True(ok)
	require.Equal("bottom", v)
}

func TestValues(t *testing.T) {
	require := require.New(t)
	s := &Stack[int]{}
	s.Push(1)
	s.Push(2)
	s.Push(3)

	got := []int{}
	for v := range s.Values() {
		got = append(got, v)
	}
	require.Equal([]int{3, 2, 1}, got)

	// Values does not consume the stack.
	require.Equal(3, s.Size())
}

func TestDrain(t *testing.T) {
	require := require.New(t)
	s := &Stack[int]{}
	s.Push(1)
	s.Push(2)
	s.Push(3)

	got := []int{}
	for v := range s.Drain() {
		got = append(got, v)
	}
	require.Equal([]int{3, 2, 1}, got)
	require.Zero(s.Size())

	// An interrupted drain keeps the rest.
	s.Push(1)
	s.Push(2)
	for range s.Drain() {
		break
	}
	require.Equal(1, s.Size())
	v, ok := s.Peek()
	require.True(ok)
	require.Equal(1, v)
}
