// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlkit/bst"
)

func build(t *testing.T, keys ...int) *Tree[int, string] {
	t.Helper()
	tree := New[int, string]()
	for _, k := range keys {
		tree.Insert(k, fmt.Sprintf("v%d", k))
		require.NoError(t, tree.Check(), "after insert %d", k)
	}
	return tree
}

// expectNode asserts the key and balance of a node and the keys of its
// children, 0 standing for no child.
func expectNode(t *testing.T, n *bst.Node[int, string], key int, balance int8, left, right int) {
	t.Helper()
	require.NotNil(t, n, "node %d", key)
	require.Equal(t, key, n.Key())
	require.Equal(t, balance, n.Balance(), "balance of %d", key)
	childKey := func(c *bst.Node[int, string]) int {
		if c == nil {
			return 0
		}
		return c.Key()
	}
	require.Equal(t, left, childKey(n.Left()), "left of %d", key)
	require.Equal(t, right, childKey(n.Right()), "right of %d", key)
}

func TestInsertSingleRotation(t *testing.T) {
	tree := build(t, 1, 2, 3)
	root := tree.Root()
	expectNode(t, root, 2, 0, 1, 3)
	expectNode(t, root.Left(), 1, 0, 0, 0)
	expectNode(t, root.Right(), 3, 0, 0, 0)

	mirror := build(t, 3, 2, 1)
	expectNode(t, mirror.Root(), 2, 0, 1, 3)
}

func TestInsertDoubleRotation(t *testing.T) {
	tree := build(t, 3, 1, 2)
	root := tree.Root()
	expectNode(t, root, 2, 0, 1, 3)
	expectNode(t, root.Left(), 1, 0, 0, 0)
	expectNode(t, root.Right(), 3, 0, 0, 0)

	mirror := build(t, 1, 3, 2)
	expectNode(t, mirror.Root(), 2, 0, 1, 3)
}

// The last key of each case lands under the inner grandchild so that the
// zig-zag rotation sees the given pre-rotation balance on it.
func TestInsertZigZagBalances(t *testing.T) {
	t.Run("left-right, node balance -1", func(t *testing.T) {
		tree := build(t, 50, 20, 70, 10, 30, 25)
		root := tree.Root()
		expectNode(t, root, 30, 0, 20, 50)
		expectNode(t, root.Left(), 20, 0, 10, 25)
		expectNode(t, root.Right(), 50, 1, 0, 70)
	})

	t.Run("left-right, node balance +1", func(t *testing.T) {
		tree := build(t, 50, 20, 70, 10, 30, 35)
		root := tree.Root()
		expectNode(t, root, 30, 0, 20, 50)
		expectNode(t, root.Left(), 20, -1, 10, 0)
		expectNode(t, root.Right(), 50, 0, 35, 70)
	})

	t.Run("right-left, node balance -1", func(t *testing.T) {
		tree := build(t, 50, 20, 70, 60, 80, 55)
		root := tree.Root()
		expectNode(t, root, 60, 0, 50, 70)
		expectNode(t, root.Left(), 50, 0, 20, 55)
		expectNode(t, root.Right(), 70, 1, 0, 80)
	})

	t.Run("right-left, node balance +1", func(t *testing.T) {
		tree := build(t, 50, 20, 70, 60, 80, 65)
		root := tree.Root()
		expectNode(t, root, 60, 0, 50, 70)
		expectNode(t, root.Left(), 50, -1, 20, 0)
		expectNode(t, root.Right(), 70, 0, 65, 80)
	})
}

func TestInsertOverwrite(t *testing.T) {
	tree := build(t, 5, 3, 8)
	n := tree.Lookup(3)

	require.False(t, tree.Insert(3, "again"))
	require.Same(t, n, tree.Lookup(3))
	require.Equal(t, 3, tree.Len())

	v, ok := tree.Find(3)
	require.True(t, ok)
	require.Equal(t, "again", v)
	require.Equal(t, []int{3, 5, 8}, tree.Keys())
	require.NoError(t, tree.Check())
}

func TestRoundTrip(t *testing.T) {
	tree := New[string, int]()
	require.True(t, tree.Insert("kiwi", 7))
	v, err := tree.At("kiwi")
	require.NoError(t, err)
	require.Equal(t, 7, v)

	_, err = tree.At("fig")
	require.ErrorIs(t, err, bst.ErrKeyNotFound)
	require.False(t, tree.Contains("fig"))
}

func TestRemoveRootWithTwoChildren(t *testing.T) {
	tree := build(t, 4, 2, 6, 1, 3, 5, 7)

	v, ok := tree.Remove(4)
	require.True(t, ok)
	require.Equal(t, "v4", v)
	require.NoError(t, tree.Check())

	root := tree.Root()
	expectNode(t, root, 3, 0, 2, 6)
	expectNode(t, root.Left(), 2, -1, 1, 0)
	// three levels of nodes, two edges from root to deepest leaf
	require.Equal(t, 3, tree.Height())
	require.Equal(t, []int{1, 2, 3, 5, 6, 7}, tree.Keys())
	require.Equal(t, 6, tree.Len())
}

func TestRemoveSingleRotation(t *testing.T) {
	t.Run("left child leaning, height drops", func(t *testing.T) {
		tree := build(t, 4, 2, 6, 1)
		tree.Remove(6)
		require.NoError(t, tree.Check())
		expectNode(t, tree.Root(), 2, 0, 1, 4)
	})

	t.Run("left child even, height kept", func(t *testing.T) {
		tree := build(t, 4, 2, 6, 1, 3)
		tree.Remove(6)
		require.NoError(t, tree.Check())
		root := tree.Root()
		expectNode(t, root, 2, 1, 1, 4)
		expectNode(t, root.Right(), 4, -1, 3, 0)
	})

	t.Run("right child even, height kept", func(t *testing.T) {
		tree := build(t, 2, 1, 4, 3, 5)
		tree.Remove(1)
		require.NoError(t, tree.Check())
		root := tree.Root()
		expectNode(t, root, 4, -1, 2, 5)
		expectNode(t, root.Left(), 2, 1, 0, 3)
	})
}

func TestRemoveDoubleRotationBalances(t *testing.T) {
	testCases := []struct {
		name   string
		keys   []int
		remove int
		root   [3]int // key, left, right
		left   [4]int // key, balance, left, right
		right  [4]int
	}{
		{
			name:   "left-right, grandchild 0",
			keys:   []int{4, 2, 6, 3},
			remove: 6,
			root:   [3]int{3, 2, 4},
			left:   [4]int{2, 0, 0, 0},
			right:  [4]int{4, 0, 0, 0},
		},
		{
			name:   "left-right, grandchild +1",
			keys:   []int{50, 20, 70, 10, 30, 80, 35},
			remove: 80,
			root:   [3]int{30, 20, 50},
			left:   [4]int{20, -1, 10, 0},
			right:  [4]int{50, 0, 35, 70},
		},
		{
			name:   "left-right, grandchild -1",
			keys:   []int{50, 20, 70, 10, 30, 80, 25},
			remove: 80,
			root:   [3]int{30, 20, 50},
			left:   [4]int{20, 0, 10, 25},
			right:  [4]int{50, 1, 0, 70},
		},
		{
			name:   "right-left, grandchild -1",
			keys:   []int{50, 20, 80, 90, 60, 10, 55},
			remove: 10,
			root:   [3]int{60, 50, 80},
			left:   [4]int{50, 0, 20, 55},
			right:  [4]int{80, 1, 0, 90},
		},
		{
			name:   "right-left, grandchild 0",
			keys:   []int{4, 2, 6, 5},
			remove: 2,
			root:   [3]int{5, 4, 6},
			left:   [4]int{4, 0, 0, 0},
			right:  [4]int{6, 0, 0, 0},
		},
		{
			name:   "right-left, grandchild +1",
			keys:   []int{50, 20, 80, 90, 60, 10, 65},
			remove: 10,
			root:   [3]int{60, 50, 80},
			left:   [4]int{50, -1, 20, 0},
			right:  [4]int{80, 0, 65, 90},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := build(t, tc.keys...)
			_, ok := tree.Remove(tc.remove)
			require.True(t, ok)
			require.NoError(t, tree.Check())

			root := tree.Root()
			expectNode(t, root, tc.root[0], 0, tc.root[1], tc.root[2])
			expectNode(t, root.Left(), tc.left[0], int8(tc.left[1]), tc.left[2], tc.left[3])
			expectNode(t, root.Right(), tc.right[0], int8(tc.right[1]), tc.right[2], tc.right[3])
		})
	}
}

func TestRemoveMissingKeyIsNoop(t *testing.T) {
	tree := build(t, 8, 4, 12, 2, 6)
	var before bytes.Buffer
	tree.Print(&before, bst.PrintOptions{Values: true, Balance: true})

	v, ok := tree.Remove(5)
	require.False(t, ok)
	require.Empty(t, v)

	var after bytes.Buffer
	tree.Print(&after, bst.PrintOptions{Values: true, Balance: true})
	require.Equal(t, before.String(), after.String())
	require.Equal(t, 5, tree.Len())

	empty := New[int, int]()
	_, ok = empty.Remove(1)
	require.False(t, ok)
	require.True(t, empty.IsEmpty())
}

func TestRemoveEverything(t *testing.T) {
	keys := []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15}
	tree := build(t, keys...)
	for _, k := range keys {
		_, ok := tree.Remove(k)
		require.True(t, ok, "remove %d", k)
		require.NoError(t, tree.Check(), "after remove %d", k)
	}
	require.True(t, tree.IsEmpty())
	require.Nil(t, tree.Root())
}

func TestSequentialInsertHeight(t *testing.T) {
	const n = 1000
	tree := New[int, int]()
	for i := 1; i <= n; i++ {
		tree.Insert(i, i)
	}
	require.NoError(t, tree.Check())
	require.Equal(t, n, tree.Len())
	require.LessOrEqual(t, float64(tree.Height()), MaxHeight(n))

	prev := 0
	for k, v := range tree.All() {
		require.Equal(t, prev+1, k)
		require.Equal(t, k, v)
		prev = k
	}
	require.Equal(t, n, prev)
}

func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	tree := New[int, int]()
	shadow := map[int]int{}

	for i := 0; i < 4000; i++ {
		key := rng.IntN(300)
		if rng.IntN(3) == 0 {
			v, ok := tree.Remove(key)
			sv, sok := shadow[key]
			require.Equal(t, sok, ok, "remove %d", key)
			require.Equal(t, sv, v, "remove %d", key)
			delete(shadow, key)
		} else {
			_, existed := shadow[key]
			require.Equal(t, !existed, tree.Insert(key, i), "insert %d", key)
			shadow[key] = i
		}
		require.NoError(t, tree.Check(), "step %d", i)
		require.Equal(t, len(shadow), tree.Len())
	}

	expected := make([]int, 0, len(shadow))
	for k := range shadow {
		expected = append(expected, k)
	}
	slices.Sort(expected)
	require.Equal(t, expected, tree.Keys())
	require.LessOrEqual(t, float64(tree.Height()), MaxHeight(tree.Len()))
	for k, v := range shadow {
		got, ok := tree.Find(k)
		require.True(t, ok)
		require.Equal(t, v, got)
	}
}

func TestNewFuncDescending(t *testing.T) {
	tree := NewFunc[string, int](func(a, b string) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		tree.Insert(k, i)
	}
	require.NoError(t, tree.Check())
	require.Equal(t, []string{"e", "d", "c", "b", "a"}, tree.Keys())
	require.Equal(t, "b", tree.Root().Key())
}
