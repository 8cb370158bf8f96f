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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plain builds an unbalanced tree through the underlying binary tree only.
func plain(keys ...int) *Tree[int, string] {
	tree := New[int, string]()
	for _, k := range keys {
		tree.base.Insert(k, "")
	}
	return tree
}

func TestRotateLeftAtRoot(t *testing.T) {
	tree := plain(1, 3, 2, 4)
	one := tree.Lookup(1)
	three := tree.Lookup(3)

	tree.rotateLeft(one, three)

	require.Same(t, three, tree.Root())
	assert.Nil(t, three.Parent())
	assert.Same(t, one, three.Left())
	assert.Same(t, three, one.Parent())
	// the inner sub-tree moves across
	assert.Equal(t, 2, one.Right().Key())
	assert.Same(t, one, one.Right().Parent())
	assert.Equal(t, 4, three.Right().Key())
	require.NoError(t, tree.base.CheckLinks())
	assert.Equal(t, []int{1, 2, 3, 4}, tree.Keys())
}

func TestRotateRightBelowRoot(t *testing.T) {
	tree := plain(10, 8, 6, 7, 12)
	ten := tree.Lookup(10)
	eight := tree.Lookup(8)
	six := tree.Lookup(6)

	tree.rotateRight(eight, six)

	assert.Same(t, six, ten.Left())
	assert.Same(t, ten, six.Parent())
	assert.Same(t, eight, six.Right())
	assert.Equal(t, 7, eight.Left().Key())
	assert.Nil(t, eight.Right())
	require.NoError(t, tree.base.CheckLinks())
	assert.Equal(t, []int{6, 7, 8, 10, 12}, tree.Keys())
}

func TestRemoveFixPanicsOnCorruption(t *testing.T) {
	tree := build(t, 2, 1)
	// claim a right child that does not exist
	tree.Lookup(1).SetBalance(1)

	require.PanicsWithValue(t, ErrCorrupt, func() {
		tree.removeFix(tree.Root(), -1)
	})
}

func TestCheckDetectsDamage(t *testing.T) {
	t.Run("wrong balance", func(t *testing.T) {
		tree := build(t, 2, 1, 3)
		tree.Lookup(3).SetBalance(1)
		require.ErrorIs(t, tree.Check(), ErrUnbalanced)
	})

	t.Run("too deep", func(t *testing.T) {
		tree := plain(1, 2, 3)
		tree.Lookup(1).SetBalance(2)
		tree.Lookup(2).SetBalance(1)
		require.ErrorIs(t, tree.Check(), ErrUnbalanced)
	})

	t.Run("keys out of order", func(t *testing.T) {
		tree := build(t, 2, 1, 3)
		tree.base.NodeSwap(tree.Lookup(1), tree.Lookup(3))
		require.ErrorIs(t, tree.Check(), ErrOrder)
	})

	t.Run("healthy", func(t *testing.T) {
		require.NoError(t, build(t, 5, 3, 8, 1, 4).Check())
	})
}
