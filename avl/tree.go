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
	"cmp"
	"io"
	"iter"
	"math"

	"github.com/cybrota/avlkit/bst"
)

// Tree is a height balanced binary search tree.
type Tree[K, V any] struct {
	base *bst.Tree[K, V]
}

// New creates an empty tree ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{base: bst.New[K, V]()}
}

// NewFunc creates an empty tree ordered by compare.
func NewFunc[K, V any](compare func(K, K) int) *Tree[K, V] {
	return &Tree[K, V]{base: bst.NewFunc[K, V](compare)}
}

// MaxHeight is the height an AVL tree of n nodes never exceeds.
func MaxHeight(n int) float64 {
	return 1.44 * math.Log2(float64(n+2))
}

// Root returns the root node or nil for an empty tree.
func (t *Tree[K, V]) Root() *bst.Node[K, V] {
	return t.base.Root()
}

// Len returns the number of keys.
func (t *Tree[K, V]) Len() int {
	return t.base.Len()
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.base.IsEmpty()
}

// Clear drops every node.
func (t *Tree[K, V]) Clear() {
	t.base.Clear()
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int {
	return t.base.Height()
}

// Find returns the value stored under key and whether it was present.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	return t.base.Find(key)
}

// At returns the value stored under key or an error wrapping
// bst.ErrKeyNotFound.
func (t *Tree[K, V]) At(key K) (V, error) {
	return t.base.At(key)
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.base.Contains(key)
}

// Lookup returns the node holding key or nil.
func (t *Tree[K, V]) Lookup(key K) *bst.Node[K, V] {
	return t.base.Lookup(key)
}

// First returns the node with the smallest key or nil.
func (t *Tree[K, V]) First() *bst.Node[K, V] {
	return t.base.First()
}

// Last returns the node with the largest key or nil.
func (t *Tree[K, V]) Last() *bst.Node[K, V] {
	return t.base.Last()
}

// All yields every key/value pair in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return t.base.All()
}

// Keys returns every key in ascending order.
func (t *Tree[K, V]) Keys() []K {
	return t.base.Keys()
}

// Print writes an ASCII drawing of the tree and returns its depth.
func (t *Tree[K, V]) Print(w io.Writer, opts bst.PrintOptions) int {
	return t.base.Print(w, opts)
}
