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

package bst

import "iter"

// First - return the node with the lowest key or nil for an empty tree
func (t *Tree[K, V]) First() *Node[K, V] {
	return t.root.first()
}

// Last - return the node with the highest key or nil for an empty tree
func (t *Tree[K, V]) Last() *Node[K, V] {
	return t.root.last()
}

// lowest node in a sub-tree
func (n *Node[K, V]) first() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest node in a sub-tree
func (n *Node[K, V]) last() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Predecessor returns the in-order predecessor of n, or nil if n holds the
// lowest key.
func Predecessor[K, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	if n.left != nil {
		return n.left.last()
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// Successor returns the in-order successor of n, or nil if n holds the
// highest key.
func Successor[K, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return n.right.first()
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// Next - given a node, return the node with the next highest key or nil
func (n *Node[K, V]) Next() *Node[K, V] {
	return Successor(n)
}

// Prev - given a node, return the node with the next lowest key or nil
func (n *Node[K, V]) Prev() *Node[K, V] {
	return Predecessor(n)
}

// All yields every key/value pair in ascending key order. The tree must not
// be modified while iterating.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.First(); n != nil; n = n.Next() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}
