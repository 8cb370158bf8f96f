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

// Node is a single key/value entry of a tree. A node owns its children and
// keeps a non-owning reference to its parent so the tree can be walked upwards.
type Node[K, V any] struct {
	key     K
	value   V
	parent  *Node[K, V]
	left    *Node[K, V]
	right   *Node[K, V]
	balance int8 // height(right) - height(left); only maintained by balancing trees
}

func newNode[K, V any](key K, value V, parent *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		parent: parent,
	}
}

// Key - read the key from a node
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value - read the value from a node
func (n *Node[K, V]) Value() V {
	return n.value
}

// SetValue replaces the value held by the node
func (n *Node[K, V]) SetValue(value V) {
	n.value = value
}

func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// SetParent, SetLeft and SetRight rewrite a single link. They do not touch
// the opposite end of the link; keeping both ends consistent is up to the caller.
func (n *Node[K, V]) SetParent(p *Node[K, V]) {
	n.parent = p
}

func (n *Node[K, V]) SetLeft(c *Node[K, V]) {
	n.left = c
}

func (n *Node[K, V]) SetRight(c *Node[K, V]) {
	n.right = c
}

// Balance returns the stored balance factor
func (n *Node[K, V]) Balance() int8 {
	return n.balance
}

func (n *Node[K, V]) SetBalance(b int8) {
	n.balance = b
}

// UpdateBalance adds diff to the stored balance factor
func (n *Node[K, V]) UpdateBalance(diff int8) {
	n.balance += diff
}

// IsLeaf is true for a node without children
func (n *Node[K, V]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Depth - number of edges between the node and the root
func (n *Node[K, V]) Depth() int {
	count := 0
	for p := n.parent; p != nil; p = p.parent {
		count++
	}
	return count
}

// detach clears all links of a node that is no longer part of a tree.
func (n *Node[K, V]) detach() {
	n.parent = nil
	n.left = nil
	n.right = nil
	n.balance = 0
}

// height of the sub-tree rooted at n, an empty sub-tree has height 0
func height[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
