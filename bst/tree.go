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

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by lookups that require the key to be present.
var ErrKeyNotFound = errors.New("key not found")

// Tree is an unbalanced binary search tree with parent links.
type Tree[K, V any] struct {
	root    *Node[K, V]
	compare func(K, K) int
	count   int
}

// New creates an empty tree ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc creates an empty tree ordered by compare, which must return a
// negative number, zero or a positive number when a < b, a == b or a > b.
func NewFunc[K, V any](compare func(K, K) int) *Tree[K, V] {
	if compare == nil {
		panic("bst: nil compare function")
	}
	return &Tree[K, V]{compare: compare}
}

// Root - return the root node of the tree
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// SetRoot makes n the root node. The parent link of n is left untouched.
func (t *Tree[K, V]) SetRoot(n *Node[K, V]) {
	t.root = n
}

// Compare orders two keys with the tree's comparison function.
func (t *Tree[K, V]) Compare(a, b K) int {
	return t.compare(a, b)
}

// Len - number of nodes currently in the tree
func (t *Tree[K, V]) Len() int {
	return t.count
}

// IsEmpty - true if the tree holds no nodes
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Clear drops every node of the tree.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.count = 0
}

// Height of the tree, zero for an empty tree and one for a single node.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

// Lookup returns the node holding key or nil.
func (t *Tree[K, V]) Lookup(key K) *Node[K, V] {
	curr := t.root
	for curr != nil {
		switch c := t.compare(key, curr.key); {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			return curr
		}
	}
	return nil
}

// Find returns the value stored under key and whether it was present.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	if n := t.Lookup(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// At returns the value stored under key or ErrKeyNotFound.
func (t *Tree[K, V]) At(key K) (V, error) {
	v, ok := t.Find(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// Contains - true if key is present
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Lookup(key) != nil
}

// Attach places key in the tree by plain binary search descent. If the key
// is already present its value is overwritten and the existing node is
// returned with false. Otherwise a new leaf is linked under the last node
// visited and returned with true.
func (t *Tree[K, V]) Attach(key K, value V) (*Node[K, V], bool) {
	if t.root == nil {
		t.root = newNode(key, value, nil)
		t.count++
		return t.root, true
	}

	var parent *Node[K, V]
	curr := t.root
	c := 0
	for curr != nil {
		parent = curr
		c = t.compare(key, curr.key)
		switch {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			curr.value = value
			return curr, false
		}
	}

	n := newNode(key, value, parent)
	if c < 0 {
		parent.left = n
	} else {
		parent.right = n
	}
	t.count++
	return n, true
}

// Insert adds key or overwrites its value; returns true if a node was added.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	_, added := t.Attach(key, value)
	return added
}

// Unlink removes n, which must have at most one child, from the tree. The
// child (if any) takes the place of n. It returns the former parent of n and
// whether n was the left child of that parent. The links of n are cleared.
func (t *Tree[K, V]) Unlink(n *Node[K, V]) (*Node[K, V], bool) {
	if n.left != nil && n.right != nil {
		panic("bst: unlink of a node with two children")
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	parent := n.parent
	wasLeft := false

	if child != nil {
		child.parent = parent
	}
	if parent == nil {
		t.root = child
	} else if parent.left == n {
		parent.left = child
		wasLeft = true
	} else {
		parent.right = child
	}

	n.detach()
	t.count--
	return parent, wasLeft
}

// Remove deletes key without rebalancing. A node with two children is first
// swapped with its in-order predecessor.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	n := t.Lookup(key)
	if n == nil {
		var zero V
		return zero, false
	}
	if n.left != nil && n.right != nil {
		t.NodeSwap(n, Predecessor(n))
	}
	value := n.value
	t.Unlink(n)
	return value, true
}

// NodeSwap exchanges the positions of two nodes in the tree. Keys and values
// stay with their nodes; only parent/child links (and the root) change.
// Balance factors are not exchanged.
func (t *Tree[K, V]) NodeSwap(n1, n2 *Node[K, V]) {
	if n1 == nil || n2 == nil || n1 == n2 {
		return
	}

	p1, l1, r1 := n1.parent, n1.left, n1.right
	p2, l2, r2 := n2.parent, n2.left, n2.right
	n1IsLeft := p1 != nil && p1.left == n1
	n2IsLeft := p2 != nil && p2.left == n2

	// n2 directly below n1 or the reverse: the parent link points back at
	// the swapped node
	switch {
	case p2 == n1:
		n2.parent = p1
		n1.parent = n2
		if n2IsLeft {
			n2.left, n2.right = n1, r1
		} else {
			n2.left, n2.right = l1, n1
		}
		n1.left, n1.right = l2, r2
	case p1 == n2:
		n1.parent = p2
		n2.parent = n1
		if n1IsLeft {
			n1.left, n1.right = n2, r2
		} else {
			n1.left, n1.right = l2, n2
		}
		n2.left, n2.right = l1, r1
	default:
		n1.parent, n1.left, n1.right = p2, l2, r2
		n2.parent, n2.left, n2.right = p1, l1, r1
	}

	// reconnect the outside world to the new positions
	relink := func(n *Node[K, V], wasLeft bool) {
		if n.parent == nil {
			t.root = n
		} else if wasLeft {
			n.parent.left = n
		} else {
			n.parent.right = n
		}
		if n.left != nil {
			n.left.parent = n
		}
		if n.right != nil {
			n.right.parent = n
		}
	}
	if p2 == n1 {
		relink(n2, n1IsLeft)
		relink(n1, n2IsLeft)
	} else if p1 == n2 {
		relink(n1, n2IsLeft)
		relink(n2, n1IsLeft)
	} else {
		relink(n1, n2IsLeft)
		relink(n2, n1IsLeft)
	}
}
