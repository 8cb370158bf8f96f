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

import "github.com/cybrota/avlkit/bst"

// Remove - removes a specific key from the tree, returning its value and
// whether the key was present. Removing a missing key changes nothing.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	n := t.base.Lookup(key)
	if n == nil {
		var zero V
		return zero, false
	}

	if n.Left() != nil && n.Right() != nil {
		t.nodeSwap(n, bst.Predecessor(n))
	}

	value := n.Value()
	parent, wasLeft := t.base.Unlink(n)

	// a shorter left branch tips the parent right, and the reverse
	dif := int8(-1)
	if wasLeft {
		dif = 1
	}
	t.removeFix(parent, dif)
	return value, true
}

// nodeSwap exchanges the tree positions and balance factors of two nodes.
func (t *Tree[K, V]) nodeSwap(n1, n2 *bst.Node[K, V]) {
	t.base.NodeSwap(n1, n2)
	b := n1.Balance()
	n1.SetBalance(n2.Balance())
	n2.SetBalance(b)
}

// removeFix - one branch of node has become a level shorter; dif is added
// to the balance of node (+1: left branch shrank, -1: right branch shrank).
func (t *Tree[K, V]) removeFix(node *bst.Node[K, V], dif int8) {
	if node == nil {
		return
	}

	// rotations below move node, so decide the next step for the parent now
	parent := node.Parent()
	parentDif := int8(0)
	if parent != nil {
		if parent.Left() == node {
			parentDif = 1
		} else {
			parentDif = -1
		}
	}

	newBalance := node.Balance() + dif

	if dif == -1 {
		switch newBalance {
		case -1:
			node.SetBalance(-1)
		case 0:
			node.SetBalance(0)
			t.removeFix(parent, parentDif)
		case -2:
			child := mustNode(node.Left())
			switch child.Balance() {
			case -1:
				// single LL rotation, height drops
				t.rotateRight(node, child)
				node.SetBalance(0)
				child.SetBalance(0)
				t.removeFix(parent, parentDif)
			case 0:
				// single LL rotation, height unchanged
				t.rotateRight(node, child)
				node.SetBalance(-1)
				child.SetBalance(1)
			case 1:
				// double LR rotation
				grandchild := mustNode(child.Right())
				b := grandchild.Balance()
				t.rotateLeft(child, grandchild)
				t.rotateRight(node, grandchild)
				switch b {
				case 1:
					node.SetBalance(0)
					child.SetBalance(-1)
				case 0:
					node.SetBalance(0)
					child.SetBalance(0)
				default:
					node.SetBalance(1)
					child.SetBalance(0)
				}
				grandchild.SetBalance(0)
				t.removeFix(parent, parentDif)
			}
		}
		return
	}

	switch newBalance {
	case 1:
		node.SetBalance(1)
	case 0:
		node.SetBalance(0)
		t.removeFix(parent, parentDif)
	case 2:
		child := mustNode(node.Right())
		switch child.Balance() {
		case 1:
			// single RR rotation, height drops
			t.rotateLeft(node, child)
			node.SetBalance(0)
			child.SetBalance(0)
			t.removeFix(parent, parentDif)
		case 0:
			// single RR rotation, height unchanged
			t.rotateLeft(node, child)
			node.SetBalance(1)
			child.SetBalance(-1)
		case -1:
			// double RL rotation
			grandchild := mustNode(child.Left())
			b := grandchild.Balance()
			t.rotateRight(child, grandchild)
			t.rotateLeft(node, grandchild)
			switch b {
			case -1:
				node.SetBalance(0)
				child.SetBalance(1)
			case 0:
				node.SetBalance(0)
				child.SetBalance(0)
			default:
				node.SetBalance(-1)
				child.SetBalance(0)
			}
			grandchild.SetBalance(0)
			t.removeFix(parent, parentDif)
		}
	}
}

// mustNode panics with ErrCorrupt when a node that the balance factors
// guarantee to exist is missing.
func mustNode[K, V any](n *bst.Node[K, V]) *bst.Node[K, V] {
	if n == nil {
		panic(ErrCorrupt)
	}
	return n
}
