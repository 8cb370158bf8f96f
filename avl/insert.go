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

// Insert - insert a new key or overwrite the value of an existing one.
// Returns true if a node was added.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	n, added := t.base.Attach(key, value)
	if !added {
		return false
	}

	parent := n.Parent()
	if parent == nil {
		return true
	}

	switch b := parent.Balance(); {
	case b == 0:
		if parent.Left() == n {
			parent.SetBalance(-1)
		} else {
			parent.SetBalance(1)
		}
		t.insertFix(n, parent)
	case b == -1 && parent.Right() == n, b == 1 && parent.Left() == n:
		// the new leaf evens out the parent, its height is unchanged
		parent.SetBalance(0)
	default:
		t.insertFix(n, parent)
	}
	return true
}

// insertFix - the sub-tree rooted at parent has grown by one level,
// node being the child of parent on the grown side.
func (t *Tree[K, V]) insertFix(node, parent *bst.Node[K, V]) {
	grandparent := parent.Parent()
	if grandparent == nil {
		return
	}

	if grandparent.Left() == parent {
		// left branch has grown
		grandparent.UpdateBalance(-1)
		switch grandparent.Balance() {
		case 0:
			return
		case -1:
			t.insertFix(parent, grandparent)
		case -2:
			if parent.Left() == node {
				// single LL rotation
				t.rotateRight(grandparent, parent)
				parent.SetBalance(0)
				grandparent.SetBalance(0)
				return
			}
			// double LR rotation
			b := node.Balance()
			t.rotateLeft(parent, node)
			t.rotateRight(grandparent, node)
			switch b {
			case 0:
				parent.SetBalance(0)
				grandparent.SetBalance(0)
			case -1:
				parent.SetBalance(0)
				grandparent.SetBalance(1)
			case 1:
				parent.SetBalance(-1)
				grandparent.SetBalance(0)
			}
			node.SetBalance(0)
		}
		return
	}

	// right branch has grown
	grandparent.UpdateBalance(1)
	switch grandparent.Balance() {
	case 0:
		return
	case 1:
		t.insertFix(parent, grandparent)
	case 2:
		if parent.Right() == node {
			// single RR rotation
			t.rotateLeft(grandparent, parent)
			parent.SetBalance(0)
			grandparent.SetBalance(0)
			return
		}
		// double RL rotation
		b := node.Balance()
		t.rotateRight(parent, node)
		t.rotateLeft(grandparent, node)
		switch b {
		case 0:
			parent.SetBalance(0)
			grandparent.SetBalance(0)
		case 1:
			parent.SetBalance(0)
			grandparent.SetBalance(-1)
		case -1:
			parent.SetBalance(1)
			grandparent.SetBalance(0)
		}
		node.SetBalance(0)
	}
}
