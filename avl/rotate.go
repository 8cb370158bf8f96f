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

// rotateLeft promotes child, the right child of parent, above parent.
//
//	  parent              child
//	  /   \               /   \
//	 A   child   =>   parent   C
//	     /   \        /   \
//	    B     C      A     B
//
// Only links change; callers set the resulting balance factors.
func (t *Tree[K, V]) rotateLeft(parent, child *bst.Node[K, V]) {
	grandparent := parent.Parent()
	t.replaceChild(grandparent, parent, child)

	child.SetParent(grandparent)
	parent.SetParent(child)

	inner := child.Left()
	parent.SetRight(inner)
	if inner != nil {
		inner.SetParent(parent)
	}
	child.SetLeft(parent)
}

// rotateRight promotes child, the left child of parent, above parent.
//
//	     parent          child
//	     /   \           /   \
//	  child   C   =>    A   parent
//	  /   \                 /   \
//	 A     B               B     C
func (t *Tree[K, V]) rotateRight(parent, child *bst.Node[K, V]) {
	grandparent := parent.Parent()
	t.replaceChild(grandparent, parent, child)

	child.SetParent(grandparent)
	parent.SetParent(child)

	inner := child.Right()
	parent.SetLeft(inner)
	if inner != nil {
		inner.SetParent(parent)
	}
	child.SetRight(parent)
}

// replaceChild points the slot of grandparent that held old at n, or makes
// n the root when there is no grandparent.
func (t *Tree[K, V]) replaceChild(grandparent, old, n *bst.Node[K, V]) {
	switch {
	case grandparent == nil:
		t.base.SetRoot(n)
	case grandparent.Left() == old:
		grandparent.SetLeft(n)
	default:
		grandparent.SetRight(n)
	}
}
