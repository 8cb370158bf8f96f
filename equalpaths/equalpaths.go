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

// Package equalpaths checks whether every leaf of a plain binary tree sits
// at the same depth.
package equalpaths

// Node is a plain binary tree node. The YAML tags let a tree be written as
// nested mappings:
//
//	key: 1
//	left:
//	  key: 2
//	right:
//	  key: 3
type Node struct {
	Key   int   `yaml:"key"`
	Left  *Node `yaml:"left,omitempty"`
	Right *Node `yaml:"right,omitempty"`
}

// IsLeaf - true if n has no children
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// EqualPaths reports whether all leaves below root are at the same depth.
// An empty tree has equal paths.
func EqualPaths(root *Node) bool {
	ref := -1
	return equalPaths(root, 0, &ref)
}

// ref holds the depth of the first leaf seen, -1 until then.
func equalPaths(n *Node, depth int, ref *int) bool {
	if n == nil {
		return true
	}
	if n.IsLeaf() {
		if *ref < 0 {
			*ref = depth
			return true
		}
		return depth == *ref
	}
	return equalPaths(n.Left, depth+1, ref) && equalPaths(n.Right, depth+1, ref)
}

// Leaves returns the depth of every leaf, left to right. The root is at
// depth zero.
func Leaves(root *Node) []int {
	var depths []int
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			depths = append(depths, depth)
			return
		}
		walk(n.Left, depth+1)
		walk(n.Right, depth+1)
	}
	walk(root, 0)
	return depths
}

// Complete builds a perfect tree of the given number of levels with keys in
// in-order sequence starting at 1. Zero levels gives nil.
func Complete(levels int) *Node {
	next := 1
	var grow func(level int) *Node
	grow = func(level int) *Node {
		if level == 0 {
			return nil
		}
		left := grow(level - 1)
		n := &Node{Key: next, Left: left}
		next++
		n.Right = grow(level - 1)
		return n
	}
	return grow(levels)
}
