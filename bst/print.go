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
//
// Tree drawing adapted from bitmarkd avl/print.go:
// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.

package bst

import (
	"errors"
	"fmt"
	"io"
)

// ErrLinks reports a parent/child link that does not point back.
var ErrLinks = errors.New("inconsistent parent link")

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// PrintOptions control what Print writes for each node.
type PrintOptions struct {
	Values  bool // include the value
	Balance bool // include the stored balance factor
}

// Print writes a sideways ASCII drawing of the tree to w, right sub-trees on
// top. It returns the depth of the tree.
func (t *Tree[K, V]) Print(w io.Writer, opts PrintOptions) int {
	return printTree(w, t.root, "", rootBranch, opts)
}

func printTree[K, V any](w io.Writer, n *Node[K, V], prefix string, br branch, opts PrintOptions) int {
	if n == nil {
		return 0
	}
	rd := 0
	ld := 0
	if n.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = printTree(w, n.right, prefix+t, rightBranch, opts)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v", n.key)
	if opts.Values {
		fmt.Fprintf(w, " → %v", n.value)
	}
	if opts.Balance {
		fmt.Fprintf(w, " %+d", n.balance)
	}
	fmt.Fprintln(w)
	if n.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = printTree(w, n.left, prefix+t, leftBranch, opts)
	}
	return 1 + max(ld, rd)
}

// CheckLinks verifies that every child points back at its parent and that the
// root has no parent.
func (t *Tree[K, V]) CheckLinks() error {
	return checkup(t.root, nil)
}

func checkup[K, V any](n *Node[K, V], up *Node[K, V]) error {
	if n == nil {
		return nil
	}
	if n.parent != up {
		return fmt.Errorf("%w: node %v", ErrLinks, n.key)
	}
	if err := checkup(n.left, n); err != nil {
		return err
	}
	return checkup(n.right, n)
}
