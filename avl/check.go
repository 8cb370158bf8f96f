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
	"errors"
	"fmt"

	"github.com/cybrota/avlkit/bst"
)

var (
	// ErrCorrupt is the panic value raised when rebalancing finds a node
	// missing that the stored balance factors say must exist.
	ErrCorrupt = errors.New("avl: corrupted tree structure")

	ErrUnbalanced = errors.New("avl: balance invariant violated")
	ErrOrder      = errors.New("avl: key order violated")
)

// Check verifies parent links, key ordering and that every stored balance
// factor equals the real height difference and lies within -1..+1.
func (t *Tree[K, V]) Check() error {
	if err := t.base.CheckLinks(); err != nil {
		return err
	}
	_, err := t.check(t.base.Root(), nil, nil)
	return err
}

// check returns the height of the sub-tree at n; lo and hi are exclusive
// key bounds inherited from the ancestors.
func (t *Tree[K, V]) check(n *bst.Node[K, V], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	key := n.Key()
	if lo != nil && t.base.Compare(key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: %v is not above %v", ErrOrder, key, *lo)
	}
	if hi != nil && t.base.Compare(key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: %v is not below %v", ErrOrder, key, *hi)
	}

	hl, err := t.check(n.Left(), lo, &key)
	if err != nil {
		return 0, err
	}
	hr, err := t.check(n.Right(), &key, hi)
	if err != nil {
		return 0, err
	}

	diff := hr - hl
	if int(n.Balance()) != diff {
		return 0, fmt.Errorf("%w: node %v stores %d, actual %d", ErrUnbalanced, key, n.Balance(), diff)
	}
	if diff < -1 || diff > 1 {
		return 0, fmt.Errorf("%w: node %v is off by %d", ErrUnbalanced, key, diff)
	}
	return 1 + max(hl, hr), nil
}
