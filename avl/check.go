// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/balancedtree/fault"
)

// Check - run all consistency checks, returns the first failure
func (tree *Tree[T]) Check() error {
	if !tree.CheckUp() {
		return fault.ErrInvalidParentLink
	}
	if !tree.CheckHeights() {
		return fault.ErrInvalidHeight
	}
	if !tree.CheckOrder() {
		return fault.ErrInvalidOrder
	}
	if !tree.IsHeightBalanced() {
		return fault.ErrInvalidBalance
	}
	return nil
}

// CheckUp - check the parent links for consistency
func (tree *Tree[T]) CheckUp() bool {
	return tree.checkUp(tree.root, none)
}

// internal: consistency checker
func (tree *Tree[T]) checkUp(h handle, up handle) bool {
	if none == h {
		return true
	}
	n := &tree.nodes[h]
	if n.parent != up {
		if nil != tree.log {
			tree.log.Errorf("fail at node: %v  actual: %d  expected: %d", n.value, n.parent, up)
		}
		return false
	}
	if !tree.checkUp(n.left, h) {
		return false
	}
	return tree.checkUp(n.right, h)
}

// CheckHeights - check every cached height against the height
// recomputed from the leaves
func (tree *Tree[T]) CheckHeights() bool {
	_, ok := tree.checkHeights(tree.root)
	return ok
}

// internal: returns the recomputed height of a sub-tree
func (tree *Tree[T]) checkHeights(h handle) (int, bool) {
	if none == h {
		return -1, true
	}
	n := &tree.nodes[h]
	lh, ok := tree.checkHeights(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := tree.checkHeights(n.right)
	if !ok {
		return 0, false
	}
	actual := 1 + max(lh, rh)
	if actual != n.height {
		if nil != tree.log {
			tree.log.Errorf("fail at node: %v  height: %d  expected: %d", n.value, n.height, actual)
		}
		return 0, false
	}
	return actual, true
}

// CheckOrder - check that an in-order walk never decreases
func (tree *Tree[T]) CheckOrder() bool {
	values := tree.InOrder()
	for i := 1; i < len(values); i += 1 {
		if tree.compare(values[i-1], values[i]) > 0 {
			return false
		}
	}
	return true
}

// IsHeightBalanced - true if no node has children whose heights
// differ by more than one
func (tree *Tree[T]) IsHeightBalanced() bool {
	return tree.isHeightBalanced(tree.root)
}

func (tree *Tree[T]) isHeightBalanced(h handle) bool {
	if none == h {
		return true
	}
	bf := tree.balanceFactor(h)
	if bf < -1 || bf > 1 {
		return false
	}
	n := &tree.nodes[h]
	return tree.isHeightBalanced(n.left) && tree.isHeightBalanced(n.right)
}
