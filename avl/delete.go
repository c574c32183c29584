// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/balancedtree/fault"
)

// Erase - removes one node holding value from the tree
//
// returns fault.ErrNotFound and leaves the tree unchanged if no node
// holds the value
func (tree *Tree[T]) Erase(value T) error {
	q := tree.search(value)
	if none == q {
		return fault.ErrNotFound
	}

	start := none
	qn := &tree.nodes[q]
	switch {
	case none != qn.left && none != qn.right:
		// overwrite with the in-order successor then reclaim the
		// successor's node, its right sub-tree moves up
		r := tree.first(qn.right)
		rn := &tree.nodes[r]
		qn.value = rn.value
		start = rn.parent
		tree.replaceChild(start, r, rn.right)
		if none != rn.right {
			tree.nodes[rn.right].parent = start
		}
		tree.debugf("erase: %v replaced by successor", value)
		tree.freeNode(r)

	case none != qn.left || none != qn.right:
		child := qn.left
		if none == child {
			child = qn.right
		}
		start = qn.parent
		tree.replaceChild(start, q, child)
		tree.nodes[child].parent = start
		tree.debugf("erase: %v with single child", value)
		tree.freeNode(q)

	default:
		start = qn.parent
		tree.replaceChild(start, q, none)
		tree.debugf("erase: %v leaf", value)
		tree.freeNode(q)
	}

	tree.updateHeights(start)
	tree.balanceDelete(start)
	return nil
}

// delete: walk up from the lowest changed node to the root, every
// ancestor may need its own rotation
func (tree *Tree[T]) balanceDelete(start handle) {
	cursor := start
	for none != cursor {
		bf := tree.balanceFactor(cursor)
		switch {
		case bf > 1:
			highestChild := tree.nodes[cursor].left
			if tree.balanceFactor(highestChild) >= 0 {
				// single LL rotation
				cursor = tree.rotateRight(cursor)
			} else {
				// double LR rotation
				tree.rotateLeft(highestChild)
				cursor = tree.rotateRight(cursor)
			}

		case bf < -1:
			highestChild := tree.nodes[cursor].right
			if tree.balanceFactor(highestChild) <= 0 {
				// single RR rotation
				cursor = tree.rotateLeft(cursor)
			} else {
				// double RL rotation
				tree.rotateRight(highestChild)
				cursor = tree.rotateLeft(cursor)
			}
		}
		cursor = tree.nodes[cursor].parent
	}
}
