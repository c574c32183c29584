// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// a value equal to one already present is placed to its right
func (tree *Tree[T]) Insert(value T) {
	h := tree.newNode(value)
	if none == tree.root {
		tree.root = h
		return
	}

	cursor := tree.root
	for {
		c := &tree.nodes[cursor]
		if tree.compare(c.value, value) <= 0 {
			if none == c.right {
				c.right = h
				break
			}
			cursor = c.right
		} else {
			if none == c.left {
				c.left = h
				break
			}
			cursor = c.left
		}
	}
	tree.nodes[h].parent = cursor

	tree.updateHeights(cursor)
	tree.balanceInsert(h)
}

// insert: walk up from the grandparent of a new leaf and repair the
// first unbalanced ancestor, after which the whole path is balanced
func (tree *Tree[T]) balanceInsert(leaf handle) {
	grandchild := leaf
	child := tree.nodes[leaf].parent
	if none == child {
		return
	}
	cursor := tree.nodes[child].parent

	for none != cursor {
		bf := tree.balanceFactor(cursor)
		switch {
		case bf > 1: // left branch has grown
			if grandchild == tree.nodes[child].left {
				// single LL rotation
				tree.rotateRight(cursor)
			} else {
				// double LR rotation
				tree.rotateLeft(child)
				tree.rotateRight(cursor)
			}
			return

		case bf < -1: // right branch has grown
			if grandchild == tree.nodes[child].right {
				// single RR rotation
				tree.rotateLeft(cursor)
			} else {
				// double RL rotation
				tree.rotateRight(child)
				tree.rotateLeft(cursor)
			}
			return
		}
		grandchild = child
		child = cursor
		cursor = tree.nodes[cursor].parent
	}
}
