// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - find a node holding a specific value, nil if not present
func (tree *Tree[T]) Find(value T) *Node[T] {
	return tree.view(tree.search(value))
}

// Contains - true if some node holds the value
func (tree *Tree[T]) Contains(value T) bool {
	return none != tree.search(value)
}

func (tree *Tree[T]) search(value T) handle {
	cursor := tree.root
	for none != cursor {
		c := &tree.nodes[cursor]
		switch r := tree.compare(c.value, value); {
		case r > 0: // c.value > value
			cursor = c.left
		case r < 0: // c.value < value
			cursor = c.right
		default:
			return cursor
		}
	}
	return none
}
