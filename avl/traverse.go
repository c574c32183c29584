// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// InOrder - all values, left sub-tree then node then right sub-tree
func (tree *Tree[T]) InOrder() []T {
	values := make([]T, 0, len(tree.nodes)-tree.freeNodes)
	return tree.inOrder(tree.root, values)
}

func (tree *Tree[T]) inOrder(h handle, values []T) []T {
	if none == h {
		return values
	}
	n := &tree.nodes[h]
	values = tree.inOrder(n.left, values)
	values = append(values, n.value)
	return tree.inOrder(n.right, values)
}

// PreOrder - all values, node then left sub-tree then right sub-tree
func (tree *Tree[T]) PreOrder() []T {
	values := make([]T, 0, len(tree.nodes)-tree.freeNodes)
	return tree.preOrder(tree.root, values)
}

func (tree *Tree[T]) preOrder(h handle, values []T) []T {
	if none == h {
		return values
	}
	n := &tree.nodes[h]
	values = append(values, n.value)
	values = tree.preOrder(n.left, values)
	return tree.preOrder(n.right, values)
}

// PostOrder - all values, left sub-tree then right sub-tree then node
func (tree *Tree[T]) PostOrder() []T {
	values := make([]T, 0, len(tree.nodes)-tree.freeNodes)
	return tree.postOrder(tree.root, values)
}

func (tree *Tree[T]) postOrder(h handle, values []T) []T {
	if none == h {
		return values
	}
	n := &tree.nodes[h]
	values = tree.postOrder(n.left, values)
	values = tree.postOrder(n.right, values)
	return append(values, n.value)
}

// LevelOrder - values grouped by depth, root level first, each level
// left to right
func (tree *Tree[T]) LevelOrder() [][]T {
	levels := [][]T{}
	if none == tree.root {
		return levels
	}

	queue := []handle{tree.root}
	for 0 != len(queue) {
		level := make([]T, 0, len(queue))
		next := make([]handle, 0, 2*len(queue))
		for _, h := range queue {
			n := &tree.nodes[h]
			level = append(level, n.value)
			if none != n.left {
				next = append(next, n.left)
			}
			if none != n.right {
				next = append(next, n.right)
			}
		}
		levels = append(levels, level)
		queue = next
	}
	return levels
}
