// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest value
func (tree *Tree[T]) First() *Node[T] {
	return tree.view(tree.first(tree.root))
}

// internal: lowest node in a sub-tree
func (tree *Tree[T]) first(h handle) handle {
	if none == h {
		return none
	}
	for none != tree.nodes[h].left {
		h = tree.nodes[h].left
	}
	return h
}

// Last - return the node with the highest value
func (tree *Tree[T]) Last() *Node[T] {
	return tree.view(tree.last(tree.root))
}

// internal: highest node in a sub-tree
func (tree *Tree[T]) last(h handle) handle {
	if none == h {
		return none
	}
	for none != tree.nodes[h].right {
		h = tree.nodes[h].right
	}
	return h
}

// Next - given a node, return the in-order next node or nil if no
// more nodes.
//
// with equal values this follows tree position, not comparison
func (p *Node[T]) Next() *Node[T] {
	tree := p.tree
	h := p.h
	if right := tree.nodes[h].right; none != right {
		return tree.view(tree.first(right))
	}
	for {
		up := tree.nodes[h].parent
		if none == up {
			return nil
		}
		if h == tree.nodes[up].left {
			return tree.view(up)
		}
		h = up
	}
}

// Prev - given a node, return the in-order previous node or nil if
// no more nodes
func (p *Node[T]) Prev() *Node[T] {
	tree := p.tree
	h := p.h
	if left := tree.nodes[h].left; none != left {
		return tree.view(tree.last(left))
	}
	for {
		up := tree.nodes[h].parent
		if none == up {
			return nil
		}
		if h == tree.nodes[up].right {
			return tree.view(up)
		}
		h = up
	}
}
