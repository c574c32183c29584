// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"strings"
)

// index of a node in the arena
type handle int32

// the absent node
const none handle = -1

// a node in the tree
type node[T any] struct {
	value  T      // value part for data storage and ordering
	left   handle // left sub-tree
	right  handle // right sub-tree
	parent handle // points to parent node, free list link when reclaimed
	height int    // 0 for a leaf
}

// Node - read only view of a single node of a tree
//
// a view is only valid until the node it refers to is erased
type Node[T any] struct {
	tree *Tree[T]
	h    handle
}

// internal: view of a handle, nil for the absent node
func (tree *Tree[T]) view(h handle) *Node[T] {
	if none == h {
		return nil
	}
	return &Node[T]{tree: tree, h: h}
}

func (p *Node[T]) n() *node[T] {
	return &p.tree.nodes[p.h]
}

// Value - read the value from a node item
func (p *Node[T]) Value() T {
	return p.n().value
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[T]) Height() int {
	return p.n().height
}

// BalanceFactor - height of left sub-tree minus height of right sub-tree
func (p *Node[T]) BalanceFactor() int {
	return p.tree.balanceFactor(p.h)
}

// Left - return left child node or nil
func (p *Node[T]) Left() *Node[T] {
	return p.tree.view(p.n().left)
}

// Right - return right child node or nil
func (p *Node[T]) Right() *Node[T] {
	return p.tree.view(p.n().right)
}

// Parent - return parent node of a node
func (p *Node[T]) Parent() *Node[T] {
	return p.tree.view(p.n().parent)
}

// Depth - get the depth of a node
func (p *Node[T]) Depth() uint {
	count := uint(0)
	parent := p.n().parent
	for none != parent {
		count += 1
		parent = p.tree.nodes[parent].parent
	}
	return count
}

// ChildrenByDepth - returns all descendants at a specific depth
// below this node, left to right
func (p *Node[T]) ChildrenByDepth(depth uint) []*Node[T] {
	nodes := []*Node[T]{}

	if 0 == depth {
		return append(nodes, p)
	}
	if left := p.Left(); nil != left {
		nodes = append(nodes, left.ChildrenByDepth(depth-1)...)
	}
	if right := p.Right(); nil != right {
		nodes = append(nodes, right.ChildrenByDepth(depth-1)...)
	}
	return nodes
}

// String - the values of the sub-tree in order, space separated
func (p *Node[T]) String() string {
	b := strings.Builder{}
	p.tree.display(&b, p.h)
	return b.String()
}

// internal: in-order rendering of a sub-tree
func (tree *Tree[T]) display(b *strings.Builder, h handle) {
	if none == h {
		return
	}
	n := &tree.nodes[h]
	tree.display(b, n.left)
	if 0 != b.Len() {
		b.WriteByte(' ')
	}
	fmt.Fprint(b, n.value)
	tree.display(b, n.right)
}
