// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/balancedtree/fault"
)

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[T]) newNode(value T) handle {
	if none == tree.pool {
		if 0 != tree.freeNodes {
			fault.Panicf("%s: free: %d of total: %d", fault.ErrPoolCorrupt, tree.freeNodes, len(tree.nodes))
		}
		tree.nodes = append(tree.nodes, node[T]{
			value:  value,
			left:   none,
			right:  none,
			parent: none,
			height: 0,
		})
		return handle(len(tree.nodes) - 1)
	}
	h := tree.pool
	p := &tree.nodes[h]
	tree.pool = p.parent
	p.value = value
	p.height = 0
	p.left = none
	p.right = none
	p.parent = none // ensure freelist link is cleared
	tree.freeNodes -= 1
	return h
}

// reclaim a node and keep it in the pool
func (tree *Tree[T]) freeNode(h handle) {
	var zero T
	p := &tree.nodes[h]
	p.parent = tree.pool // use as free list link

	p.left = none
	p.right = none
	p.value = zero
	p.height = 0
	tree.freeNodes += 1

	tree.pool = h
}

// Reserve - make room for at least n more nodes without reallocating
func (tree *Tree[T]) Reserve(n int) {
	n -= tree.freeNodes
	if n <= 0 || cap(tree.nodes)-len(tree.nodes) >= n {
		return
	}
	nodes := make([]node[T], len(tree.nodes), len(tree.nodes)+n)
	copy(nodes, tree.nodes)
	tree.nodes = nodes
}
