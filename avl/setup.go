// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/logger"
)

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root      handle
	nodes     []node[T]        // arena, indexed by handle
	pool      handle           // linked list of reclaimed nodes
	freeNodes int              // number of nodes in the pool
	compare   func(a, b T) int // <0: a < b, 0: a == b, >0: a > b
	log       *logger.L
}

// New - create an initially empty tree using the natural order of T
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc - create an initially empty tree ordered by a three way
// comparison function that must define a total order
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{
		root:      none,
		nodes:     nil,
		pool:      none,
		freeNodes: 0,
		compare:   compare,
	}
}

// SetLog - attach a logger channel for tracing rebalancing, nil to disable
func (tree *Tree[T]) SetLog(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return none == tree.root
}

// Count - number of nodes currently in the tree, counted by walking
// the whole tree
func (tree *Tree[T]) Count() int {
	return tree.count(tree.root)
}

func (tree *Tree[T]) count(h handle) int {
	if none == h {
		return 0
	}
	n := &tree.nodes[h]
	return 1 + tree.count(n.left) + tree.count(n.right)
}

// Height - height of the whole tree, -1 when empty
func (tree *Tree[T]) Height() int {
	return tree.height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.view(tree.root)
}

// Clear - drop every node
func (tree *Tree[T]) Clear() {
	tree.root = none
	tree.nodes = nil
	tree.pool = none
	tree.freeNodes = 0
}

// internal: trace output when a log channel is attached
func (tree *Tree[T]) debugf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Debugf(format, arguments...)
	}
}
