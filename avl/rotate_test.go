// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perfectTree() *Tree[int] {
	tree := New[int]()
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(v)
	}
	return tree
}

// rotations change shape only, never the order of the values
func TestRotationKeepsOrder(t *testing.T) {
	tree := perfectTree()
	expected := tree.InOrder()
	original := tree.LevelOrder()

	top := tree.rotateLeft(tree.root)
	assert.Equal(t, top, tree.root, "rotated node becomes root")
	assert.Equal(t, 6, tree.nodes[tree.root].value)
	assert.Equal(t, expected, tree.InOrder())
	assert.Equal(t, [][]int{{6}, {4, 7}, {2, 5}, {1, 3}}, tree.LevelOrder())
	assert.True(t, tree.CheckUp(), "parent links")
	assert.True(t, tree.CheckHeights(), "heights")
	assert.False(t, tree.IsHeightBalanced(), "balance")

	tree.rotateRight(tree.root)
	assert.Equal(t, expected, tree.InOrder())
	assert.Equal(t, original, tree.LevelOrder())
	require.NoError(t, tree.Check())
}

func TestRotationBelowRoot(t *testing.T) {
	tree := perfectTree()
	expected := tree.InOrder()

	six := tree.search(6)
	top := tree.rotateRight(six)
	assert.Equal(t, 5, tree.nodes[top].value)
	assert.Equal(t, top, tree.nodes[tree.root].right, "spliced into parent slot")
	assert.Equal(t, tree.root, tree.nodes[top].parent)
	assert.Equal(t, expected, tree.InOrder())
	assert.True(t, tree.CheckUp(), "parent links")
	assert.True(t, tree.CheckHeights(), "heights")
	assert.Equal(t, 3, tree.Height())
}

func TestBalanceFactor(t *testing.T) {
	tree := New[int]()
	assert.Equal(t, 0, tree.balanceFactor(none))
	assert.Equal(t, -1, tree.height(none))

	tree.Insert(2)
	tree.Insert(1)
	assert.Equal(t, 1, tree.Root().BalanceFactor())
	tree.Insert(3)
	tree.Insert(4)
	assert.Equal(t, -1, tree.Root().BalanceFactor())
	assert.Equal(t, 2, tree.Root().Height())
}

// a node with two children keeps its position and takes over the
// successor's value, the successor's node is the one reclaimed
func TestEraseOverwritesTarget(t *testing.T) {
	tree := perfectTree()

	target := tree.search(4)
	successor := tree.search(5)
	require.NoError(t, tree.Erase(4))

	assert.Equal(t, target, tree.root)
	assert.Equal(t, 5, tree.nodes[target].value)
	assert.Equal(t, successor, tree.pool, "successor node reclaimed")
	assert.Equal(t, 1, tree.freeNodes)
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, tree.InOrder())
}

func TestNodeReuse(t *testing.T) {
	tree := perfectTree()
	require.Len(t, tree.nodes, 7)

	require.NoError(t, tree.Erase(1))
	require.NoError(t, tree.Erase(7))
	assert.Equal(t, 2, tree.freeNodes)

	tree.Insert(8)
	tree.Insert(0)
	assert.Len(t, tree.nodes, 7, "reclaimed nodes reused")
	assert.Equal(t, 0, tree.freeNodes)
	assert.Equal(t, none, tree.pool)

	tree.Insert(9)
	assert.Len(t, tree.nodes, 8)
	assert.Equal(t, []int{0, 2, 3, 4, 5, 6, 8, 9}, tree.InOrder())
	require.NoError(t, tree.Check())
}

func TestReserve(t *testing.T) {
	tree := New[int]()
	tree.Reserve(100)
	assert.GreaterOrEqual(t, cap(tree.nodes), 100)
	for i := 0; i < 100; i += 1 {
		tree.Insert(i)
	}
	assert.Equal(t, 100, cap(tree.nodes), "no reallocation")

	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())
	tree.Insert(1)
	assert.Equal(t, []int{1}, tree.InOrder())
}

func TestPoolCorrupt(t *testing.T) {
	tree := New[int]()
	tree.freeNodes = 1
	assert.Panics(t, func() {
		tree.Insert(1)
	})
}

func TestInvalidTreeDetected(t *testing.T) {
	tree := perfectTree()
	tree.nodes[tree.root].height = 7
	assert.False(t, tree.CheckHeights())
	assert.Error(t, tree.Check())

	tree = perfectTree()
	tree.nodes[tree.search(1)].parent = tree.search(6)
	assert.False(t, tree.CheckUp())

	tree = perfectTree()
	tree.nodes[tree.search(1)].value = 9
	assert.False(t, tree.CheckOrder())
}
