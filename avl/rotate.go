// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// cached height of a sub-tree, -1 for the absent node
func (tree *Tree[T]) height(h handle) int {
	if none == h {
		return -1
	}
	return tree.nodes[h].height
}

// height of left sub-tree minus height of right sub-tree
func (tree *Tree[T]) balanceFactor(h handle) int {
	if none == h {
		return 0
	}
	n := &tree.nodes[h]
	return tree.height(n.left) - tree.height(n.right)
}

// recompute cached heights from a node up to the root
func (tree *Tree[T]) updateHeights(h handle) {
	for none != h {
		n := &tree.nodes[h]
		n.height = 1 + max(tree.height(n.left), tree.height(n.right))
		h = n.parent
	}
}

// make child take the place of old below parent, or become the root
// when parent is absent; child's own parent link is left to the caller
func (tree *Tree[T]) replaceChild(parent handle, old handle, child handle) {
	if none == parent {
		tree.root = child
		return
	}
	p := &tree.nodes[parent]
	if old == p.left {
		p.left = child
	} else {
		p.right = child
	}
}

// single left rotation, the right child of p takes its place
//
//	   p               r
//	  / \             / \
//	 a   r     =>    p   c
//	    / \         / \
//	   b   c       a   b
func (tree *Tree[T]) rotateLeft(p handle) handle {
	pn := &tree.nodes[p]
	r := pn.right
	rn := &tree.nodes[r]
	up := pn.parent

	pn.right = rn.left
	if none != pn.right {
		tree.nodes[pn.right].parent = p
	}
	rn.left = p
	tree.replaceChild(up, p, r)

	rn.parent = up
	pn.parent = r

	tree.updateHeights(p)
	tree.debugf("rotate left: %v → %v", pn.value, rn.value)
	return r
}

// single right rotation, the left child of p takes its place
//
//	     p           l
//	    / \         / \
//	   l   c  =>   a   p
//	  / \             / \
//	 a   b           b   c
func (tree *Tree[T]) rotateRight(p handle) handle {
	pn := &tree.nodes[p]
	l := pn.left
	ln := &tree.nodes[l]
	up := pn.parent

	pn.left = ln.right
	if none != pn.left {
		tree.nodes[pn.left].parent = p
	}
	ln.right = p
	tree.replaceChild(up, p, l)

	ln.parent = up
	pn.parent = l

	tree.updateHeights(p)
	tree.debugf("rotate right: %v → %v", pn.value, ln.value)
	return l
}
