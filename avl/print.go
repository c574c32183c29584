// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// String - the values of the whole tree in order, space separated
func (tree *Tree[T]) String() string {
	b := strings.Builder{}
	tree.display(&b, tree.root)
	return b.String()
}

// Print - write an ASCII graphic representation of the tree, right
// sub-trees above left, returns the number of levels
func (tree *Tree[T]) Print(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[T]) printTree(w io.Writer, h handle, prefix string, br branch, printData bool) int {
	if none == h {
		return 0
	}
	n := &tree.nodes[h]
	rd := 0
	ld := 0
	if none != n.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, n.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if none != n.parent {
		up = tree.nodes[n.parent].value
	}
	if printData {
		fmt.Fprintf(w, "%v ^%v %+2d/h:%d\n", n.value, up, tree.balanceFactor(h), n.height)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", n.value, up)
	}
	if none != n.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, n.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
