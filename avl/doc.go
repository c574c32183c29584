// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// links to allow upward rebalancing and iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  A traversal must never overlap an insert or erase.
//
// Nodes live in a per-tree arena and refer to each other by index,
// each node caches the height of its sub-tree (a leaf has height 0,
// an absent child counts as -1).
//
// Equal values are kept: an insert of a value already present is
// routed to the right and adds another node.  Erase removes one
// matching node; a node with two children takes over the value of
// its in-order successor and the successor's node is reclaimed.
package avl
