// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/bintree/fault"
)

// InsertComplete - insert a key at the first vacant slot in
// breadth-first order, keeping the tree complete
func (tree *Tree) InsertComplete(key int) error {
	if !tree.canAllocate() {
		return fault.ErrAllocationFailure
	}
	if nil == tree.root {
		tree.root = newNode(key)
		tree.count += 1
		return nil
	}

	queue := make([]*Node, 1, tree.count+1)
	queue[0] = tree.root

	for i := 0; i < len(queue); i += 1 {
		p := queue[i]
		if nil == p.left {
			p.left = newNode(key)
			tree.count += 1
			return nil
		}
		queue = append(queue, p.left)

		if nil == p.right {
			p.right = newNode(key)
			tree.count += 1
			return nil
		}
		queue = append(queue, p.right)
	}

	// a finite tree always has a vacant slot
	fault.Panicf("complete insert: no vacancy in tree of %d nodes", tree.count)
	return nil
}

// InsertBST - insert a key by binary search descent, equal keys are
// routed to the right sub-tree
func (tree *Tree) InsertBST(key int) error {
	if !tree.canAllocate() {
		return fault.ErrAllocationFailure
	}
	tree.root = insertBST(key, tree.root)
	tree.count += 1
	return nil
}

// internal routine for BST insert, returns the possibly new sub-tree
func insertBST(key int, p *Node) *Node {
	if nil == p {
		return newNode(key)
	}
	if key < p.key {
		p.left = insertBST(key, p.left)
	} else {
		p.right = insertBST(key, p.right)
	}
	return p
}

// check against the optional node limit
func (tree *Tree) canAllocate() bool {
	return 0 == tree.maximum || tree.count < tree.maximum
}
