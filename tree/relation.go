// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// all relational queries locate the key with the same left-first
// search as FindDistance, so for duplicate keys they agree on which
// node is meant

// Sibling - key of the other child of key's parent
//
// false if key is the root, is an only child or is not in the tree
func (tree *Tree) Sibling(key int) (int, bool) {
	parent, d := tree.parentOf(key)
	if nil == parent {
		return 0, false
	}
	other := parent.right
	if goRight == d {
		other = parent.left
	}
	if nil == other {
		return 0, false
	}
	return other.key, true
}

// Cousins - keys at the same depth as key, excluding key itself and
// its sibling, left to right
func (tree *Tree) Cousins(key int) []int {
	p, path := search(key, tree.root, nil)
	if nil == p || 0 == len(path) {
		return []int{}
	}
	ancestors := tree.replay(path)
	parent := ancestors[len(ancestors)-1]
	return keysOf(atDepth(tree.root, parent, len(path), []*Node{}))
}

// Ancestors - keys from the root down to key's parent
//
// empty if key is the root or is not in the tree
func (tree *Tree) Ancestors(key int) []int {
	p, path := search(key, tree.root, nil)
	if nil == p {
		return []int{}
	}
	return keysOf(tree.replay(path))
}

// NearestAncestor - key of the immediate parent
func (tree *Tree) NearestAncestor(key int) (int, bool) {
	parent, _ := tree.parentOf(key)
	if nil == parent {
		return 0, false
	}
	return parent.key, true
}

// Descendants - pre-order keys of key's sub-tree without key itself
func (tree *Tree) Descendants(key int) []int {
	p, _ := search(key, tree.root, nil)
	if nil == p {
		return []int{}
	}
	nodes := make([]*Node, 0, tree.count)
	nodes = preOrderNodes(p.left, nodes)
	nodes = preOrderNodes(p.right, nodes)
	return keysOf(nodes)
}

// internal: parent of key and the side key hangs from
func (tree *Tree) parentOf(key int) (*Node, direction) {
	p, path := search(key, tree.root, nil)
	if nil == p || 0 == len(path) {
		return nil, goLeft
	}
	ancestors := tree.replay(path)
	return ancestors[len(ancestors)-1], path[len(path)-1]
}
