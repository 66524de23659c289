// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// to record the route from the root to a found node
type direction int

const (
	goLeft  direction = iota
	goRight direction = iota
)

// Search - true if any node holds the key
func (tree *Tree) Search(key int) bool {
	p, _ := search(key, tree.root, nil)
	return nil != p
}

// SearchBST - find a key by binary search descent, only meaningful
// for a tree built with InsertBST
func (tree *Tree) SearchBST(key int) bool {
	p := tree.root
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return true
		}
	}
	return false
}

// FindDistance - number of edges from the root to the first node
// holding key (left sub-tree searched before right) or NotFound
func (tree *Tree) FindDistance(key int) int {
	p, path := search(key, tree.root, nil)
	if nil == p {
		return NotFound
	}
	return len(path)
}

// LevelOfNode - depth of a key, the root is level zero
func (tree *Tree) LevelOfNode(key int) int {
	return tree.FindDistance(key)
}

// internal: pre-order search returning the node and the directions
// taken from the root to reach it
func search(key int, p *Node, path []direction) (*Node, []direction) {
	if nil == p {
		return nil, nil
	}
	if p.key == key {
		return p, path
	}
	if n, route := search(key, p.left, append(path, goLeft)); nil != n {
		return n, route
	}
	return search(key, p.right, append(path, goRight))
}

// internal: replay a route from the root returning every node passed
// through, excluding the final destination
func (tree *Tree) replay(path []direction) []*Node {
	nodes := make([]*Node, 0, len(path))
	p := tree.root
	for _, d := range path {
		nodes = append(nodes, p)
		if goLeft == d {
			p = p.left
		} else {
			p = p.right
		}
	}
	return nodes
}
