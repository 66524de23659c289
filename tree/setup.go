// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// NotFound - distance/level result for a key that is not in the tree
const NotFound = -1

// Tree - type to hold the root node of a tree
type Tree struct {
	root    *Node
	count   int
	maximum int // 0 => unlimited
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewLimited - create an empty tree that refuses to allocate more
// than maximum nodes, maximum <= 0 means no limit
func NewLimited(maximum int) *Tree {
	if maximum < 0 {
		maximum = 0
	}
	return &Tree{
		root:    nil,
		count:   0,
		maximum: maximum,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Clear - release every node, children strictly before their parent
//
// nodes previously obtained from Root/Left/Right must not be used
// afterwards as they return to the allocator pool
func (tree *Tree) Clear() {
	stack := make([]*Node, 0, 32)
	var last *Node
	p := tree.root
	for nil != p || len(stack) > 0 {
		if nil != p {
			stack = append(stack, p)
			p = p.left
			continue
		}
		top := stack[len(stack)-1]
		if nil != top.right && last != top.right {
			p = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		last = top
		freeNode(top)
	}
	tree.root = nil
	tree.count = 0
}

// Key - read the key from a node
func (p *Node) Key() int {
	if nil == p {
		return 0
	}
	return p.key
}

// Left - non-owning view of the left child
func (p *Node) Left() *Node {
	if nil == p {
		return nil
	}
	return p.left
}

// Right - non-owning view of the right child
func (p *Node) Right() *Node {
	if nil == p {
		return nil
	}
	return p.right
}

// SetLeft - install the left child
//
// a second call replaces the link and orphans the previous subtree,
// which is a caller error
func (p *Node) SetLeft(child *Node) {
	if nil != p {
		p.left = child
	}
}

// SetRight - install the right child, see SetLeft
func (p *Node) SetRight(child *Node) {
	if nil != p {
		p.right = child
	}
}

// IsLeaf - true if the node has no children
func (p *Node) IsLeaf() bool {
	return nil != p && nil == p.left && nil == p.right
}

// Children - number of children present: 0, 1 or 2
func (p *Node) Children() int {
	if nil == p {
		return 0
	}
	n := 0
	if nil != p.left {
		n += 1
	}
	if nil != p.right {
		n += 1
	}
	return n
}
