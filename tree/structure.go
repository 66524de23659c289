// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Height - edges on the longest root to leaf path, -1 for an empty tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return -1
	}
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// LeafNodes - keys of nodes without children, left to right
func (tree *Tree) LeafNodes() []int {
	return keysOf(leaves(tree.root, []*Node{}))
}

func leaves(p *Node, nodes []*Node) []*Node {
	if nil == p {
		return nodes
	}
	if nil == p.left && nil == p.right {
		return append(nodes, p)
	}
	nodes = leaves(p.left, nodes)
	return leaves(p.right, nodes)
}

// NonLeafNodes - keys of nodes with at least one child, in pre-order
func (tree *Tree) NonLeafNodes() []int {
	return tree.selectNodes(func(p *Node) bool {
		return p.Children() > 0
	})
}

// FullNodes - keys of nodes having either no children or both
// children, in pre-order
//
// leaves count as full here
func (tree *Tree) FullNodes() []int {
	return tree.selectNodes(func(p *Node) bool {
		return 1 != p.Children()
	})
}

// HalfNodes - keys of nodes having exactly one child, in pre-order
func (tree *Tree) HalfNodes() []int {
	return tree.selectNodes(func(p *Node) bool {
		return 1 == p.Children()
	})
}

// internal: pre-order keys of the nodes accepted by a predicate
func (tree *Tree) selectNodes(accept func(*Node) bool) []int {
	keys := []int{}
	for _, p := range preOrderNodes(tree.root, make([]*Node, 0, tree.count)) {
		if accept(p) {
			keys = append(keys, p.key)
		}
	}
	return keys
}

// BoundaryNodes - the anti-clockwise perimeter: root, left edge
// downwards, all leaves left to right, then right edge upwards
//
// edges exclude leaves so that no node appears twice
func (tree *Tree) BoundaryNodes() []int {
	root := tree.root
	if nil == root {
		return []int{}
	}
	nodes := []*Node{root}
	if root.IsLeaf() {
		return keysOf(nodes)
	}

	// left edge, top down
	for p := root.left; nil != p && !p.IsLeaf(); {
		nodes = append(nodes, p)
		if nil != p.left {
			p = p.left
		} else {
			p = p.right
		}
	}

	nodes = leaves(root, nodes)

	// right edge, bottom up
	rightEdge := []*Node{}
	for p := root.right; nil != p && !p.IsLeaf(); {
		rightEdge = append(rightEdge, p)
		if nil != p.right {
			p = p.right
		} else {
			p = p.left
		}
	}
	for i := len(rightEdge) - 1; i >= 0; i -= 1 {
		nodes = append(nodes, rightEdge[i])
	}

	return keysOf(nodes)
}

// NodesAtDistance - keys of every node k edges below the root, left
// to right, empty for negative k or k beyond the height
func (tree *Tree) NodesAtDistance(k int) []int {
	if k < 0 {
		return []int{}
	}
	return keysOf(atDepth(tree.root, nil, k, []*Node{}))
}

// internal: nodes at a given depth below p, skipping the whole
// sub-tree of exclude (nil to skip nothing)
func atDepth(p *Node, exclude *Node, depth int, nodes []*Node) []*Node {
	if nil == p || p == exclude {
		return nodes
	}
	if 0 == depth {
		return append(nodes, p)
	}
	nodes = atDepth(p.left, exclude, depth-1, nodes)
	return atDepth(p.right, exclude, depth-1, nodes)
}
