// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// LevelOrder - keys breadth first, left child before right
func (tree *Tree) LevelOrder() []int {
	return keysOf(levelOrder(tree.root))
}

// Levels - keys grouped by depth, each group left to right
func (tree *Tree) Levels() [][]int {
	levels := levelGroups(tree.root)
	keys := make([][]int, len(levels))
	for i, level := range levels {
		keys[i] = keysOf(level)
	}
	return keys
}

// ReverseLevelOrder - the deepest level first and the root last, the
// left to right order inside each level is kept
//
// for 1..7 inserted completely: [4 5 6 7 2 3 1]
func (tree *Tree) ReverseLevelOrder() []int {
	levels := levelGroups(tree.root)
	keys := make([]int, 0, tree.count)
	for i := len(levels) - 1; i >= 0; i -= 1 {
		for _, p := range levels[i] {
			keys = append(keys, p.key)
		}
	}
	return keys
}

// SpiralOrder - level order alternating direction: even levels left
// to right, odd levels right to left
//
// for 1..7 inserted completely: [1 3 2 4 5 6 7]
func (tree *Tree) SpiralOrder() []int {
	levels := levelGroups(tree.root)
	keys := make([]int, 0, tree.count)
	for depth, level := range levels {
		if 0 == depth%2 {
			for _, p := range level {
				keys = append(keys, p.key)
			}
		} else {
			for i := len(level) - 1; i >= 0; i -= 1 {
				keys = append(keys, level[i].key)
			}
		}
	}
	return keys
}

// internal: FIFO breadth first list of nodes
//
// the result slice doubles as the queue, nodes before the index
// have already been expanded
func levelOrder(root *Node) []*Node {
	if nil == root {
		return []*Node{}
	}
	queue := []*Node{root}
	for i := 0; i < len(queue); i += 1 {
		p := queue[i]
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return queue
}

// internal: nodes grouped per level
func levelGroups(root *Node) [][]*Node {
	levels := [][]*Node{}
	if nil == root {
		return levels
	}
	current := []*Node{root}
	for 0 != len(current) {
		levels = append(levels, current)
		next := make([]*Node, 0, 2*len(current))
		for _, p := range current {
			if nil != p.left {
				next = append(next, p.left)
			}
			if nil != p.right {
				next = append(next, p.right)
			}
		}
		current = next
	}
	return levels
}

func keysOf(nodes []*Node) []int {
	keys := make([]int, len(nodes))
	for i, p := range nodes {
		keys[i] = p.key
	}
	return keys
}
