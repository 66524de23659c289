// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// CheckBST - every key in a left sub-tree is less than its parent
// and every key in a right sub-tree is greater or equal
func (tree *Tree) CheckBST() bool {
	return checkBST(tree.root, bound{}, bound{})
}

// optional limit on keys
type bound struct {
	set   bool
	value int
}

// internal: keys must satisfy low <= key < high
func checkBST(p *Node, low bound, high bound) bool {
	if nil == p {
		return true
	}
	if low.set && p.key < low.value {
		return false
	}
	if high.set && p.key >= high.value {
		return false
	}
	return checkBST(p.left, low, bound{set: true, value: p.key}) &&
		checkBST(p.right, bound{set: true, value: p.key}, high)
}

// CheckComplete - every level is full except possibly the last,
// which is filled from the left
func (tree *Tree) CheckComplete() bool {
	if nil == tree.root {
		return true
	}
	queue := []*Node{tree.root}
	gap := false
	for i := 0; i < len(queue); i += 1 {
		p := queue[i]
		for _, child := range []*Node{p.left, p.right} {
			if nil == child {
				gap = true
				continue
			}
			if gap {
				return false
			}
			queue = append(queue, child)
		}
	}
	return true
}

// CheckCount - the maintained count agrees with the reachable nodes
func (tree *Tree) CheckCount() bool {
	return len(levelOrder(tree.root)) == tree.count
}
