// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"sync"
)

// Node - a vertex in the tree, each child is owned only by its parent
type Node struct {
	left  *Node // left sub-tree
	right *Node // right sub-tree
	key   int   // immutable after allocation
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(key int) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			m.Unlock()
			panic("pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key: key,
		}
	}
	p := pool
	pool = p.left
	p.key = key
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.left = pool // use as free list pointer
	node.right = nil
	node.key = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}

// PoolStatistics - nodes ever created and nodes waiting for reuse
func PoolStatistics() (total int, free int) {
	m.Lock()
	defer m.Unlock()
	return totalNodes, freeNodes
}
