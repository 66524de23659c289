// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Order - the sequence in which Walk visits nodes
type Order int

// the supported orders
const (
	OrderPre   Order = iota // node, left, right
	OrderIn    Order = iota // left, node, right
	OrderPost  Order = iota // left, right, node
	OrderLevel Order = iota // breadth first, left to right
)

// String - name of an order
func (o Order) String() string {
	switch o {
	case OrderPre:
		return "pre-order"
	case OrderIn:
		return "in-order"
	case OrderPost:
		return "post-order"
	case OrderLevel:
		return "level-order"
	default:
		return "unknown"
	}
}

// Walk - call visit for each key in the given order, stopping as
// soon as visit returns false
func (tree *Tree) Walk(order Order, visit func(key int) bool) {
	if OrderLevel == order {
		for _, p := range levelOrder(tree.root) {
			if !visit(p.key) {
				return
			}
		}
		return
	}
	walk(tree.root, order, visit)
}

// PreOrder - keys in node, left, right order
func (tree *Tree) PreOrder() []int {
	return tree.collect(OrderPre)
}

// InOrder - keys in left, node, right order
func (tree *Tree) InOrder() []int {
	return tree.collect(OrderIn)
}

// PostOrder - keys in left, right, node order
func (tree *Tree) PostOrder() []int {
	return tree.collect(OrderPost)
}

func (tree *Tree) collect(order Order) []int {
	keys := make([]int, 0, tree.count)
	tree.Walk(order, func(key int) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// internal: depth first walk, false once visiting has been stopped
func walk(p *Node, order Order, visit func(int) bool) bool {
	if nil == p {
		return true
	}
	switch order {
	case OrderPre:
		return visit(p.key) &&
			walk(p.left, order, visit) &&
			walk(p.right, order, visit)
	case OrderIn:
		return walk(p.left, order, visit) &&
			visit(p.key) &&
			walk(p.right, order, visit)
	case OrderPost:
		return walk(p.left, order, visit) &&
			walk(p.right, order, visit) &&
			visit(p.key)
	default:
		return false
	}
}

// internal: pre-order list of the nodes of a sub-tree
func preOrderNodes(p *Node, nodes []*Node) []*Node {
	if nil == p {
		return nodes
	}
	nodes = append(nodes, p)
	nodes = preOrderNodes(p.left, nodes)
	return preOrderNodes(p.right, nodes)
}
