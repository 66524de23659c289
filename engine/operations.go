// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"strings"

	"github.com/bitmark-inc/bintree/tree"
)

// Argument - what the single integer argument of an operation means
type Argument int

// argument kinds
const (
	NoArgument       Argument = iota
	KeyArgument               // a key to insert or look up
	DistanceArgument          // a depth measured from the root
)

// String - name of argument for usage messages
func (a Argument) String() string {
	switch a {
	case NoArgument:
		return ""
	case KeyArgument:
		return "key"
	case DistanceArgument:
		return "distance"
	default:
		return "*unknown*"
	}
}

// Result - outcome of a single operation
//
// list operations fill Keys, scalar operations fill Value and set
// Found when the value exists
type Result struct {
	Operation string `json:"operation"`
	Argument  *int   `json:"argument,omitempty"`
	Keys      []int  `json:"keys,omitempty"`
	Value     int    `json:"value"`
	Found     bool   `json:"found"`
}

type runner func(t *tree.Tree, argument int, result *Result) error

// Operation - one entry of the catalogue
type Operation struct {
	Number      int
	Name        string
	Argument    Argument
	Mutates     bool
	Description string
	run         runner
}

// the numbering matches the interactive menu
var catalogue = []Operation{
	{1, "insert", KeyArgument, true, "insert key, filling the tree level by level", insertComplete},
	{2, "insert-bst", KeyArgument, true, "insert key in binary search tree order", insertBST},
	{3, "delete", KeyArgument, true, "delete key", deleteKey},
	{4, "search", KeyArgument, false, "search the whole tree for key", search},
	{5, "search-bst", KeyArgument, false, "search for key by binary search tree descent", searchBST},
	{6, "preorder", NoArgument, false, "pre-order traversal", keys((*tree.Tree).PreOrder)},
	{7, "inorder", NoArgument, false, "in-order traversal", keys((*tree.Tree).InOrder)},
	{8, "postorder", NoArgument, false, "post-order traversal", keys((*tree.Tree).PostOrder)},
	{9, "levelorder", NoArgument, false, "level order traversal", keys((*tree.Tree).LevelOrder)},
	{10, "reverse-levelorder", NoArgument, false, "level order traversal, deepest level first", keys((*tree.Tree).ReverseLevelOrder)},
	{11, "spiral", NoArgument, false, "spiral (zig-zag) level order traversal", keys((*tree.Tree).SpiralOrder)},
	{12, "leaves", NoArgument, false, "nodes without children", keys((*tree.Tree).LeafNodes)},
	{13, "non-leaves", NoArgument, false, "nodes with at least one child", keys((*tree.Tree).NonLeafNodes)},
	{14, "boundary", NoArgument, false, "anticlockwise boundary starting at the root", keys((*tree.Tree).BoundaryNodes)},
	{15, "full", NoArgument, false, "nodes with no children or two children", keys((*tree.Tree).FullNodes)},
	{16, "half", NoArgument, false, "nodes with exactly one child", keys((*tree.Tree).HalfNodes)},
	{17, "distance", DistanceArgument, false, "nodes at distance from the root", keysAt((*tree.Tree).NodesAtDistance)},
	{18, "sibling", KeyArgument, false, "other child of the key's parent", scalar((*tree.Tree).Sibling)},
	{19, "cousins", KeyArgument, false, "nodes on the key's level excluding its sibling", keysAt((*tree.Tree).Cousins)},
	{20, "ancestors", KeyArgument, false, "path from the root to the key's parent", keysAt((*tree.Tree).Ancestors)},
	{21, "descendants", KeyArgument, false, "every node below the key", keysAt((*tree.Tree).Descendants)},
	{22, "ancestor", KeyArgument, false, "the key's parent", scalar((*tree.Tree).NearestAncestor)},
	{23, "height", NoArgument, false, "height of the tree", height},
	{24, "level", KeyArgument, false, "level of the key, the root is level zero", level},
}

// Operations - the catalogue in menu order
func Operations() []Operation {
	ops := make([]Operation, len(catalogue))
	copy(ops, catalogue)
	return ops
}

// Lookup - find an operation by name
func Lookup(name string) (Operation, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, op := range catalogue {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// LookupNumber - find an operation by menu number
func LookupNumber(n int) (Operation, bool) {
	if n < 1 || n > len(catalogue) {
		return Operation{}, false
	}
	return catalogue[n-1], true
}

// Run - apply an operation directly to an unshared tree
func (op Operation) Run(t *tree.Tree, argument int) (Result, error) {
	result := Result{
		Operation: op.Name,
	}
	if NoArgument != op.Argument {
		a := argument
		result.Argument = &a
	}
	err := op.run(t, argument, &result)
	return result, err
}

func insertComplete(t *tree.Tree, key int, result *Result) error {
	if err := t.InsertComplete(key); nil != err {
		return err
	}
	result.Value = t.Count()
	result.Found = true
	return nil
}

func insertBST(t *tree.Tree, key int, result *Result) error {
	if err := t.InsertBST(key); nil != err {
		return err
	}
	result.Value = t.Count()
	result.Found = true
	return nil
}

func deleteKey(t *tree.Tree, key int, result *Result) error {
	return t.Delete(key)
}

func search(t *tree.Tree, key int, result *Result) error {
	result.Found = t.Search(key)
	if result.Found {
		result.Value = key
	}
	return nil
}

func searchBST(t *tree.Tree, key int, result *Result) error {
	result.Found = t.SearchBST(key)
	if result.Found {
		result.Value = key
	}
	return nil
}

func height(t *tree.Tree, _ int, result *Result) error {
	result.Value = t.Height()
	result.Found = !t.IsEmpty()
	return nil
}

func level(t *tree.Tree, key int, result *Result) error {
	result.Value = t.LevelOfNode(key)
	result.Found = tree.NotFound != result.Value
	return nil
}

func keys(f func(*tree.Tree) []int) runner {
	return func(t *tree.Tree, _ int, result *Result) error {
		result.Keys = f(t)
		result.Found = 0 != len(result.Keys)
		return nil
	}
}

func keysAt(f func(*tree.Tree, int) []int) runner {
	return func(t *tree.Tree, argument int, result *Result) error {
		result.Keys = f(t, argument)
		result.Found = 0 != len(result.Keys)
		return nil
	}
}

func scalar(f func(*tree.Tree, int) (int, bool)) runner {
	return func(t *tree.Tree, argument int, result *Result) error {
		result.Value, result.Found = f(t, argument)
		return nil
	}
}
