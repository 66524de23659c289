// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"strings"

	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/tree"
)

// Policy - how new keys are placed in the tree
type Policy int

// possible insertion policies
const (
	Complete Policy = iota // fill level by level, left to right
	BST                    // binary search tree ordering
)

// String - printable policy name
func (p Policy) String() string {
	switch p {
	case Complete:
		return "complete"
	case BST:
		return "bst"
	default:
		return "*unknown*"
	}
}

// ParsePolicy - convert a configuration string to a policy
//
// an empty string selects the complete policy
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "complete", "level":
		return Complete, nil
	case "bst", "search":
		return BST, nil
	default:
		return Complete, fault.ErrInvalidPolicy
	}
}

// insert a key into a tree according to policy
func (p Policy) insert(t *tree.Tree, key int) error {
	switch p {
	case Complete:
		return t.InsertComplete(key)
	case BST:
		return t.InsertBST(key)
	default:
		return fault.ErrInvalidPolicy
	}
}

// Build - create a new tree from a sequence of keys
//
// on error the partially built tree is released
func (p Policy) Build(keys []int, maximum int) (*tree.Tree, error) {
	t := tree.NewLimited(maximum)
	for _, key := range keys {
		if err := p.insert(t, key); nil != err {
			t.Clear()
			return nil, err
		}
	}
	return t, nil
}
