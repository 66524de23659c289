// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - an unbalanced binary tree of integer keys with a
// catalogue of traversal, structural and relational queries
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access (the engine package does the latter).
//
// Two insertion policies are provided: InsertComplete fills the tree
// level by level, left slot before right, so n insertions always give
// the same complete shape; InsertBST descends by key, equal keys go
// right.  Neither rebalances.
//
// Queries never modify the tree and never print; every query returns
// a freshly allocated slice or a scalar.  An empty tree and an absent
// key are not errors: they give an empty slice, NotFound or a false
// flag.
package tree
