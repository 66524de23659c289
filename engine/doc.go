// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - thread-safe access to a binary tree
//
// an Engine owns one tree.Tree and serialises access to it: queries
// share a read lock, insertions take the write lock.  Every operation
// the tree offers is reachable by name (or menu number) through
// Query, and the results of read-only operations are cached until the
// next mutation.
package engine
