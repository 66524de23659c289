// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/bintree/fault"
)

// Delete - removal of a single key is not supported, the tree is
// never modified
//
// returns fault.ErrEmptyTree for an empty tree, otherwise
// fault.ErrNotImplemented
func (tree *Tree) Delete(key int) error {
	if tree.IsEmpty() {
		return fault.ErrEmptyTree
	}
	return fault.ErrNotImplemented
}
