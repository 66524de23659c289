// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bintree/engine"
	"github.com/bitmark-inc/bintree/tree"
)

func TestCatalogueNumbering(t *testing.T) {
	ops := engine.Operations()
	require.Equal(t, 24, len(ops))

	names := map[string]bool{}
	for i, op := range ops {
		assert.Equal(t, i+1, op.Number, "operation: %s", op.Name)
		assert.False(t, names[op.Name], "duplicate: %s", op.Name)
		names[op.Name] = true

		byName, ok := engine.Lookup(op.Name)
		assert.True(t, ok)
		assert.Equal(t, op.Number, byName.Number)

		byNumber, ok := engine.LookupNumber(op.Number)
		assert.True(t, ok)
		assert.Equal(t, op.Name, byNumber.Name)
	}

	_, ok := engine.LookupNumber(0)
	assert.False(t, ok)
	_, ok = engine.LookupNumber(25)
	assert.False(t, ok)
	_, ok = engine.Lookup("nothing")
	assert.False(t, ok)
}

func TestOperationRun(t *testing.T) {
	tr := tree.New()
	for i := 1; i <= 7; i += 1 {
		require.NoError(t, tr.InsertComplete(i))
	}

	items := []struct {
		name     string
		argument int
		keys     []int
	}{
		{"preorder", 0, []int{1, 2, 4, 5, 3, 6, 7}},
		{"inorder", 0, []int{4, 2, 5, 1, 6, 3, 7}},
		{"postorder", 0, []int{4, 5, 2, 6, 7, 3, 1}},
		{"reverse-levelorder", 0, []int{4, 5, 6, 7, 2, 3, 1}},
		{"spiral", 0, []int{1, 3, 2, 4, 5, 6, 7}},
		{"leaves", 0, []int{4, 5, 6, 7}},
		{"non-leaves", 0, []int{1, 2, 3}},
		{"boundary", 0, []int{1, 2, 4, 5, 6, 7, 3}},
		{"full", 0, []int{1, 2, 4, 5, 3, 6, 7}},
		{"cousins", 4, []int{6, 7}},
		{"ancestors", 6, []int{1, 3}},
		{"descendants", 2, []int{4, 5}},
	}
	for _, item := range items {
		op, ok := engine.Lookup(item.name)
		require.True(t, ok, "operation: %s", item.name)
		r, err := op.Run(tr, item.argument)
		assert.NoError(t, err, "operation: %s", item.name)
		assert.Equal(t, item.keys, r.Keys, "operation: %s", item.name)
		assert.True(t, r.Found, "operation: %s", item.name)
	}

	op, _ := engine.Lookup("half")
	r, err := op.Run(tr, 0)
	assert.NoError(t, err)
	assert.False(t, r.Found)
	assert.Empty(t, r.Keys)
}

func TestArgumentNames(t *testing.T) {
	assert.Equal(t, "", engine.NoArgument.String())
	assert.Equal(t, "key", engine.KeyArgument.String())
	assert.Equal(t, "distance", engine.DistanceArgument.String())
}
