// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/bitmark-inc/bintree/tree"
)

// a perfectly balanced search tree of fifteen keys
var bstKeys = []int{
	16,
	8, 24,
	4, 12, 20, 28,
	2, 6, 10, 14, 18, 22, 26, 30,
}

// build a complete tree from 1..n
func makeComplete(t *testing.T, n int) *tree.Tree {
	tr := tree.New()
	for i := 1; i <= n; i += 1 {
		if err := tr.InsertComplete(i); nil != err {
			t.Fatalf("insert: %d  error: %s", i, err)
		}
	}
	return tr
}

func makeBST(t *testing.T, keys []int) *tree.Tree {
	tr := tree.New()
	for _, key := range keys {
		if err := tr.InsertBST(key); nil != err {
			t.Fatalf("insert: %d  error: %s", key, err)
		}
	}
	return tr
}

func sequence(from int, to int) []int {
	s := make([]int, 0, to-from+1)
	for i := from; i <= to; i += 1 {
		s = append(s, i)
	}
	return s
}

func equalKeys(a []int, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sorted(keys []int) []int {
	s := append([]int{}, keys...)
	sort.Ints(s)
	return s
}

func TestCompleteScenario(t *testing.T) {
	tr := makeComplete(t, 31)

	if n := tr.Count(); 31 != n {
		t.Fatalf("count: actual: %d  expected: 31", n)
	}
	if lo := tr.LevelOrder(); !equalKeys(lo, sequence(1, 31)) {
		t.Errorf("level order: actual: %v", lo)
	}
	if h := tr.Height(); 4 != h {
		t.Errorf("height: actual: %d  expected: 4", h)
	}
	if leaves := tr.LeafNodes(); !equalKeys(leaves, sequence(16, 31)) {
		t.Errorf("leaves: actual: %v", leaves)
	}
	if d := tr.NodesAtDistance(2); !equalKeys(d, []int{4, 5, 6, 7}) {
		t.Errorf("distance 2: actual: %v", d)
	}
	if a := tr.Ancestors(30); !equalKeys(a, []int{1, 3, 7, 15}) {
		t.Errorf("ancestors of 30: actual: %v", a)
	}
	if s, ok := tr.Sibling(30); !ok || 31 != s {
		t.Errorf("sibling of 30: actual: %d/%v  expected: 31", s, ok)
	}
	if !tr.CheckComplete() {
		t.Error("tree is not complete")
	}
	if !tr.CheckCount() {
		t.Error("count does not match nodes")
	}
}

func TestBSTScenario(t *testing.T) {
	tr := makeBST(t, bstKeys)

	if in := tr.InOrder(); !equalKeys(in, sorted(bstKeys)) {
		t.Errorf("in order: actual: %v", in)
	}
	if d := tr.FindDistance(30); 3 != d {
		t.Errorf("distance to 30: actual: %d  expected: 3", d)
	}
	if lo := tr.LevelOrder(); !equalKeys(lo, bstKeys) {
		t.Errorf("level order: actual: %v", lo)
	}
	if !tr.CheckBST() {
		t.Error("search tree ordering broken")
	}
	if tr.CheckComplete() != true {
		t.Error("perfect search tree should also be complete")
	}
}

func TestHeights(t *testing.T) {
	if h := tree.New().Height(); -1 != h {
		t.Errorf("empty height: %d", h)
	}
	if h := makeComplete(t, 1).Height(); 0 != h {
		t.Errorf("single node height: %d", h)
	}
	if h := makeComplete(t, 31).Height(); 4 != h {
		t.Errorf("31 node height: %d", h)
	}
	if h := makeComplete(t, 32).Height(); 5 != h {
		t.Errorf("32 node height: %d", h)
	}

	// degenerate chain
	if h := makeBST(t, sequence(1, 10)).Height(); 9 != h {
		t.Errorf("chain height: %d", h)
	}
}

func TestTraversalOrders(t *testing.T) {
	tr := makeComplete(t, 7)

	items := []struct {
		name     string
		actual   []int
		expected []int
	}{
		{"pre-order", tr.PreOrder(), []int{1, 2, 4, 5, 3, 6, 7}},
		{"in-order", tr.InOrder(), []int{4, 2, 5, 1, 6, 3, 7}},
		{"post-order", tr.PostOrder(), []int{4, 5, 2, 6, 7, 3, 1}},
		{"level-order", tr.LevelOrder(), []int{1, 2, 3, 4, 5, 6, 7}},
		{"reverse-level-order", tr.ReverseLevelOrder(), []int{4, 5, 6, 7, 2, 3, 1}},
		{"spiral", tr.SpiralOrder(), []int{1, 3, 2, 4, 5, 6, 7}},
	}
	for _, item := range items {
		if !equalKeys(item.actual, item.expected) {
			t.Errorf("%s: actual: %v  expected: %v", item.name, item.actual, item.expected)
		}
	}
}

// reversing level groups is not the same as reversing the flat list
func TestReverseLevelOrderKeepsLevelDirection(t *testing.T) {
	tr := makeComplete(t, 7)
	flat := tr.LevelOrder()
	for i, j := 0, len(flat)-1; i < j; i, j = i+1, j-1 {
		flat[i], flat[j] = flat[j], flat[i]
	}
	if equalKeys(flat, tr.ReverseLevelOrder()) {
		t.Errorf("reverse level order is a flat reversal: %v", flat)
	}
}

func TestSpiralDeeper(t *testing.T) {
	tr := makeComplete(t, 15)
	expected := []int{1, 3, 2, 4, 5, 6, 7, 15, 14, 13, 12, 11, 10, 9, 8}
	if s := tr.SpiralOrder(); !equalKeys(s, expected) {
		t.Errorf("spiral: actual: %v  expected: %v", s, expected)
	}
}

func TestLevels(t *testing.T) {
	tr := makeComplete(t, 6)
	levels := tr.Levels()
	expected := [][]int{{1}, {2, 3}, {4, 5, 6}}
	if len(levels) != len(expected) {
		t.Fatalf("levels: actual: %v  expected: %v", levels, expected)
	}
	for i := range expected {
		if !equalKeys(levels[i], expected[i]) {
			t.Errorf("level[%d]: actual: %v  expected: %v", i, levels[i], expected[i])
		}
	}
}

func TestEmptyTree(t *testing.T) {
	tr := tree.New()

	if !tr.IsEmpty() {
		t.Fatal("new tree is not empty")
	}

	lists := map[string][]int{
		"pre-order":      tr.PreOrder(),
		"in-order":       tr.InOrder(),
		"post-order":     tr.PostOrder(),
		"level-order":    tr.LevelOrder(),
		"reverse":        tr.ReverseLevelOrder(),
		"spiral":         tr.SpiralOrder(),
		"leaves":         tr.LeafNodes(),
		"non-leaves":     tr.NonLeafNodes(),
		"full":           tr.FullNodes(),
		"half":           tr.HalfNodes(),
		"boundary":       tr.BoundaryNodes(),
		"distance":       tr.NodesAtDistance(0),
		"cousins":        tr.Cousins(1),
		"ancestors":      tr.Ancestors(1),
		"descendants":    tr.Descendants(1),
		"levels-flatten": flatten(tr.Levels()),
	}
	for name, keys := range lists {
		if nil == keys {
			t.Errorf("%s: nil result", name)
		}
		if 0 != len(keys) {
			t.Errorf("%s: expected empty, actual: %v", name, keys)
		}
	}

	if d := tr.FindDistance(1); tree.NotFound != d {
		t.Errorf("distance: %d", d)
	}
	if _, ok := tr.Sibling(1); ok {
		t.Error("sibling found in empty tree")
	}
	if _, ok := tr.NearestAncestor(1); ok {
		t.Error("ancestor found in empty tree")
	}
	if tr.Search(1) || tr.SearchBST(1) {
		t.Error("search found key in empty tree")
	}
}

func flatten(levels [][]int) []int {
	keys := []int{}
	for _, level := range levels {
		keys = append(keys, level...)
	}
	return keys
}

// every traversal visits each node once
func TestTraversalLengthInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(20190606))

	for round := 0; round < 20; round += 1 {
		n := 1 + r.Intn(200)
		keys := make([]int, n)
		for i := range keys {
			keys[i] = r.Intn(100) - 50 // duplicates likely
		}

		for _, tr := range []*tree.Tree{makeBST(t, keys), completeFrom(t, keys)} {
			expected := sorted(keys)
			for _, order := range [][]int{
				tr.PreOrder(),
				tr.InOrder(),
				tr.PostOrder(),
				tr.LevelOrder(),
				tr.ReverseLevelOrder(),
				tr.SpiralOrder(),
			} {
				if len(order) != n {
					t.Fatalf("round %d: length: %d  expected: %d", round, len(order), n)
				}
				if !equalKeys(sorted(order), expected) {
					t.Fatalf("round %d: not a permutation: %v", round, order)
				}
			}
		}
	}
}

// in-order of a search tree is the sorted input
func TestBSTRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	keys := make([]int, 500)
	for i := range keys {
		keys[i] = r.Intn(1000)
	}
	tr := makeBST(t, keys)
	if in := tr.InOrder(); !equalKeys(in, sorted(keys)) {
		t.Fatalf("in-order is not sorted input")
	}
	if !tr.CheckBST() {
		t.Fatal("search tree ordering broken")
	}
	for _, key := range keys {
		if !tr.SearchBST(key) {
			t.Fatalf("search: %d not found", key)
		}
	}
}

func completeFrom(t *testing.T, keys []int) *tree.Tree {
	tr := tree.New()
	for _, key := range keys {
		if err := tr.InsertComplete(key); nil != err {
			t.Fatalf("insert: %d  error: %s", key, err)
		}
	}
	return tr
}

func TestWalkStopsEarly(t *testing.T) {
	tr := makeComplete(t, 15)

	for _, order := range []tree.Order{tree.OrderPre, tree.OrderIn, tree.OrderPost, tree.OrderLevel} {
		seen := []int{}
		tr.Walk(order, func(key int) bool {
			seen = append(seen, key)
			return len(seen) < 3
		})
		if 3 != len(seen) {
			t.Errorf("%s: visited: %v", order, seen)
		}
	}
}
