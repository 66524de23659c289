// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"io"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/tree"
)

// Engine - a tree with its insertion policy and a result cache
type Engine struct {
	sync.RWMutex

	log        *logger.L
	tree       *tree.Tree
	policy     Policy
	generation uint64
	cache      ResultCache
}

// Info - summary of the current tree
type Info struct {
	Policy string `json:"policy"`
	Count  int    `json:"count"`
	Height int    `json:"height"`
}

// New - create an engine holding an empty tree
//
// maximum limits the number of nodes, zero for no limit; cached
// results expire after expiration
func New(log *logger.L, policy Policy, maximum int, expiration time.Duration) *Engine {
	log.Infof("policy: %s  maximum nodes: %d", policy, maximum)
	return &Engine{
		log:    log,
		tree:   tree.NewLimited(maximum),
		policy: policy,
		cache:  NewResultCache(expiration),
	}
}

// Policy - the current insertion policy
func (e *Engine) Policy() Policy {
	e.RLock()
	defer e.RUnlock()
	return e.policy
}

// Info - policy, node count and height
func (e *Engine) Info() Info {
	e.RLock()
	defer e.RUnlock()
	return Info{
		Policy: e.policy.String(),
		Count:  e.tree.Count(),
		Height: e.tree.Height(),
	}
}

// Insert - add keys using the current policy
//
// stops at the first failure and returns the number inserted
func (e *Engine) Insert(keys ...int) (int, error) {
	e.Lock()
	defer e.Unlock()
	return e.insert(e.policy, keys)
}

// InsertWith - add keys using a specific policy
func (e *Engine) InsertWith(policy Policy, keys ...int) (int, error) {
	e.Lock()
	defer e.Unlock()
	return e.insert(policy, keys)
}

// must hold the write lock
func (e *Engine) insert(policy Policy, keys []int) (int, error) {
	n := 0
	defer func() {
		if n > 0 {
			e.generation += 1
		}
	}()
	for _, key := range keys {
		if err := policy.insert(e.tree, key); nil != err {
			e.log.Warnf("insert: %d  policy: %s  error: %s", key, policy, err)
			return n, err
		}
		n += 1
	}
	e.log.Debugf("inserted: %d  count: %d", n, e.tree.Count())
	return n, nil
}

// Query - run a catalogue operation by name
func (e *Engine) Query(name string, argument int) (Result, error) {
	op, ok := Lookup(name)
	if !ok {
		e.log.Debugf("unknown operation: %q", name)
		return Result{}, fault.ErrUnknownOperation
	}
	return e.Run(op, argument)
}

// Run - apply a catalogue operation
func (e *Engine) Run(op Operation, argument int) (Result, error) {
	if op.Mutates {
		return e.mutate(op, argument)
	}

	e.RLock()
	defer e.RUnlock()

	if NoArgument == op.Argument {
		argument = 0
	}

	if result, ok := e.cache.Get(e.generation, op.Name, argument); ok {
		e.log.Tracef("cached: %s(%d)", op.Name, argument)
		return result, nil
	}

	if e.tree.IsEmpty() {
		e.log.Debug("tree is empty")
	}

	result, err := op.Run(e.tree, argument)
	if nil != err {
		return result, err
	}
	e.cache.Set(e.generation, op.Name, argument, result)
	return result, nil
}

func (e *Engine) mutate(op Operation, argument int) (Result, error) {
	e.Lock()
	defer e.Unlock()

	before := e.tree.Count()
	result, err := op.Run(e.tree, argument)
	if e.tree.Count() != before {
		e.generation += 1
	}
	if nil != err {
		e.log.Debugf("%s(%d) error: %s", op.Name, argument, err)
	}
	return result, err
}

// Rebuild - replace the tree with one built from keys, holding at
// most maximum nodes (zero for no limit)
//
// the new tree is built without holding the lock so queries continue
// against the old tree until the swap
func (e *Engine) Rebuild(policy Policy, keys []int, maximum int) error {
	t, err := policy.Build(keys, maximum)
	if nil != err {
		e.log.Errorf("rebuild with %d keys error: %s", len(keys), err)
		return err
	}

	e.Lock()
	old := e.tree
	e.tree = t
	e.policy = policy
	e.generation += 1
	e.Unlock()

	e.cache.Clear()
	old.Clear()

	e.log.Infof("rebuilt: policy: %s  count: %d  maximum nodes: %d", policy, t.Count(), maximum)
	return nil
}

// Clear - release every node
func (e *Engine) Clear() {
	e.Lock()
	defer e.Unlock()
	e.tree.Clear()
	e.generation += 1
	e.cache.Clear()
}

// Print - ASCII drawing of the tree, returns the depth
func (e *Engine) Print(w io.Writer) int {
	e.RLock()
	defer e.RUnlock()
	return e.tree.Print(w)
}

// CachedResults - number of results currently cached
func (e *Engine) CachedResults() int {
	return e.cache.Count()
}
