// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treeservice

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/counter"
	"github.com/bitmark-inc/bintree/engine"
	"github.com/bitmark-inc/bintree/rpc/ratelimit"
)

const (
	rateLimitTree = 200
	rateBurstTree = 100
)

// limit for keys in a single insert
const maximumInsertCount = 100

//go:generate mockgen -destination=../mocks/engine.go -package=mocks github.com/bitmark-inc/bintree/rpc/treeservice Engine

// Engine - the tree operations the service needs
type Engine interface {
	Insert(keys ...int) (int, error)
	InsertWith(policy engine.Policy, keys ...int) (int, error)
	Query(name string, argument int) (engine.Result, error)
	Info() engine.Info
}

// Tree - type for RPC calls
type Tree struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  Engine
	Start   time.Time
	Version string
	counter *counter.Counter
}

// New - create the RPC service
func New(log *logger.L, eng Engine, start time.Time, version string, counter *counter.Counter) *Tree {
	return &Tree{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTree, rateBurstTree),
		Engine:  eng,
		Start:   start,
		Version: version,
		counter: counter,
	}
}

// ---

// InsertArguments - keys to add, policy is optional
type InsertArguments struct {
	Keys   []int  `json:"keys"`
	Policy string `json:"policy"`
}

// InsertReply - result of insertion
type InsertReply struct {
	Inserted int `json:"inserted"`
	Count    int `json:"count"`
}

// Insert - add keys to the tree
//
// an empty policy uses the daemon's configured policy
func (t *Tree) Insert(arguments *InsertArguments, reply *InsertReply) error {

	if err := ratelimit.LimitN(t.Limiter, len(arguments.Keys), maximumInsertCount); nil != err {
		return err
	}

	var n int
	var err error
	if "" == arguments.Policy {
		n, err = t.Engine.Insert(arguments.Keys...)
	} else {
		policy, e := engine.ParsePolicy(arguments.Policy)
		if nil != e {
			return e
		}
		n, err = t.Engine.InsertWith(policy, arguments.Keys...)
	}

	t.Log.Infof("insert: %d of %d keys", n, len(arguments.Keys))

	if nil != err {
		return err
	}

	reply.Inserted = n
	reply.Count = t.Engine.Info().Count
	return nil
}

// ---

// QueryArguments - a catalogue operation and its argument
type QueryArguments struct {
	Operation string `json:"operation"`
	Argument  int    `json:"argument"`
}

// QueryReply - result of a query
type QueryReply engine.Result

// Query - run a named operation
func (t *Tree) Query(arguments *QueryArguments, reply *QueryReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Debugf("query: %s(%d)", arguments.Operation, arguments.Argument)

	result, err := t.Engine.Query(arguments.Operation, arguments.Argument)
	if nil != err {
		return err
	}

	*reply = QueryReply(result)
	return nil
}

// ---

// OperationsArguments - empty arguments for operations request
type OperationsArguments struct{}

// OperationEntry - description of one operation
type OperationEntry struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Argument    string `json:"argument"`
	Description string `json:"description"`
}

// OperationsReply - the catalogue
type OperationsReply struct {
	Operations []OperationEntry `json:"operations"`
}

// Operations - list every operation Query accepts
func (t *Tree) Operations(_ *OperationsArguments, reply *OperationsReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	ops := engine.Operations()
	reply.Operations = make([]OperationEntry, len(ops))
	for i, op := range ops {
		reply.Operations[i] = OperationEntry{
			Number:      op.Number,
			Name:        op.Name,
			Argument:    op.Argument.String(),
			Description: op.Description,
		}
	}
	return nil
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Policy  string `json:"policy"`
	Count   int    `json:"count"`
	Height  int    `json:"height"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - return some information about this tree
func (t *Tree) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	info := t.Engine.Info()

	reply.Policy = info.Policy
	reply.Count = info.Count
	reply.Height = info.Height
	reply.RPCs = t.counter.Uint64()
	reply.Version = t.Version
	reply.Uptime = time.Since(t.Start).String()
	return nil
}
