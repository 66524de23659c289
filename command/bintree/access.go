// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"time"

	"github.com/bitmark-inc/bintree/command/bintree/rpccalls"
	"github.com/bitmark-inc/bintree/engine"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/rpc/treeservice"
)

// treeAccess - the commands run against either a local engine or a
// remote bintreed
type treeAccess interface {
	Insert(policy string, keys []int) (int, error)
	Query(operation string, argument int) (engine.Result, error)
	Operations() ([]treeservice.OperationEntry, error)
	Info() (*treeservice.InfoReply, error)
	Print(w io.Writer) (int, error)
	Close()
}

type localTree struct {
	engine *engine.Engine
	start  time.Time
}

func (l *localTree) Insert(policy string, keys []int) (int, error) {
	if "" == policy {
		return l.engine.Insert(keys...)
	}
	p, err := engine.ParsePolicy(policy)
	if nil != err {
		return 0, err
	}
	return l.engine.InsertWith(p, keys...)
}

func (l *localTree) Query(operation string, argument int) (engine.Result, error) {
	return l.engine.Query(operation, argument)
}

func (l *localTree) Operations() ([]treeservice.OperationEntry, error) {
	ops := engine.Operations()
	entries := make([]treeservice.OperationEntry, len(ops))
	for i, op := range ops {
		entries[i] = treeservice.OperationEntry{
			Number:      op.Number,
			Name:        op.Name,
			Argument:    op.Argument.String(),
			Description: op.Description,
		}
	}
	return entries, nil
}

func (l *localTree) Info() (*treeservice.InfoReply, error) {
	info := l.engine.Info()
	return &treeservice.InfoReply{
		Policy:  info.Policy,
		Count:   info.Count,
		Height:  info.Height,
		Version: version,
		Uptime:  time.Since(l.start).String(),
	}, nil
}

func (l *localTree) Print(w io.Writer) (int, error) {
	return l.engine.Print(w), nil
}

func (l *localTree) Close() {
	l.engine.Clear()
}

type remoteTree struct {
	client *rpccalls.Client
}

func (r *remoteTree) Insert(policy string, keys []int) (int, error) {
	reply, err := r.client.Insert(policy, keys)
	if nil != err {
		return 0, err
	}
	return reply.Inserted, nil
}

func (r *remoteTree) Query(operation string, argument int) (engine.Result, error) {
	result, err := r.client.Query(operation, argument)
	if nil != err {
		return engine.Result{}, err
	}
	return *result, nil
}

func (r *remoteTree) Operations() ([]treeservice.OperationEntry, error) {
	reply, err := r.client.Operations()
	if nil != err {
		return nil, err
	}
	return reply.Operations, nil
}

func (r *remoteTree) Info() (*treeservice.InfoReply, error) {
	return r.client.GetInfo()
}

// the drawing is only served by the daemon's HTTPS status page
func (r *remoteTree) Print(_ io.Writer) (int, error) {
	return 0, fault.ErrNotImplemented
}

func (r *remoteTree) Close() {
	r.client.Close()
}
