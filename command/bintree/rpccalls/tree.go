// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/bintree/engine"
	"github.com/bitmark-inc/bintree/rpc/treeservice"
)

// Insert - send keys to the remote tree, an empty policy uses the
// daemon's policy
func (client *Client) Insert(policy string, keys []int) (*treeservice.InsertReply, error) {
	arguments := treeservice.InsertArguments{
		Keys:   keys,
		Policy: policy,
	}
	client.printJson("Insert Request", arguments)

	var reply treeservice.InsertReply
	if err := client.client.Call("Tree.Insert", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Insert Reply", reply)
	return &reply, nil
}

// Query - run a named operation on the remote tree
func (client *Client) Query(operation string, argument int) (*engine.Result, error) {
	arguments := treeservice.QueryArguments{
		Operation: operation,
		Argument:  argument,
	}
	client.printJson("Query Request", arguments)

	var reply treeservice.QueryReply
	if err := client.client.Call("Tree.Query", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Query Reply", reply)
	result := engine.Result(reply)
	return &result, nil
}

// Operations - fetch the operation catalogue
func (client *Client) Operations() (*treeservice.OperationsReply, error) {
	var reply treeservice.OperationsReply
	if err := client.client.Call("Tree.Operations", &treeservice.OperationsArguments{}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetInfo - request status from bintreed
func (client *Client) GetInfo() (*treeservice.InfoReply, error) {
	var reply treeservice.InfoReply
	if err := client.client.Call("Tree.Info", &treeservice.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	client.printJson("Info Reply", reply)
	return &reply, nil
}
