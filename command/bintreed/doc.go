// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Binary tree query daemon
//
// This program builds a binary tree from the keys in its
// configuration file and serves the tree queries over JSON-RPC (TLS)
// and an optional HTTPS status interface.  The configuration file is
// watched and the tree is rebuilt whenever the file changes.
package main
