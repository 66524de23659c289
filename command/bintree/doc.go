// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Binary tree query client
//
// Builds a tree from the keys given on the command line or in a
// configuration file and runs the catalogue of tree queries on it.
// With --connect the queries are sent to a bintreed instead.
package main
