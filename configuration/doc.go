// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the file must return a table, e.g.:
//
//   local M = {}
//   M.data_directory = "."
//   M.tree = {
//       policy = "complete",
//       keys = { 1, 2, 3, 4, 5, 6, 7 },
//   }
//   return M
package configuration
