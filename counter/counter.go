// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - atomic counts shared between the RPC listeners
// and the services that report them
package counter

import (
	"sync/atomic"
)

// Counter - number of live connections or served requests
type Counter uint64

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - subtract 1, returns new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - true when nothing is counted
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}

// Acquire - take one of at most maximum slots
//
// the count is unchanged when no slot is free
func (c *Counter) Acquire(maximum uint64) bool {
	if c.Increment() <= maximum {
		return true
	}
	c.Decrement()
	return false
}
