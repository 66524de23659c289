// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bintree/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64())

	assert.Equal(t, uint64(4), c.Decrement())
	for i := 0; i < 4; i += 1 {
		c.Decrement()
	}
	assert.True(t, c.IsZero(), "did not return to zero")
}

func TestAcquire(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.Acquire(2))
	assert.True(t, c.Acquire(2))
	assert.False(t, c.Acquire(2), "third slot")
	assert.Equal(t, uint64(2), c.Uint64(), "refused acquire leaves count")

	c.Decrement()
	assert.True(t, c.Acquire(2))
}

func TestConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup
	for i := 0; i < 10; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
				c.Decrement()
				c.Increment()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(10000), c.Uint64())
}
