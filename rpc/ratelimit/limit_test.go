// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	assert.Nil(t, ratelimit.Limit(limiter), "wrong limit")

	// zero burst can never be satisfied
	limiter = rate.NewLimiter(1, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(limiter), "wrong limit")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	assert.Nil(t, ratelimit.LimitN(limiter, 10, 50), "wrong limit")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 50), "zero count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 51, 50), "count too large")
}

func TestLimitNExceedsBurst(t *testing.T) {
	limiter := rate.NewLimiter(1000, 5)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(limiter, 10, 50), "beyond burst")
}
