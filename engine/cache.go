// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/bintree/fault"
)

// ResultCache - memory of previous query results
type ResultCache interface {
	Get(uint64, string, int) (Result, bool)
	Set(uint64, string, int, Result)
	Clear()
	Count() int
}

const (
	defaultExpiration = 2 * time.Minute
	cleanupInterval   = 5 * time.Minute
)

type resultCache struct {
	cache      *cache.Cache
	expiration time.Duration
}

// NewResultCache - results live for expiration, zero selects the default
func NewResultCache(expiration time.Duration) ResultCache {
	if expiration <= 0 {
		expiration = defaultExpiration
	}
	return &resultCache{
		cache:      cache.New(expiration, cleanupInterval),
		expiration: expiration,
	}
}

// results are only valid for the generation of the tree they came from
func cacheKey(generation uint64, operation string, argument int) string {
	return fmt.Sprintf("%d/%s/%d", generation, operation, argument)
}

func (c *resultCache) Get(generation uint64, operation string, argument int) (Result, bool) {
	key := cacheKey(generation, operation, argument)
	obj, found := c.cache.Get(key)
	if !found {
		return Result{}, false
	}
	result, ok := obj.(Result)
	if !ok {
		fault.Criticalf("result cache: key: %q holds unexpected type: %T", key, obj)
		c.cache.Delete(key)
		return Result{}, false
	}

	// callers own the returned slice
	if nil != result.Keys {
		result.Keys = append(make([]int, 0, len(result.Keys)), result.Keys...)
	}
	return result, true
}

func (c *resultCache) Set(generation uint64, operation string, argument int, result Result) {
	if nil != result.Keys {
		result.Keys = append(make([]int, 0, len(result.Keys)), result.Keys...)
	}
	c.cache.Set(cacheKey(generation, operation, argument), result, c.expiration)
}

func (c *resultCache) Clear() {
	c.cache.Flush()
}

func (c *resultCache) Count() int {
	return c.cache.ItemCount()
}
