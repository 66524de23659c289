// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/bintree/fault"
)

// MaximumRange - largest number of keys a single "a..b" range may expand to
const MaximumRange = 1000000

// ParseKeys - convert a list of integers separated by commas or
// spaces, e.g. "1,2, 3 4"
//
// ranges are written as "1..31" and hold at most MaximumRange keys
func ParseKeys(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return ',' == r || ' ' == r || '\t' == r || '\n' == r
	})

	keys := make([]int, 0, len(fields))
	for _, f := range fields {
		if i := strings.Index(f, ".."); i > 0 {
			from, err := strconv.Atoi(f[:i])
			if nil != err {
				return nil, fault.ErrInvalidKey
			}
			to, err := strconv.Atoi(f[i+2:])
			if nil != err || to < from {
				return nil, fault.ErrInvalidKey
			}
			// a negative difference means the subtraction overflowed
			if d := to - from; d < 0 || d >= MaximumRange {
				return nil, fault.ErrInvalidCount
			}
			for k := from; ; k += 1 {
				keys = append(keys, k)
				if k == to {
					break
				}
			}
			continue
		}
		k, err := strconv.Atoi(f)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// FormatKeys - inverse of ParseKeys without range compression
func FormatKeys(keys []int) string {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = strconv.Itoa(k)
	}
	return strings.Join(s, ",")
}
