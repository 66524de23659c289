// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/rpc/certificate"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

var (
	once           sync.Once
	certificatePEM []byte
	keyPEM         []byte
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// generated once per test binary
func generate() {
	var err error
	certificatePEM, keyPEM, err = certificate.NewSelfSigned("test", false, []string{"127.0.0.1", "localhost"})
	if nil != err {
		panic(err)
	}
}

// Certificate - PEM self-signed certificate for 127.0.0.1
func Certificate() string {
	once.Do(generate)
	return string(certificatePEM)
}

// Key - PEM private key matching Certificate
func Key() string {
	once.Do(generate)
	return string(keyPEM)
}
