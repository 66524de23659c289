// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/util"
)

const (
	validity = 10 * 365 * 24 * time.Hour
)

// Get - verify a PEM encoded certificate and private key and return
// a TLS configuration with the certificate fingerprint
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Load - read the certificate and key files then Get
func Load(log *logger.L, name, certificateFileName, keyFileName string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	if !util.EnsureFileExists(certificateFileName) {
		log.Errorf("certificate: %q does not exist", certificateFileName)
		return nil, fin, fault.ErrMissingParameters
	}
	if !util.EnsureFileExists(keyFileName) {
		log.Errorf("private key: %q does not exist", keyFileName)
		return nil, fin, fault.ErrMissingParameters
	}

	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		return nil, fin, err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		return nil, fin, err
	}
	return Get(log, name, string(certificate), string(key))
}

// NewSelfSigned - PEM encoded certificate and private key for name
func NewSelfSigned(name string, override bool, extraHosts []string) ([]byte, []byte, error) {
	org := "bintreed self signed cert for: " + name
	validUntil := time.Now().Add(validity)
	return certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
}

// MakeSelfSigned - create a self-signed certificate and key file pair
//
// existing files are never overwritten
func MakeSelfSigned(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.ErrCertificateFileAlreadyExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return fault.ErrKeyFileAlreadyExists
	}

	cert, key, err := NewSelfSigned(name, override, extraHosts)
	if err != nil {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); err != nil {
		_ = os.Remove(certificateFileName)
		return err
	}

	return nil
}

// Fingerprint - compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
