// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailure            = ProcessError("node allocation failed")
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrEmptyTree                    = EmptyError("tree is empty")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidKey                   = InvalidError("invalid key")
	ErrInvalidLoggerChannel         = ProcessError("invalid logger channel")
	ErrInvalidPolicy                = InvalidError("invalid insertion policy")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotImplemented               = ProcessError("not implemented")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrUnknownOperation             = InvalidError("unknown operation")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrEmpty(e error) bool    { _, ok := e.(EmptyError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
