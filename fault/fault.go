// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBrokenBalance        = ProcessError("node skew outside -1..+1")
	ErrBrokenCount          = ProcessError("tree count does not match nodes")
	ErrBrokenHeight         = ProcessError("cached height is incorrect")
	ErrBrokenOrder          = ProcessError("keys are not in ascending order")
	ErrBrokenParentLink     = ProcessError("parent link is inconsistent")
	ErrBrokenSize           = ProcessError("cached subtree size is incorrect")
	ErrEmptyTree            = NotFoundError("tree is empty")
	ErrInvalidConfiguration = InvalidError("configuration did not return a table")
	ErrInvalidKeyType       = InvalidError("invalid key type")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidRotation      = ProcessError("rotation pivot is missing")
	ErrInvalidSkew          = ProcessError("skew outside -2..+2")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrNotAscending         = InvalidError("entries are not strictly ascending")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
