// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	InvalidError  GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrEmptyLine             = InvalidError("empty line")
	ErrInvalidDay            = InvalidError("day is invalid")
	ErrInvalidErrorPolicy    = InvalidError("error policy is invalid")
	ErrInvalidMonth          = InvalidError("month is invalid")
	ErrInvalidYear           = InvalidError("year is invalid")
	ErrMissingName           = InvalidError("name is missing")
	ErrNotADirectory         = InvalidError("path is not a directory")
	ErrNotFoundConfigFile    = NotFoundError("configuration file is not found")
	ErrTokenCount            = InvalidError("wrong number of tokens")
	ErrTreeCorrupt           = ProcessError("tree ordering is corrupt")
	ErrUnknownOperation      = InvalidError("unknown operation")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
