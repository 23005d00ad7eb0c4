// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"
	"strings"

	"github.com/patrik-cihal/binary-search-tree/fault"
	"github.com/patrik-cihal/binary-search-tree/record"
)

// Code - the kind of operation
type Code int

// the operation codes
const (
	OpStore  Code = iota
	OpFind   Code = iota
	OpDelete Code = iota
)

// wire tokens, indexed by Code
var codeTokens = []string{"S:", "F:", "D:"}

// String - the token that selects the code on a command line
func (c Code) String() string {
	if c < 0 || int(c) >= len(codeTokens) {
		return fmt.Sprintf("Code(%d)", int(c))
	}
	return codeTokens[c]
}

// ParseCode - convert a token to a code
func ParseCode(token string) (Code, error) {
	for i, s := range codeTokens {
		if s == token {
			return Code(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", fault.ErrUnknownOperation, token)
}

// Operation - a decoded command line
type Operation struct {
	Code   Code
	Record record.Record
}

// String - in the form it would be written on a command line
func (op Operation) String() string {
	return op.Code.String() + " " + op.Record.String()
}

// Parse - decode a single command line
func Parse(line string) (Operation, error) {
	fields := strings.Fields(line)
	if 0 == len(fields) {
		return Operation{}, fault.ErrEmptyLine
	}

	code, err := ParseCode(fields[0])
	if nil != err {
		return Operation{}, err
	}

	r, err := record.Parse(fields[1:])
	if nil != err {
		return Operation{}, err
	}

	return Operation{
		Code:   code,
		Record: r,
	}, nil
}
