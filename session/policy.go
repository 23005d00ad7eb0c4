// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session

import (
	"fmt"
	"strings"

	"github.com/patrik-cihal/binary-search-tree/fault"
)

// Policy - what to do with a line that cannot be decoded
type Policy string

// error policies
const (
	Abort    Policy = "abort"    // stop the session and return the error
	Continue Policy = "continue" // answer InvalidInput and read the next line
)

// InvalidInput - answer for an undecodable line under the Continue policy
const InvalidInput = "invalid input"

// ParsePolicy - case insensitive policy name, empty selects Abort
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return Abort, nil
	case Abort, Continue:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", fault.ErrInvalidErrorPolicy, s)
	}
}
