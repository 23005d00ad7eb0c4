// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"
)

// Outcome - result of applying an operation
type Outcome int

// the possible outcomes
const (
	Stored        Outcome = iota
	AlreadyStored Outcome = iota
	Found         Outcome = iota
	NotFound      Outcome = iota
	Deleted       Outcome = iota
)

var outcomeText = []string{
	"Stored",
	"Already stored",
	"Found",
	"Not found",
	"Deleted",
}

// String - the text printed for an outcome
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeText) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeText[o]
}
