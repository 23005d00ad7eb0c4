// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/patrik-cihal/binary-search-tree/fault"
)

// MinimumFields - year, month, day and at least one name token
const MinimumFields = 4

// Parse - build a record from: year month day name...
//
// the name tokens are joined with single spaces
func Parse(fields []string) (Record, error) {
	if len(fields) < MinimumFields {
		if 3 == len(fields) {
			return Record{}, fault.ErrMissingName
		}
		return Record{}, fault.ErrTokenCount
	}

	year, err := strconv.ParseUint(fields[0], 10, 16)
	if nil != err {
		return Record{}, fmt.Errorf("%w: %q", fault.ErrInvalidYear, fields[0])
	}
	month, err := strconv.ParseUint(fields[1], 10, 8)
	if nil != err {
		return Record{}, fmt.Errorf("%w: %q", fault.ErrInvalidMonth, fields[1])
	}
	day, err := strconv.ParseUint(fields[2], 10, 8)
	if nil != err {
		return Record{}, fmt.Errorf("%w: %q", fault.ErrInvalidDay, fields[2])
	}

	r := Record{
		Year:  uint16(year),
		Month: uint8(month),
		Day:   uint8(day),
		Name:  strings.Join(fields[3:], " "),
	}
	return r, nil
}
