// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
	"strings"
)

// Record - a date and a name
type Record struct {
	Year  uint16
	Month uint8
	Day   uint8
	Name  string
}

// Compare - ordering for the tree: year, month, day, name
func (r Record) Compare(other Record) int {
	switch {
	case r.Year != other.Year:
		return compareUint(uint64(r.Year), uint64(other.Year))
	case r.Month != other.Month:
		return compareUint(uint64(r.Month), uint64(other.Month))
	case r.Day != other.Day:
		return compareUint(uint64(r.Day), uint64(other.Day))
	default:
		return strings.Compare(r.Name, other.Name)
	}
}

func compareUint(a uint64, b uint64) int {
	if a < b {
		return -1
	}
	return 1
}

// String - the same layout the record is parsed from
func (r Record) String() string {
	return fmt.Sprintf("%d %d %d %s", r.Year, r.Month, r.Day, r.Name)
}
