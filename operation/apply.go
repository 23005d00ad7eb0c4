// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"

	"github.com/patrik-cihal/binary-search-tree/record"
)

//go:generate mockgen -source=apply.go -destination=mocks/mock_store.go -package=mocks

// Store - the ordered set that operations are applied to
type Store interface {
	Insert(record.Record) bool
	Find(record.Record) bool
	Delete(record.Record) bool
}

// Apply - run one operation against the store
func Apply(store Store, op Operation) Outcome {
	switch op.Code {
	case OpStore:
		if store.Insert(op.Record) {
			return Stored
		}
		return AlreadyStored
	case OpFind:
		if store.Find(op.Record) {
			return Found
		}
		return NotFound
	case OpDelete:
		if store.Delete(op.Record) {
			return Deleted
		}
		return NotFound
	default:
		panic(fmt.Sprintf("operation: invalid code: %d", int(op.Code)))
	}
}
