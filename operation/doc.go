// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package operation - decode command lines and apply them to a store
//
// A command line has the form:
//
//   S: 2024 1 1 Ann Lee      - store the record
//   F: 2024 1 1 Ann Lee      - find the record
//   D: 2024 1 1 Ann Lee      - delete the record
//
// every applied operation produces exactly one Outcome
package operation
