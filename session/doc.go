// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package session - the line oriented command loop
//
// Each input line is decoded, applied to the store and answered with
// a single output line before the next line is read.
package session
