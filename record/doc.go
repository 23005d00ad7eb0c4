// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the dated name record stored in the tree
//
// Records are ordered field by field: year, then month, then day and
// finally the name compared byte-wise.  This ordering decides where a
// record is placed in the tree.
package record
