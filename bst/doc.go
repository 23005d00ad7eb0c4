// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced ordered binary search tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node is owned by exactly one parent link (or the tree root),
// there are no parent pointers.  No rotations are performed so the
// shape of the tree depends only on the order of inserts and
// deletes.
//
// Values are unique: inserting a value that compares equal to one
// already present leaves the tree unchanged.  Deleting a node with
// two children moves its in-order successor into its position, the
// successor node itself is relinked and never copied.
package bst
