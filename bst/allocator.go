// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// a node in the tree
type node[T Item[T]] struct {
	left  *node[T] // left sub-tree: all values less than value
	right *node[T] // right sub-tree: all values greater than value
	value T
}

func newNode[T Item[T]](value T) *node[T] {
	return &node[T]{
		value: value,
	}
}

// detach a removed node from the tree so that it does not keep any
// sub-tree or its value reachable
func freeNode[T Item[T]](n *node[T]) {
	var zero T
	n.left = nil
	n.right = nil
	n.value = zero
}
