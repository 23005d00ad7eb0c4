// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Item - a value stored in the tree must implement Compare
//
// Compare returns a negative number if the receiver orders before
// the argument, zero if they are equal and a positive number if it
// orders after
type Item[T any] interface {
	Compare(T) int
}

// Tree - type to hold the root node of a tree
type Tree[T Item[T]] struct {
	root  *node[T]
	count int
}

// New - create an initially empty tree
func New[T Item[T]]() *Tree[T] {
	return &Tree[T]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}
