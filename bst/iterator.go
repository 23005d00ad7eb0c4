// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// First - return the lowest value, false if the tree is empty
func (tree *Tree[T]) First() (T, bool) {
	p := tree.root.first()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.value, true
}

// internal: lowest node in a sub-tree
func (p *node[T]) first() *node[T] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the highest value, false if the tree is empty
func (tree *Tree[T]) Last() (T, bool) {
	p := tree.root.last()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.value, true
}

// internal: highest node in a sub-tree
func (p *node[T]) last() *node[T] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}
