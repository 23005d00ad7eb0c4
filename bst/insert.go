// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - add a value to the tree
//
// returns true if a new node was created, false if an equal value is
// already present (the tree is not modified in that case)
func (tree *Tree[T]) Insert(value T) bool {
	if nil == tree.root {
		tree.root = newNode(value)
		tree.count += 1
		return true
	}
	added := tree.root.insert(value)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
func (p *node[T]) insert(value T) bool {
	switch c := p.value.Compare(value); {
	case c > 0: // p.value > value
		if nil == p.left {
			p.left = newNode(value)
			return true
		}
		return p.left.insert(value)
	case c < 0: // p.value < value
		if nil == p.right {
			p.right = newNode(value)
			return true
		}
		return p.right.insert(value)
	default:
		return false
	}
}
