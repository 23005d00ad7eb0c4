// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Find - true if a value equal to the argument is in the tree
func (tree *Tree[T]) Find(value T) bool {
	return nil != search(value, tree.root)
}

func search[T Item[T]](value T, p *node[T]) *node[T] {
	for nil != p {
		switch c := p.value.Compare(value); {
		case c > 0: // p.value > value
			p = p.left
		case c < 0: // p.value < value
			p = p.right
		default:
			return p
		}
	}
	return nil
}
