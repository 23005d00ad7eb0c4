// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Check - verify the ordering of every node against all of its
// ancestors and that the node count is correct
func (tree *Tree[T]) Check() bool {
	n, ok := check(tree.root, nil, nil)
	return ok && n == tree.count
}

// internal: consistency checker, low and high are the exclusive
// bounds inherited from the ancestors (nil when unbounded)
func check[T Item[T]](p *node[T], low *T, high *T) (int, bool) {
	if nil == p {
		return 0, true
	}
	if nil != low && (*low).Compare(p.value) >= 0 {
		return 0, false
	}
	if nil != high && (*high).Compare(p.value) <= 0 {
		return 0, false
	}
	nl, ok := check(p.left, low, &p.value)
	if !ok {
		return 0, false
	}
	nr, ok := check(p.right, &p.value, high)
	if !ok {
		return 0, false
	}
	return 1 + nl + nr, true
}
