// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordertree/fault"
)

// Delete - removes a specific item from the tree and returns its data
func (tree *Tree) Delete(key Item) (interface{}, error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	p := tree.root.find(key)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}

	q := tree.subtreeDelete(p)
	value := q.value // preserve the value part
	freeNode(q)      // return deleted node to pool
	tree.count -= 1
	return value, nil
}

// remove the item held by p from the tree
//
// the item is exchanged with its predecessor (or successor if there
// is no left sub-tree) until it reaches a leaf which is then unlinked
// returns the unlinked node, which holds the removed key and value
func (tree *Tree) subtreeDelete(p *Node) *Node {
	for nil != p.left || nil != p.right {
		q := (*Node)(nil)
		if nil != p.left {
			q = p.left.last()
		} else {
			q = p.right.first()
		}
		p.key, q.key = q.key, p.key
		p.value, q.value = q.value, p.value
		p = q
	}

	up := p.up
	if nil == up {
		tree.root = nil
		return p
	}
	up.replaceChild(p, nil)
	p.up = nil
	tree.maintain(up)
	return p
}
