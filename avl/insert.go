// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the data of
// an existing key.  Returns true only if a new node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	if nil == tree.root {
		tree.root = newNode(key, value)
		tree.count = 1
		return true
	}

	p := tree.root
	for {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			if nil == p.left {
				tree.insertBefore(p, newNode(key, value))
				tree.count += 1
				return true
			}
			p = p.left
		case c < 0: // p.key < key
			if nil == p.right {
				tree.insertAfter(p, newNode(key, value))
				tree.count += 1
				return true
			}
			p = p.right
		default:
			p.key = key
			p.value = value
			return false
		}
	}
}

// attach n as the in-order predecessor of p
func (tree *Tree) insertBefore(p *Node, n *Node) {
	if nil == p.left {
		p.left = n
		n.up = p
	} else {
		q := p.left.last() // q.right is nil
		q.right = n
		n.up = q
	}
	tree.maintain(n.up)
}

// attach n as the in-order successor of p
func (tree *Tree) insertAfter(p *Node, n *Node) {
	if nil == p.right {
		p.right = n
		n.up = p
	} else {
		q := p.right.first() // q.left is nil
		q.left = n
		n.up = q
	}
	tree.maintain(n.up)
}
