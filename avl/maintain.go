// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordertree/fault"
)

// height of a possibly empty sub-tree
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// size of a possibly empty sub-tree
func size(p *Node) int {
	if nil == p {
		return 0
	}
	return p.size
}

// recompute the cached values from the children
func (p *Node) update() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.size = 1 + size(p.left) + size(p.right)
}

// skew: positive when right heavy
func (p *Node) skew() int {
	return height(p.right) - height(p.left)
}

// point the child link of p that currently holds old at n
// p may be nil, i.e. old was the root
func (p *Node) replaceChild(old *Node, n *Node) {
	if nil == p {
		return
	}
	if p.left == old {
		p.left = n
	} else {
		p.right = n
	}
}

// rotate left around b, returns the node now occupying b's position
//
//	    b               d
//	   / \             / \
//	  a   d    →      b   e
//	     / \         / \
//	    c   e       a   c
func (b *Node) rotateLeft() *Node {
	d := b.right
	if nil == d {
		fault.PanicWithError("rotate left", fault.ErrInvalidRotation)
	}
	c := d.left

	d.up = b.up
	d.up.replaceChild(b, d)

	d.left = b
	b.up = d

	b.right = c
	if nil != c {
		c.up = b
	}

	// lower node first
	b.update()
	d.update()
	return d
}

// rotate right around d, returns the node now occupying d's position
//
//	      d           b
//	     / \         / \
//	    b   e   →   a   d
//	   / \             / \
//	  a   c           c   e
func (d *Node) rotateRight() *Node {
	b := d.left
	if nil == b {
		fault.PanicWithError("rotate right", fault.ErrInvalidRotation)
	}
	c := b.right

	b.up = d.up
	b.up.replaceChild(d, b)

	b.right = d
	d.up = b

	d.left = c
	if nil != c {
		c.up = d
	}

	d.update()
	b.update()
	return b
}

// restore the AVL property at p, returns the node now at p's position
func (tree *Tree) rebalance(p *Node) *Node {
	switch s := p.skew(); s {
	case +2:
		if p.right.skew() < 0 {
			p.right.rotateRight()
			tree.rotations.Increment()
		}
		p = p.rotateLeft()
		tree.rotations.Increment()
	case -2:
		if p.left.skew() > 0 {
			p.left.rotateLeft()
			tree.rotations.Increment()
		}
		p = p.rotateRight()
		tree.rotations.Increment()
	case -1, 0, +1:
	default:
		fault.Panicf("rebalance: skew: %+d: %s", s, fault.ErrInvalidSkew)
	}
	return p
}

// walk from p to the root restoring balance and cached values
// must follow every structural change
func (tree *Tree) maintain(p *Node) {
	for {
		p = tree.rebalance(p)
		p.update()
		if nil == p.up {
			tree.root = p
			return
		}
		p = p.up
	}
}
