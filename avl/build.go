// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordertree/fault"
)

// Entry - a key and its associated data
type Entry struct {
	Key   Item
	Value interface{}
}

// Build - insert each entry in turn, later duplicates overwrite
// earlier ones.  Returns the number of new nodes added
func (tree *Tree) Build(entries []Entry) int {
	added := 0
	for _, e := range entries {
		if tree.Insert(e.Key, e.Value) {
			added += 1
		}
	}
	return added
}

// Construct - create a tree directly from entries that are already in
// strictly ascending key order.  The middle entry of each range
// becomes the root of that range, so the result is balanced without
// any rotations
func Construct(entries []Entry) (*Tree, error) {
	for i := 1; i < len(entries); i += 1 {
		if entries[i-1].Key.Compare(entries[i].Key) >= 0 {
			return nil, fault.ErrNotAscending
		}
	}

	tree := New()
	tree.root = construct(entries, nil)
	tree.count = len(entries)
	return tree, nil
}

func construct(entries []Entry, up *Node) *Node {
	if 0 == len(entries) {
		return nil
	}
	c := len(entries) / 2
	p := newNode(entries[c].Key, entries[c].Value)
	p.up = up
	p.left = construct(entries[:c], p)
	p.right = construct(entries[c+1:], p)
	p.update()
	return p
}

// Entries - all keys and data in ascending key order
func (tree *Tree) Entries() []Entry {
	entries := make([]Entry, 0, tree.count)
	it := tree.Iterator()
	for p := it.Next(); nil != p; p = it.Next() {
		entries = append(entries, Entry{Key: p.key, Value: p.value})
	}
	return entries
}
