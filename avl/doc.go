// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height and the size of its sub-tree.  Every
// structural change (attach, detach, rotate) is followed by a
// maintenance pass that walks from the changed node up to the root,
// rebalancing any node whose skew has reached ±2 and recomputing the
// cached values.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Delete moves the key
// and data of the target down to a leaf before unlinking it, so a
// node obtained before a delete may hold a different key afterwards.
package avl
