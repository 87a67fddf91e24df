// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - load keys into an AVL tree, delete some of them, run
// ordered queries and report the resulting shape
//
// keys are taken from the command line and from --file arguments
// (one per line).  Optional Lua configuration selects the key type
// and the logging setup, e.g.:
//
//	return {
//	    key_type = "string",
//	    balanced = false,
//	    logging = {
//	        directory = "log",
//	        file = "avltool.log",
//	        size = 1048576,
//	        count = 10,
//	        levels = { main = "info", DEFAULT = "critical" },
//	    },
//	}
package main
