// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64 && !linkramsize

package x64

import (
	_ "unsafe"
)

// The runtime memory region starts at the amd64 package default ramStart,
// applications can override ramSize with the `linkramsize` build tag.

//go:linkname ramSize runtime.ramSize
var ramSize uint64 = 0x40000000 // 1GB
