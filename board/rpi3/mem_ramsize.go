// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm64 && !linkramsize

package rpi3

import (
	_ "unsafe"
)

// Applications can override ramSize with the `linkramsize` build tag.
//
// ARM memory ends where the VideoCore split (64MB) begins.

//go:linkname ramSize runtime.ramSize
var ramSize uint64 = 0x3c000000 // 960MB
