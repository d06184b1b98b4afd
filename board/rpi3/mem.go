// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm64 && !linkramstart

package rpi3

import (
	_ "unsafe"
)

// The kernel image is loaded by the firmware at 0x80000, within the runtime
// memory region starting at the bottom of SDRAM.

//go:linkname ramStart runtime.ramStart
var ramStart uint32 = 0x00000000

//go:linkname ramStackOffset runtime.ramStackOffset
var ramStackOffset uint32 = 0x100
