// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm64

package rpi3

import (
	_ "unsafe"
)

//go:linkname nanotime1 runtime.nanotime1
func nanotime1() int64 {
	return ARM64.GetTime()
}

// Init takes care of the lower level initialization triggered early in runtime
// setup.
//
//go:linkname Init runtime.hwinit1
func Init() {
	ARM64.Init()

	// the counter frequency is set by the firmware
	ARM64.InitGenericTimers(0, 0)
}
