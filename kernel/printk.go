// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package kernel

import (
	_ "unsafe"

	"github.com/usbarmory/go-kernel/console"
)

var printkBuf [1]byte

//go:linkname printk runtime.printk
func printk(c byte) {
	printkBuf[0] = c
	console.Current().Write(printkBuf[:])
}
