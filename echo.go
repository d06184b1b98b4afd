// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && !shell

package main

import (
	"github.com/usbarmory/go-kernel/console"
	"github.com/usbarmory/go-kernel/kernel"
)

func start() {
	kernel.Echo(console.Current())
}
