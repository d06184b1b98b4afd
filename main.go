// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package main

import (
	"log"

	"github.com/usbarmory/go-kernel/console"
	"github.com/usbarmory/go-kernel/kernel"
)

func init() {
	log.SetFlags(0)
}

func main() {
	kernel.Init(board)
	kernel.Banner(console.Output, board)

	start()
}
