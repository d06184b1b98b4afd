// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && shell

package main

import (
	"fmt"
	"runtime"

	"github.com/usbarmory/go-kernel/console"
	"github.com/usbarmory/go-kernel/kernel"
	"github.com/usbarmory/go-kernel/shell"

	_ "github.com/usbarmory/go-kernel/cmd"
)

func start() {
	iface := &shell.Interface{
		Banner: fmt.Sprintf("%s/%s (%s) • %s %s",
			runtime.GOOS, runtime.GOARCH, runtime.Version(), kernel.Name, board.Name()),
		ReadWriter: console.ReadWriter{},
		VT100:      true,
	}

	iface.Start()

	// fall back to plain echo once the session is closed
	kernel.Echo(console.Current())
}
