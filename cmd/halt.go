// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/usbarmory/go-kernel/shell"
)

func init() {
	shell.Add(shell.Cmd{
		Name: "halt",
		Help: "halt the machine",
		Fn:   haltCmd,
	})
}

func haltCmd(_ *shell.Interface, _ []string) (string, error) {
	fmt.Printf("Goodbye from %s/%s\n", runtime.GOOS, runtime.GOARCH)
	go runtime.Exit(0)
	return "halted", io.EOF
}
