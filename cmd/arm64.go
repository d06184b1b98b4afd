// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm64

package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/usbarmory/go-kernel/board/rpi3"
	"github.com/usbarmory/go-kernel/shell"
)

func infoCmd(_ *shell.Interface, _ []string) (string, error) {
	var res bytes.Buffer

	fmt.Fprintf(&res, "Runtime ......: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&res, "Board ........: %s\n", (&rpi3.Board{}).Name())
	fmt.Fprintf(&res, "MMIO .........: %#08x\n", rpi3.MMIO_BASE)
	fmt.Fprintf(&res, "Timer ........: %d Hz", rpi3.Timer.Frequency())

	return res.String(), nil
}
