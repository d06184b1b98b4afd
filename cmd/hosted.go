// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tamago

package cmd

import (
	"fmt"
	"runtime"

	"github.com/usbarmory/go-kernel/shell"
)

func infoCmd(_ *shell.Interface, _ []string) (string, error) {
	return fmt.Sprintf("Runtime ......: %s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH), nil
}
