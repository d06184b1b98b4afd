// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64

package main

import (
	"github.com/usbarmory/go-kernel/board/x64"
)

var board = &x64.Board{}
