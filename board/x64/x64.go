// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64

// Package x64 provides hardware initialization for a PC compatible machine
// (e.g. QEMU microvm or q35) under a single x86_64 core.
//
// This package is only meant to be used with `GOOS=tamago` as
// supported by the TamaGo framework for bare metal Go, see
// https://github.com/usbarmory/tamago.
package x64

import (
	"errors"
	"sync/atomic"
	_ "unsafe"

	"github.com/usbarmory/tamago/amd64"
	"github.com/usbarmory/tamago/soc/intel/rtc"
	"github.com/usbarmory/tamago/soc/intel/uart"

	"github.com/usbarmory/go-kernel/console"
	"github.com/usbarmory/go-kernel/driver"
)

// Peripheral registers
const (
	// Communication port
	COM1 = 0x3f8
)

// Peripheral instances
var (
	// AMD64 core
	AMD64 = &amd64.CPU{
		// required before Init()
		TimerMultiplier: 1,
	}

	// Real-Time Clock
	RTC = &Clock{
		RTC: &rtc.RTC{},
	}

	// Serial port
	UART0 = &Serial{
		UART: &uart.UART{
			Index: 1,
			Base:  COM1,
			DTR:   true,
			RTS:   true,
		},
	}

	// Time Stamp Counter
	TSC = &Counter{}
)

// ErrInitDone is returned when board initialization is attempted twice.
var ErrInitDone = errors.New("init already done")

// Board represents the amd64 board support.
type Board struct {
	done atomic.Bool
}

// Name returns the board identification string.
func (b *Board) Name() string {
	return "x86_64 PC"
}

// Init registers the board drivers, the serial console is registered last
// so that it is only activated once the time sources are ready.
func (b *Board) Init(m *driver.Manager) (err error) {
	if !b.done.CompareAndSwap(false, true) {
		return ErrInitDone
	}

	for _, d := range []driver.Descriptor{
		{Driver: TSC},
		{Driver: RTC},
		{Driver: UART0, PostInit: postInitUART},
	} {
		if err = m.Register(d); err != nil {
			return
		}
	}

	return
}

func postInitUART() error {
	console.Register(UART0)
	return nil
}

//go:linkname nanotime1 runtime.nanotime1
func nanotime1() int64 {
	return AMD64.GetTime()
}

// Init takes care of the lower level initialization triggered early in runtime
// setup.
//
//go:linkname Init runtime.hwinit1
func Init() {
	// initialize CPU and TSC calibration
	AMD64.Init()
}
