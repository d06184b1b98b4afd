// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm64

// Package rpi3 provides hardware initialization for the Raspberry Pi 3
// (BCM2837) under a single aarch64 core.
//
// This package is only meant to be used with `GOOS=tamago` as
// supported by the TamaGo framework for bare metal Go, see
// https://github.com/usbarmory/tamago.
package rpi3

import (
	"errors"
	"sync/atomic"

	"github.com/usbarmory/tamago/arm64"

	"github.com/usbarmory/go-kernel/bcm"
	"github.com/usbarmory/go-kernel/console"
	"github.com/usbarmory/go-kernel/driver"
)

// Peripheral registers
const (
	MMIO_BASE  = 0x3f000000
	GPIO_BASE  = MMIO_BASE + 0x00200000
	UART0_BASE = MMIO_BASE + 0x00201000
)

// Peripheral instances
var (
	// ARM64 core
	ARM64 = &arm64.CPU{}

	// ARM Generic Timer
	Timer = &GenericTimer{}

	// GPIO controller
	GPIO = bcm.NewGPIO(GPIO_BASE)

	// PL011 UART
	UART0 = bcm.NewPL011(UART0_BASE)
)

// ErrInitDone is returned when board initialization is attempted twice.
var ErrInitDone = errors.New("init already done")

// Board represents the Raspberry Pi 3 board support.
type Board struct {
	done atomic.Bool
}

// Name returns the board identification string.
func (b *Board) Name() string {
	return "Raspberry Pi 3"
}

// Init registers the board drivers. The timer comes first as GPIO pin
// multiplexing needs delays, GPIO comes before the UART to route its pins.
func (b *Board) Init(m *driver.Manager) (err error) {
	if !b.done.CompareAndSwap(false, true) {
		return ErrInitDone
	}

	for _, d := range []driver.Descriptor{
		{Driver: Timer},
		{Driver: GPIO, PostInit: postInitGPIO},
		{Driver: UART0, PostInit: postInitUART},
	} {
		if err = m.Register(d); err != nil {
			return
		}
	}

	return
}

func postInitGPIO() error {
	GPIO.MapPL011()
	return nil
}

func postInitUART() error {
	console.Register(UART0)
	return nil
}
