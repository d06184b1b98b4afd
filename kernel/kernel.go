// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package kernel implements the kernel bring-up sequence and main loop.
//
// Bring-up registers the board drivers, initializes them in registration
// order and routes all logging to the console installed by the drivers
// post-init callbacks. Any bring-up failure is fatal and ends in Halt.
package kernel

import (
	"fmt"
	"io"
	"log"

	"github.com/usbarmory/go-kernel/clock"
	"github.com/usbarmory/go-kernel/console"
	"github.com/usbarmory/go-kernel/driver"
)

// Name is the kernel name.
const Name = "go-kernel"

// Build information, set at link time.
var (
	Revision string
	Build    string
)

// Board represents the platform bring-up code.
type Board interface {
	// Name returns the board identification string.
	Name() string

	// Init registers the board drivers, it must be invoked only once.
	Init(m *driver.Manager) error
}

// Halt is invoked on fatal bring-up errors, it does not return.
var Halt = func(err error) {
	panic(fmt.Sprintf("kernel panic, %v", err))
}

func bringup(b Board, m *driver.Manager) error {
	if err := b.Init(m); err != nil {
		return fmt.Errorf("error initializing board driver subsystem, %w", err)
	}

	return m.Init()
}

// Init performs the board bring-up, halting on any error.
func Init(b Board) {
	log.SetFlags(0)
	log.SetOutput(console.Output)

	if err := bringup(b, driver.Default()); err != nil {
		Halt(err)
	}
}

func banner(w io.Writer, b Board, m *driver.Manager) {
	fmt.Fprintf(w, "[0] %s version %s (%s)\n", Name, Revision, Build)
	fmt.Fprintf(w, "[1] Booting on: %s\n", b.Name())
	fmt.Fprintf(w, "[2] Drivers loaded:\n")

	m.Enumerate(func(n int, d driver.Descriptor) {
		fmt.Fprintf(w, "    %d. %s\n", n, d.Driver.Compatible())
	})

	fmt.Fprintf(w, "[3] Chars written: %d, uptime: %v\n", console.Current().CharsWritten(), clock.Uptime())
}

// Banner prints the kernel identification and driver list.
func Banner(w io.Writer, b Board) {
	banner(w, b, driver.Default())
}

func echo(c console.Console) {
	c.WriteChar(c.ReadChar())
}

// Echo discards any pending input and then echoes every character received
// on console c, it never returns.
func Echo(c console.Console) {
	fmt.Fprintf(c, "[4] Echoing input now\n")

	c.ClearRx()

	for {
		echo(c)
	}
}
