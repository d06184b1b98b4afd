// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package console implements the registry of the console used for all
// kernel text I/O.
//
// The registry starts with the Null console, so that output issued before
// hardware bring-up is silently discarded rather than faulting, and moves to
// the console installed by Register, typically from a UART driver post-init
// hook. There is no way back to the Null console.
package console

import (
	"io"

	"github.com/usbarmory/go-kernel/lock"
)

// Writer represents the output capabilities of a console.
type Writer interface {
	// WriteChar transmits a single character.
	WriteChar(c rune)

	// Write transmits p, it backs formatted output (e.g. [fmt.Fprintf]).
	io.Writer

	// Flush blocks until all pending output has been transmitted.
	Flush()
}

// Reader represents the input capabilities of a console.
type Reader interface {
	// ReadChar blocks until a character is received.
	ReadChar() rune

	// ClearRx discards any pending received character.
	ClearRx()
}

// Statistics represents console I/O counters.
type Statistics interface {
	// CharsWritten returns the number of characters transmitted.
	CharsWritten() int

	// CharsRead returns the number of characters received.
	CharsRead() int
}

// Console represents a full console implementation.
type Console interface {
	Writer
	Reader
	Statistics
}

type registry struct {
	console Console
	active  bool
}

var current = lock.NewNullLock(registry{console: Null})

// Register replaces the active console, a nil console is ignored.
func Register(c Console) {
	if c == nil {
		return
	}

	current.Lock(func(r *registry) {
		r.console = c
		r.active = true
	})
}

// Current returns the active console.
func Current() Console {
	return lock.Run(current, func(r *registry) Console {
		return r.console
	})
}

// Active returns whether a console has been registered, replacing Null.
func Active() bool {
	return lock.Run(current, func(r *registry) bool {
		return r.active
	})
}
