// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64

package x64

import (
	"unicode/utf8"

	"github.com/usbarmory/tamago/soc/intel/uart"

	"github.com/usbarmory/go-kernel/console"
	"github.com/usbarmory/go-kernel/lock"
)

type serialStats struct {
	written int
	read    int
}

// Serial represents an Intel 16550 compatible serial port acting as
// console.
type Serial struct {
	*uart.UART

	stats lock.NullLock[serialStats]
}

// Compatible implements the [driver.Driver] interface.
func (hw *Serial) Compatible() string {
	return "Intel 16550 UART"
}

// Init implements the [driver.Driver] interface.
func (hw *Serial) Init() error {
	hw.UART.Init()
	return nil
}

func (hw *Serial) tx(c byte) {
	hw.UART.Tx(c)

	if c == 0x0a { // LF
		hw.UART.Tx(0x0d) // CR
	}
}

// WriteChar transmits a single character, UTF-8 encoded.
func (hw *Serial) WriteChar(r rune) {
	var buf [utf8.UTFMax]byte

	n := utf8.EncodeRune(buf[:], r)

	for _, c := range buf[:n] {
		hw.tx(c)
	}

	hw.stats.Lock(func(s *serialStats) { s.written += 1 })
}

// Write transmits buf, it never fails.
func (hw *Serial) Write(buf []byte) (int, error) {
	for _, c := range buf {
		hw.tx(c)
	}

	hw.stats.Lock(func(s *serialStats) { s.written += utf8.RuneCount(buf) })

	return len(buf), nil
}

// Flush is a no-op as transmission is synchronous.
func (hw *Serial) Flush() {}

func (hw *Serial) readByte() (c byte) {
	var ok bool

	for {
		if c, ok = hw.UART.Rx(); ok {
			break
		}
	}

	if c == 0x0d { // CR
		c = 0x0a // LF
	}

	return
}

// ReadChar blocks until a character is received, multi-byte UTF-8 sequences
// are received in full and carriage returns are converted to line feeds.
func (hw *Serial) ReadChar() (c rune) {
	c = console.DecodeRune(hw.readByte)
	hw.stats.Lock(func(s *serialStats) { s.read += 1 })

	return
}

// ClearRx discards any pending received character.
func (hw *Serial) ClearRx() {
	for {
		if _, ok := hw.UART.Rx(); !ok {
			return
		}
	}
}

// CharsWritten returns the number of characters written.
func (hw *Serial) CharsWritten() int {
	return lock.Run(&hw.stats, func(s *serialStats) int { return s.written })
}

// CharsRead returns the number of characters read.
func (hw *Serial) CharsRead() int {
	return lock.Run(&hw.stats, func(s *serialStats) int { return s.read })
}
