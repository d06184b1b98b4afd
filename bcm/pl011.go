// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package bcm implements drivers for the Broadcom BCM2837 peripherals
// required by the kernel console, following the reference at:
//
//	https://datasheets.raspberrypi.com/bcm2835/bcm2835-peripherals.pdf
//
// This package is only meant to be used with `GOOS=tamago` as
// supported by the TamaGo framework for bare metal Go, see
// https://github.com/usbarmory/tamago.
package bcm

import (
	"errors"
	"unicode/utf8"

	"github.com/usbarmory/go-kernel/console"
	"github.com/usbarmory/go-kernel/internal/reg"
	"github.com/usbarmory/go-kernel/lock"
)

// PL011 UART registers
const (
	UART_FR_TXFE = 7
	UART_FR_TXFF = 5
	UART_FR_RXFE = 4
	UART_FR_BUSY = 3

	UART_LCRH_WLEN = 5
	UART_LCRH_FEN  = 4
	WLEN_8         = 0b11

	UART_CR_RXE    = 9
	UART_CR_TXE    = 8
	UART_CR_UARTEN = 0

	UART_ICR_ALL = 0x7ff

	// 921600 baud with a 48MHz reference clock
	UART_IBRD = 3
	UART_FBRD = 16
)

// PL011Compatible is the PL011 driver name.
const PL011Compatible = "BCM PL011 UART"

// PL011Registers represents the PL011 UART register block.
type PL011Registers struct {
	DR   reg.Register32    // 0x00
	_    [5]reg.Register32 // 0x04
	FR   reg.Register32    // 0x18
	_    [2]reg.Register32 // 0x1c
	IBRD reg.Register32    // 0x24
	FBRD reg.Register32    // 0x28
	LCRH reg.Register32    // 0x2c
	CR   reg.Register32    // 0x30
	_    [4]reg.Register32 // 0x34
	ICR  reg.Register32    // 0x44
}

type pl011Stats struct {
	written int
	read    int
}

// PL011 represents a PL011 UART instance, it implements both the
// [driver.Driver] and [console.Console] interfaces.
type PL011 struct {
	// ForceLine controls whether line feeds (LF) should be supplemented
	// with a carriage return (CR).
	ForceLine bool

	regs  *PL011Registers
	stats *lock.NullLock[pl011Stats]

	// receive path, Rx unless replaced in tests
	rx func() (byte, bool)
}

// NewPL011 returns a PL011 UART instance for the register block at base.
func NewPL011(base uintptr) *PL011 {
	return newPL011(reg.Map[PL011Registers](base))
}

func newPL011(regs *PL011Registers) (hw *PL011) {
	hw = &PL011{
		regs:  regs,
		stats: lock.NewNullLock(pl011Stats{}),
	}

	hw.rx = hw.Rx

	return
}

// Compatible implements the [driver.Driver] interface.
func (hw *PL011) Compatible() string {
	return PL011Compatible
}

// Init implements the [driver.Driver] interface, it configures the UART for
// 8N1 operation with FIFOs enabled.
func (hw *PL011) Init() error {
	if hw.regs == nil {
		return errors.New("invalid register base")
	}

	hw.Flush()

	// disable before reconfiguration
	hw.regs.CR.Write(0)
	hw.regs.ICR.Write(UART_ICR_ALL)

	hw.regs.IBRD.Write(UART_IBRD)
	hw.regs.FBRD.Write(UART_FBRD)
	hw.regs.LCRH.Write(WLEN_8<<UART_LCRH_WLEN | 1<<UART_LCRH_FEN)

	hw.regs.CR.Write(1<<UART_CR_UARTEN | 1<<UART_CR_TXE | 1<<UART_CR_RXE)

	return nil
}

// Tx transmits a single byte, waiting for room in the transmit FIFO.
func (hw *PL011) Tx(c byte) {
	hw.regs.FR.Wait(UART_FR_TXFF, 1, 0)
	hw.regs.DR.Write(uint32(c))
}

// Rx returns a single received byte, valid is false when the receive FIFO is
// empty.
func (hw *PL011) Rx() (c byte, valid bool) {
	if hw.regs.FR.IsSet(UART_FR_RXFE) {
		return
	}

	return byte(hw.regs.DR.Read()), true
}

func (hw *PL011) tx(c byte) {
	hw.Tx(c)

	if c == '\n' && hw.ForceLine {
		hw.Tx('\r')
	}
}

func (hw *PL011) count(written int, read int) {
	hw.stats.Lock(func(s *pl011Stats) {
		s.written += written
		s.read += read
	})
}

// WriteChar implements the [console.Writer] interface.
func (hw *PL011) WriteChar(c rune) {
	var buf [utf8.UTFMax]byte

	n := utf8.EncodeRune(buf[:], c)

	for _, b := range buf[:n] {
		hw.tx(b)
	}

	hw.count(1, 0)
}

// Write implements the [console.Writer] interface.
func (hw *PL011) Write(p []byte) (n int, err error) {
	for _, b := range p {
		hw.tx(b)
	}

	hw.count(utf8.RuneCount(p), 0)

	return len(p), nil
}

// Flush implements the [console.Writer] interface.
func (hw *PL011) Flush() {
	hw.regs.FR.Wait(UART_FR_BUSY, 1, 0)
}

func (hw *PL011) read(block bool) (c byte, valid bool) {
	if c, valid = hw.rx(); !valid {
		if !block {
			return
		}

		hw.regs.FR.Wait(UART_FR_RXFE, 1, 0)
		c, valid = hw.rx()
	}

	// terminals send CR on return
	if c == '\r' {
		c = '\n'
	}

	return
}

func (hw *PL011) readByte() byte {
	c, _ := hw.read(true)
	return c
}

// ReadChar implements the [console.Reader] interface, multi-byte UTF-8
// sequences are received in full.
func (hw *PL011) ReadChar() (c rune) {
	c = console.DecodeRune(hw.readByte)
	hw.count(0, 1)

	return
}

// ClearRx implements the [console.Reader] interface, discarded input is not
// counted.
func (hw *PL011) ClearRx() {
	for {
		if _, valid := hw.read(false); !valid {
			return
		}
	}
}

// CharsWritten implements the [console.Statistics] interface.
func (hw *PL011) CharsWritten() int {
	return lock.Run(hw.stats, func(s *pl011Stats) int {
		return s.written
	})
}

// CharsRead implements the [console.Statistics] interface.
func (hw *PL011) CharsRead() int {
	return lock.Run(hw.stats, func(s *pl011Stats) int {
		return s.read
	})
}
