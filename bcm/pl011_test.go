// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package bcm

import (
	"fmt"
	"testing"
	"unicode/utf8"
	"unsafe"

	"github.com/usbarmory/go-kernel/console"
	"github.com/usbarmory/go-kernel/driver"
)

var (
	_ driver.Driver   = &PL011{}
	_ console.Console = &PL011{}
)

func TestPL011Layout(t *testing.T) {
	var r PL011Registers

	for _, tt := range []struct {
		name string
		off  uintptr
		want uintptr
	}{
		{"FR", unsafe.Offsetof(r.FR), 0x18},
		{"IBRD", unsafe.Offsetof(r.IBRD), 0x24},
		{"LCRH", unsafe.Offsetof(r.LCRH), 0x2c},
		{"CR", unsafe.Offsetof(r.CR), 0x30},
		{"ICR", unsafe.Offsetof(r.ICR), 0x44},
	} {
		if tt.off != tt.want {
			t.Fatalf("%s: offset %#x, want %#x", tt.name, tt.off, tt.want)
		}
	}
}

func TestPL011Init(t *testing.T) {
	regs := &PL011Registers{}
	hw := newPL011(regs)

	if err := hw.Init(); err != nil {
		t.Fatal(err)
	}

	if regs.CR.Read() != 0x301 || regs.ICR.Read() != 0x7ff {
		t.Fatalf("unexpected control, CR:%#x ICR:%#x", regs.CR.Read(), regs.ICR.Read())
	}

	if regs.IBRD.Read() != 3 || regs.FBRD.Read() != 16 || regs.LCRH.Read() != 0x70 {
		t.Fatalf("unexpected line setup, IBRD:%d FBRD:%d LCRH:%#x", regs.IBRD.Read(), regs.FBRD.Read(), regs.LCRH.Read())
	}

	if err := (&PL011{}).Init(); err == nil {
		t.Fatal("expected error on missing registers")
	}
}

func TestPL011Write(t *testing.T) {
	regs := &PL011Registers{}
	hw := newPL011(regs)

	hw.WriteChar('a')

	if regs.DR.Read() != 'a' {
		t.Fatalf("unexpected data, got %#x", regs.DR.Read())
	}

	fmt.Fprintf(hw, "%d é", 42)

	if regs.DR.Read() != 0xa9 {
		t.Fatalf("unexpected data, got %#x", regs.DR.Read())
	}

	hw.ForceLine = true
	hw.Write([]byte("\n"))

	if regs.DR.Read() != '\r' {
		t.Fatalf("expected CR after LF, got %#x", regs.DR.Read())
	}

	hw.Flush()

	if n := hw.CharsWritten(); n != 6 {
		t.Fatalf("unexpected written count, got %d", n)
	}
}

func TestPL011Read(t *testing.T) {
	regs := &PL011Registers{}
	hw := newPL011(regs)

	regs.DR.Write('\r')

	if c := hw.ReadChar(); c != '\n' {
		t.Fatalf("expected CR to LF conversion, got %q", c)
	}

	regs.DR.Write('z')

	if c, valid := hw.Rx(); !valid || c != 'z' {
		t.Fatalf("unexpected receive, %q (%v)", c, valid)
	}

	// receive FIFO empty
	regs.FR.Set(UART_FR_RXFE)

	if _, valid := hw.Rx(); valid {
		t.Fatal("unexpected receive on empty FIFO")
	}

	hw.ClearRx()

	if n := hw.CharsRead(); n != 1 {
		t.Fatalf("unexpected read count, got %d", n)
	}
}

func TestPL011EchoMultiByte(t *testing.T) {
	regs := &PL011Registers{}
	hw := newPL011(regs)

	fifo := []byte{0xc3, 0xa9, 0xc3, 'a'}

	hw.rx = func() (c byte, valid bool) {
		if len(fifo) == 0 {
			return
		}

		c, fifo = fifo[0], fifo[1:]

		return c, true
	}

	c := hw.ReadChar()

	if c != 'é' {
		t.Fatalf("unexpected character, got %q (%U)", c, c)
	}

	hw.WriteChar(c)

	// last byte of the echoed sequence matches the last received one
	if regs.DR.Read() != 0xa9 {
		t.Fatalf("unexpected echo, got %#x", regs.DR.Read())
	}

	if c = hw.ReadChar(); c != utf8.RuneError {
		t.Fatalf("expected invalid sequence, got %q", c)
	}

	if n := hw.CharsRead(); n != 2 {
		t.Fatalf("unexpected read count, got %d", n)
	}

	if n := hw.CharsWritten(); n != 1 {
		t.Fatalf("unexpected written count, got %d", n)
	}
}
