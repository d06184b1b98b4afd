// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package bcm

import (
	"testing"
	"unsafe"

	"github.com/usbarmory/go-kernel/clock"
)

type testCounter struct {
	value uint64
	reads int
}

func (c *testCounter) Count() uint64 {
	c.reads++
	c.value++
	return c.value
}

func (c *testCounter) Frequency() uint32 {
	return 1_000_000
}

func TestGPIOLayout(t *testing.T) {
	var r GPIORegisters

	if off := unsafe.Offsetof(r.GPPUD); off != 0x94 {
		t.Fatalf("unexpected GPPUD offset, got %#x", off)
	}

	if off := unsafe.Offsetof(r.GPPUDCLK0); off != 0x98 {
		t.Fatalf("unexpected GPPUDCLK0 offset, got %#x", off)
	}
}

func TestGPIOMapPL011(t *testing.T) {
	regs := &GPIORegisters{}
	hw := &GPIO{regs: regs}

	counter := &testCounter{}
	c, err := clock.New(counter)

	if err != nil {
		t.Fatal(err)
	}

	clock.Register(c)
	defer clock.Register(nil)

	if err := hw.Init(); err != nil {
		t.Fatal(err)
	}

	// GPIO10 output, must be preserved
	regs.GPFSEL[1].Write(0b001)
	regs.GPPUDCLK0.Write(0xffffffff)

	hw.MapPL011()

	if v := regs.GPFSEL[1].Read(); v != 0b001|0b100<<12|0b100<<15 {
		t.Fatalf("unexpected function select, got %#x", v)
	}

	if regs.GPPUD.Read() != 0 || regs.GPPUDCLK0.Read() != 0 {
		t.Fatal("pull-up/down clock not released")
	}

	// two spins of one tick each, one read to latch and one to expire
	if counter.reads != 4 {
		t.Fatalf("unexpected counter reads, got %d", counter.reads)
	}
}
