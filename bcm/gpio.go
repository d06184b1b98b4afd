// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package bcm

import (
	"errors"

	"github.com/usbarmory/go-kernel/clock"
	"github.com/usbarmory/go-kernel/internal/reg"
)

// GPIO registers
const (
	GPIO_FSEL_MASK = 0b111
	GPIO_FSEL_ALT0 = 0b100

	GPIO_PUD_OFF = 0b00

	// PL011 UART pins
	GPIO_TXD0 = 14
	GPIO_RXD0 = 15
)

// GPIOCompatible is the GPIO driver name.
const GPIOCompatible = "BCM GPIO"

// GPIORegisters represents the GPIO register block.
type GPIORegisters struct {
	GPFSEL    [6]reg.Register32  // 0x00
	_         [31]reg.Register32 // 0x18
	GPPUD     reg.Register32     // 0x94
	GPPUDCLK0 reg.Register32     // 0x98
	GPPUDCLK1 reg.Register32     // 0x9c
}

// GPIO represents the GPIO controller instance.
type GPIO struct {
	regs *GPIORegisters
}

// NewGPIO returns a GPIO controller instance for the register block at base.
func NewGPIO(base uintptr) *GPIO {
	return &GPIO{
		regs: reg.Map[GPIORegisters](base),
	}
}

// Compatible implements the [driver.Driver] interface.
func (hw *GPIO) Compatible() string {
	return GPIOCompatible
}

// Init implements the [driver.Driver] interface.
func (hw *GPIO) Init() error {
	if hw.regs == nil {
		return errors.New("invalid register base")
	}

	return nil
}

// SelectFunction sets the function of a GPIO pin.
func (hw *GPIO) SelectFunction(pin int, fn uint32) {
	hw.regs.GPFSEL[pin/10].SetN((pin%10)*3, GPIO_FSEL_MASK, fn)
}

// MapPL011 routes the PL011 UART to GPIO pins 14 and 15, with pull-up/down
// resistors disabled.
func (hw *GPIO) MapPL011() {
	hw.SelectFunction(GPIO_TXD0, GPIO_FSEL_ALT0)
	hw.SelectFunction(GPIO_RXD0, GPIO_FSEL_ALT0)

	// the control signal requires 150 cycles of setup and hold time
	hw.regs.GPPUD.Write(GPIO_PUD_OFF)
	clock.SpinFor(clock.FromMicros(1))

	hw.regs.GPPUDCLK0.Write(1<<GPIO_TXD0 | 1<<GPIO_RXD0)
	clock.SpinFor(clock.FromMicros(1))

	hw.regs.GPPUD.Write(GPIO_PUD_OFF)
	hw.regs.GPPUDCLK0.Write(0)
}
