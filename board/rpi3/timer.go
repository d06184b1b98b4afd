// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm64

package rpi3

import (
	"math"

	"github.com/usbarmory/go-kernel/clock"
)

// GenericTimer represents the ARM Generic Timer physical counter, it
// implements both the [driver.Driver] and [clock.Counter] interfaces.
type GenericTimer struct{}

// Count returns the physical counter (CNTPCT_EL0) value.
func (t *GenericTimer) Count() uint64 {
	return ARM64.Counter()
}

// Frequency returns the counter frequency set by firmware in CNTFRQ_EL0, as
// latched by the generic timer initialization into the CPU timer multiplier.
func (t *GenericTimer) Frequency() uint32 {
	if ARM64.TimerMultiplier <= 0 {
		return 0
	}

	return uint32(math.Round(clock.NanosPerSec / ARM64.TimerMultiplier))
}

// Compatible implements the [driver.Driver] interface.
func (t *GenericTimer) Compatible() string {
	return "ARM Generic Timer"
}

// Init implements the [driver.Driver] interface, it registers the system
// clock.
func (t *GenericTimer) Init() error {
	c, err := clock.New(t)

	if err != nil {
		return err
	}

	clock.Register(c)

	return nil
}
