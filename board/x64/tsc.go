// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64

package x64

import (
	"github.com/usbarmory/go-kernel/clock"
)

// Counter represents the AMD64 core Time Stamp Counter, it implements both
// the [driver.Driver] and [clock.Counter] interfaces.
type Counter struct{}

// Count returns the Time Stamp Counter value.
func (c *Counter) Count() uint64 {
	return AMD64.Counter()
}

// Frequency returns the counter frequency, as detected by the CPU
// initialization. It is zero when the TSC frequency is unavailable.
func (c *Counter) Frequency() uint32 {
	return AMD64.Freq()
}

// Compatible implements the [driver.Driver] interface.
func (c *Counter) Compatible() string {
	return "Intel TSC"
}

// Init implements the [driver.Driver] interface, it registers the system
// clock.
func (c *Counter) Init() error {
	clk, err := clock.New(c)

	if err != nil {
		return err
	}

	clock.Register(clk)

	return nil
}
