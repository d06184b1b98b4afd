// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64

package x64

import (
	"fmt"

	"github.com/usbarmory/tamago/soc/intel/rtc"
)

// Clock represents the CMOS Real-Time Clock as wall clock source.
type Clock struct {
	*rtc.RTC
}

// Compatible implements the [driver.Driver] interface.
func (hw *Clock) Compatible() string {
	return "Intel RTC"
}

// Init implements the [driver.Driver] interface, it sets the runtime
// wall clock from the RTC.
func (hw *Clock) Init() error {
	t, err := hw.RTC.Now()

	if err != nil {
		return fmt.Errorf("could not read RTC, %v", err)
	}

	AMD64.SetTime(t.UnixNano())

	return nil
}
