// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package clock

import (
	"github.com/usbarmory/go-kernel/lock"
)

var system = lock.NewNullLock[*Clock](nil)

// Register sets the system wide Clock, it is meant to be called once during
// board bring-up.
func Register(c *Clock) {
	system.Lock(func(s **Clock) {
		*s = c
	})
}

// System returns the system wide Clock, nil before Register is invoked.
func System() *Clock {
	return lock.Run(system, func(s **Clock) *Clock {
		return *s
	})
}

// Uptime returns the system Clock uptime, zero when no Clock is registered.
func Uptime() Duration {
	if c := System(); c != nil {
		return c.Uptime()
	}

	return Duration{}
}

// SpinFor busy waits on the system Clock, it returns immediately when no
// Clock is registered.
func SpinFor(d Duration) {
	if c := System(); c != nil {
		c.SpinFor(d)
	}
}
