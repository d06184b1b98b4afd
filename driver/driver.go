// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package driver implements the device driver registry and its two-phase
// initialization.
//
// Drivers are initialized in registration order, which is therefore the only
// way to express dependencies between them (e.g. a GPIO driver multiplexing
// UART pins is registered before the UART driver). The registry has a fixed
// capacity, sized at build time for the closed set of board drivers, and
// never allocates.
package driver

import (
	"errors"
	"fmt"

	"github.com/usbarmory/go-kernel/lock"
)

// MaxDrivers is the registry capacity.
const MaxDrivers = 5

var (
	// ErrCapacity is returned when registering beyond MaxDrivers.
	ErrCapacity = errors.New("driver registry full")
	// ErrNilDriver is returned when registering a descriptor without driver.
	ErrNilDriver = errors.New("invalid driver")
)

// Driver represents a device driver.
type Driver interface {
	// Compatible returns the driver name.
	Compatible() string

	// Init initializes the device.
	Init() error
}

// PostInitFn represents a callback invoked once a driver is initialized,
// typically used for cross-driver wiring.
type PostInitFn func() error

// Descriptor represents a registered driver.
type Descriptor struct {
	Driver   Driver
	PostInit PostInitFn
}

// InitError represents a driver initialization failure.
type InitError struct {
	// Compatible is the name of the failing driver.
	Compatible string
	// PostInit is set when the failure occurred in the post-init callback.
	PostInit bool
	// Err is the driver error.
	Err error
}

func (e *InitError) Error() string {
	if e.PostInit {
		return fmt.Sprintf("error during driver post-init callback: %s: %v", e.Compatible, e.Err)
	}

	return fmt.Sprintf("error initializing driver: %s: %v", e.Compatible, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

type registry struct {
	next        int
	descriptors [MaxDrivers]Descriptor
}

// Manager represents a driver registry.
type Manager struct {
	inner lock.Mutex[registry]
}

var manager = NewManager()

// Default returns the system wide driver registry.
func Default() *Manager {
	return manager
}

// NewManager returns an empty driver registry.
func NewManager() *Manager {
	return &Manager{
		inner: lock.NewNullLock(registry{}),
	}
}

// Register appends a driver descriptor to the registry. Registered drivers are
// never removed.
func (m *Manager) Register(d Descriptor) error {
	if d.Driver == nil {
		return ErrNilDriver
	}

	return lock.Run(m.inner, func(r *registry) error {
		if r.next == MaxDrivers {
			return fmt.Errorf("%w, cannot register %s", ErrCapacity, d.Driver.Compatible())
		}

		r.descriptors[r.next] = d
		r.next++

		return nil
	})
}

// Len returns the number of registered drivers.
func (m *Manager) Len() int {
	return lock.Run(m.inner, func(r *registry) int {
		return r.next
	})
}

// snapshot returns a copy of the registered descriptors, so that callbacks can
// run without holding the registry lock.
func (m *Manager) snapshot() (d [MaxDrivers]Descriptor, n int) {
	m.inner.Lock(func(r *registry) {
		d = r.descriptors
		n = r.next
	})

	return
}

// Init initializes all registered drivers in registration order, each driver
// Init() is followed by its post-init callback, if present.
//
// Initialization stops at the first failure, which is returned as
// *InitError.
func (m *Manager) Init() error {
	descriptors, n := m.snapshot()

	for _, d := range descriptors[:n] {
		if err := d.Driver.Init(); err != nil {
			return &InitError{
				Compatible: d.Driver.Compatible(),
				Err:        err,
			}
		}

		if d.PostInit == nil {
			continue
		}

		if err := d.PostInit(); err != nil {
			return &InitError{
				Compatible: d.Driver.Compatible(),
				PostInit:   true,
				Err:        err,
			}
		}
	}

	return nil
}

// Enumerate calls fn for each registered driver, in registration order, with
// its 1-based ordinal.
func (m *Manager) Enumerate(fn func(n int, d Descriptor)) {
	descriptors, n := m.snapshot()

	for i, d := range descriptors[:n] {
		fn(i+1, d)
	}
}
