// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package reg provides primitives for volatile access to memory mapped
// registers.
//
// Peripherals are described as structs of Register32 fields laid out as the
// hardware register block and overlaid, with Map, at their MMIO base address.
package reg

import (
	"sync/atomic"
	"unsafe"

	"github.com/usbarmory/tamago/bits"
)

// Register32 represents a 32-bit memory mapped register.
type Register32 struct {
	v uint32
}

// Map returns a register block of type T located at address base.
func Map[T any](base uintptr) *T {
	return (*T)(unsafe.Pointer(base))
}

// Read returns the register value.
func (r *Register32) Read() uint32 {
	return atomic.LoadUint32(&r.v)
}

// Write sets the register value.
func (r *Register32) Write(val uint32) {
	atomic.StoreUint32(&r.v, val)
}

// Get returns the register field at bit position pos with the bitmask
// applied.
func (r *Register32) Get(pos int, mask int) uint32 {
	v := r.Read()
	return bits.Get(&v, pos, mask)
}

// IsSet returns whether the bit at position pos is set.
func (r *Register32) IsSet(pos int) bool {
	v := r.Read()
	return bits.IsSet(&v, pos)
}

// Set sets the bit at position pos, preserving all others.
func (r *Register32) Set(pos int) {
	v := r.Read()
	bits.Set(&v, pos)
	r.Write(v)
}

// Clear clears the bit at position pos, preserving all others.
func (r *Register32) Clear(pos int) {
	v := r.Read()
	bits.Clear(&v, pos)
	r.Write(v)
}

// SetN sets the register field at bit position pos, with the bitmask applied,
// to val preserving all other fields.
func (r *Register32) SetN(pos int, mask int, val uint32) {
	v := r.Read()
	bits.SetN(&v, pos, mask, val)
	r.Write(v)
}

// Wait polls the register until the field at bit position pos, with the
// bitmask applied, equals val.
func (r *Register32) Wait(pos int, mask int, val uint32) {
	for r.Get(pos, mask) != val {
	}
}
