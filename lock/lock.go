// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package lock implements mutual exclusion cells guarding kernel state.
//
// The kernel runs a single non-preemptible execution context on one core,
// therefore NullLock grants access without any hardware lock. All state
// shared across packages is nevertheless only reached through the Mutex
// interface so that SpinLock can replace NullLock, without touching call
// sites, once more than one core (or preemption) is enabled.
package lock

// Mutex represents a cell giving exclusive access to its wrapped value.
//
// Lock must not be called again, on the same cell, from within f: reentrant
// acquisition is forbidden and its behaviour is undefined.
type Mutex[T any] interface {
	// Lock runs f with exclusive mutable access to the wrapped value.
	Lock(f func(v *T))
}

// Run acquires m, runs f on the wrapped value and returns its result.
func Run[T, R any](m Mutex[T], f func(v *T) R) (r R) {
	m.Lock(func(v *T) {
		r = f(v)
	})

	return
}

// NullLock is a Mutex for single core, non-preemptible, execution where no
// concurrent caller can exist.
type NullLock[T any] struct {
	data T
}

// NewNullLock returns a NullLock wrapping v.
func NewNullLock[T any](v T) *NullLock[T] {
	return &NullLock[T]{data: v}
}

// Lock implements the Mutex interface.
func (l *NullLock[T]) Lock(f func(v *T)) {
	f(&l.data)
}
