// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package lock

import (
	"sync/atomic"
)

// SpinLock is a Mutex busy waiting on an atomic flag, meant for targets with
// more than one core or with preemption.
type SpinLock[T any] struct {
	held atomic.Bool
	data T
}

// NewSpinLock returns a SpinLock wrapping v.
func NewSpinLock[T any](v T) *SpinLock[T] {
	return &SpinLock[T]{data: v}
}

// Lock implements the Mutex interface.
func (l *SpinLock[T]) Lock(f func(v *T)) {
	for !l.held.CompareAndSwap(false, true) {
	}

	defer l.held.Store(false)

	f(&l.data)
}
