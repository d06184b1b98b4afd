// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package clock

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"time"

	"github.com/hako/durafmt"
)

const (
	NanosPerSec   = 1_000_000_000
	nanosPerMilli = 1_000_000
	nanosPerMicro = 1_000
)

// Duration represents a span of time with nanosecond resolution, independent
// of any counter frequency.
//
// Unlike [time.Duration] its range covers any counter value at any frequency,
// which is required to express the maximum duration of a 64-bit counter.
type Duration struct {
	// Secs holds whole seconds.
	Secs uint64
	// Nanos holds the sub-second part, always lower than NanosPerSec.
	Nanos uint32
}

// NewDuration returns a Duration, carrying excess nanoseconds into seconds.
func NewDuration(secs uint64, nanos uint32) Duration {
	return Duration{
		Secs:  secs + uint64(nanos/NanosPerSec),
		Nanos: nanos % NanosPerSec,
	}
}

// FromSecs returns a Duration of s seconds.
func FromSecs(s uint64) Duration {
	return Duration{Secs: s}
}

// FromMillis returns a Duration of ms milliseconds.
func FromMillis(ms uint64) Duration {
	return Duration{
		Secs:  ms / 1000,
		Nanos: uint32(ms%1000) * nanosPerMilli,
	}
}

// FromMicros returns a Duration of us microseconds.
func FromMicros(us uint64) Duration {
	return Duration{
		Secs:  us / 1_000_000,
		Nanos: uint32(us%1_000_000) * nanosPerMicro,
	}
}

// FromNanos returns a Duration of ns nanoseconds.
func FromNanos(ns uint64) Duration {
	return Duration{
		Secs:  ns / NanosPerSec,
		Nanos: uint32(ns % NanosPerSec),
	}
}

// ParseDuration parses a non-negative duration string in [time.ParseDuration]
// format.
func ParseDuration(s string) (d Duration, err error) {
	std, err := time.ParseDuration(s)

	if err != nil {
		return
	}

	if std < 0 {
		return d, errors.New("negative duration")
	}

	return FromNanos(uint64(std)), nil
}

// Compare returns -1, 0 or +1 depending on whether d is shorter, equal or
// longer than o.
func (d Duration) Compare(o Duration) int {
	switch {
	case d.Secs < o.Secs:
		return -1
	case d.Secs > o.Secs:
		return 1
	case d.Nanos < o.Nanos:
		return -1
	case d.Nanos > o.Nanos:
		return 1
	}

	return 0
}

// IsZero returns whether d is empty.
func (d Duration) IsZero() bool {
	return d.Secs == 0 && d.Nanos == 0
}

// totalNanos returns the whole duration in nanoseconds as a 128-bit value.
func (d Duration) totalNanos() (hi uint64, lo uint64) {
	var carry uint64

	hi, lo = bits.Mul64(d.Secs, NanosPerSec)
	lo, carry = bits.Add64(lo, uint64(d.Nanos), 0)
	hi += carry

	return
}

// Std converts d to a [time.Duration], ok is false when d exceeds its range.
func (d Duration) Std() (std time.Duration, ok bool) {
	hi, lo := d.totalNanos()

	if hi != 0 || lo > math.MaxInt64 {
		return math.MaxInt64, false
	}

	return time.Duration(lo), true
}

// String returns a human readable representation of d.
func (d Duration) String() string {
	if d.IsZero() {
		return "0s"
	}

	if std, ok := d.Std(); ok && std >= time.Microsecond {
		return durafmt.Parse(std).String()
	}

	return fmt.Sprintf("%d.%09ds", d.Secs, d.Nanos)
}
