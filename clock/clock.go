// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package clock implements a monotonic time source over a free-running
// hardware counter.
//
// Counter ticks are converted to and from Duration values using the counter
// frequency, which is latched once when the Clock is created. Conversions use
// fixed-point arithmetic with 128-bit intermediates, multiplying before
// dividing to retain sub-tick precision.
package clock

import (
	"errors"
	"log"
	"math"
	"math/bits"
)

var (
	// ErrFrequency is returned when a counter reports a zero frequency.
	ErrFrequency = errors.New("invalid counter frequency")
	// ErrOutOfRange is returned when a duration cannot be expressed in
	// counter ticks.
	ErrOutOfRange = errors.New("duration out of range")
)

// Counter represents a free-running monotonic hardware counter.
type Counter interface {
	// Count returns the current counter value.
	Count() uint64
	// Frequency returns the counter frequency in Hz.
	Frequency() uint32
}

// CounterValue represents an opaque counter tick count, arithmetic on it
// wraps around as the hardware counter does.
type CounterValue uint64

// MaxCounterValue is the largest tick count a counter can represent.
const MaxCounterValue = CounterValue(math.MaxUint64)

// Add returns v+o modulo the counter range.
func (v CounterValue) Add(o CounterValue) CounterValue {
	return v + o
}

// Since returns the ticks elapsed from start to v, modulo the counter range.
func (v CounterValue) Since(start CounterValue) CounterValue {
	return v - start
}

// Clock represents a time source backed by a hardware counter.
type Clock struct {
	counter Counter
	freq    uint64
}

// New returns a Clock for counter c, its frequency is read only once.
func New(c Counter) (*Clock, error) {
	freq := c.Frequency()

	if freq == 0 {
		return nil, ErrFrequency
	}

	return &Clock{
		counter: c,
		freq:    uint64(freq),
	}, nil
}

// Frequency returns the counter frequency in Hz.
func (c *Clock) Frequency() uint32 {
	return uint32(c.freq)
}

// Now returns the current counter value.
func (c *Clock) Now() CounterValue {
	return CounterValue(c.counter.Count())
}

// Duration converts a tick count to a Duration.
func (c *Clock) Duration(v CounterValue) Duration {
	if v == 0 {
		return Duration{}
	}

	secs := uint64(v) / c.freq
	// the remainder is lower than 2^32, the product cannot overflow
	nanos := (uint64(v) % c.freq) * NanosPerSec / c.freq

	return Duration{
		Secs:  secs,
		Nanos: uint32(nanos),
	}
}

// Resolution returns the Duration of a single counter tick.
func (c *Clock) Resolution() Duration {
	return c.Duration(1)
}

// MaxDuration returns the Duration of the largest counter value.
func (c *Clock) MaxDuration() Duration {
	return c.Duration(MaxCounterValue)
}

// Ticks converts a Duration to a tick count. Durations shorter than
// Resolution() are rounded down to zero ticks while durations longer than
// MaxDuration() return ErrOutOfRange.
func (c *Clock) Ticks(d Duration) (CounterValue, error) {
	if d.Compare(c.Resolution()) < 0 {
		return 0, nil
	}

	if d.Compare(c.MaxDuration()) > 0 {
		return 0, ErrOutOfRange
	}

	hi, lo := d.totalNanos()

	// hi is bounded by NanosPerSec/freq when d <= MaxDuration()
	carry, lo := bits.Mul64(lo, c.freq)
	hi = hi*c.freq + carry

	if hi >= NanosPerSec {
		return 0, ErrOutOfRange
	}

	ticks, _ := bits.Div64(hi, lo, NanosPerSec)

	return CounterValue(ticks), nil
}

// Uptime returns the time elapsed since the counter started.
func (c *Clock) Uptime() Duration {
	return c.Duration(c.Now())
}

// SpinFor busy waits until the counter advanced by at least d.
//
// Spinning is best effort: a duration which cannot be expressed in counter
// ticks is logged and skipped, while durations below the counter resolution
// return immediately.
func (c *Clock) SpinFor(d Duration) {
	delta, err := c.Ticks(d)

	if err != nil {
		log.Printf("warning, spin for %v skipped, %v", d, err)
		return
	}

	if delta == 0 {
		return
	}

	start := c.Now()

	for c.Now().Since(start) < delta {
	}
}
