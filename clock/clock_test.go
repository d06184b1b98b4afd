// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package clock

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

type testCounter struct {
	freq  uint32
	value uint64
	step  uint64
	reads int
}

func (c *testCounter) Count() (v uint64) {
	v = c.value
	c.value += c.step
	c.reads++
	return
}

func (c *testCounter) Frequency() uint32 {
	return c.freq
}

func newTestClock(t *testing.T, c *testCounter) *Clock {
	clk, err := New(c)

	if err != nil {
		t.Fatal(err)
	}

	return clk
}

func TestNewZeroFrequency(t *testing.T) {
	if _, err := New(&testCounter{}); !errors.Is(err, ErrFrequency) {
		t.Fatalf("expected ErrFrequency, got %v", err)
	}
}

func TestUptime(t *testing.T) {
	c := newTestClock(t, &testCounter{freq: 1_000_000, value: 1_500_000})

	if d := c.Uptime(); d != (Duration{Secs: 1, Nanos: 500_000_000}) {
		t.Fatalf("unexpected uptime, got %+v", d)
	}
}

func TestDurationZeroTicks(t *testing.T) {
	c := newTestClock(t, &testCounter{freq: 19_200_000})

	if d := c.Duration(0); !d.IsZero() {
		t.Fatalf("expected zero duration, got %+v", d)
	}
}

func TestTicks(t *testing.T) {
	c := newTestClock(t, &testCounter{freq: 1_000_000})

	ticks, err := c.Ticks(FromNanos(2_500_000_000))

	if err != nil {
		t.Fatal(err)
	}

	if ticks != 2_500_000 {
		t.Fatalf("unexpected ticks, got %d", ticks)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		freq  uint32
		ticks CounterValue
	}{
		{1_000_000, 1},
		{1_000_000, 1_500_000},
		{1_000_000, 123_456_789_012},
		{1_000_000, MaxCounterValue},
		{62_500_000, 62_500_001},
		{62_500_000, 1 << 40},
		{19_200_000, 24},
		{19_200_000, 19_200_000 * 3600},
	} {
		c := newTestClock(t, &testCounter{freq: tt.freq})

		ticks, err := c.Ticks(c.Duration(tt.ticks))

		if err != nil {
			t.Fatalf("%d@%d: %v", tt.ticks, tt.freq, err)
		}

		if ticks != tt.ticks {
			t.Fatalf("%d@%d: round trip mismatch, got %d", tt.ticks, tt.freq, ticks)
		}
	}
}

func TestMaxDuration(t *testing.T) {
	c := newTestClock(t, &testCounter{freq: 1_000_000})

	max := c.MaxDuration()

	if max != (Duration{Secs: 18_446_744_073_709, Nanos: 551_615_000}) {
		t.Fatalf("unexpected max duration, got %+v", max)
	}

	if ticks, err := c.Ticks(max); err != nil || ticks != MaxCounterValue {
		t.Fatalf("unexpected conversion, got %d (%v)", ticks, err)
	}

	over := NewDuration(max.Secs, max.Nanos+1)

	if ticks, err := c.Ticks(over); !errors.Is(err, ErrOutOfRange) || ticks != 0 {
		t.Fatalf("expected ErrOutOfRange, got %d (%v)", ticks, err)
	}

	if _, err := c.Ticks(FromSecs(max.Secs + 1)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestBelowResolution(t *testing.T) {
	counter := &testCounter{freq: 1_000_000, step: 1}
	c := newTestClock(t, counter)

	if r := c.Resolution(); r != FromMicros(1) {
		t.Fatalf("unexpected resolution, got %+v", r)
	}

	if ticks, err := c.Ticks(FromNanos(999)); err != nil || ticks != 0 {
		t.Fatalf("expected zero ticks, got %d (%v)", ticks, err)
	}

	c.SpinFor(FromNanos(999))

	if counter.reads != 0 {
		t.Fatalf("counter read %d times on zero tick spin", counter.reads)
	}
}

func TestSpinFor(t *testing.T) {
	for _, start := range []uint64{0, 1 << 32, 1<<64 - 50} {
		counter := &testCounter{freq: 1_000_000, value: start, step: 100}
		c := newTestClock(t, counter)

		c.SpinFor(FromMillis(1))

		// one read to latch the start, ten to observe 1000 ticks
		if counter.reads != 11 {
			t.Fatalf("%#x: unexpected counter reads, got %d", start, counter.reads)
		}
	}
}

func TestSpinForOutOfRange(t *testing.T) {
	var buf bytes.Buffer

	out := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(out)

	counter := &testCounter{freq: 1_000_000, value: 42, step: 1}
	c := newTestClock(t, counter)

	max := c.MaxDuration()
	c.SpinFor(FromSecs(max.Secs + 1))

	if counter.reads != 0 || counter.value != 42 {
		t.Fatalf("counter accessed on skipped spin, reads:%d value:%d", counter.reads, counter.value)
	}

	if !strings.Contains(buf.String(), ErrOutOfRange.Error()) {
		t.Fatalf("missing warning, got %q", buf.String())
	}
}

func TestCounterValueWraps(t *testing.T) {
	v := MaxCounterValue - 1

	if s := v.Add(3); s != 1 {
		t.Fatalf("unexpected sum, got %d", s)
	}

	if e := CounterValue(1).Since(v); e != 3 {
		t.Fatalf("unexpected elapsed ticks, got %d", e)
	}
}

func TestSystem(t *testing.T) {
	Register(nil)

	if d := Uptime(); !d.IsZero() {
		t.Fatalf("expected zero uptime, got %+v", d)
	}

	// no clock, no spin
	SpinFor(FromSecs(1))

	counter := &testCounter{freq: 1_000_000, value: 3_000_000}
	c := newTestClock(t, counter)

	Register(c)
	defer Register(nil)

	if System() != c {
		t.Fatal("registered clock not returned")
	}

	if d := Uptime(); d != FromSecs(3) {
		t.Fatalf("unexpected uptime, got %+v", d)
	}
}
