package timebase

import (
	"sync/atomic"

	"example.com/tick-time/base/tickmath"
	"example.com/tick-time/base/timebase"
)

var mclk atomic.Value

// RegisterClock installs c as the process-wide monotonic clock. It must be
// called exactly once, before any read.
func RegisterClock(c timebase.MonotonicClock) {
	if c == nil {
		panic("monotonic clock must not be nil")
	}
	swapped := mclk.CompareAndSwap(nil, c)
	if !swapped {
		panic("monotonic clock already registered")
	}
}

// Nanoseconds reads the registered clock.
func Nanoseconds() uint64 {
	c := mclk.Load().(timebase.MonotonicClock)
	if c == nil {
		panic("no monotonic clock registered")
	}
	return c.ReadNanoseconds()
}

// Seconds reads the registered clock and truncates to whole seconds.
func Seconds() uint64 {
	return tickmath.SecondsFromNanoseconds(Nanoseconds())
}
