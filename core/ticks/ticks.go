package ticks

import (
	"time"

	"example.com/tick-time/base/tickmath"
	"example.com/tick-time/base/timebase"
)

// Converter carries the scheduler tick frequency of the host environment.
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	hz uint64
}

func NewConverter(hz uint64) Converter {
	if hz == 0 {
		panic("invalid argument: hz must be greater than 0")
	}
	return Converter{hz: hz}
}

// HZ returns the tick frequency the Converter was created with.
func (cv Converter) HZ() uint64 {
	return cv.hz
}

// SecondsToJiffies converts whole seconds to scheduler ticks. Wraps on
// overflow, see tickmath.SecondsToJiffies.
func (cv Converter) SecondsToJiffies(s uint64) uint64 {
	return tickmath.SecondsToJiffies(s, cv.hz)
}

// JiffiesToSeconds truncates a tick count to whole seconds.
func (cv Converter) JiffiesToSeconds(j uint64) uint64 {
	return tickmath.JiffiesToSeconds(j, cv.hz)
}

// Tick returns the length of one scheduler tick.
func (cv Converter) Tick() time.Duration {
	return tickmath.JiffyDuration(cv.hz)
}

// MonotonicSeconds reads clk once and truncates the result to whole
// seconds. Successive calls never yield a decreasing value as long as clk
// is monotonic.
func MonotonicSeconds(clk timebase.MonotonicClock) uint64 {
	return tickmath.SecondsFromNanoseconds(clk.ReadNanoseconds())
}
