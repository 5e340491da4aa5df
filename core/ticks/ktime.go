package ticks

import (
	"time"

	"example.com/tick-time/base/timebase"
)

// DiffKtime returns the elapsed time between two raw kernel timestamps
// taken from the same clock.
func DiffKtime(start, end uint64) time.Duration {
	return time.Duration(int64(end - start))
}

// DecodeKtime maps a raw kernel timestamp to wall-clock time, anchored on
// a single read of clk paired with the current wall clock. The result is
// only as accurate as the proximity of the two reads.
func DecodeKtime(clk timebase.MonotonicClock, ktime uint64) time.Time {
	diff := int64(ktime) - int64(clk.ReadNanoseconds())
	return time.Now().Add(time.Duration(diff)).UTC()
}

// BootTime estimates the wall-clock instant of the clock's reference point.
// Meaningful only for clocks whose epoch is system boot.
func BootTime(clk timebase.MonotonicClock) time.Time {
	uptime := time.Duration(clk.ReadNanoseconds())
	return time.Now().Add(-uptime).UTC()
}
