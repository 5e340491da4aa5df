//go:build linux

package clocks

import (
	"go.uber.org/zap"

	"golang.org/x/sys/unix"

	"example.com/tick-time/base/timebase"
)

// SystemClock reads the kernel's monotonic clock. With Boottime set it
// reads CLOCK_BOOTTIME instead, which keeps counting across suspend.
type SystemClock struct {
	Log      *zap.Logger
	Boottime bool
}

var _ timebase.MonotonicClock = (*SystemClock)(nil)

func (c *SystemClock) ReadNanoseconds() uint64 {
	clockid := int32(unix.CLOCK_MONOTONIC)
	if c.Boottime {
		clockid = int32(unix.CLOCK_BOOTTIME)
	}
	var ts unix.Timespec
	err := unix.ClockGettime(clockid, &ts)
	if err != nil {
		c.Log.Fatal("unix.ClockGettime failed", zap.Error(err))
	}
	return uint64(ts.Nano())
}
