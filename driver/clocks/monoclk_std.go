//go:build !linux

package clocks

import (
	"time"

	"go.uber.org/zap"

	"example.com/tick-time/base/timebase"
)

var anchor = time.Now()

// SystemClock reads the Go runtime's monotonic clock, counted from process
// start. Boottime has no effect on platforms without a boot-time clock.
type SystemClock struct {
	Log      *zap.Logger
	Boottime bool
}

var _ timebase.MonotonicClock = (*SystemClock)(nil)

func (c *SystemClock) ReadNanoseconds() uint64 {
	// time.Since uses the monotonic reading captured in anchor.
	return uint64(time.Since(anchor))
}
