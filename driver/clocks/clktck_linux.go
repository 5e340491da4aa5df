//go:build linux

package clocks

import (
	"sync"

	"github.com/tklauser/go-sysconf"
)

var (
	clockTickOnce sync.Once
	clockTick     uint64 = defaultClockTick
)

// ClockTicks returns the clock tick rate exposed to userspace, via
// sysconf(_SC_CLK_TCK). Falls back to the default if sysconf fails.
func ClockTicks() uint64 {
	clockTickOnce.Do(func() {
		ticks, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
		if err == nil && ticks > 0 {
			clockTick = uint64(ticks)
		}
	})
	return clockTick
}
