//go:build !linux

package clocks

// ClockTicks returns the assumed clock tick rate on platforms without
// sysconf(_SC_CLK_TCK).
func ClockTicks() uint64 {
	return defaultClockTick
}
