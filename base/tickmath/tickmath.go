// Conversions between monotonic nanosecond timestamps, whole seconds, and
// scheduler ticks (jiffies). All values are unsigned 64-bit scalars.

package tickmath

import (
	"time"
)

// NanosecondsPerSecond must stay bit-exact with callers relying on this
// conversion (NSEC_PER_SEC in the kernel environment).
const NanosecondsPerSecond uint64 = 1_000_000_000

// SecondsFromNanoseconds truncates a monotonic nanosecond timestamp to
// whole seconds. Sub-second precision is lost, not rounded.
func SecondsFromNanoseconds(nsec uint64) uint64 {
	return nsec / NanosecondsPerSecond
}

// SecondsToJiffies converts s seconds to scheduler ticks at frequency hz.
// The multiplication uses native unsigned 64-bit arithmetic and wraps on
// overflow, preserving the fixed-width semantics of the kernel environment.
func SecondsToJiffies(s, hz uint64) uint64 {
	if hz == 0 {
		panic("invalid argument: hz must be greater than 0")
	}
	return s * hz
}

// JiffiesToSeconds truncates a tick count to whole seconds at frequency hz.
func JiffiesToSeconds(j, hz uint64) uint64 {
	if hz == 0 {
		panic("invalid argument: hz must be greater than 0")
	}
	return j / hz
}

// JiffyDuration returns the length of one scheduler tick at frequency hz,
// truncated to nanosecond resolution.
func JiffyDuration(hz uint64) time.Duration {
	if hz == 0 {
		panic("invalid argument: hz must be greater than 0")
	}
	return time.Duration(NanosecondsPerSecond / hz)
}
