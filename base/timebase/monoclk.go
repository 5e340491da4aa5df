package timebase

// MonotonicClock is the capability to read the host's monotonic clock.
// Implementations return nanoseconds elapsed since an arbitrary,
// implementation-defined reference point; the value never decreases
// between reads. Absolute values carry no calendar meaning, only
// differences and scaled conversions do.
type MonotonicClock interface {
	ReadNanoseconds() uint64
}
