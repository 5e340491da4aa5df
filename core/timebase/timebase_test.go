package timebase_test

import (
	"testing"

	"example.com/tick-time/core/timebase"
)

type fakeClock struct {
	nsec uint64
}

func (c *fakeClock) ReadNanoseconds() uint64 {
	c.nsec += 250_000_000
	return c.nsec
}

func TestRegisteredClock(t *testing.T) {
	clk := &fakeClock{nsec: 2_000_000_000}
	timebase.RegisterClock(clk)

	if got := timebase.Nanoseconds(); got != 2_250_000_000 {
		t.Errorf("timebase.Nanoseconds() = %v, want 2250000000", got)
	}
	if got := timebase.Seconds(); got != 2 {
		t.Errorf("timebase.Seconds() = %v, want 2", got)
	}

	var prev uint64
	for i := 0; i < 16; i++ {
		got := timebase.Seconds()
		if got < prev {
			t.Errorf("timebase.Seconds() decreased from %v to %v", prev, got)
		}
		prev = got
	}

	// The registry accepts exactly one clock per process.
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("registering a second clock did not panic")
		}
	}()
	timebase.RegisterClock(&fakeClock{})
}

func TestRegisterNilClock(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("registering a nil clock did not panic")
		}
	}()
	timebase.RegisterClock(nil)
}
