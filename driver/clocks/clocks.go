package clocks

// Linux defines the userspace clock tick (USER_HZ) as 100 on most
// architectures, irrespective of the kernel's CONFIG_HZ. Used when the
// actual value cannot be determined.
const defaultClockTick = 100
