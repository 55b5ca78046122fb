//go:build linux

package bench

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

type rawClock struct {
	id int32
}

// newRawClock prefers CLOCK_MONOTONIC_RAW, which NTP does not slew.
// Kernels that lack it get CLOCK_MONOTONIC.
func newRawClock() *rawClock {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); errors.Is(err, unix.EINVAL) {
		return &rawClock{id: unix.CLOCK_MONOTONIC}
	}
	return &rawClock{id: unix.CLOCK_MONOTONIC_RAW}
}

func (c *rawClock) Now() Timestamp {
	var ts unix.Timespec
	if err := unix.ClockGettime(c.id, &ts); err != nil {
		panic(fmt.Sprintf("clock_gettime(%d): %v", c.id, err))
	}
	return Timestamp{Sec: int64(ts.Sec), Nsec: int64(ts.Nsec)}
}
