package bench

import (
	"fmt"
	"sync"
	"time"
)

// A Timestamp is a reading of a monotonic clock, split the way
// clock_gettime reports it.
type Timestamp struct {
	Sec  int64
	Nsec int64
}

func timestampOf(d time.Duration) Timestamp {
	return Timestamp{Sec: int64(d / time.Second), Nsec: int64(d % time.Second)}
}

// TimestampToMillis converts ts to fractional milliseconds.
func TimestampToMillis(ts Timestamp) float64 {
	return float64(ts.Sec)*1000.0 + float64(ts.Nsec)/1000000.0
}

// A Clock is a monotonic time source. Now panics if the clock cannot be read.
type Clock interface {
	Now() Timestamp
}

// Clock kinds accepted by NewClock.
const (
	ClockRaw      = "raw"      // raw hardware monotonic clock where available
	ClockPortable = "portable" // the time package's monotonic reading
)

// NewClock returns the clock named by kind.
func NewClock(kind string) (Clock, error) {
	switch kind {
	case ClockRaw, "":
		return newRawClock(), nil
	case ClockPortable:
		return newPortableClock(), nil
	}
	return nil, fmt.Errorf("unknown clock %q (want %q or %q)", kind, ClockRaw, ClockPortable)
}

type portableClock struct {
	epoch time.Time
}

func newPortableClock() *portableClock {
	return &portableClock{epoch: time.Now()}
}

// time.Since uses the monotonic reading carried by epoch.
func (c *portableClock) Now() Timestamp {
	return timestampOf(time.Since(c.epoch))
}

// A FakeClock advances by Step on every reading.
// It is safe for concurrent use.
type FakeClock struct {
	Step time.Duration

	mu  sync.Mutex
	now time.Duration
}

func NewFakeClock(step time.Duration) *FakeClock {
	return &FakeClock{Step: step}
}

func (c *FakeClock) Now() Timestamp {
	c.mu.Lock()
	defer c.mu.Unlock()
	ts := timestampOf(c.now)
	c.now += c.Step
	return ts
}
