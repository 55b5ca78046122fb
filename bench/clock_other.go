//go:build !linux

package bench

func newRawClock() *portableClock {
	return newPortableClock()
}
