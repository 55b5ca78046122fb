// Package bench times a trivial floating-point accumulation under
// different synchronization strategies.
package bench

import (
	"fmt"
	"strings"
)

// A Strategy says how each addition to a worker's sum is synchronized.
type Strategy int

const (
	Atomic   Strategy = iota // atomic read-modify-write
	Critical                 // inside a critical section
	Serial                   // one goroutine, no synchronization
)

var strategyNames = [...]string{
	Atomic:   "ATOMIC",
	Critical: "CRITICAL",
	Serial:   "SERIAL",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy returns the strategy with the given name, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

func (s Strategy) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(strategyNames) {
		return nil, fmt.Errorf("unknown strategy %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
