package bench

import (
	"strconv"
	"sync"
)

// criticalSections hands out one mutex per name, like named critical
// regions: every caller asking for the same name shares the same lock.
type criticalSections struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex // name to section lock
}

func newCriticalSections() *criticalSections {
	return &criticalSections{locks: map[string]*sync.Mutex{}}
}

func (c *criticalSections) get(name string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[name]
	if !ok {
		l = &sync.Mutex{}
		c.locks[name] = l
	}
	return l
}

// sectionName returns the critical section used by runs with the given
// number of threads. The multi-threaded runs use the unnamed section and the
// single-threaded runs use "onethread", so the two never share a lock.
func sectionName(threads int) string {
	switch {
	case threads == 1:
		return "onethread"
	case threads == DefaultThreads:
		return ""
	}
	return "threads-" + strconv.Itoa(threads)
}
