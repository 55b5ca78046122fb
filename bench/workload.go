package bench

import (
	"math"
	"sync"

	"go.uber.org/atomic"
)

// Each function below adds sin(i) for i in [0, n) to a sum that belongs to
// the calling worker alone, and returns it. Only the synchronization around
// each addition differs, so the runs measure the cost of the primitive.

func sumAtomic(n int) float64 {
	var sum atomic.Float64
	for i := range n {
		sum.Add(math.Sin(float64(i)))
	}
	return sum.Load()
}

func sumCritical(n int, mu *sync.Mutex) float64 {
	var sum float64
	for i := range n {
		mu.Lock()
		sum += math.Sin(float64(i))
		mu.Unlock()
	}
	return sum
}

func sumSerial(n int) float64 {
	var sum float64
	for i := range n {
		sum += math.Sin(float64(i))
	}
	return sum
}
