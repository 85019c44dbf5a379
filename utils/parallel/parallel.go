package parallel

import (
	"sync"
)

// Parallel runs fn for indexes [0, times) with at most concurrency workers
// in flight, collecting the results in index order.
func Parallel[T any](fn func(int) T, times, concurrency int) []T {
	var wg sync.WaitGroup
	results := make([]T, times)
	c := make(chan struct{}, concurrency)
	for i := 0; i < times; i++ {
		wg.Add(1)
		c <- struct{}{}
		go func(index int) {
			defer wg.Done()
			results[index] = fn(index)
			<-c
		}(i)
	}

	wg.Wait()
	close(c)
	return results
}
