package counter

import (
	"fmt"
	"sync"
	"time"
)

// Counter reports progress of a long-running stage: completed/total, rate
// and remaining time. Safe for concurrent Add calls.
type Counter struct {
	count     int
	total     int
	mutex     sync.Mutex
	desc      string
	startTime time.Time
}

func NewCounter(opts ...Option) *Counter {
	options := &Options{}

	for _, opt := range opts {
		opt(options)
	}

	return &Counter{
		count:     0,
		total:     options.total,
		desc:      options.desc,
		startTime: time.Now(),
	}
}

func (c *Counter) Add() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.count++
	elapsed := time.Since(c.startTime).Seconds()
	speed := float64(c.count) / elapsed
	remaining := float64(c.total-c.count) / speed
	fmt.Printf("%s: %d/%d, %.2f/s, eta %.2fs\n",
		c.desc, c.count, c.total, speed, remaining)
}
