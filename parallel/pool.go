// Package parallel runs independent jobs on a bounded set of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func()
)

// Pool feeds jobs to a fixed number of workers. A single worker pool runs
// jobs inline in the caller.
type Pool struct {
	wg    sync.WaitGroup
	jobs  chan func()
	close func()
	size  int
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{size: numWorkers, close: func() {}}
	if numWorkers == 1 {
		return pool
	}

	pool.jobs = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.jobs {
				f()
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.jobs) })

	return pool
}

// Do submits f, blocking while every worker is busy and the queue is full.
func (p *Pool) Do(f func()) {
	if p.jobs == nil {
		f()
		return
	}
	p.jobs <- f
}

// Wait stops accepting jobs and returns once all submitted jobs finished.
func (p *Pool) Wait() {
	p.close()
	p.wg.Wait()
}

func (p *Pool) Size() int {
	return p.size
}
