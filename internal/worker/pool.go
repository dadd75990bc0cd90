// worker/pool.go
package worker

import "sync"

type Job func()

// Pool runs fire-and-forget jobs on a fixed set of goroutines. Drain waits
// for everything submitted so far, Close additionally stops the workers.
type Pool struct {
	jobs    chan Job
	pending sync.WaitGroup
	once    sync.Once
}

func NewPool(workerCount int, bufferSize int) *Pool {
	p := &Pool{
		jobs: make(chan Job, bufferSize),
	}

	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for job := range p.jobs {
		job()
		p.pending.Done()
	}
}

// Submit queues a job. It blocks when the buffer is full.
func (p *Pool) Submit(fn Job) {
	p.pending.Add(1)
	p.jobs <- fn
}

// Drain blocks until all submitted jobs have finished.
func (p *Pool) Drain() {
	p.pending.Wait()
}

// Close drains the pool and stops the workers. Submitting after Close
// panics.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.pending.Wait()
		close(p.jobs)
	})
}
