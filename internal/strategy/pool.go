package strategy

import (
	"errors"
	"fmt"
	"sync"

	"github.com/eapache/queue"
)

// ErrPoolStopped is returned by Run after Stop has been called.
var ErrPoolStopped = errors.New("worker pool stopped")

// WorkerPool runs work on a fixed set of long-lived workers.
//
// Submitted work queues without bound when all workers are busy; nothing is
// rejected. The submitting caller blocks until its task's result arrives, so
// the pool size caps true concurrency while callers pile up behind it - the
// behavior the benchmark exists to demonstrate.
type WorkerPool struct {
	mode    Mode
	workers int

	mu     sync.Mutex
	cond   *sync.Cond
	tasks  *queue.Queue // of poolTask
	closed bool

	wg sync.WaitGroup
}

type poolTask struct {
	work Work
	done chan outcome
}

// NewWorkerPool creates a pool with the given number of workers and starts
// them. Workers live until Stop.
func NewWorkerPool(mode Mode, workers int) (*WorkerPool, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("pool %q: workers must be > 0, got %d", mode, workers)
	}

	p := &WorkerPool{
		mode:    mode,
		workers: workers,
		tasks:   queue.New(),
	}
	p.cond = sync.NewCond(&p.mu)

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p, nil
}

// Mode returns the mode tag this pool is registered under.
func (p *WorkerPool) Mode() Mode {
	return p.mode
}

// Workers returns the fixed worker count.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Run submits work to the pool and blocks until it completes.
func (p *WorkerPool) Run(work Work) (string, error) {
	t := poolTask{work: work, done: make(chan outcome, 1)}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return "", ErrPoolStopped
	}
	p.tasks.Add(t)
	p.mu.Unlock()
	p.cond.Signal()

	res := <-t.done
	return res.value, res.err
}

// worker pops queued tasks until the pool is stopped and drained.
func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for p.tasks.Length() == 0 && !p.closed {
			p.cond.Wait()
		}
		if p.tasks.Length() == 0 {
			// closed and drained
			p.mu.Unlock()
			return
		}
		t := p.tasks.Remove().(poolTask)
		p.mu.Unlock()

		value, err := t.work()
		t.done <- outcome{value: value, err: err}
	}
}

// QueueDepth returns the number of tasks waiting for a worker.
func (p *WorkerPool) QueueDepth() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.Length()
}

// Stop stops accepting work, lets queued tasks drain, and waits for the
// workers to exit.
func (p *WorkerPool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.cond.Broadcast()
	p.wg.Wait()
}

var _ Strategy = (*WorkerPool)(nil)
