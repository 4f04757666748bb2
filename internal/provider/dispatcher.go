// Package provider runs chain query providers on their own worker
// goroutines and guarantees each request a single completion.
package provider

import (
	"sync"
	"sync/atomic"

	"github.com/goodnatureofminers/chainexec/internal/chain"
	"go.uber.org/zap"
)

const defaultQueueSize = 256

type job struct {
	run     func(complete func() bool)
	abort   func(code chain.Code)
	settled atomic.Bool
}

func (j *job) settle() bool {
	return j.settled.CompareAndSwap(false, true)
}

// Dispatcher executes provider jobs on a fixed set of workers fed by a FIFO
// queue. Submit never blocks: the queue grows past its initial capacity
// instead, so handlers may issue further requests from a worker. Jobs
// accepted before Stop always run; jobs submitted after Stop are aborted on
// the caller's goroutine.
type Dispatcher struct {
	logger *zap.Logger

	mu      sync.Mutex
	ready   *sync.Cond
	queue   []*job
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher starts workers goroutines. queueSize preallocates the
// queue.
func NewDispatcher(logger *zap.Logger, workers, queueSize int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = defaultQueueSize
	}
	d := &Dispatcher{
		logger: logger,
		queue:  make([]*job, 0, queueSize),
	}
	d.ready = sync.NewCond(&d.mu)
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	return d
}

// Submit queues run. run calls complete right before firing its handler
// and fires it only if complete reports true. Otherwise abort fires
// instead, with chain.ServiceStopped once the dispatcher is stopped or
// chain.OperationFailed when run panics before completing. Each request
// settles exactly once.
func (d *Dispatcher) Submit(run func(complete func() bool), abort func(code chain.Code)) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		abort(chain.ServiceStopped)
		return
	}
	d.queue = append(d.queue, &job{run: run, abort: abort})
	d.ready.Signal()
	d.mu.Unlock()
}

// Pending returns the number of queued jobs.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// Stop rejects new jobs, runs the queued ones and waits for the workers.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		d.ready.Broadcast()
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		for len(d.queue) == 0 && !d.stopped {
			d.ready.Wait()
		}
		if len(d.queue) == 0 {
			d.mu.Unlock()
			return
		}
		j := d.queue[0]
		d.queue[0] = nil
		d.queue = d.queue[1:]
		d.mu.Unlock()

		d.run(j)
	}
}

func (d *Dispatcher) run(j *job) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		d.logger.Error("provider job panicked", zap.Any("panic", r))
		if j.settle() {
			d.abort(j, chain.OperationFailed)
		}
	}()
	j.run(j.settle)
}

func (d *Dispatcher) abort(j *job, code chain.Code) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("provider abort panicked", zap.Any("panic", r))
		}
	}()
	j.abort(code)
}
