package taskpool

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	lg "github.com/Andrej220/go-utils/zlog"
)

// ThreadPool is an execution context where posted tasks run on one of a
// fixed number of goroutines. Its scheduler is configured to allow
// waiting, so idle workers block for more work rather than exiting.
//
// The zero value is not usable; construct with NewThreadPool or
// NewDefaultThreadPool.
type ThreadPool struct {
	scheduler *Scheduler
	wg        sync.WaitGroup
	workers   int
	pinCPU    bool
}

// PoolOption configures a ThreadPool at construction time.
type PoolOption func(*ThreadPool)

// WithCPUPinning pins each worker goroutine to its own OS thread and
// worker i to CPU core i modulo the number of CPUs, so workers share
// cores when there are more workers than cores (Linux only; a no-op
// elsewhere), reducing cache-line bouncing for workloads sensitive to
// it. Off by default.
func WithCPUPinning() PoolOption {
	return func(p *ThreadPool) { p.pinCPU = true }
}

// NewThreadPool constructs a pool with n worker goroutines, each calling
// the scheduler's Run in a loop. n <= 0 is a programming error: it
// panics with FatalProgrammingError rather than silently substituting a
// default, since a pool with no workers can never make progress on
// anything posted to it.
func NewThreadPool(n int, opts ...PoolOption) *ThreadPool {
	if n <= 0 {
		panic(FatalProgrammingError{Msg: fmt.Sprintf("thread_pool: invalid worker count %d", n)})
	}

	p := &ThreadPool{
		scheduler: newScheduler(true),
		workers:   n,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.runWorker(i)
	}
	return p
}

// NewDefaultThreadPool constructs a pool sized to runtime.NumCPU(), a
// reasonable default for CPU-bound work when the caller has no more
// specific sizing in mind.
func NewDefaultThreadPool(opts ...PoolOption) *ThreadPool {
	return NewThreadPool(runtime.NumCPU(), opts...)
}

func (p *ThreadPool) runWorker(id int) {
	defer p.wg.Done()
	if p.pinCPU {
		pinWorker(id)
	}
	p.scheduler.Run()
}

// Executor implements ExecutionContext.
func (p *ThreadPool) Executor() Executor { return p.scheduler }

// ThreadCount returns the number of worker goroutines the pool was
// constructed with.
func (p *ThreadPool) ThreadCount() int { return p.workers }

// JobsDone forwards to the scheduler.
func (p *ThreadPool) JobsDone() uint64 { return p.scheduler.JobsDone() }

// Stopped forwards to the scheduler.
func (p *ThreadPool) Stopped() bool { return p.scheduler.Stopped() }

// Stop aborts pending work immediately: queued jobs are dropped and
// resolved to ErrCancelled, running jobs finish, and workers exit once
// they observe the stop. Stop does not block; call Join (or Close) to
// wait for workers to actually exit.
func (p *ThreadPool) Stop() {
	lg.FromContext(context.Background()).Warn("thread pool stopping immediately; pending jobs will be cancelled")
	p.scheduler.StopNow()
}

// Join requests a graceful shutdown (queued jobs still run to
// completion) and blocks until every worker goroutine has exited. After
// Join returns, the pool is inert: JobsDone reflects everything that
// completed, and further Post calls fail with ErrStopped.
func (p *ThreadPool) Join() {
	lg.FromContext(context.Background()).Info("thread pool draining", lg.Int("workers", p.workers))
	p.scheduler.Stop()
	p.wg.Wait()
}

// Close calls Join and satisfies io.Closer. Go has no destructors, so
// callers are expected to `defer pool.Close()` to guarantee every
// worker has exited before the enclosing scope returns.
func (p *ThreadPool) Close() error {
	p.Join()
	return nil
}
