package taskpool

import (
	"container/heap"
	"sync"
	"sync/atomic"

	lg "github.com/Andrej220/go-utils/zlog"
)

// Scheduler owns the priority queue and the shared condition variable.
// It implements both Executor and the worker loop body (Run) that drives
// it. A Scheduler is passive: nothing happens until some goroutine calls
// Run. The scheduler mutex is never held while that goroutine is running
// a job's own code, so a job that happens to take its own lock can never
// deadlock against the scheduler.
//
// Two orthogonal flags, stop and mayWait, are read and written only
// while mu is held; the condition variable's predicate re-reads both on
// every wake to tolerate spurious wakeups.
type Scheduler struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue jobHeap

	stop    bool
	mayWait bool

	doneCount atomic.Uint64
}

// newScheduler returns a scheduler configured with the given initial
// may-wait discipline and stop=false. mayWait=true is ThreadPool's
// configuration (workers block for more work); mayWait=false is
// TaskContext's (a call to Run drains and returns).
func newScheduler(mayWait bool) *Scheduler {
	s := &Scheduler{mayWait: mayWait}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Post implements Executor.
func (s *Scheduler) Post(job *PriorityJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop {
		return ErrStopped
	}
	heap.Push(&s.queue, job)
	s.cond.Signal()
	return nil
}

// Stopped implements Executor.
func (s *Scheduler) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop
}

// JobsDone returns the number of jobs that have returned from
// invocation, whether or not they errored. Safe to read without the
// scheduler mutex: it is the one piece of scheduler state that is
// atomic and observable outside the lock.
func (s *Scheduler) JobsDone() uint64 {
	return s.doneCount.Load()
}

// Stop requests a graceful shutdown: no new jobs are accepted, but a
// worker whose mayWait is true keeps draining whatever remains queued
// before returning from Run. Jobs already queued are not cancelled.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stop = true
	s.mu.Unlock()
	s.cond.Broadcast()
}

// StopNow requests an immediate abort: no new jobs are accepted, every
// job still sitting in the queue is dropped and its future resolved to
// ErrCancelled, and a worker currently running a job lets it finish.
func (s *Scheduler) StopNow() {
	s.mu.Lock()
	dropped := make([]*PriorityJob, len(s.queue))
	copy(dropped, s.queue)
	s.queue = s.queue[:0]
	s.stop = true
	s.mu.Unlock()
	s.cond.Broadcast()

	for _, job := range dropped {
		job.cancel()
	}
}

// Restart clears the stop flag so the scheduler can be reused after a
// Stop or StopNow. The caller must ensure no goroutine is currently
// executing inside Run: the stop/mayWait flags are only ever read and
// written under mu, so restarting while a Run call is still live would
// just race a fresh caller's expectations against an old worker's.
func (s *Scheduler) Restart() {
	s.mu.Lock()
	s.stop = false
	s.mu.Unlock()
	s.cond.Broadcast()
}

// AllowWait lets goroutines inside Run block on the condition variable
// when the queue is empty and the scheduler is not stopped.
func (s *Scheduler) AllowWait() {
	s.mu.Lock()
	s.mayWait = true
	s.mu.Unlock()
}

// ForbidWait makes Run return as soon as the queue empties, instead of
// blocking for more work.
func (s *Scheduler) ForbidWait() {
	s.mu.Lock()
	s.mayWait = false
	s.mu.Unlock()
	s.cond.Broadcast()
}

// AllowedToWait reports the current may-wait flag.
func (s *Scheduler) AllowedToWait() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mayWait
}

// Run executes jobs until told to stop. Any number of goroutines may
// call Run concurrently; the mutex serializes pops so two goroutines
// never race for the same job. Each iteration makes its decision in this
// exact order:
//
//  1. block while the queue is empty, not stopped, and waiting is
//     allowed;
//  2. if waiting is forbidden and stop has been requested, return
//     immediately regardless of what remains queued (abort-pending);
//  3. if a job is queued, pop and run it, then loop;
//  4. otherwise the queue is empty and either waiting is forbidden
//     (one-shot drain finished) or stop was requested (graceful drain
//     finished) — return either way.
//
// Checking abort-pending before checking for a queued job is what makes
// an immediate stop actually immediate: without that ordering a worker
// would keep draining the queue instead of abandoning it.
func (s *Scheduler) Run() {
	for {
		s.mu.Lock()
		for s.queue.Len() == 0 && !s.stop && s.mayWait {
			s.cond.Wait()
		}

		if !s.mayWait && s.stop {
			s.mu.Unlock()
			return
		}

		if s.queue.Len() == 0 {
			s.mu.Unlock()
			return
		}

		job := heap.Pop(&s.queue).(*PriorityJob)
		s.mu.Unlock()

		s.execute(job)
	}
}

// execute runs one job outside the scheduler mutex and counts it as
// done once it returns, whether it succeeded, errored, or panicked (the
// binder recovers panics internally before execute ever sees them).
func (s *Scheduler) execute(job *PriorityJob) {
	defer s.doneCount.Add(1)
	lg.FromContext(job.ctx).Info("scheduler popped job", lg.String("priority", job.prio.String()))
	job.run()
}
