// Package taskpool provides a concurrent task scheduler with priority
// ageing, along with two execution contexts built on top of it.
//
// Design goals
//
// The package is designed around the following principles:
//
//   - No task ever starves, no matter how many higher-priority tasks
//     keep arriving: a queued task's effective priority decays toward
//     the highest priority the longer it waits.
//   - The scheduler mutex is never held across user code. A task that
//     takes its own lock before being submitted cannot deadlock against
//     the scheduler.
//   - Result delivery is exactly-once: a submitted task's value or error
//     lands in its future exactly once, whether the task ran, errored,
//     panicked, or was cancelled before it got a chance to run.
//
// Architecture overview
//
// The scheduler itself is passive: it owns a priority queue, a mutex and
// a condition variable, and a tiny two-flag state machine (stop,
// may-wait). It does no scheduling of its own accord; calling Run drives
// it. Two execution contexts pair it with different callers:
//
//  1. ThreadPool spawns N goroutines that each call the scheduler's Run,
//     giving parallel execution.
//  2. TaskContext configures the scheduler in forbid-wait mode so that
//     any goroutine's single call to Run drains whatever is currently
//     queued and returns — useful for cooperative, caller-driven
//     draining.
//
// Submission
//
// Use the free function Post to submit work to either execution context:
//
//	f, err := taskpool.Post(ctx, pool, taskpool.High, func() (int, error) {
//	    return 42, nil
//	})
//	v, err := f.Get()
//
// Post constructs a binder (the callable plus its captured arguments) and
// a ResultCell (the one-shot slot the binder writes into), wraps both in
// a PriorityJob, and hands the job to the execution context's Executor.
//
// Priority and ageing
//
// Priority is an 8-bit value where lower numerically means higher
// priority. A job's effective priority decays by one point per second it
// spends queued, floored at zero (the highest possible priority). Any
// job reaches maximum effective priority within Lowest seconds of
// waiting, regardless of how much higher-priority work keeps arriving
// ahead of it.
//
// Shutdown disciplines
//
// Two orthogonal flags on the scheduler encode four shutdown disciplines:
//
//   - Graceful drain (ThreadPool.Join, Scheduler.Stop while waiting is
//     allowed): stop accepting new work, finish everything already
//     queued, then return.
//   - Abort-pending (ThreadPool.Stop, Scheduler.StopNow): stop accepting
//     new work, drop everything still queued (resolving their futures
//     to ErrCancelled), let anything already running finish.
//   - TaskContext's single cooperative drain: a call to Run returns as
//     soon as the queue is empty, without waiting for more work.
//   - TaskContext.Stop: the same abort-pending behavior as
//     ThreadPool.Stop, for a caller-driven context.
//
// Multilogger
//
// Multilogger is a thread-safe fan-out sink independent of the
// scheduler: it writes one buffer to a dynamic set of heterogeneous
// output targets, skipping unhealthy targets and swallowing per-target
// write/flush failures so a single broken log sink can never corrupt or
// abort an otherwise healthy write.
//
// Out of scope
//
// Work-stealing across multiple queues, FIFO fairness across equal
// effective priority, persistence or recovery of pending tasks across a
// process boundary, distributed execution, dependency graphs between
// tasks, and timed/delayed scheduling beyond age-boost are outside this
// package's scope. Command-line front-ends, configuration parsing, and
// packaging are the caller's concern, not this library's.
package taskpool
