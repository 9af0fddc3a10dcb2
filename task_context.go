package taskpool

import (
	"context"

	lg "github.com/Andrej220/go-utils/zlog"
)

// TaskContext is a caller-driven execution context: its scheduler is
// configured to forbid waiting, so a call to Run drains whatever is
// currently queued and returns instead of blocking for more work. Any
// number of goroutines may call Run concurrently — the scheduler mutex
// serializes pops, so two callers never race for the same job.
type TaskContext struct {
	scheduler *Scheduler
}

// NewTaskContext returns a TaskContext ready to accept work.
func NewTaskContext() *TaskContext {
	return &TaskContext{scheduler: newScheduler(false)}
}

// Executor implements ExecutionContext.
func (c *TaskContext) Executor() Executor { return c.scheduler }

// Stopped forwards to the scheduler.
func (c *TaskContext) Stopped() bool { return c.scheduler.Stopped() }

// Restart clears the stop flag so the context can accept and run work
// again. Callable only once no goroutine is inside Run, the same
// quiescence precondition Scheduler.Restart documents.
func (c *TaskContext) Restart() { c.scheduler.Restart() }

// Run drains the queue: it pops and executes jobs until the queue is
// empty or Stop has been called, then returns. It never blocks waiting
// for more work to arrive.
func (c *TaskContext) Run() { c.scheduler.Run() }

// Stop cancels every job currently queued (resolving their futures to
// ErrCancelled) and stops accepting new ones. Because the scheduler
// never waits in this context, this is an immediate abort: a job that
// has not yet been popped loses its turn entirely.
func (c *TaskContext) Stop() {
	lg.FromContext(context.Background()).Warn("task context stopping; pending tasks will be cancelled")
	c.scheduler.StopNow()
}
