package taskpool

import (
	"context"
	"time"
)

// PriorityJob wraps one callable with its submission priority, its
// enqueue timestamp, and a cancel hook. run is invoked by a worker when
// the job is popped; cancel resolves the job's result without running
// it, used when the job is dropped by an abort-pending shutdown. ctx
// carries whatever logging/tracing scope the submitter had when it
// called Post, so a job's own logging stays attributed to its caller.
//
// A job's timestamp is set once, at construction, and never touched
// again: reordering a heap of *PriorityJob only ever swaps pointers, it
// never copies or reconstructs the pointee, so a job's age is never
// accidentally reset by the heap shuffling it around.
//
// A job, once popped from the scheduler's queue, is never re-enqueued.
type PriorityJob struct {
	ctx       context.Context
	prio      Priority
	run       func()
	cancel    func()
	timestamp time.Time
}

func newPriorityJob(ctx context.Context, prio Priority, run, cancel func()) *PriorityJob {
	if ctx == nil {
		ctx = context.Background()
	}
	return &PriorityJob{
		ctx:       ctx,
		prio:      prio,
		run:       run,
		cancel:    cancel,
		timestamp: time.Now(),
	}
}

// effective computes eff(j, now) = max(0, prio - floor(age in seconds)).
// Smaller values mean higher effective priority.
func (j *PriorityJob) effective(now time.Time) uint8 {
	waited := int(now.Sub(j.timestamp) / time.Second)
	eff := int(j.prio) - waited
	if eff < 0 {
		return 0
	}
	return uint8(eff)
}
