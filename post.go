package taskpool

import (
	"context"

	lg "github.com/Andrej220/go-utils/zlog"
)

// Post submits fn to ctx's executor at the given priority and returns a
// future for its result. It fails with ErrStopped, without enqueuing
// anything, if the executor has already been stopped.
//
// fn is the bound callable. Arguments are bound the idiomatic Go way,
// by closing over them, rather than being passed as separate values:
//
//	a, b := 2, 3
//	f, err := taskpool.Post(ctx, pool, taskpool.Medium, func() (int, error) {
//	    return a + b, nil
//	})
//
// Submission itself is non-blocking beyond acquiring the scheduler's
// mutex; fn runs later, on whichever worker pops the job.
func Post[T any](ctx context.Context, ec ExecutionContext, prio Priority, fn func() (T, error)) (Future[T], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	exec := ec.Executor()
	if exec.Stopped() {
		return nil, ErrStopped
	}

	cell := NewResultCell[T]()
	b := newBinder(ctx, fn, cell)
	job := newPriorityJob(ctx, prio, b.invoke, b.cancel)

	if err := exec.Post(job); err != nil {
		return nil, err
	}

	lg.FromContext(ctx).Info("task submitted", lg.String("priority", prio.String()))
	return cell, nil
}

// PostDefault submits fn at Medium priority, the priority most callers
// want when they have no particular urgency to express.
func PostDefault[T any](ctx context.Context, ec ExecutionContext, fn func() (T, error)) (Future[T], error) {
	return Post(ctx, ec, Medium, fn)
}
