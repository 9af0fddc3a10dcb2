package taskpool

import (
	"context"
	"fmt"

	lg "github.com/Andrej220/go-utils/zlog"
)

// binder couples a callable with a ResultCell. In Go, "bound arguments"
// is naturally a closure: the caller of Post closes over whatever it
// wants to pass, rather than the callable and its arguments being kept
// as separate values. invoke drives the cell exactly once; calling it a
// second time is the caller's bug (a job is never re-enqueued or re-run
// by the scheduler, so this never happens through normal use).
type binder[T any] struct {
	ctx  context.Context
	fn   func() (T, error)
	cell *ResultCell[T]
}

func newBinder[T any](ctx context.Context, fn func() (T, error), cell *ResultCell[T]) *binder[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	return &binder[T]{ctx: ctx, fn: fn, cell: cell}
}

// invoke calls fn and writes its outcome into the cell. A panic raised
// by fn is recovered and folded into the same TaskError path as an
// ordinary returned error, so a misbehaving task can never take down
// the worker goroutine that happened to pick it up.
func (b *binder[T]) invoke() {
	logger := lg.FromContext(b.ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("task panicked", lg.Any("panic", r))
			b.cell.SetError(&TaskError{Err: fmt.Errorf("panic: %v", r)})
		}
	}()

	v, err := b.fn()
	if err != nil {
		logger.Error("task failed", lg.Any("error", err))
		b.cell.SetError(&TaskError{Err: err})
		return
	}
	logger.Info("task finished")
	b.cell.SetValue(v)
}

// cancel resolves the cell to ErrCancelled without invoking fn. Used
// when the job is dropped from the queue by an abort-pending shutdown.
func (b *binder[T]) cancel() {
	lg.FromContext(b.ctx).Warn("task cancelled before it ran")
	b.cell.SetError(ErrCancelled)
}
