package taskpool

import (
	"errors"
	"fmt"
)

// Sentinel errors returned at the submission site and at the future's
// Get site. See spec §7 for the full error taxonomy.
var (
	// ErrStopped is returned by Post when the target executor has
	// already been stopped; the job is never enqueued.
	ErrStopped = errors.New("taskpool: executor stopped")

	// ErrCancelled is the error a future resolves to when its job was
	// dropped by Scheduler.StopNow before it ran.
	ErrCancelled = errors.New("taskpool: job cancelled")

	// ErrResultAlreadyTaken is returned by a second call to a future's
	// Get; a ResultCell's value/error is moved out on first retrieval.
	ErrResultAlreadyTaken = errors.New("taskpool: result already taken")

	// ErrBadOutputTarget is returned by Multilogger.AddAny when the
	// registered value does not satisfy OutputTarget.
	ErrBadOutputTarget = errors.New("taskpool: value does not satisfy OutputTarget")

	// ErrNilFunc is returned by Post when the supplied callable is nil.
	ErrNilFunc = errors.New("taskpool: job func is nil")
)

// TaskError wraps an error raised by a user callable (or a recovered
// panic), preserving its identity across the goroutine boundary so that
// errors.Is/errors.As on the future's error keep working.
type TaskError struct {
	Err error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("taskpool: task failed: %v", e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// FatalProgrammingError is panicked when a component is constructed with
// a value that can never be a legal configuration (e.g. a ThreadPool
// with zero workers). It is always a programmer error, never a runtime
// condition a caller should try to recover from in normal operation.
type FatalProgrammingError struct {
	Msg string
}

func (e FatalProgrammingError) Error() string {
	return "taskpool: fatal programming error: " + e.Msg
}
