package taskpool

// Executor is the minimal post+stopped capability every execution
// context exposes exactly one of. Kept as its own narrow interface so
// dynamic dispatch happens only at this boundary, never inside the
// scheduler's hot pop-and-execute path.
type Executor interface {
	// Post enqueues job, or returns ErrStopped without enqueuing it if
	// the executor has already been stopped.
	Post(job *PriorityJob) error

	// Stopped reports whether the executor currently rejects new jobs.
	Stopped() bool
}

// ExecutionContext is a named holder of exactly one Executor plus
// whatever lifecycle controls it adds on top (ThreadPool's Join/Stop,
// TaskContext's Run/Restart). Post is generic over this interface so it
// works uniformly across any execution context without needing to know
// about ResultCell or binder.
type ExecutionContext interface {
	Executor() Executor
}
