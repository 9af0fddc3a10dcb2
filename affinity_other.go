//go:build !linux

package taskpool

// pinWorker is a no-op outside Linux: CPU pinning via
// sched_setaffinity has no portable equivalent, and WithCPUPinning is
// documented as a Linux-only optimization.
func pinWorker(id int) {}
