//go:build linux

package taskpool

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// PinToCPU locks the calling goroutine to its own OS thread and
// restricts that thread to run on the given CPU core.
func PinToCPU(cpu int) error {
	runtime.LockOSThread()

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(cpu)
	return unix.SchedSetaffinity(0, &mask)
}

// pinWorker pins worker id to CPU core id modulo the number of CPUs
// available, so a pool with more workers than cores still assigns every
// worker a valid core instead of failing.
func pinWorker(id int) {
	n := runtime.NumCPU()
	if n <= 0 {
		return
	}
	_ = PinToCPU(id % n)
}
