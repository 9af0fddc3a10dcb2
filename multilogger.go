package taskpool

import (
	"context"
	"sync"

	lg "github.com/Andrej220/go-utils/zlog"
)

// OutputTarget is the capability a value must satisfy to be registered
// in a Multilogger. Any type structurally implementing these three
// methods qualifies: registering a target never requires it to derive
// from a common base type, just to implement the three methods below.
type OutputTarget interface {
	// Healthy reports whether the target should currently receive
	// writes. An unhealthy target is skipped, not written to.
	Healthy() bool

	// Write writes p to the target.
	Write(p []byte) (int, error)

	// Flush flushes any buffered output.
	Flush() error
}

// Multilogger is a thread-safe one-to-many byte sink. A single call to
// Write fans the same buffer out to every currently healthy registered
// target; a failure on one target is swallowed so it can never corrupt
// the write or take down the others. Multilogger owns no target: the
// caller must keep every registered target alive for as long as it
// stays registered.
type Multilogger struct {
	mu      sync.Mutex
	targets []OutputTarget
}

// NewMultilogger returns an empty Multilogger.
func NewMultilogger() *Multilogger {
	return &Multilogger{}
}

// Add registers a target. The mutex serializes Add against concurrent
// Write calls; a Write already in progress sees either the pre- or
// post-Add target set, never a torn one.
func (m *Multilogger) Add(target OutputTarget) {
	m.mu.Lock()
	m.targets = append(m.targets, target)
	m.mu.Unlock()
}

// AddAny registers v if it satisfies OutputTarget, or returns
// ErrBadOutputTarget without registering anything. This is the one
// place a Multilogger raises an error to its caller for a structural
// capability violation — distinct from, and never triggered by, the
// per-target write/flush failures Write swallows.
func (m *Multilogger) AddAny(v any) error {
	target, ok := v.(OutputTarget)
	if !ok {
		return ErrBadOutputTarget
	}
	m.Add(target)
	return nil
}

// Clear empties the registry.
func (m *Multilogger) Clear() {
	m.mu.Lock()
	m.targets = m.targets[:0]
	m.mu.Unlock()
}

// Empty reports whether the registry currently holds no targets.
func (m *Multilogger) Empty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.targets) == 0
}

// Write implements io.Writer, fanning p out to every healthy registered
// target under the sink's mutex — concurrent Write calls never
// interleave bytes within a single call, though the order across calls
// is unspecified. For each healthy target it writes then flushes; any
// error either step raises is swallowed (logged at Warn) so that one
// broken sink can never prevent the others from receiving the write. It
// always reports len(p), nil: a logging sink is not allowed to make its
// caller believe a log line was lost just because one target hiccuped.
func (m *Multilogger) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, target := range m.targets {
		if !target.Healthy() {
			continue
		}
		if _, err := target.Write(p); err != nil {
			lg.FromContext(context.Background()).Warn("multilogger target write failed",
				lg.Int("target", i), lg.Any("error", err))
			continue
		}
		if err := target.Flush(); err != nil {
			lg.FromContext(context.Background()).Warn("multilogger target flush failed",
				lg.Int("target", i), lg.Any("error", err))
		}
	}
	return len(p), nil
}
