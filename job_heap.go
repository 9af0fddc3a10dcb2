package taskpool

import "time"

// jobHeap implements container/heap.Interface over queued jobs, ordered
// by effective priority recomputed on demand: smaller eff floats to the
// root. container/heap is a min-heap over Less, so the root is always
// the job with the smallest effective priority — the one due to run next.
//
// No index bookkeeping is kept: the scheduler only ever Push()es newly
// submitted jobs and Pop()s the root, it never needs heap.Fix on an
// arbitrary element, so the Interface.Swap implementation below need not
// track each job's current slot.
type jobHeap []*PriorityJob

func (h jobHeap) Len() int { return len(h) }

func (h jobHeap) Less(i, j int) bool {
	now := time.Now()
	return h[i].effective(now) < h[j].effective(now)
}

func (h jobHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *jobHeap) Push(x any) {
	*h = append(*h, x.(*PriorityJob))
}

func (h *jobHeap) Pop() any {
	old := *h
	n := len(old)
	job := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return job
}
