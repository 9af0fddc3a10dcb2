package taskpool

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPostRejectsNilFunc(t *testing.T) {
	ctx := NewTaskContext()

	_, err := Post[int](context.Background(), ctx, Medium, nil)
	if !errors.Is(err, ErrNilFunc) {
		t.Fatalf("Post() err = %v; want ErrNilFunc", err)
	}
}

func TestPostRejectsWhenExecutorAlreadyStopped(t *testing.T) {
	ctx := NewTaskContext()
	ctx.Stop()

	_, err := Post(context.Background(), ctx, Medium, func() (int, error) { return 1, nil })
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("Post() err = %v; want ErrStopped", err)
	}
}

func TestPostDefaultUsesMediumPriority(t *testing.T) {
	ctx := NewTaskContext()

	f, err := PostDefault(context.Background(), ctx, func() (string, error) { return "ok", nil })
	if err != nil {
		t.Fatalf("PostDefault() err = %v", err)
	}

	ctx.scheduler.mu.Lock()
	queued := len(ctx.scheduler.queue)
	var prio Priority
	if queued == 1 {
		prio = ctx.scheduler.queue[0].prio
	}
	ctx.scheduler.mu.Unlock()
	if queued != 1 || prio != Medium {
		t.Fatalf("queued %d job(s) at priority %v; want 1 at %v", queued, prio, Medium)
	}

	ctx.Run()

	v, err := f.Get()
	if err != nil || v != "ok" {
		t.Fatalf("Get() = (%q, %v); want (\"ok\", nil)", v, err)
	}
}

// End-to-end ageing through Post+ThreadPool: a lowest priority task
// submitted well before a burst of medium-priority tasks must still get
// picked up once its age has decayed its effective priority to zero,
// rather than starving behind the later arrivals.
func TestPostAgeingPreventsStarvationUnderThreadPool(t *testing.T) {
	p := NewThreadPool(1)
	defer p.Close()

	lowestDone := make(chan struct{})
	f, err := Post(context.Background(), p, Lowest, func() (int, error) {
		close(lowestDone)
		return 0, nil
	})
	if err != nil {
		t.Fatalf("Post() err = %v", err)
	}

	// Backdate the queued job directly so the test doesn't need to sleep
	// for real wall-clock seconds to force full decay.
	p.scheduler.mu.Lock()
	for _, j := range p.scheduler.queue {
		j.timestamp = j.timestamp.Add(-time.Duration(Lowest) * time.Second)
	}
	p.scheduler.mu.Unlock()

	for i := 0; i < 10; i++ {
		if _, err := Post(context.Background(), p, Medium, func() (int, error) { return 0, nil }); err != nil {
			t.Fatalf("Post() err = %v", err)
		}
	}

	<-lowestDone
	if _, err := f.Get(); err != nil {
		t.Fatalf("Get() err = %v; want nil", err)
	}
}
