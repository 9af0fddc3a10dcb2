package taskpool

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestBinderInvokeSuccess(t *testing.T) {
	cell := NewResultCell[int]()
	b := newBinder(context.Background(), func() (int, error) { return 42, nil }, cell)

	b.invoke()

	v, err := cell.Get()
	if err != nil || v != 42 {
		t.Fatalf("Get() = (%d, %v); want (42, nil)", v, err)
	}
}

func TestBinderInvokeErrorFidelity(t *testing.T) {
	cell := NewResultCell[int]()
	inner := errors.New("out of range: x")
	b := newBinder(context.Background(), func() (int, error) { return 0, inner }, cell)

	b.invoke()

	_, err := cell.Get()
	var taskErr *TaskError
	if !errors.As(err, &taskErr) {
		t.Fatalf("Get() err = %v; want *TaskError", err)
	}
	if !errors.Is(err, inner) {
		t.Fatalf("Get() err does not wrap original: %v", err)
	}
	if !strings.Contains(err.Error(), "x") {
		t.Fatalf("Get() err message %q does not contain original message", err.Error())
	}
}

func TestBinderInvokeRecoversPanic(t *testing.T) {
	cell := NewResultCell[int]()
	b := newBinder(context.Background(), func() (int, error) {
		panic("boom")
	}, cell)

	b.invoke() // must not propagate the panic to the caller

	_, err := cell.Get()
	if err == nil {
		t.Fatal("Get() err = nil; want an error describing the panic")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("Get() err = %v; want it to mention the panic value", err)
	}
}

func TestBinderCancelResolvesToCancelled(t *testing.T) {
	cell := NewResultCell[int]()
	b := newBinder(context.Background(), func() (int, error) { return 1, nil }, cell)

	b.cancel()

	_, err := cell.Get()
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Get() err = %v; want ErrCancelled", err)
	}
}
