package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type testJob struct {
	id      int
	fail    bool
	counter *atomic.Int64
}

type testResult struct {
	id  int
	err error
}

func (r *testResult) GetError() error { return r.err }

func (j *testJob) Execute(ctx context.Context) Result {
	if j.counter != nil {
		j.counter.Add(1)
	}
	if j.fail {
		return &testResult{id: j.id, err: errors.New("job failed")}
	}
	return &testResult{id: j.id}
}

func TestPool_ExecutesAllJobs(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(3)
	pool.Start()

	const n = 20
	for i := 0; i < n; i++ {
		pool.Submit(&testJob{id: i, counter: &counter})
	}
	results := pool.Wait()

	if len(results) != n {
		t.Errorf("expected %d results, got %d", n, len(results))
	}
	if counter.Load() != n {
		t.Errorf("expected %d executions, got %d", n, counter.Load())
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	pool.Submit(&testJob{id: 0})
	pool.Submit(&testJob{id: 1, fail: true})
	pool.Submit(&testJob{id: 2})
	results := pool.Wait()

	failed := 0
	for _, r := range results {
		if r.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("expected 1 failed result, got %d", failed)
	}
}

func TestPool_ZeroWorkersClampedToOne(t *testing.T) {
	pool := NewPool(0)
	pool.Start()
	pool.Submit(&testJob{id: 0})
	results := pool.Wait()
	if len(results) != 1 {
		t.Errorf("expected 1 result, got %d", len(results))
	}
}

func TestPool_ShutdownStopsWorkers(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()
	// Submitting after shutdown must not block
	done := make(chan struct{})
	go func() {
		pool.Submit(&testJob{id: 99})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Submit blocked after Shutdown")
	}
}

func TestThrottle_DisabledAllowsImmediately(t *testing.T) {
	for _, th := range []*Throttle{nil, NewThrottle(0, 0)} {
		if !th.Allow() {
			t.Error("disabled throttle should always allow")
		}
		if err := th.Wait(context.Background()); err != nil {
			t.Errorf("disabled throttle wait: %v", err)
		}
	}
}

func TestThrottle_PacesEvaluations(t *testing.T) {
	th := NewThrottle(100, 1)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 5; i++ {
		if err := th.Wait(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// 5 evaluations at 100/s with burst 1 need at least ~40ms
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("throttle too permissive: %v elapsed", elapsed)
	}
}

func TestThrottle_RespectsCancellation(t *testing.T) {
	th := NewThrottle(0.1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	th.Allow() // drain the burst

	cancel()
	if err := th.Wait(ctx); err == nil {
		t.Error("expected context error from cancelled wait")
	}
}
