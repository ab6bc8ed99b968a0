package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRunSaga(t *testing.T) {
	t.Run("runs steps in order", func(t *testing.T) {
		var order []string
		steps := []sagaStep{
			{name: "a", retry: noRetry, run: func(context.Context) error { order = append(order, "a"); return nil }},
			{name: "b", retry: noRetry, run: func(context.Context) error { order = append(order, "b"); return nil }},
			{name: "c", retry: noRetry, run: func(context.Context) error { order = append(order, "c"); return nil }},
		}
		if err := runSaga(context.Background(), steps); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Join(order, "") != "abc" {
			t.Fatalf("wrong order: %v", order)
		}
	})

	t.Run("first failure aborts remaining steps", func(t *testing.T) {
		boom := errors.New("boom")
		ran := false
		steps := []sagaStep{
			{name: "fails", retry: noRetry, run: func(context.Context) error { return boom }},
			{name: "never", retry: noRetry, run: func(context.Context) error { ran = true; return nil }},
		}
		err := runSaga(context.Background(), steps)
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped boom, got %v", err)
		}
		if !strings.Contains(err.Error(), "fails:") {
			t.Fatalf("expected step name in error, got %v", err)
		}
		if ran {
			t.Fatalf("later step ran after failure")
		}
	})
}

func TestRunStep(t *testing.T) {
	t.Run("retries until success", func(t *testing.T) {
		attempts := 0
		step := sagaStep{
			name:  "flaky",
			retry: retryPolicy{maxAttempts: 3, delay: time.Millisecond},
			run: func(context.Context) error {
				attempts++
				if attempts < 3 {
					return errors.New("transient")
				}
				return nil
			},
		}
		if err := runStep(context.Background(), step); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempts != 3 {
			t.Fatalf("expected 3 attempts, got %d", attempts)
		}
	})

	t.Run("returns last error when exhausted", func(t *testing.T) {
		boom := errors.New("boom")
		attempts := 0
		step := sagaStep{
			name:  "broken",
			retry: retryPolicy{maxAttempts: 2, delay: time.Millisecond},
			run:   func(context.Context) error { attempts++; return boom },
		}
		if err := runStep(context.Background(), step); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if attempts != 2 {
			t.Fatalf("expected 2 attempts, got %d", attempts)
		}
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		step := sagaStep{
			name:  "slow",
			retry: retryPolicy{maxAttempts: 5, delay: time.Minute},
			run: func(context.Context) error {
				cancel()
				return errors.New("transient")
			},
		}
		if err := runStep(ctx, step); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
