package usecase

import (
	"context"
	"fmt"
	"log"
	"time"
)

// retryPolicy is declared per saga step.
type retryPolicy struct {
	maxAttempts int
	delay       time.Duration
}

var noRetry = retryPolicy{maxAttempts: 1}

// sagaStep is one remote stage of the enrollment workflow. Steps run
// strictly in order; the first fatal error aborts the remaining steps.
// There is no compensation: previously completed steps are not rolled
// back, re-running the saga reconciles via find-or-create.
type sagaStep struct {
	name  string
	retry retryPolicy
	run   func(ctx context.Context) error
}

func runSaga(ctx context.Context, steps []sagaStep) error {
	for _, step := range steps {
		if err := runStep(ctx, step); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	return nil
}

func runStep(ctx context.Context, step sagaStep) error {
	max := step.retry.maxAttempts
	if max < 1 {
		max = 1
	}

	var err error
	for attempt := 1; attempt <= max; attempt++ {
		if err = step.run(ctx); err == nil {
			return nil
		}
		if attempt == max {
			break
		}

		// Backoff grows linearly with the attempt number.
		wait := step.retry.delay * time.Duration(attempt)
		log.Printf("[saga][usecase] step=%s attempt=%d failed err=%v retrying_in=%s", step.name, attempt, err, wait)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
