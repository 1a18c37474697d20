package retry

import (
	"context"
	"time"
)

// RetryableFunc reports whether its error is worth another attempt.
type RetryableFunc func(ctx context.Context) (retryable bool, err error)

type Policy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Multiplier   int
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:  3,
		InitialDelay: 500 * time.Millisecond,
		Multiplier:   2,
	}
}

// Do runs fn up to MaxAttempts times, sleeping with exponential growth
// between attempts. The last error is returned once attempts are exhausted
// or fn reports a non-retryable failure.
func Do(ctx context.Context, policy Policy, fn RetryableFunc) error {
	delay := policy.InitialDelay

	var err error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		var retryable bool
		retryable, err = fn(ctx)
		if err == nil {
			return nil
		}

		if !retryable || attempt == policy.MaxAttempts {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay *= time.Duration(policy.Multiplier)
	}

	return err
}
