package retry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDo(t *testing.T) {
	t.Parallel()

	fastPolicy := Policy{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}

	type testCase struct {
		name string
		fn   func(calls *int) RetryableFunc

		expectedCalls int
		expectedErr   error
	}

	tests := []testCase{
		{
			name: "success on first attempt",
			fn: func(calls *int) RetryableFunc {
				return func(ctx context.Context) (bool, error) {
					*calls++
					return false, nil
				}
			},
			expectedCalls: 1,
			expectedErr:   nil,
		},
		{
			name: "success after transient failures",
			fn: func(calls *int) RetryableFunc {
				return func(ctx context.Context) (bool, error) {
					*calls++
					if *calls < 3 {
						return true, assert.AnError
					}
					return false, nil
				}
			},
			expectedCalls: 3,
			expectedErr:   nil,
		},
		{
			name: "non-retryable failure stops immediately",
			fn: func(calls *int) RetryableFunc {
				return func(ctx context.Context) (bool, error) {
					*calls++
					return false, assert.AnError
				}
			},
			expectedCalls: 1,
			expectedErr:   assert.AnError,
		},
		{
			name: "retryable failure exhausts attempts",
			fn: func(calls *int) RetryableFunc {
				return func(ctx context.Context) (bool, error) {
					*calls++
					return true, assert.AnError
				}
			},
			expectedCalls: 3,
			expectedErr:   assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			err := Do(t.Context(), fastPolicy, tt.fn(&calls))

			assert.Equal(t, tt.expectedCalls, calls)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDo_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())

	calls := 0
	err := Do(ctx, Policy{MaxAttempts: 5, InitialDelay: time.Second, Multiplier: 2}, func(ctx context.Context) (bool, error) {
		calls++
		cancel()
		return true, assert.AnError
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
