package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SagaStore is the durable record of sagas. It persists; it never mutates
// business fields on its own.
type SagaStore interface {
	// CreateIfAbsent inserts the saga unless one with the same idempotency
	// key already exists, in which case the existing saga is returned
	// untouched. Atomic across concurrent callers via the uniqueness
	// constraint on the key.
	CreateIfAbsent(ctx context.Context, saga Saga) (Saga, bool, error)

	GetByID(ctx context.Context, id uuid.UUID) (Saga, error)
	GetByIdempotencyKey(ctx context.Context, key string) (Saga, error)

	// UpdateState is a compare-and-swap on the saga state. A false return
	// means the expected state no longer holds; the caller must re-read and
	// decide whether its transition is still applicable.
	UpdateState(ctx context.Context, sagaID uuid.UUID, expected, next SagaState, legResult *LegResult) (bool, error)

	// ClaimReconcilable picks one SEND_FAILED_RECONCILE saga due for a retry,
	// bumps its attempt counter and schedules the next retry window. ok is
	// false when nothing is claimable.
	ClaimReconcilable(ctx context.Context, maxAttempts int, retryDelay time.Duration) (Saga, bool, error)

	// ClaimStranded picks one saga a crashed process abandoned in a
	// StrandedStates state, untouched for at least staleAfter. Claiming
	// refreshes updated_at so other sweeps skip it for another window.
	ClaimStranded(ctx context.Context, staleAfter time.Duration) (Saga, bool, error)
}
