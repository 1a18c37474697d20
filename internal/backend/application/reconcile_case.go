package application

import (
	"context"
	"time"

	"github.com/amilz/tap-cash/internal/backend/domain"
	"github.com/amilz/tap-cash/internal/pkg/logging"
)

// ReconcileCase re-enters sagas stuck in SEND_FAILED_RECONCILE: the deposit
// committed but the transfer did not. Only the send leg is ever re-attempted;
// re-running the deposit would double-charge the processor. It also sweeps up
// sagas a crashed process abandoned in any other non-terminal state and
// resumes them from where the state record left off.
type ReconcileCase struct {
	sagaStore    domain.SagaStore
	orchestrator *DepositAndSendCase
	maxAttempts  int
	retryDelay   time.Duration
	staleAfter   time.Duration
	logger       logging.Logger
}

func NewReconcileCase(
	sagaStore domain.SagaStore,
	orchestrator *DepositAndSendCase,
	maxAttempts int,
	retryDelay time.Duration,
	staleAfter time.Duration,
	logger logging.Logger,
) *ReconcileCase {
	return &ReconcileCase{
		sagaStore:    sagaStore,
		orchestrator: orchestrator,
		maxAttempts:  maxAttempts,
		retryDelay:   retryDelay,
		staleAfter:   staleAfter,
		logger:       logger,
	}
}

// ReconcileNext claims one due or stranded saga and drives it forward.
// claimed is false when nothing needs attention, which tells the worker to go
// back to sleep.
func (rc *ReconcileCase) ReconcileNext(ctx context.Context) (claimed bool, err error) {
	saga, ok, err := rc.sagaStore.ClaimReconcilable(ctx, rc.maxAttempts, rc.retryDelay)
	if err != nil {
		return false, err
	}
	if ok {
		rc.logger.Info("retrying send leg",
			"sagaId", saga.ID.String(),
			"attempt", saga.ReconcileAttempts,
		)

		return true, rc.orchestrator.Advance(ctx, saga.ID)
	}

	saga, ok, err = rc.sagaStore.ClaimStranded(ctx, rc.staleAfter)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	rc.logger.Info("resuming stranded saga",
		"sagaId", saga.ID.String(),
		"state", string(saga.State),
	)

	return true, rc.orchestrator.Advance(ctx, saga.ID)
}
