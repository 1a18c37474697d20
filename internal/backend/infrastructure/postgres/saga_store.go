package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amilz/tap-cash/internal/backend/domain"
	"github.com/amilz/tap-cash/internal/pkg/database"
	"github.com/amilz/tap-cash/internal/pkg/logging"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const sagaColumns = `id, idempotency_key, sender_email, recipient_email, total_amount, deposit_amount,
state, deposit_result, send_result, reconcile_attempts, next_retry_at, created_at, updated_at`

type SagaStore struct {
	executor  database.QueryExecuter
	txManager database.TxManager
	logger    logging.Logger
}

func NewSagaStore(executor database.QueryExecuter, txManager database.TxManager, logger logging.Logger) *SagaStore {
	return &SagaStore{
		executor:  executor,
		txManager: txManager,
		logger:    logger,
	}
}

// CreateIfAbsent relies on the uniqueness constraint on idempotency_key, so
// two concurrent submissions with the same key insert exactly one row.
func (s *SagaStore) CreateIfAbsent(ctx context.Context, saga domain.Saga) (domain.Saga, bool, error) {
	insertSQL := `INSERT INTO sagas (id, idempotency_key, sender_email, recipient_email, total_amount, deposit_amount, state)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (idempotency_key) DO NOTHING`

	tag, err := s.executor.Exec(ctx, insertSQL,
		saga.ID,
		saga.IdempotencyKey,
		saga.SenderEmail,
		saga.RecipientEmail,
		int64(saga.TotalAmount),
		int64(saga.DepositAmount),
		string(saga.State),
	)
	if err != nil {
		return domain.Saga{}, false, fmt.Errorf("failed to insert saga: %w", err)
	}

	created := tag.RowsAffected() == 1

	stored, err := s.GetByIdempotencyKey(ctx, saga.IdempotencyKey)
	if err != nil {
		return domain.Saga{}, false, err
	}

	return stored, created, nil
}

func (s *SagaStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Saga, error) {
	selectSQL := `SELECT ` + sagaColumns + ` FROM sagas WHERE id = $1`

	saga, err := scanSaga(s.executor.QueryRow(ctx, selectSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Saga{}, &domain.SagaNotFoundError{Msg: fmt.Sprintf("saga %s not found", id)}
		}

		return domain.Saga{}, fmt.Errorf("failed to select saga: %w", err)
	}

	return saga, nil
}

func (s *SagaStore) GetByIdempotencyKey(ctx context.Context, key string) (domain.Saga, error) {
	selectSQL := `SELECT ` + sagaColumns + ` FROM sagas WHERE idempotency_key = $1`

	saga, err := scanSaga(s.executor.QueryRow(ctx, selectSQL, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Saga{}, &domain.SagaNotFoundError{Msg: fmt.Sprintf("saga with idempotency key %q not found", key)}
		}

		return domain.Saga{}, fmt.Errorf("failed to select saga: %w", err)
	}

	return saga, nil
}

// UpdateState is a compare-and-swap: the row is only touched while it still
// holds the expected state, which makes duplicate leg completions and
// concurrent orchestrators harmless.
func (s *SagaStore) UpdateState(ctx context.Context, sagaID uuid.UUID, expected, next domain.SagaState, legResult *domain.LegResult) (bool, error) {
	if !expected.CanTransitionTo(next) {
		return false, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("illegal saga transition %s -> %s", expected, next)}
	}

	var depositResult, sendResult []byte
	if legResult != nil {
		encoded, err := json.Marshal(legResult)
		if err != nil {
			return false, fmt.Errorf("failed to encode leg result: %w", err)
		}

		leg, hasLeg := domain.LegForState(next)
		if !hasLeg {
			return false, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("state %s does not record a leg result", next)}
		}

		if leg == domain.LegDeposit {
			depositResult = encoded
		} else {
			sendResult = encoded
		}
	}

	updateSQL := `UPDATE sagas
SET state = $1,
    deposit_result = COALESCE($2, deposit_result),
    send_result = COALESCE($3, send_result),
    updated_at = now()
WHERE id = $4 AND state = $5`

	tag, err := s.executor.Exec(ctx, updateSQL, string(next), depositResult, sendResult, sagaID, string(expected))
	if err != nil {
		return false, fmt.Errorf("failed to update saga state: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// ClaimReconcilable picks one due SEND_FAILED_RECONCILE saga and atomically
// moves it back to SEND_IN_PROGRESS. SKIP LOCKED keeps concurrent workers off
// each other's rows.
func (s *SagaStore) ClaimReconcilable(ctx context.Context, maxAttempts int, retryDelay time.Duration) (domain.Saga, bool, error) {
	var claimed domain.Saga
	found := false

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		selectSQL := `SELECT ` + sagaColumns + `
FROM sagas
WHERE state = $1 AND reconcile_attempts < $2 AND (next_retry_at IS NULL OR next_retry_at <= now())
ORDER BY updated_at ASC
LIMIT 1
FOR UPDATE SKIP LOCKED`

		saga, err := scanSaga(executor.QueryRow(ctx, selectSQL, string(domain.StateSendFailedReconcile), maxAttempts))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}

			return fmt.Errorf("failed to select reconcilable saga: %w", err)
		}

		nextRetryAt := time.Now().UTC().Add(retryDelay * time.Duration(saga.ReconcileAttempts+1))

		updateSQL := `UPDATE sagas
SET state = $1, reconcile_attempts = reconcile_attempts + 1, next_retry_at = $2, updated_at = now()
WHERE id = $3`

		if _, err := executor.Exec(ctx, updateSQL, string(domain.StateSendInProgress), nextRetryAt, saga.ID); err != nil {
			return fmt.Errorf("failed to claim saga: %w", err)
		}

		saga.State = domain.StateSendInProgress
		saga.ReconcileAttempts++
		saga.NextRetryAt = &nextRetryAt

		claimed = saga
		found = true
		return nil
	})
	if err != nil {
		return domain.Saga{}, false, err
	}

	return claimed, found, nil
}

// ClaimStranded picks one saga a crash abandoned mid-flight: still in a
// crash-recoverable state and untouched since the cutoff. Bumping updated_at
// keeps other sweeps off the row for another staleAfter window while this
// instance drives it forward.
func (s *SagaStore) ClaimStranded(ctx context.Context, staleAfter time.Duration) (domain.Saga, bool, error) {
	var claimed domain.Saga
	found := false

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		states := domain.StrandedStates()
		stateNames := make([]string, 0, len(states))
		for _, state := range states {
			stateNames = append(stateNames, string(state))
		}

		selectSQL := `SELECT ` + sagaColumns + `
FROM sagas
WHERE state = ANY($1) AND updated_at <= $2
ORDER BY updated_at ASC
LIMIT 1
FOR UPDATE SKIP LOCKED`

		cutoff := time.Now().UTC().Add(-staleAfter)

		saga, err := scanSaga(executor.QueryRow(ctx, selectSQL, stateNames, cutoff))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}

			return fmt.Errorf("failed to select stranded saga: %w", err)
		}

		updateSQL := `UPDATE sagas SET updated_at = now() WHERE id = $1`

		if _, err := executor.Exec(ctx, updateSQL, saga.ID); err != nil {
			return fmt.Errorf("failed to claim stranded saga: %w", err)
		}

		claimed = saga
		found = true
		return nil
	})
	if err != nil {
		return domain.Saga{}, false, err
	}

	return claimed, found, nil
}

func scanSaga(row pgx.Row) (domain.Saga, error) {
	var saga domain.Saga
	var totalAmount, depositAmount int64
	var state string
	var depositResult, sendResult []byte

	err := row.Scan(
		&saga.ID,
		&saga.IdempotencyKey,
		&saga.SenderEmail,
		&saga.RecipientEmail,
		&totalAmount,
		&depositAmount,
		&state,
		&depositResult,
		&sendResult,
		&saga.ReconcileAttempts,
		&saga.NextRetryAt,
		&saga.CreatedAt,
		&saga.UpdatedAt,
	)
	if err != nil {
		return domain.Saga{}, err
	}

	saga.TotalAmount = domain.Money(totalAmount)
	saga.DepositAmount = domain.Money(depositAmount)
	saga.State = domain.SagaState(state)

	if len(depositResult) > 0 {
		saga.DepositResult = &domain.LegResult{}
		if err := json.Unmarshal(depositResult, saga.DepositResult); err != nil {
			return domain.Saga{}, fmt.Errorf("failed to decode deposit result: %w", err)
		}
	}

	if len(sendResult) > 0 {
		saga.SendResult = &domain.LegResult{}
		if err := json.Unmarshal(sendResult, saga.SendResult); err != nil {
			return domain.Saga{}, fmt.Errorf("failed to decode send result: %w", err)
		}
	}

	return saga, nil
}
