package postgres

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/amilz/tap-cash/internal/backend/domain"
	"github.com/amilz/tap-cash/internal/pkg/database"
	"github.com/amilz/tap-cash/internal/pkg/logging"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSagaStore(t *testing.T) (*SagaStore, pgxmock.PgxConnIface) {
	t.Helper()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mock.Close(t.Context()) })

	store := NewSagaStore(mock, database.NewDelegateTxManager(mock, logging.StdoutLogger), logging.StdoutLogger)
	return store, mock
}

func testSaga() domain.Saga {
	return domain.NewSaga(domain.SendRequest{
		SenderEmail:    "sender@tapcash.app",
		RecipientEmail: "recipient@tapcash.app",
		Amount:         domain.Money(2500),
		IdempotencyKey: "key-1",
	}, domain.Money(1500))
}

func sagaRows(saga domain.Saga) *pgxmock.Rows {
	now := time.Now().UTC()
	return pgxmock.NewRows([]string{
		"id", "idempotency_key", "sender_email", "recipient_email", "total_amount", "deposit_amount",
		"state", "deposit_result", "send_result", "reconcile_attempts", "next_retry_at", "created_at", "updated_at",
	}).AddRow(
		saga.ID, saga.IdempotencyKey, saga.SenderEmail, saga.RecipientEmail,
		int64(saga.TotalAmount), int64(saga.DepositAmount),
		string(saga.State), []byte(nil), []byte(nil), saga.ReconcileAttempts, nil, now, now,
	)
}

func TestSagaStore_CreateIfAbsent(t *testing.T) {
	t.Parallel()

	t.Run("creates a new saga", func(t *testing.T) {
		t.Parallel()

		store, mock := newSagaStore(t)
		saga := testSaga()

		mock.ExpectExec("INSERT INTO sagas").
			WithArgs(saga.ID, saga.IdempotencyKey, saga.SenderEmail, saga.RecipientEmail, int64(2500), int64(1500), "PENDING").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery("SELECT").
			WithArgs(saga.IdempotencyKey).
			WillReturnRows(sagaRows(saga))

		stored, created, err := store.CreateIfAbsent(t.Context(), saga)

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, saga.ID, stored.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflicting key returns the existing saga", func(t *testing.T) {
		t.Parallel()

		store, mock := newSagaStore(t)
		saga := testSaga()

		existing := testSaga()
		existing.State = domain.StateComplete

		mock.ExpectExec("INSERT INTO sagas").
			WithArgs(saga.ID, saga.IdempotencyKey, saga.SenderEmail, saga.RecipientEmail, int64(2500), int64(1500), "PENDING").
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery("SELECT").
			WithArgs(saga.IdempotencyKey).
			WillReturnRows(sagaRows(existing))

		stored, created, err := store.CreateIfAbsent(t.Context(), saga)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing.ID, stored.ID)
		assert.Equal(t, domain.StateComplete, stored.State)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSagaStore_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		store, mock := newSagaStore(t)
		saga := testSaga()

		mock.ExpectQuery("SELECT").
			WithArgs(saga.ID).
			WillReturnRows(sagaRows(saga))

		stored, err := store.GetByID(t.Context(), saga.ID)

		require.NoError(t, err)
		assert.Equal(t, saga.ID, stored.ID)
		assert.Equal(t, domain.Money(2500), stored.TotalAmount)
		assert.Nil(t, stored.DepositResult)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		store, mock := newSagaStore(t)
		unknownID := uuid.New()

		mock.ExpectQuery("SELECT").
			WithArgs(unknownID).
			WillReturnError(pgx.ErrNoRows)

		_, err := store.GetByID(t.Context(), unknownID)

		assert.ErrorIs(t, err, &domain.SagaNotFoundError{})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSagaStore_UpdateState(t *testing.T) {
	t.Parallel()

	t.Run("compare-and-swap succeeds with a leg result", func(t *testing.T) {
		t.Parallel()

		store, mock := newSagaStore(t)
		saga := testSaga()

		legResult := &domain.LegResult{ExternalRef: "dep-1", Succeeded: true, CompletedAt: time.Now().UTC()}
		encoded, err := json.Marshal(legResult)
		require.NoError(t, err)

		mock.ExpectExec("UPDATE sagas").
			WithArgs("DEPOSIT_COMPLETE", encoded, []byte(nil), saga.ID, "DEPOSIT_IN_PROGRESS").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := store.UpdateState(t.Context(), saga.ID, domain.StateDepositInProgress, domain.StateDepositComplete, legResult)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("send leg result lands in the send column", func(t *testing.T) {
		t.Parallel()

		store, mock := newSagaStore(t)
		saga := testSaga()

		legResult := &domain.LegResult{ExternalRef: "xfer-1", Succeeded: true, CompletedAt: time.Now().UTC()}
		encoded, err := json.Marshal(legResult)
		require.NoError(t, err)

		mock.ExpectExec("UPDATE sagas").
			WithArgs("COMPLETE", []byte(nil), encoded, saga.ID, "SEND_IN_PROGRESS").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := store.UpdateState(t.Context(), saga.ID, domain.StateSendInProgress, domain.StateComplete, legResult)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale expected state loses the swap", func(t *testing.T) {
		t.Parallel()

		store, mock := newSagaStore(t)
		saga := testSaga()

		mock.ExpectExec("UPDATE sagas").
			WithArgs("DEPOSIT_IN_PROGRESS", []byte(nil), []byte(nil), saga.ID, "PENDING").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := store.UpdateState(t.Context(), saga.ID, domain.StatePending, domain.StateDepositInProgress, nil)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("illegal transition rejected without touching the database", func(t *testing.T) {
		t.Parallel()

		store, mock := newSagaStore(t)
		saga := testSaga()

		_, err := store.UpdateState(t.Context(), saga.ID, domain.StatePending, domain.StateComplete, nil)

		assert.ErrorIs(t, err, &domain.InvalidArgumentsError{})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSagaStore_ClaimReconcilable(t *testing.T) {
	t.Parallel()

	t.Run("claims one due saga", func(t *testing.T) {
		t.Parallel()

		store, mock := newSagaStore(t)

		saga := testSaga()
		saga.State = domain.StateSendFailedReconcile

		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectQuery("SELECT").
			WithArgs("SEND_FAILED_RECONCILE", 5).
			WillReturnRows(sagaRows(saga))
		mock.ExpectExec("UPDATE sagas").
			WithArgs("SEND_IN_PROGRESS", pgxmock.AnyArg(), saga.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)

		claimed, ok, err := store.ClaimReconcilable(t.Context(), 5, time.Minute)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, saga.ID, claimed.ID)
		assert.Equal(t, domain.StateSendInProgress, claimed.State)
		assert.Equal(t, 1, claimed.ReconcileAttempts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing due", func(t *testing.T) {
		t.Parallel()

		store, mock := newSagaStore(t)

		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectQuery("SELECT").
			WithArgs("SEND_FAILED_RECONCILE", 5).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectCommit()
		mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)

		_, ok, err := store.ClaimReconcilable(t.Context(), 5, time.Minute)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSagaStore_ClaimStranded(t *testing.T) {
	t.Parallel()

	strandedStates := []string{"PENDING", "DEPOSIT_IN_PROGRESS", "DEPOSIT_SKIPPED", "DEPOSIT_COMPLETE", "SEND_IN_PROGRESS"}

	t.Run("claims one abandoned saga", func(t *testing.T) {
		t.Parallel()

		store, mock := newSagaStore(t)

		saga := testSaga()
		saga.State = domain.StateDepositComplete

		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectQuery("SELECT").
			WithArgs(strandedStates, pgxmock.AnyArg()).
			WillReturnRows(sagaRows(saga))
		mock.ExpectExec("UPDATE sagas").
			WithArgs(saga.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)

		claimed, ok, err := store.ClaimStranded(t.Context(), 5*time.Minute)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, saga.ID, claimed.ID)
		assert.Equal(t, domain.StateDepositComplete, claimed.State)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing stale", func(t *testing.T) {
		t.Parallel()

		store, mock := newSagaStore(t)

		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectQuery("SELECT").
			WithArgs(strandedStates, pgxmock.AnyArg()).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectCommit()
		mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)

		_, ok, err := store.ClaimStranded(t.Context(), 5*time.Minute)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
