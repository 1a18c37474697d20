package postgres

import (
	"testing"
	"time"

	"github.com/amilz/tap-cash/internal/backend/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountDirectory(t *testing.T) (*AccountDirectory, pgxmock.PgxConnIface) {
	t.Helper()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mock.Close(t.Context()) })

	return NewAccountDirectory(mock), mock
}

func TestAccountDirectory_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		directory, mock := newAccountDirectory(t)
		syncedAt := time.Now().UTC()

		mock.ExpectQuery("SELECT").
			WithArgs("sender@tapcash.app").
			WillReturnRows(pgxmock.NewRows([]string{"email", "on_chain_address", "cached_balance", "balance_synced_at"}).
				AddRow("sender@tapcash.app", "SenderUsdcAta111", int64(1000), syncedAt))

		member, err := directory.Lookup(t.Context(), "sender@tapcash.app")

		require.NoError(t, err)
		assert.Equal(t, "SenderUsdcAta111", member.OnChainAddress)
		assert.Equal(t, domain.Money(1000), member.CachedBalance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		directory, mock := newAccountDirectory(t)

		mock.ExpectQuery("SELECT").
			WithArgs("missing@tapcash.app").
			WillReturnError(pgx.ErrNoRows)

		_, err := directory.Lookup(t.Context(), "missing@tapcash.app")

		assert.ErrorIs(t, err, &domain.MemberNotFoundError{})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountDirectory_UpdateCachedBalance(t *testing.T) {
	t.Parallel()

	t.Run("updates the member row", func(t *testing.T) {
		t.Parallel()

		directory, mock := newAccountDirectory(t)

		mock.ExpectExec("UPDATE members").
			WithArgs(int64(2200), "sender@tapcash.app").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := directory.UpdateCachedBalance(t.Context(), "sender@tapcash.app", domain.Money(2200))

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown member", func(t *testing.T) {
		t.Parallel()

		directory, mock := newAccountDirectory(t)

		mock.ExpectExec("UPDATE members").
			WithArgs(int64(2200), "missing@tapcash.app").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := directory.UpdateCachedBalance(t.Context(), "missing@tapcash.app", domain.Money(2200))

		assert.ErrorIs(t, err, &domain.MemberNotFoundError{})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountDirectory_EnsureMember(t *testing.T) {
	t.Parallel()

	directory, mock := newAccountDirectory(t)

	mock.ExpectExec("INSERT INTO members").
		WithArgs("sender@tapcash.app", "SenderUsdcAta111", int64(0)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := directory.EnsureMember(t.Context(), domain.Member{
		Email:          "sender@tapcash.app",
		OnChainAddress: "SenderUsdcAta111",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
