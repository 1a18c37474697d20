package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/amilz/tap-cash/internal/backend/domain"
	"github.com/amilz/tap-cash/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// AccountDirectory resolves member identities. The cached balance it serves
// is a read-through cache of the on-chain balance, refreshed opportunistically
// and never treated as authoritative.
type AccountDirectory struct {
	executor database.QueryExecuter
}

func NewAccountDirectory(executor database.QueryExecuter) *AccountDirectory {
	return &AccountDirectory{
		executor: executor,
	}
}

func (d *AccountDirectory) Lookup(ctx context.Context, email string) (domain.Member, error) {
	selectSQL := `SELECT email, on_chain_address, cached_balance, balance_synced_at FROM members WHERE email = $1`

	var member domain.Member
	var cachedBalance int64

	err := d.executor.QueryRow(ctx, selectSQL, email).Scan(
		&member.Email,
		&member.OnChainAddress,
		&cachedBalance,
		&member.BalanceSyncedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Member{}, &domain.MemberNotFoundError{Msg: fmt.Sprintf("member %q not found", email)}
		}

		return domain.Member{}, fmt.Errorf("failed to select member: %w", err)
	}

	member.CachedBalance = domain.Money(cachedBalance)
	return member, nil
}

func (d *AccountDirectory) UpdateCachedBalance(ctx context.Context, email string, balance domain.Money) error {
	updateSQL := `UPDATE members SET cached_balance = $1, balance_synced_at = now() WHERE email = $2`

	tag, err := d.executor.Exec(ctx, updateSQL, int64(balance), email)
	if err != nil {
		return fmt.Errorf("failed to update cached balance: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.MemberNotFoundError{Msg: fmt.Sprintf("member %q not found", email)}
	}

	return nil
}

func (d *AccountDirectory) EnsureMember(ctx context.Context, member domain.Member) error {
	insertSQL := `INSERT INTO members (email, on_chain_address, cached_balance) VALUES ($1, $2, $3)
ON CONFLICT (email) DO NOTHING`

	_, err := d.executor.Exec(ctx, insertSQL, member.Email, member.OnChainAddress, int64(member.CachedBalance))
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}

	return nil
}
