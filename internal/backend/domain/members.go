package domain

import (
	"context"
	"time"
)

// Member is an account record. CachedBalance is a read-through cache of the
// on-chain balance and is advisory only: the orchestrator uses it to compute
// the deposit shortfall, never to gate the send leg.
type Member struct {
	Email           string
	OnChainAddress  string
	CachedBalance   Money
	BalanceSyncedAt time.Time
}

type AccountDirectory interface {
	Lookup(ctx context.Context, email string) (Member, error)
}

type BalanceRefresher interface {
	UpdateCachedBalance(ctx context.Context, email string, balance Money) error
}
