package domain

import "context"

// PaymentProcessorGateway executes deposits into a member's custodial balance.
// Deposit must be safe to call repeatedly with the same idempotencyToken; the
// processor deduplicates. LookupDeposit resolves a timed-out attempt before
// the orchestrator classifies it, since a timeout is an unknown outcome.
type PaymentProcessorGateway interface {
	Deposit(ctx context.Context, accountRef string, amount Money, idempotencyToken string) (LegResult, error)
	LookupDeposit(ctx context.Context, idempotencyToken string) (LegResult, bool, error)
}

// TransferExecutor submits and confirms an on-chain transfer.
type TransferExecutor interface {
	Transfer(ctx context.Context, fromAddress, toAddress string, amount Money, idempotencyToken string) (LegResult, error)
	LookupTransfer(ctx context.Context, idempotencyToken string) (LegResult, bool, error)
}
