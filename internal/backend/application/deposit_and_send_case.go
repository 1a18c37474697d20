package application

import (
	"context"
	"errors"
	"time"

	"github.com/amilz/tap-cash/internal/backend/domain"
	"github.com/amilz/tap-cash/internal/pkg/logging"
	"github.com/amilz/tap-cash/internal/pkg/retry"
	"github.com/google/uuid"
)

// DepositAndSendCase orchestrates the two-leg deposit-and-send saga. Legs run
// strictly in sequence, every state transition is a compare-and-swap on the
// saga store, and no lock is held across calls to the external systems, so
// correctness survives process restarts and concurrent orchestrators.
type DepositAndSendCase struct {
	sagaStore   domain.SagaStore
	directory   domain.AccountDirectory
	refresher   domain.BalanceRefresher
	gateway     domain.PaymentProcessorGateway
	executor    domain.TransferExecutor
	retryPolicy retry.Policy
	maxAmount   domain.Money
	logger      logging.Logger
}

func NewDepositAndSendCase(
	sagaStore domain.SagaStore,
	directory domain.AccountDirectory,
	refresher domain.BalanceRefresher,
	gateway domain.PaymentProcessorGateway,
	executor domain.TransferExecutor,
	retryPolicy retry.Policy,
	maxAmount domain.Money,
	logger logging.Logger,
) *DepositAndSendCase {
	return &DepositAndSendCase{
		sagaStore:   sagaStore,
		directory:   directory,
		refresher:   refresher,
		gateway:     gateway,
		executor:    executor,
		retryPolicy: retryPolicy,
		maxAmount:   maxAmount,
		logger:      logger,
	}
}

// Submit validates the request and persists a new saga, or returns the
// existing saga when the idempotency key has been seen before. It never
// starts a leg: callers advance the saga separately, so Submit returns
// immediately.
func (c *DepositAndSendCase) Submit(ctx context.Context, req domain.SendRequest) (domain.Saga, bool, error) {
	if err := req.Validate(c.maxAmount); err != nil {
		return domain.Saga{}, false, err
	}

	existing, err := c.sagaStore.GetByIdempotencyKey(ctx, req.IdempotencyKey)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, &domain.SagaNotFoundError{}) {
		return domain.Saga{}, false, err
	}

	sender, err := c.directory.Lookup(ctx, req.SenderEmail)
	if err != nil {
		return domain.Saga{}, false, err
	}

	// recipient must resolve before any saga exists
	if _, err := c.directory.Lookup(ctx, req.RecipientEmail); err != nil {
		return domain.Saga{}, false, err
	}

	// the shortfall is computed here, never by the caller; a stale cached
	// balance at worst causes an unnecessary deposit, never a wrong send
	depositAmount := req.Amount - sender.CachedBalance
	if depositAmount < 0 {
		depositAmount = 0
	}

	saga, created, err := c.sagaStore.CreateIfAbsent(ctx, domain.NewSaga(req, depositAmount))
	if err != nil {
		return domain.Saga{}, false, err
	}

	if created {
		c.logger.Info("saga created",
			"sagaId", saga.ID.String(),
			"totalAmount", saga.TotalAmount.String(),
			"depositAmount", saga.DepositAmount.String(),
		)
	}

	return saga, created, nil
}

// Advance drives the saga until it reaches a terminal state. Safe to call for
// a saga another orchestrator is working on: a lost compare-and-swap re-reads
// and follows whatever transition won.
func (c *DepositAndSendCase) Advance(ctx context.Context, sagaID uuid.UUID) error {
	saga, err := c.sagaStore.GetByID(ctx, sagaID)
	if err != nil {
		return err
	}

	for !saga.State.Terminal() {
		saga, err = c.step(ctx, saga)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *DepositAndSendCase) step(ctx context.Context, saga domain.Saga) (domain.Saga, error) {
	switch saga.State {
	case domain.StatePending:
		next := domain.StateDepositInProgress
		if saga.DepositAmount == 0 {
			next = domain.StateDepositSkipped
		}
		return c.transition(ctx, saga, next, nil)
	case domain.StateDepositSkipped, domain.StateDepositComplete:
		return c.transition(ctx, saga, domain.StateSendInProgress, nil)
	case domain.StateDepositInProgress:
		return c.runDepositLeg(ctx, saga)
	case domain.StateSendInProgress:
		return c.runSendLeg(ctx, saga)
	default:
		return saga, nil
	}
}

func (c *DepositAndSendCase) runDepositLeg(ctx context.Context, saga domain.Saga) (domain.Saga, error) {
	result, err := c.executeDeposit(ctx, saga)
	if err != nil {
		failure := domain.LegResult{
			Succeeded:   false,
			ErrorKind:   gatewayErrorKind(err),
			CompletedAt: time.Now().UTC(),
		}
		c.logger.Warn("deposit leg failed", "sagaId", saga.ID.String(), "error", err.Error())
		return c.transition(ctx, saga, domain.StateDepositFailed, &failure)
	}

	return c.transition(ctx, saga, domain.StateDepositComplete, &result)
}

// executeDeposit calls the processor with bounded retries, always with the
// saga id as the idempotency token so a retried attempt can never
// double-charge. An exhausted timeout is an unknown outcome: the processor's
// own record is consulted before the leg is classified as failed.
func (c *DepositAndSendCase) executeDeposit(ctx context.Context, saga domain.Saga) (domain.LegResult, error) {
	token := saga.ID.String()

	var result domain.LegResult
	err := retry.Do(ctx, c.retryPolicy, func(ctx context.Context) (bool, error) {
		var depositErr error
		result, depositErr = c.gateway.Deposit(ctx, saga.SenderEmail, saga.DepositAmount, token)
		if depositErr == nil {
			return false, nil
		}

		var gwErr *domain.GatewayError
		if errors.As(depositErr, &gwErr) {
			return gwErr.Retryable(), depositErr
		}

		return true, depositErr
	})
	if err == nil {
		return result, nil
	}

	var gwErr *domain.GatewayError
	if errors.As(err, &gwErr) && !gwErr.Retryable() {
		return domain.LegResult{}, err
	}

	looked, found, lookupErr := c.gateway.LookupDeposit(ctx, token)
	if lookupErr == nil && found && looked.Succeeded {
		c.logger.Info("deposit resolved out-of-band", "sagaId", saga.ID.String(), "externalRef", looked.ExternalRef)
		return looked, nil
	}

	return domain.LegResult{}, err
}

func (c *DepositAndSendCase) runSendLeg(ctx context.Context, saga domain.Saga) (domain.Saga, error) {
	sender, err := c.directory.Lookup(ctx, saga.SenderEmail)
	if err != nil {
		return saga, err
	}

	recipient, err := c.directory.Lookup(ctx, saga.RecipientEmail)
	if err != nil {
		return saga, err
	}

	result, err := c.executeTransfer(ctx, saga, sender.OnChainAddress, recipient.OnChainAddress)
	if err != nil {
		// a failure after the deposit committed must never look like a
		// clean failure: the member's custodial balance already changed
		next := domain.StateSendFailed
		if saga.DepositCommitted() {
			next = domain.StateSendFailedReconcile
		}

		failure := domain.LegResult{
			Succeeded:   false,
			ErrorKind:   chainErrorKind(err),
			CompletedAt: time.Now().UTC(),
		}
		c.logger.Warn("send leg failed", "sagaId", saga.ID.String(), "next", string(next), "error", err.Error())
		return c.transition(ctx, saga, next, &failure)
	}

	updated, err := c.transition(ctx, saga, domain.StateComplete, &result)
	if err == nil && updated.State == domain.StateComplete {
		c.refreshSenderBalance(ctx, updated, sender)
	}

	return updated, err
}

// refreshSenderBalance recomputes the sender's cached balance after a
// completed saga. The cache is advisory, so a failed refresh is only logged.
func (c *DepositAndSendCase) refreshSenderBalance(ctx context.Context, saga domain.Saga, sender domain.Member) {
	balance := sender.CachedBalance + saga.DepositAmount - saga.TotalAmount
	if balance < 0 {
		balance = 0
	}

	if err := c.refresher.UpdateCachedBalance(ctx, saga.SenderEmail, balance); err != nil {
		c.logger.Warn("failed to refresh cached balance", "email", saga.SenderEmail, "error", err.Error())
	}
}

// executeTransfer always moves the saga's total amount, not the deposit
// shortfall.
func (c *DepositAndSendCase) executeTransfer(ctx context.Context, saga domain.Saga, fromAddress, toAddress string) (domain.LegResult, error) {
	token := saga.ID.String()

	var result domain.LegResult
	err := retry.Do(ctx, c.retryPolicy, func(ctx context.Context) (bool, error) {
		var transferErr error
		result, transferErr = c.executor.Transfer(ctx, fromAddress, toAddress, saga.TotalAmount, token)
		if transferErr == nil {
			return false, nil
		}

		var chainErr *domain.ChainError
		if errors.As(transferErr, &chainErr) {
			return chainErr.Retryable(), transferErr
		}

		return true, transferErr
	})
	if err == nil {
		return result, nil
	}

	var chainErr *domain.ChainError
	if errors.As(err, &chainErr) && !chainErr.Retryable() {
		return domain.LegResult{}, err
	}

	looked, found, lookupErr := c.executor.LookupTransfer(ctx, token)
	if lookupErr == nil && found && looked.Succeeded {
		c.logger.Info("transfer resolved out-of-band", "sagaId", saga.ID.String(), "externalRef", looked.ExternalRef)
		return looked, nil
	}

	return domain.LegResult{}, err
}

func (c *DepositAndSendCase) transition(ctx context.Context, saga domain.Saga, next domain.SagaState, legResult *domain.LegResult) (domain.Saga, error) {
	ok, err := c.sagaStore.UpdateState(ctx, saga.ID, saga.State, next, legResult)
	if err != nil {
		return saga, err
	}

	if !ok {
		// a concurrent orchestrator or a duplicate leg callback got there
		// first; follow whatever the store says now
		c.logger.Warn("saga transition lost, re-reading", "sagaId", saga.ID.String(), "expected", string(saga.State))
		return c.sagaStore.GetByID(ctx, saga.ID)
	}

	saga.State = next
	if legResult != nil {
		if leg, hasLeg := domain.LegForState(next); hasLeg {
			if leg == domain.LegDeposit {
				saga.DepositResult = legResult
			} else {
				saga.SendResult = legResult
			}
		}
	}

	return saga, nil
}

func gatewayErrorKind(err error) domain.ErrorKind {
	var gwErr *domain.GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Kind
	}

	return domain.ErrorKindGatewayTimeout
}

func chainErrorKind(err error) domain.ErrorKind {
	var chainErr *domain.ChainError
	if errors.As(err, &chainErr) {
		return chainErr.Kind
	}

	return domain.ErrorKindChainTimeout
}
