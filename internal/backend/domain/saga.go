package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SagaState string

const (
	StatePending             SagaState = "PENDING"
	StateDepositSkipped      SagaState = "DEPOSIT_SKIPPED"
	StateDepositInProgress   SagaState = "DEPOSIT_IN_PROGRESS"
	StateDepositFailed       SagaState = "DEPOSIT_FAILED"
	StateDepositComplete     SagaState = "DEPOSIT_COMPLETE"
	StateSendInProgress      SagaState = "SEND_IN_PROGRESS"
	StateSendFailedReconcile SagaState = "SEND_FAILED_RECONCILE"
	StateSendFailed          SagaState = "SEND_FAILED"
	StateComplete            SagaState = "COMPLETE"
)

// nextStates encodes the legal transitions. SEND_FAILED_RECONCILE is the one
// re-enterable terminal: the reconciler may move it back to SEND_IN_PROGRESS.
var nextStates = map[SagaState][]SagaState{
	StatePending:             {StateDepositSkipped, StateDepositInProgress},
	StateDepositInProgress:   {StateDepositFailed, StateDepositComplete},
	StateDepositSkipped:      {StateSendInProgress},
	StateDepositComplete:     {StateSendInProgress},
	StateSendInProgress:      {StateSendFailedReconcile, StateSendFailed, StateComplete},
	StateSendFailedReconcile: {StateSendInProgress},
}

func (s SagaState) CanTransitionTo(next SagaState) bool {
	for _, allowed := range nextStates[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Terminal reports whether the state ends the saga from the caller's point of
// view. SEND_FAILED_RECONCILE is terminal for callers even though the
// reconciler can re-enter it.
func (s SagaState) Terminal() bool {
	switch s {
	case StateDepositFailed, StateSendFailed, StateSendFailedReconcile, StateComplete:
		return true
	default:
		return false
	}
}

// StrandedStates lists the states a crashed process can abandon a saga in.
// Sagas in these states carry no retry schedule of their own, so a recovery
// sweep has to pick them up. SEND_FAILED_RECONCILE is excluded: the
// reconciler owns its cadence.
func StrandedStates() []SagaState {
	return []SagaState{
		StatePending,
		StateDepositInProgress,
		StateDepositSkipped,
		StateDepositComplete,
		StateSendInProgress,
	}
}

type ErrorKind string

const (
	ErrorKindGatewayRejected ErrorKind = "GATEWAY_REJECTED"
	ErrorKindGatewayTimeout  ErrorKind = "GATEWAY_TIMEOUT"
	ErrorKindChainRejected   ErrorKind = "CHAIN_REJECTED"
	ErrorKindChainTimeout    ErrorKind = "CHAIN_TIMEOUT"
)

// LegResult records the outcome of one leg. Immutable once written.
type LegResult struct {
	ExternalRef string    `json:"externalRef"`
	Succeeded   bool      `json:"succeeded"`
	ErrorKind   ErrorKind `json:"errorKind,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

type Leg string

const (
	LegDeposit Leg = "deposit"
	LegSend    Leg = "send"
)

// LegForState maps a leg-resolving state to the leg whose result it records.
func LegForState(s SagaState) (Leg, bool) {
	switch s {
	case StateDepositComplete, StateDepositFailed:
		return LegDeposit, true
	case StateComplete, StateSendFailed, StateSendFailedReconcile:
		return LegSend, true
	default:
		return "", false
	}
}

type SendRequest struct {
	SenderEmail    string
	RecipientEmail string
	Amount         Money
	IdempotencyKey string
}

func (r SendRequest) Validate(maxAmount Money) error {
	if r.SenderEmail == "" || r.RecipientEmail == "" {
		return &InvalidArgumentsError{Msg: "sender and recipient are required"}
	}

	if r.SenderEmail == r.RecipientEmail {
		return &InvalidArgumentsError{Msg: "sender must differ from recipient"}
	}

	if r.Amount <= 0 {
		return &InvalidArgumentsError{Msg: "amount must be positive"}
	}

	if r.Amount > maxAmount {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("amount %s exceeds the maximum of %s", r.Amount, maxAmount)}
	}

	if r.IdempotencyKey == "" {
		return &InvalidArgumentsError{Msg: "idempotency key is required"}
	}

	return nil
}

// Saga is the durable record of one deposit-and-send attempt. It is owned and
// mutated exclusively by the orchestrator, never deleted, and reaches exactly
// one terminal state.
type Saga struct {
	ID                uuid.UUID
	IdempotencyKey    string
	SenderEmail       string
	RecipientEmail    string
	TotalAmount       Money
	DepositAmount     Money
	State             SagaState
	DepositResult     *LegResult
	SendResult        *LegResult
	ReconcileAttempts int
	NextRetryAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewSaga(req SendRequest, depositAmount Money) Saga {
	return Saga{
		ID:             uuid.New(),
		IdempotencyKey: req.IdempotencyKey,
		SenderEmail:    req.SenderEmail,
		RecipientEmail: req.RecipientEmail,
		TotalAmount:    req.Amount,
		DepositAmount:  depositAmount,
		State:          StatePending,
	}
}

// DepositCommitted reports whether the deposit leg moved money in this saga.
// It decides SEND_FAILED_RECONCILE vs SEND_FAILED: a send failure after a
// committed deposit must never be reported as a clean failure.
func (s Saga) DepositCommitted() bool {
	return s.DepositResult != nil && s.DepositResult.Succeeded
}
