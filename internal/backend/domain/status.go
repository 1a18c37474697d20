package domain

import "github.com/google/uuid"

type SubStatus string

const (
	SubStatusIdle    SubStatus = "idle"
	SubStatusLoading SubStatus = "loading"
	SubStatusSuccess SubStatus = "success"
	SubStatusError   SubStatus = "error"
)

// Projection is the caller-facing view of a saga: one sub-status per leg.
// Because saga states are monotonic, no sub-status ever regresses from
// success/error back to loading.
type Projection struct {
	SagaID        uuid.UUID
	State         SagaState
	Deposit       SubStatus
	Send          SubStatus
	Amount        Money
	DepositAmount Money
	Reconciling   bool
	ErrorMessage  string
}

func ProjectStatus(saga Saga) Projection {
	p := Projection{
		SagaID:        saga.ID,
		State:         saga.State,
		Deposit:       SubStatusIdle,
		Send:          SubStatusIdle,
		Amount:        saga.TotalAmount,
		DepositAmount: saga.DepositAmount,
	}

	depositDone := SubStatusIdle
	if saga.DepositAmount > 0 {
		depositDone = SubStatusSuccess
	}

	switch saga.State {
	case StatePending, StateDepositSkipped:
	case StateDepositInProgress:
		p.Deposit = SubStatusLoading
	case StateDepositFailed:
		p.Deposit = SubStatusError
		p.ErrorMessage = "deposit to your account failed"
	case StateDepositComplete:
		p.Deposit = SubStatusSuccess
	case StateSendInProgress:
		p.Deposit = depositDone
		p.Send = SubStatusLoading
	case StateComplete:
		p.Deposit = depositDone
		p.Send = SubStatusSuccess
	case StateSendFailed:
		p.Deposit = depositDone
		p.Send = SubStatusError
		p.ErrorMessage = "transfer failed, no funds moved, you may retry safely"
	case StateSendFailedReconcile:
		p.Deposit = depositDone
		p.Send = SubStatusError
		p.Reconciling = true
		p.ErrorMessage = "your funds were deposited, the transfer is being retried"
	}

	return p
}
