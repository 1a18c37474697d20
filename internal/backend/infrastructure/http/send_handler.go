package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/amilz/tap-cash/internal/backend/domain"
	"github.com/amilz/tap-cash/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SagaIdKey = "sagaId"

// SendOrchestrator accepts a send request and drives the resulting saga.
type SendOrchestrator interface {
	Submit(ctx context.Context, req domain.SendRequest) (domain.Saga, bool, error)
	Advance(ctx context.Context, sagaID uuid.UUID) error
}

type StatusProvider interface {
	GetStatus(ctx context.Context, sagaID uuid.UUID) (domain.Projection, error)
}

type sendRequestBody struct {
	SenderEmail    string `json:"senderEmail" binding:"required"`
	RecipientEmail string `json:"recipientEmail" binding:"required"`
	Amount         string `json:"amount" binding:"required"`
	IdempotencyKey string `json:"idempotencyKey" binding:"required"`
}

type statusResponse struct {
	SagaID        string `json:"sagaId"`
	State         string `json:"state"`
	Deposit       string `json:"deposit"`
	Send          string `json:"send"`
	Amount        string `json:"amount"`
	DepositAmount string `json:"depositAmount"`
	Reconciling   bool   `json:"reconciling"`
	Error         string `json:"error,omitempty"`
}

type SendHandler struct {
	orchestrator SendOrchestrator
	status       StatusProvider
	logger       logging.Logger
}

func NewSendHandler(orchestrator SendOrchestrator, status StatusProvider, logger logging.Logger) *SendHandler {
	return &SendHandler{
		orchestrator: orchestrator,
		status:       status,
		logger:       logger,
	}
}

// Send accepts the request, persists the saga and returns 202 immediately;
// both legs run in the background. Re-submitting the same idempotency key
// returns the already-running saga instead of starting a second one.
func (h *SendHandler) Send(c *gin.Context) {
	var body sendRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	amount, err := domain.ParseMoney(body.Amount)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	saga, created, err := h.orchestrator.Submit(c.Request.Context(), domain.SendRequest{
		SenderEmail:    body.SenderEmail,
		RecipientEmail: body.RecipientEmail,
		Amount:         amount,
		IdempotencyKey: body.IdempotencyKey,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	if created {
		advanceCtx := context.WithoutCancel(c.Request.Context())
		go func() {
			if err := h.orchestrator.Advance(advanceCtx, saga.ID); err != nil {
				h.logger.Error("failed to advance saga", "sagaId", saga.ID.String(), "error", err.Error())
			}
		}()
	}

	c.JSON(http.StatusAccepted, gin.H{"sagaId": saga.ID.String(), "state": string(saga.State)})
}

func (h *SendHandler) GetStatus(c *gin.Context) {
	sagaID, err := uuid.Parse(c.Param(SagaIdKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid saga id"})
		return
	}

	projection, err := h.status.GetStatus(c.Request.Context(), sagaID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{
		SagaID:        projection.SagaID.String(),
		State:         string(projection.State),
		Deposit:       string(projection.Deposit),
		Send:          string(projection.Send),
		Amount:        projection.Amount.String(),
		DepositAmount: projection.DepositAmount.String(),
		Reconciling:   projection.Reconciling,
		Error:         projection.ErrorMessage,
	})
}

func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.MemberNotFoundError{}), errors.Is(err, &domain.SagaNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
