package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/amilz/tap-cash/internal/backend/domain"
	"github.com/amilz/tap-cash/internal/pkg/logging"
)

const defaultRequestTimeout = 30 * time.Second

// Client submits transfers to the on-chain signing service. Each submission
// carries a reference ID the service deduplicates on, so a resubmitted
// transfer is returned instead of executed twice.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

func NewClient(baseURL string, logger logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
		logger: logger,
	}
}

type transferRequest struct {
	ReferenceID string `json:"referenceId"`
	FromAddress string `json:"fromAddress"`
	ToAddress   string `json:"toAddress"`
	Amount      int64  `json:"amount"`
}

type transferEnvelope struct {
	Data transfer `json:"data"`
}

type transferListEnvelope struct {
	Data []transfer `json:"data"`
}

type transfer struct {
	Signature string `json:"signature"`
	Status    string `json:"status"`
}

func (c *Client) Transfer(ctx context.Context, fromAddress, toAddress string, amount domain.Money, idempotencyToken string) (domain.LegResult, error) {
	body := transferRequest{
		ReferenceID: idempotencyToken,
		FromAddress: fromAddress,
		ToAddress:   toAddress,
		Amount:      int64(amount),
	}

	var envelope transferEnvelope
	if err := c.do(ctx, http.MethodPost, "/v1/transfers", body, &envelope); err != nil {
		return domain.LegResult{}, err
	}

	return legResultFromTransfer(envelope.Data)
}

// LookupTransfer resolves a timed-out submission by its reference ID. A
// transfer the service never saw reports found=false.
func (c *Client) LookupTransfer(ctx context.Context, idempotencyToken string) (domain.LegResult, bool, error) {
	path := "/v1/transfers?referenceId=" + url.QueryEscape(idempotencyToken)

	var envelope transferListEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return domain.LegResult{}, false, err
	}

	if len(envelope.Data) == 0 {
		return domain.LegResult{}, false, nil
	}

	result, err := legResultFromTransfer(envelope.Data[0])
	if err != nil {
		return domain.LegResult{}, false, err
	}

	return result, true, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode transfer request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build transfer request: %w", err)
	}

	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Warn("transfer service unreachable", "method", method, "path", path, "error", err.Error())
		return &domain.ChainError{Kind: domain.ErrorKindChainTimeout, Msg: fmt.Sprintf("transfer request failed: %v", err)}
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode >= http.StatusInternalServerError {
		c.logger.Warn("transfer service error response", "method", method, "path", path, "status", response.StatusCode)
		return &domain.ChainError{Kind: domain.ErrorKindChainTimeout, Msg: fmt.Sprintf("transfer service responded with status %d", response.StatusCode)}
	}

	if response.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("transfer service rejected request", "method", method, "path", path, "status", response.StatusCode)
		return &domain.ChainError{Kind: domain.ErrorKindChainRejected, Msg: fmt.Sprintf("transfer service rejected the request with status %d", response.StatusCode)}
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode transfer response: %w", err)
	}

	return nil
}

func legResultFromTransfer(t transfer) (domain.LegResult, error) {
	switch t.Status {
	case "finalized", "confirmed":
		return domain.LegResult{
			ExternalRef: t.Signature,
			Succeeded:   true,
			CompletedAt: time.Now().UTC(),
		}, nil
	case "failed":
		return domain.LegResult{}, &domain.ChainError{Kind: domain.ErrorKindChainRejected, Msg: fmt.Sprintf("transfer %s failed", t.Signature)}
	default:
		return domain.LegResult{}, &domain.ChainError{Kind: domain.ErrorKindChainTimeout, Msg: fmt.Sprintf("transfer %s still %s", t.Signature, t.Status)}
	}
}
