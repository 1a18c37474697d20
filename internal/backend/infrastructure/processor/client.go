package processor

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

const defaultRequestTimeout = 15 * time.Second

// Client talks to the payment processor's REST API. Payment creation carries
// an idempotency key, so re-submitting after a timeout never double-charges.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logging.Logger
}

func NewClient(baseURL, apiKey string, logger logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
		logger: logger,
	}
}

type paymentRequest struct {
	IdempotencyKey string        `json:"idempotencyKey"`
	Amount         paymentAmount `json:"amount"`
	Destination    paymentTarget `json:"destination"`
}

type paymentAmount struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type paymentTarget struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type paymentEnvelope struct {
	Data payment `json:"data"`
}

type paymentListEnvelope struct {
	Data []payment `json:"data"`
}

type payment struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (c *Client) Deposit(ctx context.Context, accountRef string, amount domain.Money, idempotencyToken string) (domain.LegResult, error) {
	body := paymentRequest{
		IdempotencyKey: idempotencyToken,
		Amount: paymentAmount{
			Amount:   amount.String(),
			Currency: "USD",
		},
		Destination: paymentTarget{
			Type: "wallet",
			ID:   accountRef,
		},
	}

	var envelope paymentEnvelope
	if err := c.do(ctx, http.MethodPost, "/v1/payments", body, &envelope); err != nil {
		return domain.LegResult{}, err
	}

	return legResultFromPayment(envelope.Data)
}

// LookupDeposit resolves the outcome of a previous attempt by its idempotency
// key. A payment the processor never recorded reports found=false.
func (c *Client) LookupDeposit(ctx context.Context, idempotencyToken string) (domain.LegResult, bool, error) {
	path := "/v1/payments?idempotencyKey=" + url.QueryEscape(idempotencyToken)

	var envelope paymentListEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return domain.LegResult{}, false, err
	}

	if len(envelope.Data) == 0 {
		return domain.LegResult{}, false, nil
	}

	result, err := legResultFromPayment(envelope.Data[0])
	if err != nil {
		return domain.LegResult{}, false, err
	}

	return result, true, nil
}

type cardRequest struct {
	IdempotencyKey string `json:"idempotencyKey"`
	EncryptedData  string `json:"encryptedData"`
	BillingName    string `json:"billingName"`
	ExpMonth       int    `json:"expMonth"`
	ExpYear        int    `json:"expYear"`
}

type cardEnvelope struct {
	Data Card `json:"data"`
}

type Card struct {
	ID       string `json:"id"`
	Network  string `json:"network"`
	Last4    string `json:"last4"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
}

// CreateCard registers a tokenized card with the processor and returns its ID.
func (c *Client) CreateCard(ctx context.Context, idempotencyToken, encryptedData, billingName string, expMonth, expYear int) (string, error) {
	body := cardRequest{
		IdempotencyKey: idempotencyToken,
		EncryptedData:  encryptedData,
		BillingName:    billingName,
		ExpMonth:       expMonth,
		ExpYear:        expYear,
	}

	var envelope cardEnvelope
	if err := c.do(ctx, http.MethodPost, "/v1/cards", body, &envelope); err != nil {
		return "", err
	}

	return envelope.Data.ID, nil
}

func (c *Client) GetCard(ctx context.Context, cardID string) (Card, error) {
	var envelope cardEnvelope
	if err := c.do(ctx, http.MethodGet, "/v1/cards/"+url.PathEscape(cardID), nil, &envelope); err != nil {
		return Card{}, err
	}

	return envelope.Data, nil
}

type channelListEnvelope struct {
	Data []Channel `json:"data"`
}

type Channel struct {
	ID              string `json:"id"`
	CardDescriptor  string `json:"cardDescriptor"`
	AchDescriptor   string `json:"achDescriptor"`
	SettlementCycle string `json:"settlementCycle"`
}

// ListChannels returns the settlement channels configured for the account.
func (c *Client) ListChannels(ctx context.Context) ([]Channel, error) {
	var envelope channelListEnvelope
	if err := c.do(ctx, http.MethodGet, "/v1/channels", nil, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode processor request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build processor request: %w", err)
	}

	request.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Warn("processor unreachable", "method", method, "path", path, "error", err.Error())
		return &domain.GatewayError{Kind: domain.ErrorKindGatewayTimeout, Msg: fmt.Sprintf("processor request failed: %v", err)}
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode >= http.StatusInternalServerError {
		c.logger.Warn("processor error response", "method", method, "path", path, "status", response.StatusCode)
		return &domain.GatewayError{Kind: domain.ErrorKindGatewayTimeout, Msg: fmt.Sprintf("processor responded with status %d", response.StatusCode)}
	}

	if response.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("processor rejected request", "method", method, "path", path, "status", response.StatusCode)
		return &domain.GatewayError{Kind: domain.ErrorKindGatewayRejected, Msg: fmt.Sprintf("processor rejected the request with status %d", response.StatusCode)}
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode processor response: %w", err)
	}

	return nil
}

func legResultFromPayment(p payment) (domain.LegResult, error) {
	switch p.Status {
	case "confirmed", "paid":
		return domain.LegResult{
			ExternalRef: p.ID,
			Succeeded:   true,
			CompletedAt: time.Now().UTC(),
		}, nil
	case "failed":
		return domain.LegResult{}, &domain.GatewayError{Kind: domain.ErrorKindGatewayRejected, Msg: fmt.Sprintf("payment %s failed", p.ID)}
	default:
		return domain.LegResult{}, &domain.GatewayError{Kind: domain.ErrorKindGatewayTimeout, Msg: fmt.Sprintf("payment %s still %s", p.ID, p.Status)}
	}
}
