package chain

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amilz/tap-cash/internal/backend/domain"
	"github.com/amilz/tap-cash/internal/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Transfer(t *testing.T) {
	t.Parallel()

	t.Run("finalized transfer", func(t *testing.T) {
		t.Parallel()

		var received transferRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/transfers", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			_ = json.NewEncoder(w).Encode(transferEnvelope{Data: transfer{Signature: "sig-1", Status: "finalized"}})
		}))
		t.Cleanup(server.Close)

		client := NewClient(server.URL, logging.StdoutLogger)

		result, err := client.Transfer(t.Context(), "SenderUsdcAta111", "RecipientUsdcAta1", domain.Money(2500), "token-1")

		require.NoError(t, err)
		assert.True(t, result.Succeeded)
		assert.Equal(t, "sig-1", result.ExternalRef)
		assert.Equal(t, "token-1", received.ReferenceID)
		assert.Equal(t, "SenderUsdcAta111", received.FromAddress)
		assert.Equal(t, "RecipientUsdcAta1", received.ToAddress)
		assert.Equal(t, int64(2500), received.Amount)
	})

	t.Run("failed transfer is a rejection", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(transferEnvelope{Data: transfer{Signature: "sig-2", Status: "failed"}})
		}))
		t.Cleanup(server.Close)

		client := NewClient(server.URL, logging.StdoutLogger)

		_, err := client.Transfer(t.Context(), "SenderUsdcAta111", "RecipientUsdcAta1", domain.Money(2500), "token-2")

		var chainErr *domain.ChainError
		require.ErrorAs(t, err, &chainErr)
		assert.Equal(t, domain.ErrorKindChainRejected, chainErr.Kind)
		assert.False(t, chainErr.Retryable())
	})

	t.Run("server error maps to a retryable timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		t.Cleanup(server.Close)

		client := NewClient(server.URL, logging.StdoutLogger)

		_, err := client.Transfer(t.Context(), "SenderUsdcAta111", "RecipientUsdcAta1", domain.Money(2500), "token-3")

		var chainErr *domain.ChainError
		require.ErrorAs(t, err, &chainErr)
		assert.Equal(t, domain.ErrorKindChainTimeout, chainErr.Kind)
		assert.True(t, chainErr.Retryable())
	})
}

func TestClient_LookupTransfer(t *testing.T) {
	t.Parallel()

	t.Run("resolves a confirmed transfer", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "token-1", r.URL.Query().Get("referenceId"))
			_ = json.NewEncoder(w).Encode(transferListEnvelope{Data: []transfer{{Signature: "sig-1", Status: "confirmed"}}})
		}))
		t.Cleanup(server.Close)

		client := NewClient(server.URL, logging.StdoutLogger)

		result, found, err := client.LookupTransfer(t.Context(), "token-1")

		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, result.Succeeded)
		assert.Equal(t, "sig-1", result.ExternalRef)
	})

	t.Run("transfer never recorded", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(transferListEnvelope{Data: []transfer{}})
		}))
		t.Cleanup(server.Close)

		client := NewClient(server.URL, logging.StdoutLogger)

		_, found, err := client.LookupTransfer(t.Context(), "token-missing")

		require.NoError(t, err)
		assert.False(t, found)
	})
}
