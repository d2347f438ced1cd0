package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

func TestPiClient_CreatePayment(t *testing.T) {
	t.Run("201 creates the payment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/payments", r.URL.Path)
			assert.Equal(t, "Key test-key", r.Header.Get("Authorization"))

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, 2.5, payload["amount"])
			assert.Equal(t, "pi_user_1", payload["uid"])

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"identifier": "payment-123",
				"amount":     2.5,
				"memo":       "test",
			})
		}))
		defer server.Close()

		client := NewPiClient(PiClientConfig{BaseURL: server.URL, APIKey: "test-key"})

		payment, err := client.CreatePayment(context.Background(), domain.CreatePaymentParams{
			Amount:   2.5,
			Memo:     "test",
			Metadata: map[string]any{"workflow_id": "wf-1"},
			UserUID:  "pi_user_1",
		})
		require.NoError(t, err)
		assert.Equal(t, "payment-123", payment.Identifier)
		assert.Equal(t, 2.5, payment.Amount)
	})

	t.Run("non-201 fails without transport details", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewPiClient(PiClientConfig{BaseURL: server.URL, APIKey: "bad-key"})

		_, err := client.CreatePayment(context.Background(), domain.CreatePaymentParams{Amount: 1})
		assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	})

	t.Run("unreachable server fails", func(t *testing.T) {
		client := NewPiClient(PiClientConfig{BaseURL: "http://127.0.0.1:1", APIKey: "key"})

		_, err := client.CreatePayment(context.Background(), domain.CreatePaymentParams{Amount: 1})
		assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	})
}

func TestPiClient_CompletePayment(t *testing.T) {
	t.Run("200 completes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/payments/payment-123/complete", r.URL.Path)

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "tx-1", payload["txid"])

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewPiClient(PiClientConfig{BaseURL: server.URL, APIKey: "key"})

		assert.True(t, client.CompletePayment(context.Background(), "payment-123", "tx-1"))
	})

	t.Run("non-200 does not complete", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		client := NewPiClient(PiClientConfig{BaseURL: server.URL, APIKey: "key"})

		assert.False(t, client.CompletePayment(context.Background(), "payment-123", "tx-1"))
	})
}
