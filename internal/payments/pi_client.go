// Package payments implements the Pi Network payment gateway client.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

// PiClient talks to the Pi Network platform API. Failures are logged and
// reported through domain.ErrPaymentFailed; callers never see transport
// details.
type PiClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type PiClientConfig struct {
	BaseURL string
	APIKey  string
}

func NewPiClient(config PiClientConfig) *PiClient {
	return &PiClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		apiKey:  config.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *PiClient) CreatePayment(ctx context.Context, params domain.CreatePaymentParams) (*domain.Payment, error) {
	payload := map[string]any{
		"amount":   params.Amount,
		"memo":     params.Memo,
		"metadata": params.Metadata,
		"uid":      params.UserUID,
	}

	body, status, err := c.post(ctx, "/payments", payload)
	if err != nil {
		log.Error().Err(err).Msg("Payment API error")

		return nil, domain.ErrPaymentFailed
	}

	if status != http.StatusCreated {
		log.Error().
			Int("status", status).
			Str("body", string(body)).
			Msg("Payment creation failed")

		return nil, domain.ErrPaymentFailed
	}

	var payment domain.Payment
	if err := json.Unmarshal(body, &payment); err != nil {
		log.Error().Err(err).Msg("Failed to decode payment response")

		return nil, domain.ErrPaymentFailed
	}

	return &payment, nil
}

func (c *PiClient) CompletePayment(ctx context.Context, paymentID, txid string) bool {
	payload := map[string]any{"txid": txid}

	_, status, err := c.post(ctx, fmt.Sprintf("/payments/%s/complete", paymentID), payload)
	if err != nil {
		log.Error().Err(err).Str("payment_id", paymentID).Msg("Complete payment error")

		return false
	}

	return status == http.StatusOK
}

func (c *PiClient) post(ctx context.Context, path string, payload map[string]any) ([]byte, int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal payload: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}

	request.Header.Set("Authorization", "Key "+c.apiKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, 0, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, response.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, response.StatusCode, nil
}
