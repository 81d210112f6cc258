package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// GatewayClient sends messages through a JSON-over-HTTP SMS provider.
type GatewayClient struct {
	httpClient *http.Client
	config     Config
}

// NewGatewayClient creates a gateway-backed SMS sender.
func NewGatewayClient(cfg Config) (*GatewayClient, error) {
	if cfg.GatewayURL == "" {
		return nil, fmt.Errorf("%w: GatewayURL is required", ErrInvalidConfig)
	}
	if _, err := url.ParseRequestURI(cfg.GatewayURL); err != nil {
		return nil, fmt.Errorf("%w: GatewayURL must be a valid URL", ErrInvalidConfig)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: APIKey is required", ErrInvalidConfig)
	}
	if cfg.SenderID == "" {
		return nil, fmt.Errorf("%w: SenderID is required", ErrInvalidConfig)
	}

	return &GatewayClient{
		httpClient: &http.Client{Timeout: cfg.SendTimeout},
		config:     cfg,
	}, nil
}

type gatewayRequest struct {
	Sender  string `json:"sender"`
	To      string `json:"to"`
	Message string `json:"message"`
}

type gatewayResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SendSMS implements SMSSender against the provider's JSON API.
// Non-2xx responses and provider-level error statuses are both treated
// as transient send failures.
func (c *GatewayClient) SendSMS(ctx context.Context, params SendSMSParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(gatewayRequest{
		Sender:  c.config.SenderID,
		To:      params.To,
		Message: params.Message,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendSMS, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.GatewayURL, bytes.NewReader(payload))
	if err != nil {
		return errors.Join(ErrFailedToSendSMS, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrFailedToSendSMS, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errors.Join(
			ErrFailedToSendSMS,
			fmt.Errorf("gateway returned %d: %s", resp.StatusCode, string(body)),
		)
	}

	var gwResp gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&gwResp); err != nil {
		return errors.Join(ErrFailedToSendSMS, err)
	}
	if gwResp.Status != "" && gwResp.Status != "ok" && gwResp.Status != "queued" {
		return errors.Join(
			ErrFailedToSendSMS,
			fmt.Errorf("gateway error: %s - %s", gwResp.Status, gwResp.Message),
		)
	}
	return nil
}
