package push

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

// GatewayClient relays notifications to an HTTP push gateway.
type GatewayClient struct {
	httpClient *http.Client
	config     Config
}

// NewGatewayClient creates a gateway-backed push sender.
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

	return &GatewayClient{
		httpClient: &http.Client{Timeout: cfg.SendTimeout},
		config:     cfg,
	}, nil
}

// SendPush implements PushSender against the gateway's JSON API.
func (c *GatewayClient) SendPush(ctx context.Context, params SendPushParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(params)
	if err != nil {
		return errors.Join(ErrFailedToSendPush, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.GatewayURL, bytes.NewReader(payload))
	if err != nil {
		return errors.Join(ErrFailedToSendPush, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrFailedToSendPush, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errors.Join(
			ErrFailedToSendPush,
			fmt.Errorf("gateway returned %d: %s", resp.StatusCode, string(body)),
		)
	}
	return nil
}
