package aping

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Production JSON-RPC endpoints of the exchange
const (
	BettingURL = "https://api.betfair.com/exchange/betting/json-rpc/v1"
	AccountURL = "https://api.betfair.com/exchange/account/json-rpc/v1"
)

// Method prefixes per API family
const (
	sportsPrefix  = "SportsAPING/v1.0/"
	accountPrefix = "AccountAPING/v1.0/"
)

// ClientConfig holds the configuration for the exchange client
type ClientConfig struct {
	// BettingURL and AccountURL default to the production endpoints
	BettingURL string
	AccountURL string

	// AppKey and SessionToken are produced by a separate login step
	AppKey       string
	SessionToken string

	// Locale, when set, is sent with the listing operations
	Locale string

	Timeout time.Duration

	// InsecureSkipVerify disables TLS certificate verification on the
	// client's own transport. It has no effect on the request body.
	InsecureSkipVerify bool
}

// DefaultConfig returns a default client configuration
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BettingURL: BettingURL,
		AccountURL: AccountURL,
		Timeout:    30 * time.Second,
	}
}

// Client is a Betfair Exchange API client
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new exchange client
func NewClient(config *ClientConfig) *Client {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.BettingURL == "" {
		config.BettingURL = BettingURL
	}
	if config.AccountURL == "" {
		config.AccountURL = AccountURL
	}

	client := &http.Client{Timeout: config.Timeout}
	if config.InsecureSkipVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		config:     config,
		httpClient: client,
	}
}

// NewClientWithHTTPClient creates a new exchange client with a custom HTTP
// client. The config's Timeout and InsecureSkipVerify are ignored in favor
// of whatever the supplied client is set up with.
func NewClientWithHTTPClient(config *ClientConfig, httpClient *http.Client) *Client {
	if config.BettingURL == "" {
		config.BettingURL = BettingURL
	}
	if config.AccountURL == "" {
		config.AccountURL = AccountURL
	}
	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

// doRequest performs one JSON-RPC POST and decodes the response envelope
// into result. Remote API errors live inside the envelope; only transport
// and decoding failures are returned from here.
func (c *Client) doRequest(ctx context.Context, url, method string, params, result interface{}) error {
	bodyBytes, err := json.Marshal(&rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      "1",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Application", c.config.AppKey)
	req.Header.Set("X-Authentication", c.config.SessionToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// betting calls an operation of the Sports API family
func (c *Client) betting(ctx context.Context, operation string, params, result interface{}) error {
	return c.doRequest(ctx, c.config.BettingURL, sportsPrefix+operation, params, result)
}

// account calls an operation of the Account API family
func (c *Client) account(ctx context.Context, operation string, params, result interface{}) error {
	return c.doRequest(ctx, c.config.AccountURL, accountPrefix+operation, params, result)
}
