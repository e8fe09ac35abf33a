package aping

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

const (
	testAppKey = "test-app-key"
	testToken  = "test-session-token"
)

// mockServer creates a test exchange that validates the JSON-RPC envelope
// and credential headers, then returns the given response body.
func mockServer(t *testing.T, expectedMethod string, validateBody func(t *testing.T, body []byte), response string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Validate method
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Validate headers
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Expected Accept application/json, got %s", got)
		}
		if got := r.Header.Get("X-Application"); got != testAppKey {
			t.Errorf("Expected X-Application %s, got %s", testAppKey, got)
		}
		if got := r.Header.Get("X-Authentication"); got != testToken {
			t.Errorf("Expected X-Authentication %s, got %s", testToken, got)
		}

		// Read body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("Failed to read body: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		// Validate envelope
		var envelope struct {
			JSONRPC string          `json:"jsonrpc"`
			Method  string          `json:"method"`
			ID      json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			t.Errorf("Failed to parse envelope: %v", err)
		}
		if envelope.JSONRPC != "2.0" {
			t.Errorf("Expected jsonrpc '2.0', got '%s'", envelope.JSONRPC)
		}
		if envelope.Method != expectedMethod {
			t.Errorf("Expected method '%s', got '%s'", expectedMethod, envelope.Method)
		}
		if string(envelope.ID) != `"1"` {
			t.Errorf(`Expected id "1", got %s`, envelope.ID)
		}

		// Validate body content if provided
		if validateBody != nil {
			validateBody(t, body)
		}

		// Return response
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(response))
	}))
}

// requestParams extracts the params object of the request envelope
func requestParams(t *testing.T, body []byte) map[string]json.RawMessage {
	var envelope struct {
		Params map[string]json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Errorf("Failed to parse params: %v", err)
	}
	return envelope.Params
}

// newTestClient creates a client configured for testing
func newTestClient(baseURL string) *Client {
	return NewClient(&ClientConfig{
		BettingURL:   baseURL,
		AccountURL:   baseURL,
		AppKey:       testAppKey,
		SessionToken: testToken,
		Timeout:      5 * time.Second,
	})
}

func TestEnvelopeAndHeaders(t *testing.T) {
	server := mockServer(t, "SportsAPING/v1.0/listCompetitions", nil,
		`{"jsonrpc":"2.0","result":[],"id":"1"}`)
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.ListCompetitions(context.Background(), MarketFilter{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestRemoteError(t *testing.T) {
	server := mockServer(t, "SportsAPING/v1.0/listCompetitions", nil,
		`{"jsonrpc":"2.0","error":{"code":-32099,"message":"ANGX-0003","data":{"APINGException":{"errorCode":"INVALID_SESSION_INFORMATION","errorDetails":"","requestUUID":"prdang001-123"}}},"id":"1"}`)
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ListCompetitions(context.Background(), MarketFilter{})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) {
		t.Fatalf("Expected *RPCError, got %T", err)
	}
	if rpcErr.Code != -32099 {
		t.Errorf("Expected code -32099, got %d", rpcErr.Code)
	}
	if rpcErr.Error() != ErrInvalidSessionInformation {
		t.Errorf("Expected error code '%s', got '%s'", ErrInvalidSessionInformation, rpcErr.Error())
	}
	if rpcErr.Exception().RequestUUID != "prdang001-123" {
		t.Errorf("Expected requestUUID 'prdang001-123', got '%s'", rpcErr.Exception().RequestUUID)
	}
}

func TestRemoteErrorWithoutException(t *testing.T) {
	server := mockServer(t, "SportsAPING/v1.0/listCompetitions", nil,
		`{"jsonrpc":"2.0","error":{"code":-32700,"message":"Parse error"},"id":"1"}`)
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ListCompetitions(context.Background(), MarketFilter{})

	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) {
		t.Fatalf("Expected *RPCError, got %T", err)
	}
	if rpcErr.Exception() != nil {
		t.Error("Expected no exception payload")
	}
	if rpcErr.Error() != "Parse error" {
		t.Errorf("Expected message fallback, got '%s'", rpcErr.Error())
	}
}

func TestNetworkError(t *testing.T) {
	// Use invalid URL to simulate network error
	client := NewClient(&ClientConfig{
		BettingURL:   "http://localhost:99999",
		AccountURL:   "http://localhost:99999",
		AppKey:       testAppKey,
		SessionToken: testToken,
		Timeout:      1 * time.Second,
	})

	_, err := client.ListCompetitions(context.Background(), MarketFilter{})
	if err == nil {
		t.Fatal("Expected error for network failure, got nil")
	}
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		t.Fatal("Transport failure must not surface as an API error")
	}
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Second) // Delay response
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.ListCompetitions(ctx, MarketFilter{})
	if err == nil {
		t.Fatal("Expected context deadline error, got nil")
	}
}

func TestInsecureSkipVerify(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","result":[],"id":"1"}`))
	}))
	defer server.Close()

	// Verification on: the self-signed test certificate must be rejected
	strict := NewClient(&ClientConfig{
		BettingURL:   server.URL,
		AppKey:       testAppKey,
		SessionToken: testToken,
		Timeout:      5 * time.Second,
	})
	if _, err := strict.ListCompetitions(context.Background(), MarketFilter{}); err == nil {
		t.Fatal("Expected certificate error, got nil")
	}

	// Verification off: the same call succeeds
	insecure := NewClient(&ClientConfig{
		BettingURL:         server.URL,
		AppKey:             testAppKey,
		SessionToken:       testToken,
		Timeout:            5 * time.Second,
		InsecureSkipVerify: true,
	})
	if _, err := insecure.ListCompetitions(context.Background(), MarketFilter{}); err != nil {
		t.Fatalf("Unexpected error with verification disabled: %v", err)
	}
}

func TestVerificationFlagDoesNotChangeBody(t *testing.T) {
	var mu sync.Mutex
	var bodies [][]byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, body)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","result":[],"id":"1"}`))
	}))
	defer server.Close()

	filter := MarketFilter{EventTypeIDs: []string{"1"}}
	for _, insecure := range []bool{false, true} {
		client := NewClient(&ClientConfig{
			BettingURL:         server.URL,
			AppKey:             testAppKey,
			SessionToken:       testToken,
			Timeout:            5 * time.Second,
			InsecureSkipVerify: insecure,
		})
		if _, err := client.ListCompetitions(context.Background(), filter); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if len(bodies) != 2 {
		t.Fatalf("Expected 2 requests, got %d", len(bodies))
	}
	if string(bodies[0]) != string(bodies[1]) {
		t.Errorf("Request body changed with the verification flag:\n%s\n%s", bodies[0], bodies[1])
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(&ClientConfig{AppKey: testAppKey, SessionToken: testToken})

	if client.config.BettingURL != BettingURL {
		t.Errorf("Expected default betting URL, got %s", client.config.BettingURL)
	}
	if client.config.AccountURL != AccountURL {
		t.Errorf("Expected default account URL, got %s", client.config.AccountURL)
	}
	if client.config.Timeout != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %v", client.config.Timeout)
	}
}

func TestNewClientWithHTTPClient(t *testing.T) {
	customClient := &http.Client{Timeout: 60 * time.Second}

	client := NewClientWithHTTPClient(&ClientConfig{
		AppKey:       testAppKey,
		SessionToken: testToken,
	}, customClient)

	if client.httpClient != customClient {
		t.Error("Expected custom HTTP client to be used")
	}
	if client.config.BettingURL != BettingURL {
		t.Errorf("Expected default betting URL, got %s", client.config.BettingURL)
	}
}
