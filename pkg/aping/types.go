package aping

import (
	"encoding/json"
	"time"
)

// APING error codes carried inside the APINGException of an error response
const (
	ErrTooMuchData               = "TOO_MUCH_DATA"
	ErrInvalidInputData          = "INVALID_INPUT_DATA"
	ErrInvalidSessionInformation = "INVALID_SESSION_INFORMATION"
	ErrNoAppKey                  = "NO_APP_KEY"
	ErrNoSession                 = "NO_SESSION"
	ErrUnexpectedError           = "UNEXPECTED_ERROR"
	ErrInvalidAppKey             = "INVALID_APP_KEY"
	ErrTooManyRequests           = "TOO_MANY_REQUESTS"
	ErrServiceBusy               = "SERVICE_BUSY"
	ErrTimeoutError              = "TIMEOUT_ERROR"
	ErrAccessDenied              = "ACCESS_DENIED"
)

// rpcRequest is the JSON-RPC envelope sent with every call.
// The exchange expects the id as a string.
type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      string      `json:"id"`
}

// response wraps the API response with either result or error
type response[T any] struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  *T              `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

// RPCError represents an error response from the exchange
type RPCError struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    *ErrorData `json:"data,omitempty"`
}

// ErrorData carries the exchange-specific exception payload
type ErrorData struct {
	APINGException *APINGException `json:"APINGException,omitempty"`
}

// APINGException is the exchange's own error record
type APINGException struct {
	ErrorCode    string `json:"errorCode"`
	ErrorDetails string `json:"errorDetails,omitempty"`
	RequestUUID  string `json:"requestUUID,omitempty"`
}

// Exception returns the APINGException of the error, if any
func (e *RPCError) Exception() *APINGException {
	if e.Data == nil {
		return nil
	}
	return e.Data.APINGException
}

func (e *RPCError) Error() string {
	if ex := e.Exception(); ex != nil && ex.ErrorCode != "" {
		return ex.ErrorCode
	}
	return e.Message
}

// TimeFormat is the timestamp layout the exchange expects in filters
const TimeFormat = "2006-01-02T15:04:05Z"

// TimeRange restricts a listing operation to an interval. Both bounds are
// optional; an open bound is omitted from the request.
type TimeRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// DefaultTimeRange is the window applied when a date-taking operation is
// called without one: two hours before now until one day ahead.
func DefaultTimeRange(now time.Time) *TimeRange {
	now = now.UTC()
	return &TimeRange{
		From: now.Add(-2 * time.Hour).Format(TimeFormat),
		To:   now.Add(24 * time.Hour).Format(TimeFormat),
	}
}

// MarketFilter restricts which entities a listing operation returns. Unset
// criteria are omitted from the request entirely, never sent as null.
// Tri-state booleans are pointers so that an explicit false still serializes.
type MarketFilter struct {
	TextQuery          string     `json:"textQuery,omitempty"`
	EventTypeIDs       []string   `json:"eventTypeIds,omitempty"`
	EventIDs           []string   `json:"eventIds,omitempty"`
	CompetitionIDs     []string   `json:"competitionIds,omitempty"`
	MarketIDs          []string   `json:"marketIds,omitempty"`
	Venues             []string   `json:"venues,omitempty"`
	BSPOnly            *bool      `json:"bspOnly,omitempty"`
	TurnInPlayEnabled  *bool      `json:"turnInPlayEnabled,omitempty"`
	InPlayOnly         *bool      `json:"inPlayOnly,omitempty"`
	MarketBettingTypes []string   `json:"marketBettingTypes,omitempty"`
	MarketCountries    []string   `json:"marketCountries,omitempty"`
	MarketTypeCodes    []string   `json:"marketTypeCodes,omitempty"`
	MarketStartTime    *TimeRange `json:"marketStartTime,omitempty"`
	WithOrders         []string   `json:"withOrders,omitempty"`
}

// Bool returns a pointer for the tri-state filter fields
func Bool(v bool) *bool {
	return &v
}

// filterParams is the common params shape of the filter-driven listings
type filterParams struct {
	Filter MarketFilter `json:"filter"`
	Locale string       `json:"locale,omitempty"`
}

// PriceSize is one price point and the stake available or traded at it
type PriceSize struct {
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
}
