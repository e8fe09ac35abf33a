// Package api provides the HTTP facade over the exchange client.
// Every route maps query parameters onto a filter, calls one exchange
// operation, and responds with the tabular view of the outcome.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexbotov/betfair/pkg/aping"
	"github.com/alexbotov/betfair/pkg/table"
)

// Handler contains all HTTP handlers
type Handler struct {
	client *aping.Client
}

// New creates a new API handler
func New(client *aping.Client) *Handler {
	return &Handler{client: client}
}

// Response helpers

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondTable flattens a successful exchange result into a table
func respondTable(w http.ResponseWriter, v interface{}) {
	t, err := table.FromResult(v)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "ENCODING_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, t)
}

// respondUpstream maps exchange failures onto the response envelope. A
// remote API error still carries its tabular form in data, so consumers see
// the same shape on both paths.
func respondUpstream(w http.ResponseWriter, err error) {
	var rpcErr *aping.RPCError
	if errors.As(err, &rpcErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(APIResponse{
			Success: false,
			Data:    table.FromError(rpcErr),
			Error: &APIError{
				Code:    rpcErr.Error(),
				Message: rpcErr.Message,
			},
		})
		return
	}
	respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
}

// Query helpers

func queryList(r *http.Request, key string) []string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

func queryInt(r *http.Request, key string) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

func queryBool(r *http.Request, key string) bool {
	parsed, err := strconv.ParseBool(r.URL.Query().Get(key))
	if err != nil {
		return false
	}
	return parsed
}

// filterFromQuery maps the common filter query parameters
func filterFromQuery(r *http.Request) aping.MarketFilter {
	return aping.MarketFilter{
		TextQuery:       r.URL.Query().Get("textQuery"),
		EventTypeIDs:    queryList(r, "eventTypeIds"),
		EventIDs:        queryList(r, "eventIds"),
		CompetitionIDs:  queryList(r, "competitionIds"),
		MarketIDs:       queryList(r, "marketIds"),
		MarketCountries: queryList(r, "countries"),
		MarketTypeCodes: queryList(r, "marketTypes"),
	}
}

// === Health & Info ===

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
	})
}

// ServerInfo handles GET /
func (h *Handler) ServerInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"name":        "apid",
		"version":     "1.0.0",
		"description": "Betfair Exchange API facade",
	})
}

// === Betting ===

// ListEventTypes handles GET /api/v1/event-types
func (h *Handler) ListEventTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.client.ListEventTypes(r.Context(), filterFromQuery(r))
	if err != nil {
		respondUpstream(w, err)
		return
	}
	respondTable(w, result)
}

// ListCompetitions handles GET /api/v1/competitions
func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	result, err := h.client.ListCompetitions(r.Context(), filterFromQuery(r))
	if err != nil {
		respondUpstream(w, err)
		return
	}
	respondTable(w, result)
}

// ListEvents handles GET /api/v1/events
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	result, err := h.client.ListEvents(r.Context(), filterFromQuery(r))
	if err != nil {
		respondUpstream(w, err)
		return
	}
	respondTable(w, result)
}

// ListMarketCatalogue handles GET /api/v1/markets
func (h *Handler) ListMarketCatalogue(w http.ResponseWriter, r *http.Request) {
	maxResults, err := queryInt(r, "maxResults")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "maxResults must be an integer")
		return
	}

	result, err := h.client.ListMarketCatalogue(r.Context(), filterFromQuery(r), nil, "", maxResults)
	if err != nil {
		respondUpstream(w, err)
		return
	}
	respondTable(w, result)
}

// ListMarketBook handles GET /api/v1/market-book
func (h *Handler) ListMarketBook(w http.ResponseWriter, r *http.Request) {
	marketIDs := queryList(r, "marketIds")
	if len(marketIDs) == 0 {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "marketIds is required")
		return
	}

	result, err := h.client.ListMarketBook(r.Context(), marketIDs, nil, "", "")
	if err != nil {
		respondUpstream(w, err)
		return
	}
	respondTable(w, result)
}

// ListMarketProfitAndLoss handles GET /api/v1/pnl
func (h *Handler) ListMarketProfitAndLoss(w http.ResponseWriter, r *http.Request) {
	marketIDs := queryList(r, "marketIds")
	if len(marketIDs) == 0 {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "marketIds is required")
		return
	}

	result, err := h.client.ListMarketProfitAndLoss(r.Context(), marketIDs,
		queryBool(r, "includeSettledBets"),
		queryBool(r, "includeBspBets"),
		queryBool(r, "netOfCommission"))
	if err != nil {
		respondUpstream(w, err)
		return
	}
	respondTable(w, result)
}

// ListCurrentOrders handles GET /api/v1/orders/current
func (h *Handler) ListCurrentOrders(w http.ResponseWriter, r *http.Request) {
	result, err := h.client.ListCurrentOrders(r.Context(), aping.CurrentOrdersParams{
		BetIDs:    queryList(r, "betIds"),
		MarketIDs: queryList(r, "marketIds"),
	})
	if err != nil {
		respondUpstream(w, err)
		return
	}
	respondTable(w, result.CurrentOrders)
}

// === Account ===

// GetAccountFunds handles GET /api/v1/account/funds
func (h *Handler) GetAccountFunds(w http.ResponseWriter, r *http.Request) {
	result, err := h.client.GetAccountFunds(r.Context(), aping.Wallet(r.URL.Query().Get("wallet")))
	if err != nil {
		respondUpstream(w, err)
		return
	}
	respondTable(w, result)
}
