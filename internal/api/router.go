// Package api - Router setup
package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRouter creates and configures the HTTP router
func (h *Handler) SetupRouter() *mux.Router {
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(RecoveryMiddleware)
	r.Use(CORSMiddleware)
	r.Use(LoggingMiddleware)

	// Public routes
	r.HandleFunc("/", h.ServerInfo).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")

	// API v1 routes
	api := r.PathPrefix("/api/v1").Subrouter()

	// Betting listings
	api.HandleFunc("/event-types", h.ListEventTypes).Methods("GET")
	api.HandleFunc("/competitions", h.ListCompetitions).Methods("GET")
	api.HandleFunc("/events", h.ListEvents).Methods("GET")
	api.HandleFunc("/markets", h.ListMarketCatalogue).Methods("GET")
	api.HandleFunc("/market-book", h.ListMarketBook).Methods("GET")
	api.HandleFunc("/pnl", h.ListMarketProfitAndLoss).Methods("GET")

	// Orders
	api.HandleFunc("/orders/current", h.ListCurrentOrders).Methods("GET")

	// Account
	api.HandleFunc("/account/funds", h.GetAccountFunds).Methods("GET")

	return r
}

// NotFoundHandler handles 404 errors
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
}
