// Package aping provides a client for the Betfair Exchange API ("API-NG").
//
// The exchange exposes its betting and account operations as JSON-RPC over
// HTTPS. Every call is a single synchronous POST carrying a method name such
// as SportsAPING/v1.0/listCompetitions, a params object, and two credential
// headers.
//
// # Authentication
//
// All API requests are authenticated using:
//   - Application key: sent in the X-Application header
//   - Session token: sent in the X-Authentication header
//
// Both values are produced by a separate login step; this package only
// forwards them. See the internal/config package for the environment keys
// the login step publishes them under.
//
// # Basic Usage
//
//	client := aping.NewClient(&aping.ClientConfig{
//	    AppKey:       "your-app-key",
//	    SessionToken: "your-session-token",
//	})
//
//	// List football competitions
//	competitions, err := client.ListCompetitions(ctx, aping.MarketFilter{
//	    EventTypeIDs: []string{"1"},
//	})
//
//	// Profit and loss for a market
//	pnl, err := client.ListMarketProfitAndLoss(ctx, []string{"1.23456789"}, false, false, false)
//
// # Error Handling
//
// A remote API error is returned as *RPCError. The underlying
// APINGException, when present, carries the exchange's error code:
//
//	_, err := client.ListCompetitions(ctx, filter)
//	var rpcErr *aping.RPCError
//	if errors.As(err, &rpcErr) {
//	    switch rpcErr.Error() {
//	    case aping.ErrInvalidSessionInformation:
//	        // Session expired, log in again
//	    case aping.ErrTooMuchData:
//	        // Narrow the filter
//	    }
//	}
//
// Transport failures (network, TLS, JSON decoding) are returned as ordinary
// wrapped errors. No retries are performed at this level.
package aping
