package aping

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Side of a bet
type Side string

const (
	SideBack Side = "BACK"
	SideLay  Side = "LAY"
)

// OrderType of a place instruction
type OrderType string

const (
	OrderLimit         OrderType = "LIMIT"
	OrderLimitOnClose  OrderType = "LIMIT_ON_CLOSE"
	OrderMarketOnClose OrderType = "MARKET_ON_CLOSE"
)

// PersistenceType controls what happens to an unmatched bet at in-play
type PersistenceType string

const (
	PersistenceLapse         PersistenceType = "LAPSE"
	PersistencePersist       PersistenceType = "PERSIST"
	PersistenceMarketOnClose PersistenceType = "MARKET_ON_CLOSE"
)

// LimitOrder is a plain exchange bet at a fixed price
type LimitOrder struct {
	Size            float64         `json:"size"`
	Price           float64         `json:"price"`
	PersistenceType PersistenceType `json:"persistenceType"`
}

// LimitOnCloseOrder is a BSP bet with a price limit
type LimitOnCloseOrder struct {
	Liability float64 `json:"liability"`
	Price     float64 `json:"price"`
}

// MarketOnCloseOrder is a BSP bet taken at whatever the starting price is
type MarketOnCloseOrder struct {
	Liability float64 `json:"liability"`
}

// PlaceInstruction describes one bet to place. Exactly one of the order
// payloads should be set, matching OrderType.
type PlaceInstruction struct {
	OrderType          OrderType           `json:"orderType"`
	SelectionID        int64               `json:"selectionId"`
	Handicap           float64             `json:"handicap,omitempty"`
	Side               Side                `json:"side"`
	LimitOrder         *LimitOrder         `json:"limitOrder,omitempty"`
	LimitOnCloseOrder  *LimitOnCloseOrder  `json:"limitOnCloseOrder,omitempty"`
	MarketOnCloseOrder *MarketOnCloseOrder `json:"marketOnCloseOrder,omitempty"`
	CustomerOrderRef   string              `json:"customerOrderRef,omitempty"`
}

// ExecutionReportStatus of an order operation
type ExecutionReportStatus string

const (
	ExecutionSuccess             ExecutionReportStatus = "SUCCESS"
	ExecutionFailure             ExecutionReportStatus = "FAILURE"
	ExecutionProcessedWithErrors ExecutionReportStatus = "PROCESSED_WITH_ERRORS"
	ExecutionTimeout             ExecutionReportStatus = "TIMEOUT"
)

// PlaceInstructionReport is the per-instruction outcome of placeOrders
type PlaceInstructionReport struct {
	Status              ExecutionReportStatus `json:"status"`
	ErrorCode           string                `json:"errorCode,omitempty"`
	OrderStatus         string                `json:"orderStatus,omitempty"`
	Instruction         PlaceInstruction      `json:"instruction"`
	BetID               string                `json:"betId,omitempty"`
	PlacedDate          string                `json:"placedDate,omitempty"`
	AveragePriceMatched float64               `json:"averagePriceMatched,omitempty"`
	SizeMatched         float64               `json:"sizeMatched,omitempty"`
}

// PlaceExecutionReport is the outcome of placeOrders
type PlaceExecutionReport struct {
	CustomerRef        string                   `json:"customerRef,omitempty"`
	Status             ExecutionReportStatus    `json:"status"`
	ErrorCode          string                   `json:"errorCode,omitempty"`
	MarketID           string                   `json:"marketId"`
	InstructionReports []PlaceInstructionReport `json:"instructionReports,omitempty"`
}

// PlaceOrders places the given bets on one market. An empty customerRef is
// replaced by a generated UUID so retried submissions stay distinguishable
// on the exchange side.
func (c *Client) PlaceOrders(ctx context.Context, marketID string, instructions []PlaceInstruction, customerRef string) (*PlaceExecutionReport, error) {
	if customerRef == "" {
		customerRef = uuid.NewString()
	}

	params := struct {
		MarketID     string             `json:"marketId"`
		Instructions []PlaceInstruction `json:"instructions"`
		CustomerRef  string             `json:"customerRef"`
	}{marketID, instructions, customerRef}

	var resp response[PlaceExecutionReport]
	if err := c.betting(ctx, "placeOrders", params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Result, nil
}

// CancelInstruction cancels one bet, fully or by a size reduction
type CancelInstruction struct {
	BetID         string  `json:"betId"`
	SizeReduction float64 `json:"sizeReduction,omitempty"`
}

// CancelInstructionReport is the per-instruction outcome of cancelOrders
type CancelInstructionReport struct {
	Status        ExecutionReportStatus `json:"status"`
	ErrorCode     string                `json:"errorCode,omitempty"`
	Instruction   CancelInstruction     `json:"instruction"`
	SizeCancelled float64               `json:"sizeCancelled,omitempty"`
	CancelledDate string                `json:"cancelledDate,omitempty"`
}

// CancelExecutionReport is the outcome of cancelOrders
type CancelExecutionReport struct {
	CustomerRef        string                    `json:"customerRef,omitempty"`
	Status             ExecutionReportStatus     `json:"status"`
	ErrorCode          string                    `json:"errorCode,omitempty"`
	MarketID           string                    `json:"marketId,omitempty"`
	InstructionReports []CancelInstructionReport `json:"instructionReports,omitempty"`
}

// CancelOrders cancels the given bets on one market.
func (c *Client) CancelOrders(ctx context.Context, marketID string, instructions []CancelInstruction, customerRef string) (*CancelExecutionReport, error) {
	if customerRef == "" {
		customerRef = uuid.NewString()
	}

	params := struct {
		MarketID     string              `json:"marketId"`
		Instructions []CancelInstruction `json:"instructions"`
		CustomerRef  string              `json:"customerRef"`
	}{marketID, instructions, customerRef}

	var resp response[CancelExecutionReport]
	if err := c.betting(ctx, "cancelOrders", params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Result, nil
}

// ReplaceInstruction moves one bet to a new price (cancel and re-place)
type ReplaceInstruction struct {
	BetID    string  `json:"betId"`
	NewPrice float64 `json:"newPrice"`
}

// ReplaceInstructionReport is the per-instruction outcome of replaceOrders
type ReplaceInstructionReport struct {
	Status                  ExecutionReportStatus    `json:"status"`
	ErrorCode               string                   `json:"errorCode,omitempty"`
	CancelInstructionReport *CancelInstructionReport `json:"cancelInstructionReport,omitempty"`
	PlaceInstructionReport  *PlaceInstructionReport  `json:"placeInstructionReport,omitempty"`
}

// ReplaceExecutionReport is the outcome of replaceOrders
type ReplaceExecutionReport struct {
	CustomerRef        string                     `json:"customerRef,omitempty"`
	Status             ExecutionReportStatus      `json:"status"`
	ErrorCode          string                     `json:"errorCode,omitempty"`
	MarketID           string                     `json:"marketId,omitempty"`
	InstructionReports []ReplaceInstructionReport `json:"instructionReports,omitempty"`
}

// ReplaceOrders moves the given bets to new prices.
func (c *Client) ReplaceOrders(ctx context.Context, marketID string, instructions []ReplaceInstruction, customerRef string) (*ReplaceExecutionReport, error) {
	if customerRef == "" {
		customerRef = uuid.NewString()
	}

	params := struct {
		MarketID     string               `json:"marketId"`
		Instructions []ReplaceInstruction `json:"instructions"`
		CustomerRef  string               `json:"customerRef"`
	}{marketID, instructions, customerRef}

	var resp response[ReplaceExecutionReport]
	if err := c.betting(ctx, "replaceOrders", params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Result, nil
}

// CurrentOrdersParams are the optional criteria of listCurrentOrders
type CurrentOrdersParams struct {
	BetIDs          []string        `json:"betIds,omitempty"`
	MarketIDs       []string        `json:"marketIds,omitempty"`
	OrderProjection OrderProjection `json:"orderProjection,omitempty"`
	PlacedDateRange *TimeRange      `json:"placedDateRange,omitempty"`
	OrderBy         string          `json:"orderBy,omitempty"`
	SortDir         string          `json:"sortDir,omitempty"`
	FromRecord      int             `json:"fromRecord,omitempty"`
	RecordCount     int             `json:"recordCount,omitempty"`
}

// CurrentOrderSummary is one unsettled (or recently settled) bet
type CurrentOrderSummary struct {
	BetID               string          `json:"betId"`
	MarketID            string          `json:"marketId"`
	SelectionID         int64           `json:"selectionId"`
	Handicap            float64         `json:"handicap,omitempty"`
	PriceSize           PriceSize       `json:"priceSize"`
	BspLiability        float64         `json:"bspLiability,omitempty"`
	Side                Side            `json:"side"`
	Status              string          `json:"status,omitempty"`
	PersistenceType     PersistenceType `json:"persistenceType,omitempty"`
	OrderType           OrderType       `json:"orderType,omitempty"`
	PlacedDate          string          `json:"placedDate,omitempty"`
	MatchedDate         string          `json:"matchedDate,omitempty"`
	AveragePriceMatched float64         `json:"averagePriceMatched,omitempty"`
	SizeMatched         float64         `json:"sizeMatched,omitempty"`
	SizeRemaining       float64         `json:"sizeRemaining,omitempty"`
	SizeLapsed          float64         `json:"sizeLapsed,omitempty"`
	SizeCancelled       float64         `json:"sizeCancelled,omitempty"`
	SizeVoided          float64         `json:"sizeVoided,omitempty"`
	RegulatorCode       string          `json:"regulatorCode,omitempty"`
}

// CurrentOrderSummaryReport pages through current orders
type CurrentOrderSummaryReport struct {
	CurrentOrders []CurrentOrderSummary `json:"currentOrders"`
	MoreAvailable bool                  `json:"moreAvailable"`
}

// ListCurrentOrders returns the caller's unsettled orders matching params.
func (c *Client) ListCurrentOrders(ctx context.Context, params CurrentOrdersParams) (*CurrentOrderSummaryReport, error) {
	var resp response[CurrentOrderSummaryReport]
	if err := c.betting(ctx, "listCurrentOrders", params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Result, nil
}

// BetStatus of cleared orders
type BetStatus string

const (
	BetSettled   BetStatus = "SETTLED"
	BetVoided    BetStatus = "VOIDED"
	BetLapsed    BetStatus = "LAPSED"
	BetCancelled BetStatus = "CANCELLED"
)

// GroupBy rollup level for cleared orders
type GroupBy string

const (
	GroupByEventType GroupBy = "EVENT_TYPE"
	GroupByEvent     GroupBy = "EVENT"
	GroupByMarket    GroupBy = "MARKET"
	GroupBySide      GroupBy = "SIDE"
	GroupByBet       GroupBy = "BET"
)

// ClearedOrdersParams are the criteria of listClearedOrders
type ClearedOrdersParams struct {
	BetStatus              BetStatus  `json:"betStatus"`
	EventTypeIDs           []string   `json:"eventTypeIds,omitempty"`
	EventIDs               []string   `json:"eventIds,omitempty"`
	MarketIDs              []string   `json:"marketIds,omitempty"`
	RunnerIDs              []int64    `json:"runnerIds,omitempty"`
	BetIDs                 []string   `json:"betIds,omitempty"`
	Side                   Side       `json:"side,omitempty"`
	SettledDateRange       *TimeRange `json:"settledDateRange,omitempty"`
	GroupBy                GroupBy    `json:"groupBy,omitempty"`
	IncludeItemDescription bool       `json:"includeItemDescription,omitempty"`
	Locale                 string     `json:"locale,omitempty"`
	FromRecord             int        `json:"fromRecord,omitempty"`
	RecordCount            int        `json:"recordCount,omitempty"`
}

// ItemDescription is the human-readable context of a cleared order
type ItemDescription struct {
	EventTypeDesc   string  `json:"eventTypeDesc,omitempty"`
	EventDesc       string  `json:"eventDesc,omitempty"`
	MarketDesc      string  `json:"marketDesc,omitempty"`
	MarketType      string  `json:"marketType,omitempty"`
	MarketStartTime string  `json:"marketStartTime,omitempty"`
	RunnerDesc      string  `json:"runnerDesc,omitempty"`
	NumberOfWinners int     `json:"numberOfWinners,omitempty"`
	EachWayDivisor  float64 `json:"eachWayDivisor,omitempty"`
}

// ClearedOrderSummary is one settled (or voided/lapsed/cancelled) bet
type ClearedOrderSummary struct {
	EventTypeID     string           `json:"eventTypeId,omitempty"`
	EventID         string           `json:"eventId,omitempty"`
	MarketID        string           `json:"marketId,omitempty"`
	SelectionID     int64            `json:"selectionId,omitempty"`
	Handicap        float64          `json:"handicap,omitempty"`
	BetID           string           `json:"betId,omitempty"`
	PlacedDate      string           `json:"placedDate,omitempty"`
	PersistenceType PersistenceType  `json:"persistenceType,omitempty"`
	OrderType       OrderType        `json:"orderType,omitempty"`
	Side            Side             `json:"side,omitempty"`
	ItemDescription *ItemDescription `json:"itemDescription,omitempty"`
	BetOutcome      string           `json:"betOutcome,omitempty"`
	PriceRequested  float64          `json:"priceRequested,omitempty"`
	SettledDate     string           `json:"settledDate,omitempty"`
	LastMatchedDate string           `json:"lastMatchedDate,omitempty"`
	BetCount        int              `json:"betCount,omitempty"`
	Commission      float64          `json:"commission,omitempty"`
	PriceMatched    float64          `json:"priceMatched,omitempty"`
	PriceReduced    bool             `json:"priceReduced,omitempty"`
	SizeSettled     float64          `json:"sizeSettled,omitempty"`
	Profit          float64          `json:"profit,omitempty"`
	SizeCancelled   float64          `json:"sizeCancelled,omitempty"`
}

// ClearedOrderSummaryReport pages through cleared orders
type ClearedOrderSummaryReport struct {
	ClearedOrders []ClearedOrderSummary `json:"clearedOrders"`
	MoreAvailable bool                  `json:"moreAvailable"`
}

// ListClearedOrders returns the caller's settled orders matching params.
// An empty BetStatus defaults to SETTLED; a nil SettledDateRange gets the
// default window around now.
func (c *Client) ListClearedOrders(ctx context.Context, params ClearedOrdersParams) (*ClearedOrderSummaryReport, error) {
	if params.BetStatus == "" {
		params.BetStatus = BetSettled
	}
	if params.SettledDateRange == nil {
		params.SettledDateRange = DefaultTimeRange(time.Now())
	}
	if params.Locale == "" {
		params.Locale = c.config.Locale
	}

	var resp response[ClearedOrderSummaryReport]
	if err := c.betting(ctx, "listClearedOrders", params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Result, nil
}
