package aping

import (
	"context"
	"time"
)

// EventType is a sport category, e.g. 1 = Soccer, 7 = Horse Racing
type EventType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EventTypeResult pairs an event type with its live market count
type EventTypeResult struct {
	EventType   EventType `json:"eventType"`
	MarketCount int       `json:"marketCount"`
}

// ListEventTypes returns the event types (sports) matching the filter.
func (c *Client) ListEventTypes(ctx context.Context, filter MarketFilter) ([]EventTypeResult, error) {
	var resp response[[]EventTypeResult]
	if err := c.betting(ctx, "listEventTypes", filterParams{Filter: filter, Locale: c.config.Locale}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if resp.Result == nil {
		return nil, nil
	}
	return *resp.Result, nil
}

// Competition is a grouping of events, e.g. a football league
type Competition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CompetitionResult pairs a competition with its market count and region
type CompetitionResult struct {
	Competition       Competition `json:"competition"`
	MarketCount       int         `json:"marketCount"`
	CompetitionRegion string      `json:"competitionRegion,omitempty"`
}

// ListCompetitions returns the competitions matching the filter.
func (c *Client) ListCompetitions(ctx context.Context, filter MarketFilter) ([]CompetitionResult, error) {
	var resp response[[]CompetitionResult]
	if err := c.betting(ctx, "listCompetitions", filterParams{Filter: filter, Locale: c.config.Locale}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if resp.Result == nil {
		return nil, nil
	}
	return *resp.Result, nil
}

// Event is a real-world fixture, e.g. one football match
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	Venue       string `json:"venue,omitempty"`
	OpenDate    string `json:"openDate,omitempty"`
}

// EventResult pairs an event with its market count
type EventResult struct {
	Event       Event `json:"event"`
	MarketCount int   `json:"marketCount"`
}

// ListEvents returns the events matching the filter. When the filter has no
// market start window, the default window around now is applied.
func (c *Client) ListEvents(ctx context.Context, filter MarketFilter) ([]EventResult, error) {
	if filter.MarketStartTime == nil {
		filter.MarketStartTime = DefaultTimeRange(time.Now())
	}
	var resp response[[]EventResult]
	if err := c.betting(ctx, "listEvents", filterParams{Filter: filter, Locale: c.config.Locale}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if resp.Result == nil {
		return nil, nil
	}
	return *resp.Result, nil
}

// CountryCodeResult pairs an ISO-2 country code with its market count
type CountryCodeResult struct {
	CountryCode string `json:"countryCode"`
	MarketCount int    `json:"marketCount"`
}

// ListCountries returns the countries hosting markets matching the filter.
func (c *Client) ListCountries(ctx context.Context, filter MarketFilter) ([]CountryCodeResult, error) {
	var resp response[[]CountryCodeResult]
	if err := c.betting(ctx, "listCountries", filterParams{Filter: filter, Locale: c.config.Locale}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if resp.Result == nil {
		return nil, nil
	}
	return *resp.Result, nil
}

// VenueResult pairs a venue (racecourses, mostly) with its market count
type VenueResult struct {
	Venue       string `json:"venue"`
	MarketCount int    `json:"marketCount"`
}

// ListVenues returns the venues hosting markets matching the filter.
func (c *Client) ListVenues(ctx context.Context, filter MarketFilter) ([]VenueResult, error) {
	var resp response[[]VenueResult]
	if err := c.betting(ctx, "listVenues", filterParams{Filter: filter, Locale: c.config.Locale}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if resp.Result == nil {
		return nil, nil
	}
	return *resp.Result, nil
}

// MarketTypeResult pairs a market type code (MATCH_ODDS, ...) with its count
type MarketTypeResult struct {
	MarketType  string `json:"marketType"`
	MarketCount int    `json:"marketCount"`
}

// ListMarketTypes returns the market type codes matching the filter.
func (c *Client) ListMarketTypes(ctx context.Context, filter MarketFilter) ([]MarketTypeResult, error) {
	var resp response[[]MarketTypeResult]
	if err := c.betting(ctx, "listMarketTypes", filterParams{Filter: filter, Locale: c.config.Locale}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if resp.Result == nil {
		return nil, nil
	}
	return *resp.Result, nil
}

// TimeGranularity buckets for listTimeRanges
type TimeGranularity string

const (
	GranularityDays    TimeGranularity = "DAYS"
	GranularityHours   TimeGranularity = "HOURS"
	GranularityMinutes TimeGranularity = "MINUTES"
)

// TimeRangeResult pairs a time bucket with its market count
type TimeRangeResult struct {
	TimeRange   TimeRange `json:"timeRange"`
	MarketCount int       `json:"marketCount"`
}

// ListTimeRanges returns the time buckets holding markets matching the
// filter, at the given granularity.
func (c *Client) ListTimeRanges(ctx context.Context, filter MarketFilter, granularity TimeGranularity) ([]TimeRangeResult, error) {
	params := struct {
		Filter      MarketFilter    `json:"filter"`
		Granularity TimeGranularity `json:"granularity"`
	}{filter, granularity}

	var resp response[[]TimeRangeResult]
	if err := c.betting(ctx, "listTimeRanges", params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if resp.Result == nil {
		return nil, nil
	}
	return *resp.Result, nil
}

// MarketProjection selects which parts of a market catalogue entry to return
type MarketProjection string

const (
	ProjectionCompetition       MarketProjection = "COMPETITION"
	ProjectionEvent             MarketProjection = "EVENT"
	ProjectionEventType         MarketProjection = "EVENT_TYPE"
	ProjectionMarketStartTime   MarketProjection = "MARKET_START_TIME"
	ProjectionMarketDescription MarketProjection = "MARKET_DESCRIPTION"
	ProjectionRunnerDescription MarketProjection = "RUNNER_DESCRIPTION"
	ProjectionRunnerMetadata    MarketProjection = "RUNNER_METADATA"
)

// MarketSort orders a market catalogue listing
type MarketSort string

const (
	SortMinimumTraded    MarketSort = "MINIMUM_TRADED"
	SortMaximumTraded    MarketSort = "MAXIMUM_TRADED"
	SortMinimumAvailable MarketSort = "MINIMUM_AVAILABLE"
	SortMaximumAvailable MarketSort = "MAXIMUM_AVAILABLE"
	SortFirstToStart     MarketSort = "FIRST_TO_START"
	SortLastToStart      MarketSort = "LAST_TO_START"
)

// defaultMaxResults caps a catalogue listing when the caller passes zero
const defaultMaxResults = 100

// MarketDescription is the static description of a market
type MarketDescription struct {
	PersistenceEnabled bool    `json:"persistenceEnabled"`
	BspMarket          bool    `json:"bspMarket"`
	MarketTime         string  `json:"marketTime,omitempty"`
	SuspendTime        string  `json:"suspendTime,omitempty"`
	SettleTime         string  `json:"settleTime,omitempty"`
	BettingType        string  `json:"bettingType,omitempty"`
	TurnInPlayEnabled  bool    `json:"turnInPlayEnabled"`
	MarketType         string  `json:"marketType,omitempty"`
	Regulator          string  `json:"regulator,omitempty"`
	MarketBaseRate     float64 `json:"marketBaseRate,omitempty"`
	DiscountAllowed    bool    `json:"discountAllowed"`
	Wallet             string  `json:"wallet,omitempty"`
	Rules              string  `json:"rules,omitempty"`
	RulesHasDate       bool    `json:"rulesHasDate,omitempty"`
	Clarifications     string  `json:"clarifications,omitempty"`
}

// RunnerCatalog is the static description of a selection
type RunnerCatalog struct {
	SelectionID  int64             `json:"selectionId"`
	RunnerName   string            `json:"runnerName,omitempty"`
	Handicap     float64           `json:"handicap,omitempty"`
	SortPriority int               `json:"sortPriority,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// MarketCatalogue is one market as returned by listMarketCatalogue
type MarketCatalogue struct {
	MarketID        string             `json:"marketId"`
	MarketName      string             `json:"marketName,omitempty"`
	MarketStartTime string             `json:"marketStartTime,omitempty"`
	Description     *MarketDescription `json:"description,omitempty"`
	TotalMatched    float64            `json:"totalMatched,omitempty"`
	Runners         []RunnerCatalog    `json:"runners,omitempty"`
	EventType       *EventType         `json:"eventType,omitempty"`
	Competition     *Competition       `json:"competition,omitempty"`
	Event           *Event             `json:"event,omitempty"`
}

// ListMarketCatalogue returns static market data matching the filter. When
// the filter has no market start window, the default window around now is
// applied; a zero maxResults is raised to defaultMaxResults.
func (c *Client) ListMarketCatalogue(ctx context.Context, filter MarketFilter, projection []MarketProjection, sort MarketSort, maxResults int) ([]MarketCatalogue, error) {
	if filter.MarketStartTime == nil {
		filter.MarketStartTime = DefaultTimeRange(time.Now())
	}
	if maxResults == 0 {
		maxResults = defaultMaxResults
	}

	params := struct {
		Filter           MarketFilter       `json:"filter"`
		MarketProjection []MarketProjection `json:"marketProjection,omitempty"`
		Sort             MarketSort         `json:"sort,omitempty"`
		MaxResults       int                `json:"maxResults"`
		Locale           string             `json:"locale,omitempty"`
	}{filter, projection, sort, maxResults, c.config.Locale}

	var resp response[[]MarketCatalogue]
	if err := c.betting(ctx, "listMarketCatalogue", params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if resp.Result == nil {
		return nil, nil
	}
	return *resp.Result, nil
}

// PriceData selects which price ladders to return in a market book
type PriceData string

const (
	PriceSPAvailable  PriceData = "SP_AVAILABLE"
	PriceSPTraded     PriceData = "SP_TRADED"
	PriceExBestOffers PriceData = "EX_BEST_OFFERS"
	PriceExAllOffers  PriceData = "EX_ALL_OFFERS"
	PriceExTraded     PriceData = "EX_TRADED"
)

// OrderProjection restricts which of the caller's orders are returned
type OrderProjection string

const (
	OrdersAll               OrderProjection = "ALL"
	OrdersExecutable        OrderProjection = "EXECUTABLE"
	OrdersExecutionComplete OrderProjection = "EXECUTION_COMPLETE"
)

// MatchProjection controls rollup of the caller's matches
type MatchProjection string

const (
	MatchNoRollup           MatchProjection = "NO_ROLLUP"
	MatchRolledUpByPrice    MatchProjection = "ROLLED_UP_BY_PRICE"
	MatchRolledUpByAvgPrice MatchProjection = "ROLLED_UP_BY_AVG_PRICE"
)

// ExBestOffersOverrides tunes the EX_BEST_OFFERS ladder depth
type ExBestOffersOverrides struct {
	BestPricesDepth int    `json:"bestPricesDepth,omitempty"`
	RollupModel     string `json:"rollupModel,omitempty"`
	RollupLimit     int    `json:"rollupLimit,omitempty"`
}

// PriceProjection selects the price data of a market book request
type PriceProjection struct {
	PriceData             []PriceData            `json:"priceData,omitempty"`
	ExBestOffersOverrides *ExBestOffersOverrides `json:"exBestOffersOverrides,omitempty"`
	Virtualise            *bool                  `json:"virtualise,omitempty"`
	RolloverStakes        *bool                  `json:"rolloverStakes,omitempty"`
}

// ExchangePrices are the ladders available for one runner
type ExchangePrices struct {
	AvailableToBack []PriceSize `json:"availableToBack,omitempty"`
	AvailableToLay  []PriceSize `json:"availableToLay,omitempty"`
	TradedVolume    []PriceSize `json:"tradedVolume,omitempty"`
}

// Runner is the dynamic data about one selection in a market
type Runner struct {
	SelectionID      int64           `json:"selectionId"`
	Handicap         float64         `json:"handicap,omitempty"`
	Status           string          `json:"status,omitempty"`
	AdjustmentFactor float64         `json:"adjustmentFactor,omitempty"`
	LastPriceTraded  float64         `json:"lastPriceTraded,omitempty"`
	TotalMatched     float64         `json:"totalMatched,omitempty"`
	RemovalDate      string          `json:"removalDate,omitempty"`
	EX               *ExchangePrices `json:"ex,omitempty"`
}

// MarketBook is the dynamic data about a market
type MarketBook struct {
	MarketID              string   `json:"marketId"`
	IsMarketDataDelayed   bool     `json:"isMarketDataDelayed"`
	Status                string   `json:"status,omitempty"`
	BetDelay              int      `json:"betDelay,omitempty"`
	BspReconciled         bool     `json:"bspReconciled,omitempty"`
	Complete              *bool    `json:"complete,omitempty"`
	Inplay                bool     `json:"inplay,omitempty"`
	NumberOfWinners       int      `json:"numberOfWinners,omitempty"`
	NumberOfRunners       int      `json:"numberOfRunners,omitempty"`
	NumberOfActiveRunners int      `json:"numberOfActiveRunners,omitempty"`
	LastMatchTime         string   `json:"lastMatchTime,omitempty"`
	TotalMatched          float64  `json:"totalMatched,omitempty"`
	TotalAvailable        float64  `json:"totalAvailable,omitempty"`
	CrossMatching         bool     `json:"crossMatching,omitempty"`
	RunnersVoidable       bool     `json:"runnersVoidable,omitempty"`
	Version               int64    `json:"version,omitempty"`
	Runners               []Runner `json:"runners,omitempty"`
}

// ListMarketBook returns dynamic market data for the given market IDs.
// priceProjection, orderProjection and matchProjection may be zero values,
// in which case they are omitted from the request.
func (c *Client) ListMarketBook(ctx context.Context, marketIDs []string, priceProjection *PriceProjection, orderProjection OrderProjection, matchProjection MatchProjection) ([]MarketBook, error) {
	params := struct {
		MarketIDs       []string         `json:"marketIds"`
		PriceProjection *PriceProjection `json:"priceProjection,omitempty"`
		OrderProjection OrderProjection  `json:"orderProjection,omitempty"`
		MatchProjection MatchProjection  `json:"matchProjection,omitempty"`
		Locale          string           `json:"locale,omitempty"`
	}{marketIDs, priceProjection, orderProjection, matchProjection, c.config.Locale}

	var resp response[[]MarketBook]
	if err := c.betting(ctx, "listMarketBook", params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if resp.Result == nil {
		return nil, nil
	}
	return *resp.Result, nil
}

// RunnerProfitAndLoss is the caller's exposure on one selection
type RunnerProfitAndLoss struct {
	SelectionID int64   `json:"selectionId"`
	IfWin       float64 `json:"ifWin,omitempty"`
	IfLose      float64 `json:"ifLose,omitempty"`
	IfPlace     float64 `json:"ifPlace,omitempty"`
}

// MarketProfitAndLoss is the caller's exposure on one market
type MarketProfitAndLoss struct {
	MarketID          string                `json:"marketId"`
	CommissionApplied float64               `json:"commissionApplied,omitempty"`
	ProfitAndLosses   []RunnerProfitAndLoss `json:"profitAndLosses,omitempty"`
}

// ListMarketProfitAndLoss returns profit-and-loss for the given markets.
// The three booleans are always sent, false included; the exchange treats
// a missing flag and an explicit false the same way, but the wire contract
// keeps them present.
func (c *Client) ListMarketProfitAndLoss(ctx context.Context, marketIDs []string, includeSettledBets, includeBspBets, netOfCommission bool) ([]MarketProfitAndLoss, error) {
	params := struct {
		MarketIDs          []string `json:"marketIds"`
		IncludeSettledBets bool     `json:"includeSettledBets"`
		IncludeBspBets     bool     `json:"includeBspBets"`
		NetOfCommission    bool     `json:"netOfCommission"`
	}{marketIDs, includeSettledBets, includeBspBets, netOfCommission}

	var resp response[[]MarketProfitAndLoss]
	if err := c.betting(ctx, "listMarketProfitAndLoss", params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if resp.Result == nil {
		return nil, nil
	}
	return *resp.Result, nil
}
