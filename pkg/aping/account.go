package aping

import (
	"context"
	"time"
)

// Wallet identifiers of the exchange
type Wallet string

const (
	WalletUK         Wallet = "UK"
	WalletAustralian Wallet = "AUSTRALIAN"
)

// AccountFunds is the result of getAccountFunds
type AccountFunds struct {
	AvailableToBetBalance float64 `json:"availableToBetBalance"`
	Exposure              float64 `json:"exposure"`
	RetainedCommission    float64 `json:"retainedCommission"`
	ExposureLimit         float64 `json:"exposureLimit"`
	DiscountRate          float64 `json:"discountRate,omitempty"`
	PointsBalance         int     `json:"pointsBalance,omitempty"`
	Wallet                string  `json:"wallet,omitempty"`
}

// GetAccountFunds returns the balance of the given wallet. An empty wallet
// means the UK (main) wallet, decided by the exchange.
func (c *Client) GetAccountFunds(ctx context.Context, wallet Wallet) (*AccountFunds, error) {
	params := struct {
		Wallet Wallet `json:"wallet,omitempty"`
	}{wallet}

	var resp response[AccountFunds]
	if err := c.account(ctx, "getAccountFunds", params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Result, nil
}

// AccountDetails is the result of getAccountDetails
type AccountDetails struct {
	CurrencyCode  string  `json:"currencyCode,omitempty"`
	FirstName     string  `json:"firstName,omitempty"`
	LastName      string  `json:"lastName,omitempty"`
	LocaleCode    string  `json:"localeCode,omitempty"`
	Region        string  `json:"region,omitempty"`
	Timezone      string  `json:"timezone,omitempty"`
	DiscountRate  float64 `json:"discountRate,omitempty"`
	PointsBalance int     `json:"pointsBalance,omitempty"`
	CountryCode   string  `json:"countryCode,omitempty"`
}

// GetAccountDetails returns the account holder's static details.
func (c *Client) GetAccountDetails(ctx context.Context) (*AccountDetails, error) {
	var resp response[AccountDetails]
	if err := c.account(ctx, "getAccountDetails", struct{}{}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Result, nil
}

// IncludeItem restricts which statement entries are returned
type IncludeItem string

const (
	IncludeAll                 IncludeItem = "ALL"
	IncludeDepositsWithdrawals IncludeItem = "DEPOSITS_WITHDRAWALS"
	IncludeExchange            IncludeItem = "EXCHANGE"
	IncludePokerRoom           IncludeItem = "POKER_ROOM"
)

// StatementParams are the criteria of getAccountStatement
type StatementParams struct {
	Locale        string      `json:"locale,omitempty"`
	FromRecord    int         `json:"fromRecord,omitempty"`
	RecordCount   int         `json:"recordCount,omitempty"`
	ItemDateRange *TimeRange  `json:"itemDateRange,omitempty"`
	IncludeItem   IncludeItem `json:"includeItem,omitempty"`
	Wallet        Wallet      `json:"wallet,omitempty"`
}

// StatementLegacyData carries the bet context of an exchange statement item
type StatementLegacyData struct {
	AvgPrice        float64 `json:"avgPrice,omitempty"`
	BetSize         float64 `json:"betSize,omitempty"`
	BetType         string  `json:"betType,omitempty"`
	EventID         int64   `json:"eventId,omitempty"`
	EventTypeID     int64   `json:"eventTypeId,omitempty"`
	FullMarketName  string  `json:"fullMarketName,omitempty"`
	GrossBetAmount  float64 `json:"grossBetAmount,omitempty"`
	MarketName      string  `json:"marketName,omitempty"`
	MarketType      string  `json:"marketType,omitempty"`
	PlacedDate      string  `json:"placedDate,omitempty"`
	SelectionID     int64   `json:"selectionId,omitempty"`
	SelectionName   string  `json:"selectionName,omitempty"`
	StartDate       string  `json:"startDate,omitempty"`
	TransactionType string  `json:"transactionType,omitempty"`
	TransactionID   int64   `json:"transactionId,omitempty"`
	WinLose         string  `json:"winLose,omitempty"`
}

// StatementItem is one account statement entry
type StatementItem struct {
	RefID         string               `json:"refId,omitempty"`
	ItemDate      string               `json:"itemDate"`
	Amount        float64              `json:"amount,omitempty"`
	Balance       float64              `json:"balance,omitempty"`
	ItemClass     string               `json:"itemClass,omitempty"`
	ItemClassData map[string]string    `json:"itemClassData,omitempty"`
	LegacyData    *StatementLegacyData `json:"legacyData,omitempty"`
}

// AccountStatementReport pages through statement items
type AccountStatementReport struct {
	AccountStatement []StatementItem `json:"accountStatement"`
	MoreAvailable    bool            `json:"moreAvailable"`
}

// GetAccountStatement returns account statement entries matching params.
// A nil ItemDateRange gets the default window around now.
func (c *Client) GetAccountStatement(ctx context.Context, params StatementParams) (*AccountStatementReport, error) {
	if params.ItemDateRange == nil {
		params.ItemDateRange = DefaultTimeRange(time.Now())
	}
	if params.Locale == "" {
		params.Locale = c.config.Locale
	}

	var resp response[AccountStatementReport]
	if err := c.account(ctx, "getAccountStatement", params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Result, nil
}

// CurrencyRate is one exchange rate relative to the requested base
type CurrencyRate struct {
	CurrencyCode string  `json:"currencyCode"`
	Rate         float64 `json:"rate"`
}

// ListCurrencyRates returns exchange rates against fromCurrency. An empty
// fromCurrency means GBP, decided by the exchange.
func (c *Client) ListCurrencyRates(ctx context.Context, fromCurrency string) ([]CurrencyRate, error) {
	params := struct {
		FromCurrency string `json:"fromCurrency,omitempty"`
	}{fromCurrency}

	var resp response[[]CurrencyRate]
	if err := c.account(ctx, "listCurrencyRates", params, &resp); err != nil {
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
