package ports

import (
	"context"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// CurrencyTradeInput is an investor's Wally trade order.
type CurrencyTradeInput struct {
	ActingUserID string
	Action       domain.TradeAction
	Amount       float64
}

// AdminQuoteInput asks for the monetary value of a Wally amount at the fixed
// platform rates.
type AdminQuoteInput struct {
	Action domain.TradeAction
	Wallys float64
}

// AdminQuote is the computed cost (BUY) or revenue (SELL) of the trade. No
// ledger mutation is attached to it.
type AdminQuote struct {
	Action domain.TradeAction
	Wallys float64
	Rate   float64
	Value  float64
}

// IssueIncomeResult reports one periodic issuance sweep.
type IssueIncomeResult struct {
	// Processed counts accounts whose three-step sequence committed.
	Processed int
	// Failed counts accounts whose processing rolled back; their errors are
	// reported alongside the result.
	Failed int
	// Skipped is true when another replica already ran the sweep for the
	// current period.
	Skipped bool
}

// CurrencyService defines the currency desk use-cases.
type CurrencyService interface {
	// IssuePeriodicIncome visits every ACTIVE account exactly once: +100
	// data income, follow-income distribution, then the data+follow total is
	// folded into the Wally wallet. Per-account failures do not stop the
	// sweep; they are logged and reported in the returned error.
	IssuePeriodicIncome(ctx context.Context) (IssueIncomeResult, error)
	// TradeCurrency converts between an investor's data income and Wallys
	// 1:1. BUY debits, SELL credits.
	TradeCurrency(ctx context.Context, input CurrencyTradeInput) error
	// QuoteAdminTrade prices a Wally amount at the fixed buy/sell rates.
	QuoteAdminTrade(input AdminQuoteInput) (*AdminQuote, error)
}
