package ports

import (
	"context"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// TradeSharesInput carries one share trade order.
type TradeSharesInput struct {
	ActingUserID string
	Action       domain.TradeAction
	ShareID      string
	Price        float64
}

// MarketService defines the share market use-cases.
type MarketService interface {
	// TradeShares executes a BUY or SELL atomically. Only investors may
	// trade. BUY debits price+fee from the buyer, credits price to the
	// seller (the fee is burned), transfers ownership, and appends a
	// Transaction. SELL marks the share sold and credits the seller.
	TradeShares(ctx context.Context, input TradeSharesInput) error
	// OwnedShareID returns the id of the first share owned by the user.
	OwnedShareID(ctx context.Context, userID string) (string, error)
}
