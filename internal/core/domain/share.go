package domain

import "time"

// Share prices and market rules.
const (
	// SignupSharePrice is the price a share is minted at when an account
	// completes its profile (initial signup or a later profile edit).
	SignupSharePrice = 100.0
	// PlaceholderSharePrice is the price minted for bare-email placeholder
	// accounts. A price-0 share makes the account unfollowable until the
	// profile is completed.
	PlaceholderSharePrice = 0.0
	// FollowPriceStep is added to a share's price for every new follower.
	FollowPriceStep = 1.0

	// Fee tiers for BUY trades. The fee is burned: it is debited from the
	// buyer and credited to nobody.
	feeRateHigh     = 0.02
	feeRateLow      = 0.01
	feeTierBoundary = 100.0
)

// Share is a tradable fractional stake in a user. Exactly one owner at all
// times; price never drops below zero.
type Share struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	Price     float64   `json:"price" bson:"price"`
	Sold      bool      `json:"sold" bson:"sold"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// TradeFee returns the platform fee for buying at the given price: 2% above
// the tier boundary, 1% at or below it.
func TradeFee(price float64) float64 {
	if price > feeTierBoundary {
		return price * feeRateHigh
	}
	return price * feeRateLow
}
