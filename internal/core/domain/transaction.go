package domain

import "time"

// TradeAction is the direction of a share or currency trade.
type TradeAction string

const (
	ActionBuy  TradeAction = "BUY"
	ActionSell TradeAction = "SELL"
)

// Valid reports whether the action is one of BUY or SELL.
func (a TradeAction) Valid() bool {
	return a == ActionBuy || a == ActionSell
}

// Transaction is an immutable audit record of a share trade.
type Transaction struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	BuyerID   string      `json:"buyer_id" bson:"buyer_id"`
	SellerID  string      `json:"seller_id" bson:"seller_id"`
	ShareID   string      `json:"share_id" bson:"share_id"`
	Price     float64     `json:"price" bson:"price"`
	Type      TradeAction `json:"type" bson:"type"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}
