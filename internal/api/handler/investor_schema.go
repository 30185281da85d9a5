package handler

// --- Request / Response types ---

type tradeSharesRequest struct {
	Action  string  `json:"action"   validate:"required,oneof=BUY SELL"`
	ShareID string  `json:"share_id" validate:"required"`
	Price   float64 `json:"price"    validate:"required,gt=0"`
}

type tradeSharesResponse struct {
	Action  string  `json:"action"`
	ShareID string  `json:"share_id"`
	Price   float64 `json:"price"`
}

type ownedShareResponse struct {
	ShareID string `json:"share_id"`
}

type tradeCurrencyRequest struct {
	Action string  `json:"action" validate:"required,oneof=BUY SELL"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type tradeCurrencyResponse struct {
	Action string  `json:"action"`
	Amount float64 `json:"amount"`
}
