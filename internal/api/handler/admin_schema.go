package handler

// --- Request / Response types ---

type setMinimumFollowCostRequest struct {
	Value float64 `json:"value" validate:"gte=0"`
}

type minimumFollowCostResponse struct {
	Value float64 `json:"value"`
}

type adminQuoteRequest struct {
	Action string  `json:"action" validate:"required,oneof=BUY SELL"`
	Wallys float64 `json:"wallys" validate:"required,gt=0"`
}

type adminQuoteResponse struct {
	Action string  `json:"action"`
	Wallys float64 `json:"wallys"`
	Rate   float64 `json:"rate"`
	Value  float64 `json:"value"`
}

type freezeAccountResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type issueIncomeResponse struct {
	Processed int  `json:"processed"`
	Failed    int  `json:"failed"`
	Skipped   bool `json:"skipped"`
}
