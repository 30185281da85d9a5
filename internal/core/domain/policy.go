package domain

import "time"

// Policy action names. One AdminAction row exists per name.
const (
	ActionMinimumFollowCost = "setMinimumFollowCost"
)

// DefaultMinimumFollowCost is the distribution threshold used when no policy
// row has been written yet.
const DefaultMinimumFollowCost = 100.0

// Wally exchange rates, fixed by the platform.
const (
	WallyBuyRate  = 0.009
	WallySellRate = 0.011
)

// AdminAction is a singleton-per-name global policy parameter.
type AdminAction struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Action    string    `json:"action" bson:"action"`
	Value     float64   `json:"value" bson:"value"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// WeeklyDataIncome is the amount credited to every active account by one
// periodic issuance sweep.
const WeeklyDataIncome = 100.0
