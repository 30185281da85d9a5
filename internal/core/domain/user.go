package domain

import "time"

// RoleType is the account's role in the economy.
type RoleType string

const (
	RoleUser     RoleType = "user"
	RoleInvestor RoleType = "investor"
	RoleAdmin    RoleType = "admin"
)

// AccountStatus marks whether an account participates in periodic issuance.
type AccountStatus string

const (
	StatusActive   AccountStatus = "ACTIVE"
	StatusInactive AccountStatus = "INACTIVE"
)

// Signup defaults. Every new account, primary or placeholder, starts with
// these balances.
const (
	InitialWallyWallet  = 50.0
	InitialAdminRevenue = 50.0
)

// Profile holds the editable identity fields of an account.
type Profile struct {
	FirstName  string   `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName   string   `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Dob        string   `json:"dob,omitempty" bson:"dob,omitempty"`
	Country    string   `json:"country,omitempty" bson:"country,omitempty"`
	Zipcode    string   `json:"zipcode,omitempty" bson:"zipcode,omitempty"`
	Profession string   `json:"profession,omitempty" bson:"profession,omitempty"`
	Company    string   `json:"company,omitempty" bson:"company,omitempty"`
	Links      []string `json:"links,omitempty" bson:"links,omitempty"`
	Tagline    string   `json:"tagline,omitempty" bson:"tagline,omitempty"`
}

// IsEmpty reports whether no profile field has been filled in. Placeholder
// accounts created from a bare seed email have an empty profile until their
// owner signs up properly.
func (p Profile) IsEmpty() bool {
	return p.FirstName == "" && p.LastName == "" && p.Dob == "" &&
		p.Country == "" && p.Zipcode == "" && p.Profession == "" &&
		p.Company == "" && len(p.Links) == 0 && p.Tagline == ""
}

// User is an account on the exchange. The four balance fields accrue
// independently: DataIncome via weekly issuance and share trades,
// FollowIncome via distribution, WallyWallet via the weekly fold, and
// AdminRevenue as the platform cut.
type User struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	Email        string        `json:"email" bson:"email"`
	Profile      Profile       `json:"profile" bson:"profile"`
	RoleType     RoleType      `json:"role_type" bson:"role_type"`
	Status       AccountStatus `json:"status" bson:"status"`
	DataIncome   float64       `json:"data_income" bson:"data_income"`
	FollowIncome float64       `json:"follow_income" bson:"follow_income"`
	WallyWallet  float64       `json:"wally_wallet" bson:"wally_wallet"`
	AdminRevenue float64       `json:"admin_revenue" bson:"admin_revenue"`
	Subscription bool          `json:"subscription" bson:"subscription"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" bson:"updated_at"`
}

// IsActive reports whether the account is not frozen.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// BalanceDelta carries per-field balance increments applied atomically by the
// ledger store. Zero fields are left untouched.
type BalanceDelta struct {
	DataIncome   float64
	FollowIncome float64
	WallyWallet  float64
	AdminRevenue float64
}
