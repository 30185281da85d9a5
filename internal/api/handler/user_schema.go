package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type profileRequest struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Dob        string   `json:"dob"`
	Country    string   `json:"country"`
	Zipcode    string   `json:"zipcode"`
	Profession string   `json:"profession"`
	Company    string   `json:"company"`
	Links      []string `json:"links"`
	Tagline    string   `json:"tagline"`
}

type createUserRequest struct {
	Email      string         `json:"email"       validate:"required,email"`
	Profile    profileRequest `json:"profile"`
	RoleType   string         `json:"role_type"   validate:"omitempty,oneof=user investor admin"`
	SeedEmails []string       `json:"seed_emails" validate:"omitempty,dive,email"`
}

type createUserResponse struct {
	ID string `json:"id"`
}

// updateProfileRequest overwrites every editable field; omitted fields are
// cleared, matching the overwrite semantics of the profile update.
type updateProfileRequest struct {
	FirstName  string   `json:"first_name" validate:"required"`
	LastName   string   `json:"last_name"  validate:"required"`
	Dob        string   `json:"dob"`
	Country    string   `json:"country"`
	Zipcode    string   `json:"zipcode"`
	Profession string   `json:"profession"`
	Company    string   `json:"company"`
	Links      []string `json:"links"`
	Tagline    string   `json:"tagline"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type profileResponse struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Dob        string   `json:"dob,omitempty"`
	Country    string   `json:"country,omitempty"`
	Zipcode    string   `json:"zipcode,omitempty"`
	Profession string   `json:"profession,omitempty"`
	Company    string   `json:"company,omitempty"`
	Links      []string `json:"links,omitempty"`
	Tagline    string   `json:"tagline,omitempty"`
}

type accountResponse struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	Profile      profileResponse `json:"profile"`
	RoleType     string          `json:"role_type"`
	Status       string          `json:"status"`
	DataIncome   float64         `json:"data_income"`
	FollowIncome float64         `json:"follow_income"`
	WallyWallet  float64         `json:"wally_wallet"`
	AdminRevenue float64         `json:"admin_revenue"`
	Subscription bool            `json:"subscription"`
}

type lookupUserResponse struct {
	ID string `json:"id"`
}

type followResponse struct {
	FollowerID  string `json:"follower_id"`
	FollowingID string `json:"following_id"`
}

type upgradeInvestorResponse struct {
	Upgraded bool `json:"upgraded"`
}
