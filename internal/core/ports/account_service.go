package ports

import (
	"context"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	FirstName  string
	LastName   string
	Dob        string
	Country    string
	Zipcode    string
	Profession string
	Company    string
	Links      []string
	Tagline    string
}

// CreateAccountInput carries everything needed to open a primary account.
// SeedEmails are invited addresses: unknown ones become placeholder accounts
// with a zero-price share, known profiled ones receive a follow edge from the
// primary account instead.
type CreateAccountInput struct {
	Email      string
	Profile    ProfileInput
	RoleType   domain.RoleType // defaults to "user" when empty
	SeedEmails []string
}

// AccountSnapshot is the full account view returned after a profile update.
type AccountSnapshot struct {
	ID           string
	Email        string
	Profile      ProfileInput
	RoleType     domain.RoleType
	Status       domain.AccountStatus
	DataIncome   float64
	FollowIncome float64
	WallyWallet  float64
	AdminRevenue float64
	Subscription bool
}

// AccountService defines the account registry use-cases.
type AccountService interface {
	// CreateAccount opens the primary account, mints its share, and seeds
	// invited addresses, all in one atomic unit. Returns the new account id.
	CreateAccount(ctx context.Context, input CreateAccountInput) (string, error)
	// UpdateProfile overwrites the editable fields and re-mints a share at
	// the signup price for the completed profile.
	UpdateProfile(ctx context.Context, userID string, profile ProfileInput) (*AccountSnapshot, error)
	LookupIDByEmail(ctx context.Context, email string) (string, error)
	// FreezeAccount sets the account INACTIVE. Idempotent.
	FreezeAccount(ctx context.Context, userID string) error
	// UpgradeToInvestor promotes a subscribed account with at least one
	// outgoing follow edge. Returns false (and no error) when the criteria
	// are not met.
	UpgradeToInvestor(ctx context.Context, userID string) (bool, error)
}
