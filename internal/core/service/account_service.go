package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wallyverse/social-exchange/internal/core/domain"
	"github.com/wallyverse/social-exchange/internal/core/ports"
)

// AccountService implements the account registry: signup with seed emails,
// profile updates, email lookup, freezing, and the investor upgrade.
type AccountService struct {
	users     ports.UserRepository
	shares    ports.ShareRepository
	graph     ports.FollowRepository
	followSvc *FollowService
	tx        ports.TxRunner
	log       zerolog.Logger
}

func NewAccountService(
	users ports.UserRepository,
	shares ports.ShareRepository,
	graph ports.FollowRepository,
	followSvc *FollowService,
	tx ports.TxRunner,
	log zerolog.Logger,
) *AccountService {
	return &AccountService{
		users:     users,
		shares:    shares,
		graph:     graph,
		followSvc: followSvc,
		tx:        tx,
		log:       log,
	}
}

// CreateAccount opens the primary account, mints its share at the signup
// price, and processes the seed email list. The whole operation is one
// atomic unit: a failure on any seed rolls back the primary account too.
func (s *AccountService) CreateAccount(ctx context.Context, input ports.CreateAccountInput) (string, error) {
	if input.Email == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	role := input.RoleType
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleInvestor && role != domain.RoleAdmin {
		return "", fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	var id string
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
			return domain.ErrEmailTaken
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		now := time.Now().UTC()
		var err error
		id, err = s.users.Create(ctx, newAccount(input.Email, toProfile(input.Profile), role, now))
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}
		if _, err = s.shares.Create(ctx, &domain.Share{
			OwnerID:   id,
			Price:     domain.SignupSharePrice,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("create account: mint share: %w", err)
		}

		return s.seedAccounts(ctx, id, input.Email, input.SeedEmails, now)
	})
	if err != nil {
		return "", err
	}

	s.log.Info().
		Str("user_id", id).
		Str("role", string(role)).
		Int("seed_emails", len(input.SeedEmails)).
		Msg("account created")

	return id, nil
}

// seedAccounts handles the invited addresses of a signup. Unknown addresses
// become placeholder accounts owning a zero-price share. Addresses already
// registered with a filled profile get a follow edge from the new account
// instead; bare placeholders are left alone (they already own their share
// and cannot be followed at price zero).
func (s *AccountService) seedAccounts(ctx context.Context, primaryID, primaryEmail string, seedEmails []string, now time.Time) error {
	seen := map[string]struct{}{primaryEmail: {}}
	for _, addr := range seedEmails {
		if addr == "" {
			continue
		}
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}

		existing, err := s.users.FindByEmail(ctx, addr)
		switch {
		case err == nil:
			if existing.Profile.IsEmpty() {
				continue
			}
			if err := s.followSvc.follow(ctx, primaryID, existing.ID); err != nil {
				return fmt.Errorf("seed %s: %w", addr, err)
			}
		case errors.Is(err, domain.ErrNotFound):
			placeholderID, err := s.users.Create(ctx, newAccount(addr, domain.Profile{}, domain.RoleUser, now))
			if err != nil {
				return fmt.Errorf("seed %s: %w", addr, err)
			}
			if _, err := s.shares.Create(ctx, &domain.Share{
				OwnerID:   placeholderID,
				Price:     domain.PlaceholderSharePrice,
				CreatedAt: now,
			}); err != nil {
				return fmt.Errorf("seed %s: mint share: %w", addr, err)
			}
		default:
			return fmt.Errorf("seed %s: %w", addr, err)
		}
	}
	return nil
}

// UpdateProfile overwrites the editable fields and re-mints a share at the
// signup price: completing the profile "re-registers" the account's value on
// the market.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, profile ports.ProfileInput) (*ports.AccountSnapshot, error) {
	var snapshot *ports.AccountSnapshot
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.FindByID(ctx, userID); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		if err := s.users.UpdateProfile(ctx, userID, toProfile(profile)); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		if _, err := s.shares.Create(ctx, &domain.Share{
			OwnerID:   userID,
			Price:     domain.SignupSharePrice,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return fmt.Errorf("update profile: mint share: %w", err)
		}

		updated, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		snapshot = toSnapshot(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return snapshot, nil
}

// LookupIDByEmail resolves an account id from its unique email.
func (s *AccountService) LookupIDByEmail(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

// FreezeAccount marks the account INACTIVE. Freezing a frozen account
// succeeds silently.
func (s *AccountService) FreezeAccount(ctx context.Context, userID string) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.FindByID(ctx, userID); err != nil {
			return fmt.Errorf("freeze account: %w", err)
		}
		return s.users.SetStatus(ctx, userID, domain.StatusInactive)
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Msg("account frozen")
	return nil
}

// UpgradeToInvestor promotes a plain user with an active subscription and at
// least one outgoing follow edge. Unmet criteria are reported as
// applied=false, not as an error.
func (s *AccountService) UpgradeToInvestor(ctx context.Context, userID string) (bool, error) {
	applied := false
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("upgrade to investor: %w", err)
		}
		if u.RoleType != domain.RoleUser || !u.Subscription {
			return nil
		}
		following, err := s.graph.CountFollowing(ctx, userID)
		if err != nil {
			return fmt.Errorf("upgrade to investor: %w", err)
		}
		if following < 1 {
			return nil
		}
		if err := s.users.SetRole(ctx, userID, domain.RoleInvestor); err != nil {
			return fmt.Errorf("upgrade to investor: %w", err)
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	s.log.Info().Str("user_id", userID).Bool("applied", applied).Msg("investor upgrade evaluated")
	return applied, nil
}

func newAccount(email string, p domain.Profile, role domain.RoleType, now time.Time) *domain.User {
	return &domain.User{
		Email:        email,
		Profile:      p,
		RoleType:     role,
		Status:       domain.StatusActive,
		DataIncome:   0,
		FollowIncome: 0,
		WallyWallet:  domain.InitialWallyWallet,
		AdminRevenue: domain.InitialAdminRevenue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func toProfile(p ports.ProfileInput) domain.Profile {
	return domain.Profile{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Dob:        p.Dob,
		Country:    p.Country,
		Zipcode:    p.Zipcode,
		Profession: p.Profession,
		Company:    p.Company,
		Links:      p.Links,
		Tagline:    p.Tagline,
	}
}

func toSnapshot(u *domain.User) *ports.AccountSnapshot {
	return &ports.AccountSnapshot{
		ID:    u.ID,
		Email: u.Email,
		Profile: ports.ProfileInput{
			FirstName:  u.Profile.FirstName,
			LastName:   u.Profile.LastName,
			Dob:        u.Profile.Dob,
			Country:    u.Profile.Country,
			Zipcode:    u.Profile.Zipcode,
			Profession: u.Profile.Profession,
			Company:    u.Profile.Company,
			Links:      u.Profile.Links,
			Tagline:    u.Profile.Tagline,
		},
		RoleType:     u.RoleType,
		Status:       u.Status,
		DataIncome:   u.DataIncome,
		FollowIncome: u.FollowIncome,
		WallyWallet:  u.WallyWallet,
		AdminRevenue: u.AdminRevenue,
		Subscription: u.Subscription,
	}
}
