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

// FollowService maintains the follow graph and runs follow-income
// distribution. The minimum-follow-cost threshold is read from the policy
// store on every distribution call.
type FollowService struct {
	users    ports.UserRepository
	shares   ports.ShareRepository
	follows  ports.FollowRepository
	policies ports.PolicyRepository
	tx       ports.TxRunner
	log      zerolog.Logger
}

func NewFollowService(
	users ports.UserRepository,
	shares ports.ShareRepository,
	follows ports.FollowRepository,
	policies ports.PolicyRepository,
	tx ports.TxRunner,
	log zerolog.Logger,
) *FollowService {
	return &FollowService{
		users:    users,
		shares:   shares,
		follows:  follows,
		policies: policies,
		tx:       tx,
		log:      log,
	}
}

// Follow creates the follower→following edge and bumps the followed share's
// price by one step, atomically.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.follow(ctx, followerID, followingID)
	})
}

// follow assumes ctx is already transactional. CreateAccount composes it into
// its own transaction when seeding invited accounts.
func (s *FollowService) follow(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return domain.ErrSelfFollow
	}

	if _, err := s.users.FindByID(ctx, followerID); err != nil {
		return fmt.Errorf("follow: follower: %w", err)
	}
	if _, err := s.users.FindByID(ctx, followingID); err != nil {
		return fmt.Errorf("follow: following: %w", err)
	}

	exists, err := s.follows.Exists(ctx, followerID, followingID)
	if err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	if exists {
		return domain.ErrAlreadyFollowing
	}

	// An account is followable only once it owns a priced share, i.e. after
	// a completed profile.
	share, err := s.shares.FirstByOwner(ctx, followingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFollowable
		}
		return fmt.Errorf("follow: %w", err)
	}
	if share.Price <= 0 {
		return domain.ErrNotFollowable
	}

	if err := s.shares.IncrementPrice(ctx, share.ID, domain.FollowPriceStep); err != nil {
		return fmt.Errorf("follow: bump price: %w", err)
	}
	if err := s.follows.Create(ctx, &domain.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("follow: %w", err)
	}

	s.log.Info().
		Str("follower_id", followerID).
		Str("following_id", followingID).
		Float64("share_price", share.Price+domain.FollowPriceStep).
		Msg("follow edge created")

	return nil
}

// DistributeFollowIncome recomputes the follow income of userID from the
// accounts it follows. Returns the running total written to the account.
func (s *FollowService) DistributeFollowIncome(ctx context.Context, userID string) (float64, error) {
	var total float64
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		total, err = s.distribute(ctx, userID)
		return err
	})
	return total, err
}

// distribute assumes ctx is already transactional; the issuance sweep calls
// it inside each per-account transaction.
//
// The accounting is deliberately literal: each followed account contributes
// dataIncome/followerCount when that exceeds the threshold, the follower's
// followIncome is overwritten with the running total, and the followed
// account's dataIncome is zeroed immediately — even when other followers have
// not been paid out of it yet.
func (s *FollowService) distribute(ctx context.Context, userID string) (float64, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return 0, fmt.Errorf("distribute income: %w", err)
	}

	followingIDs, err := s.follows.ListFollowing(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("distribute income: %w", err)
	}

	threshold, err := s.minimumFollowCost(ctx)
	if err != nil {
		return 0, fmt.Errorf("distribute income: %w", err)
	}

	var total float64
	for _, followedID := range followingIDs {
		followed, err := s.users.FindByID(ctx, followedID)
		if err != nil {
			return 0, fmt.Errorf("distribute income: followed %s: %w", followedID, err)
		}
		followers, err := s.follows.CountFollowers(ctx, followedID)
		if err != nil {
			return 0, fmt.Errorf("distribute income: %w", err)
		}
		if followers == 0 {
			continue
		}

		perFollower := followed.DataIncome / float64(followers)
		if perFollower <= threshold {
			continue
		}

		total += perFollower
		if err := s.users.SetFollowIncome(ctx, userID, total); err != nil {
			return 0, fmt.Errorf("distribute income: %w", err)
		}
		if err := s.users.ResetDataIncome(ctx, followedID); err != nil {
			return 0, fmt.Errorf("distribute income: %w", err)
		}
	}

	s.log.Debug().
		Str("user_id", userID).
		Int("following", len(followingIDs)).
		Float64("total", total).
		Msg("follow income distributed")

	return total, nil
}

func (s *FollowService) minimumFollowCost(ctx context.Context) (float64, error) {
	v, err := s.policies.Get(ctx, domain.ActionMinimumFollowCost)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultMinimumFollowCost, nil
		}
		return 0, err
	}
	return v, nil
}
