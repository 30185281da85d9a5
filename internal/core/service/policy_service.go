package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wallyverse/social-exchange/internal/core/domain"
	"github.com/wallyverse/social-exchange/internal/core/ports"
)

// PolicyService implements the admin policy store.
type PolicyService struct {
	policies ports.PolicyRepository
	tx       ports.TxRunner
	log      zerolog.Logger
}

func NewPolicyService(policies ports.PolicyRepository, tx ports.TxRunner, log zerolog.Logger) *PolicyService {
	return &PolicyService{policies: policies, tx: tx, log: log}
}

// SetMinimumFollowCost upserts the distribution threshold. The store
// guarantees a single row per action name even under concurrent writers.
func (s *PolicyService) SetMinimumFollowCost(ctx context.Context, value float64) error {
	if value < 0 {
		return fmt.Errorf("%w: minimum follow cost cannot be negative", domain.ErrValidation)
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.policies.Upsert(ctx, domain.ActionMinimumFollowCost, value)
	})
	if err != nil {
		return err
	}

	s.log.Info().Float64("value", value).Msg("minimum follow cost updated")
	return nil
}

// MinimumFollowCost returns the current threshold, falling back to the
// default when it was never set.
func (s *PolicyService) MinimumFollowCost(ctx context.Context) (float64, error) {
	v, err := s.policies.Get(ctx, domain.ActionMinimumFollowCost)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultMinimumFollowCost, nil
		}
		return 0, err
	}
	return v, nil
}
