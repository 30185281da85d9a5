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

// IssuanceGuard abstracts the once-per-period lock for the weekly sweep
// (Redis). A nil guard disables the check.
type IssuanceGuard interface {
	// Acquire reports whether this replica won the right to run the sweep
	// for the given period.
	Acquire(ctx context.Context, period string) (bool, error)
}

// CurrencyService implements the currency desk: periodic income issuance,
// investor Wally trades, and admin rate quotes.
type CurrencyService struct {
	users       ports.UserRepository
	distributor *FollowService
	tx          ports.TxRunner
	guard       IssuanceGuard
	log         zerolog.Logger
}

func NewCurrencyService(
	users ports.UserRepository,
	distributor *FollowService,
	tx ports.TxRunner,
	guard IssuanceGuard,
	log zerolog.Logger,
) *CurrencyService {
	return &CurrencyService{
		users:       users,
		distributor: distributor,
		tx:          tx,
		guard:       guard,
		log:         log,
	}
}

// IssuePeriodicIncome runs the weekly sweep over every ACTIVE account:
// +100 data income, follow-income distribution, then the data+follow total is
// folded into the Wally wallet. Each account's three steps commit in their
// own transaction; a failed account is logged and reported, and the sweep
// moves on.
func (s *CurrencyService) IssuePeriodicIncome(ctx context.Context) (ports.IssueIncomeResult, error) {
	var result ports.IssueIncomeResult

	period := issuancePeriod(time.Now().UTC())
	if s.guard != nil {
		won, err := s.guard.Acquire(ctx, period)
		if err != nil {
			// The guard is an optimization against double issuance across
			// replicas, not a correctness gate. Mirror its unavailability as
			// a warning and proceed.
			s.log.Warn().Err(err).Str("period", period).Msg("issuance guard unavailable, proceeding")
		} else if !won {
			s.log.Info().Str("period", period).Msg("issuance already ran for period, skipping")
			result.Skipped = true
			return result, nil
		}
	}

	ids, err := s.users.ListActiveIDs(ctx)
	if err != nil {
		return result, fmt.Errorf("issue income: %w", err)
	}

	var errs []error
	for _, id := range ids {
		if err := s.issueFor(ctx, id); err != nil {
			s.log.Error().Err(err).Str("user_id", id).Msg("income issuance failed for account")
			result.Failed++
			errs = append(errs, fmt.Errorf("account %s: %w", id, err))
			continue
		}
		result.Processed++
	}

	s.log.Info().
		Str("period", period).
		Int("processed", result.Processed).
		Int("failed", result.Failed).
		Msg("periodic income issued")

	return result, errors.Join(errs...)
}

func (s *CurrencyService) issueFor(ctx context.Context, userID string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.users.IncrementBalances(ctx, userID, domain.BalanceDelta{DataIncome: domain.WeeklyDataIncome}); err != nil {
			return fmt.Errorf("credit data income: %w", err)
		}
		if _, err := s.distributor.distribute(ctx, userID); err != nil {
			return err
		}
		u, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		return s.users.IncrementBalances(ctx, userID, domain.BalanceDelta{WallyWallet: u.DataIncome + u.FollowIncome})
	})
}

// TradeCurrency converts between an investor's data income and Wallys 1:1.
func (s *CurrencyService) TradeCurrency(ctx context.Context, input ports.CurrencyTradeInput) error {
	if !input.Action.Valid() {
		return domain.ErrInvalidAction
	}
	if input.Amount <= 0 {
		return domain.ErrInvalidAmount
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		actor, err := s.users.FindByID(ctx, input.ActingUserID)
		if err != nil {
			return fmt.Errorf("trade currency: %w", err)
		}
		if actor.RoleType != domain.RoleInvestor {
			return domain.ErrInvestorRequired
		}

		delta := domain.BalanceDelta{DataIncome: input.Amount}
		if input.Action == domain.ActionBuy {
			delta.DataIncome = -input.Amount
		}
		return s.users.IncrementBalances(ctx, input.ActingUserID, delta)
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("user_id", input.ActingUserID).
		Str("action", string(input.Action)).
		Float64("amount", input.Amount).
		Msg("currency traded")

	return nil
}

// QuoteAdminTrade prices a Wally amount at the fixed platform rates. It is a
// pure calculation: no balance is moved.
func (s *CurrencyService) QuoteAdminTrade(input ports.AdminQuoteInput) (*ports.AdminQuote, error) {
	if !input.Action.Valid() {
		return nil, domain.ErrInvalidAction
	}
	if input.Wallys <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	rate := domain.WallySellRate
	if input.Action == domain.ActionBuy {
		rate = domain.WallyBuyRate
	}
	return &ports.AdminQuote{
		Action: input.Action,
		Wallys: input.Wallys,
		Rate:   rate,
		Value:  input.Wallys * rate,
	}, nil
}

// issuancePeriod keys one weekly sweep, e.g. "2026-W35".
func issuancePeriod(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
