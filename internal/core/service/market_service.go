package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wallyverse/social-exchange/internal/core/domain"
	"github.com/wallyverse/social-exchange/internal/core/ports"
)

// MarketService implements the share market: investor-only BUY/SELL with a
// tiered, burned fee and an append-only trade audit trail.
type MarketService struct {
	users  ports.UserRepository
	shares ports.ShareRepository
	trades ports.TransactionRepository
	tx     ports.TxRunner
	log    zerolog.Logger
}

func NewMarketService(
	users ports.UserRepository,
	shares ports.ShareRepository,
	trades ports.TransactionRepository,
	tx ports.TxRunner,
	log zerolog.Logger,
) *MarketService {
	return &MarketService{
		users:  users,
		shares: shares,
		trades: trades,
		tx:     tx,
		log:    log,
	}
}

// TradeShares executes one BUY or SELL order atomically; a failure at any
// step rolls back every prior write.
func (s *MarketService) TradeShares(ctx context.Context, input ports.TradeSharesInput) error {
	if !input.Action.Valid() {
		return domain.ErrInvalidAction
	}
	if input.Price <= 0 {
		return domain.ErrInvalidPrice
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		actor, err := s.users.FindByID(ctx, input.ActingUserID)
		if err != nil {
			return fmt.Errorf("trade shares: %w", err)
		}
		if actor.RoleType != domain.RoleInvestor {
			return domain.ErrInvestorRequired
		}

		share, err := s.shares.FindByID(ctx, input.ShareID)
		if err != nil {
			return fmt.Errorf("trade shares: %w", err)
		}

		if input.Action == domain.ActionBuy {
			return s.buy(ctx, actor, share, input.Price)
		}
		return s.sell(ctx, actor, share, input.Price)
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("user_id", input.ActingUserID).
		Str("share_id", input.ShareID).
		Str("action", string(input.Action)).
		Float64("price", input.Price).
		Msg("shares traded")

	return nil
}

func (s *MarketService) buy(ctx context.Context, buyer *domain.User, share *domain.Share, price float64) error {
	if share.OwnerID == buyer.ID {
		return domain.ErrOwnShare
	}

	fee := domain.TradeFee(price)
	totalDebit := price + fee
	if buyer.DataIncome < totalDebit {
		return domain.ErrInsufficientBalance
	}

	// The fee is burned: the buyer pays price+fee, the seller receives only
	// the price.
	if err := s.users.IncrementBalances(ctx, buyer.ID, domain.BalanceDelta{DataIncome: -totalDebit}); err != nil {
		return fmt.Errorf("buy: debit buyer: %w", err)
	}
	if err := s.users.IncrementBalances(ctx, share.OwnerID, domain.BalanceDelta{DataIncome: price}); err != nil {
		return fmt.Errorf("buy: credit seller: %w", err)
	}
	if err := s.shares.SetOwner(ctx, share.ID, buyer.ID); err != nil {
		return fmt.Errorf("buy: transfer ownership: %w", err)
	}
	if err := s.trades.Append(ctx, &domain.Transaction{
		BuyerID:   buyer.ID,
		SellerID:  share.OwnerID,
		ShareID:   share.ID,
		Price:     price,
		Type:      domain.ActionBuy,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("buy: record transaction: %w", err)
	}
	return nil
}

// sell marks the share sold and credits the seller. Ownership stays with the
// seller and no Transaction is appended.
// TODO: product call pending on whether SELL should transfer ownership and
// record a Transaction the way BUY does.
func (s *MarketService) sell(ctx context.Context, seller *domain.User, share *domain.Share, price float64) error {
	if share.OwnerID != seller.ID {
		return domain.ErrNotShareOwner
	}
	if share.Sold {
		return domain.ErrShareAlreadySold
	}

	if err := s.shares.MarkSold(ctx, share.ID); err != nil {
		return fmt.Errorf("sell: %w", err)
	}
	if err := s.users.IncrementBalances(ctx, seller.ID, domain.BalanceDelta{DataIncome: price}); err != nil {
		return fmt.Errorf("sell: credit seller: %w", err)
	}
	return nil
}

// OwnedShareID returns the id of the first share owned by the user.
func (s *MarketService) OwnedShareID(ctx context.Context, userID string) (string, error) {
	share, err := s.shares.FirstByOwner(ctx, userID)
	if err != nil {
		return "", err
	}
	return share.ID, nil
}
