package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// TxManager implements ports.TxRunner on top of MongoDB sessions. Repository
// calls made with the callback's context join the session's transaction, so
// a returned error aborts every write of the operation.
type TxManager struct {
	client *mongo.Client
}

func NewTxManager(client *mongo.Client) *TxManager {
	return &TxManager{client: client}
}

// WithinTx runs fn inside one MongoDB transaction. Domain errors returned by
// fn pass through untouched; session and commit failures surface as
// domain.ErrStorage so callers can treat them as retryable.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("%w: start session: %v", domain.ErrStorage, err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil {
		if domain.IsDomainError(err) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}
