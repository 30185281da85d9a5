package ports

import "context"

// TxRunner executes fn inside one atomic ledger transaction. All repository
// calls made with the ctx passed to fn join that transaction; if fn returns
// an error every write is rolled back. Commit and session failures are
// surfaced as domain.ErrStorage.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
