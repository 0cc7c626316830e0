package db

import (
	"context"
	"fmt"
)

// TxRunner runs a function inside one database transaction. The function
// receives a derived context carrying the transaction; repository methods
// that resolve their connection through TxFromContext join it automatically.
// Commit happens only when fn returns nil, otherwise the transaction is
// rolled back and the error returned unchanged.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txRunner struct{}

// NewTxRunner returns the pgx-backed TxRunner used in production. It relies
// on the tenant middleware having pinned a connection on the context.
func NewTxRunner() TxRunner {
	return txRunner{}
}

func (txRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	txCtx, tx, err := WithTx(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
