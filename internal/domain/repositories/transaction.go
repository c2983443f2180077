package repositories

import "context"

// TxFn runs with a transaction carried in ctx, so repository calls made
// inside it join the same transaction.
type TxFn func(ctx context.Context) error

// TransactionManager groups repository writes into one atomic unit, such as
// appending a turn together with touching its chat.
type TransactionManager interface {
	// ExecTx runs fn in a transaction, committing on nil and rolling back
	// on error.
	ExecTx(ctx context.Context, fn TxFn) error
}
