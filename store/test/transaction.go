package test

import (
	"context"

	"github.com/healthdesk/registry/store"
)

// PassthroughTransactionRunner runs the transaction body directly against
// the supplied context. Useful in unit tests where no real session exists.
type PassthroughTransactionRunner struct{}

var _ store.TransactionRunner = &PassthroughTransactionRunner{}

func (PassthroughTransactionRunner) WithTransaction(ctx context.Context, txn store.Transaction) (interface{}, error) {
	return txn(ctx)
}
