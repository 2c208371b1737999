package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

type Transaction = func(sessCtx context.Context) (interface{}, error)

// TransactionRunner executes a function inside a single multi-document
// transaction. Callers pass the session context they receive to every
// repository operation that must commit or abort atomically.
type TransactionRunner interface {
	WithTransaction(ctx context.Context, txn Transaction) (interface{}, error)
}

func NewTransactionRunner(client *mongo.Client) TransactionRunner {
	return &transactionRunner{client: client}
}

type transactionRunner struct {
	client *mongo.Client
}

func (t *transactionRunner) WithTransaction(ctx context.Context, txn Transaction) (interface{}, error) {
	session, err := t.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("unable to start session: %w", err)
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetWriteConcern(writeconcern.Majority()).
		SetReadConcern(readconcern.Snapshot())
	return session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return txn(sessCtx)
	}, txnOpts)
}
