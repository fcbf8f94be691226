package mocks

import (
	"context"
	"hotel/infras/postgres"
)

type transactor struct{}

// NewTransactor runs every unit of work inline with a nil transaction, so
// repository mocks receive the same calls they would inside a real one.
func NewTransactor() postgres.Transactor {
	return &transactor{}
}

func (t *transactor) WithinTransaction(ctx context.Context, fn postgres.TxFunc) error {
	return fn(ctx, nil)
}
