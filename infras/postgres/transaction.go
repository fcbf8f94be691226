package postgres

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// TxFunc is a unit of work. Returning an error rolls the whole unit back.
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

type Transactor interface {
	WithinTransaction(ctx context.Context, fn TxFunc) error
}

type transactor struct {
	db   *Connection
	otel otel.Otel
}

func NewTransactor(db *Connection, otel otel.Otel) Transactor {
	return &transactor{
		db:   db,
		otel: otel,
	}
}

// WithinTransaction runs fn on the write pool and commits only if fn succeeds.
// A panic inside fn rolls back and is re-raised.
func (t *transactor) WithinTransaction(ctx context.Context, fn TxFunc) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".WithinTransaction")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := t.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
