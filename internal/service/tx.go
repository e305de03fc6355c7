package service

import (
	"context"
	"errors"
	"fmt"

	"mini-orders/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// withTx runs fn inside a transaction. The transaction is committed when fn
// succeeds and rolled back when fn or the commit fails.
func withTx(ctx context.Context, repo repository.OrderRepository, logger zerolog.Logger, fn func(tx pgx.Tx) error) error {
	return runTx(ctx, repo.BeginTx, logger, fn)
}

// withReadTx runs fn inside a read-only transaction so that every read sees
// the same snapshot.
func withReadTx(ctx context.Context, repo repository.OrderRepository, logger zerolog.Logger, fn func(tx pgx.Tx) error) error {
	return runTx(ctx, repo.BeginReadTx, logger, fn)
}

func runTx(ctx context.Context, begin func(context.Context) (pgx.Tx, error), logger zerolog.Logger, fn func(tx pgx.Tx) error) (err error) {
	tx, err := begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
