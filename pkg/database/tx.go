package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// TxFunc runs inside a transaction. Returning an error rolls it back.
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

// RunInTx executes fn in a transaction, committing on success and rolling
// back on error or panic. Panics are re-raised after the rollback.
func RunInTx(ctx context.Context, db *sqlx.DB, logger *zap.Logger, fn TxFunc) (err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Error("rollback after panic failed", zap.Error(rbErr), zap.Any("panic", p))
			}
			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("rollback failed",
				zap.NamedError("rollback_error", rbErr),
				zap.NamedError("original_error", err))
			return fmt.Errorf("rollback transaction: %v (original error: %w)", rbErr, err)
		}
		logger.Debug("transaction rolled back", zap.Error(err))
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
