package service

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/godilite/feedback-server/internal/repository"
	"github.com/godilite/feedback-server/pkg/database"
)

type sqlTransactor struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewSQLTransactor returns a Transactor backed by database transactions.
func NewSQLTransactor(db *sqlx.DB, logger *zap.Logger) Transactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sqlTransactor{db: db, logger: logger.Named("tx")}
}

func (t *sqlTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error {
	return database.RunInTx(ctx, t.db, t.logger, func(ctx context.Context, tx *sqlx.Tx) error {
		return fn(ctx, repository.New(tx))
	})
}
