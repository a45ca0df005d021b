package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Queries runs the feedback statements against a pool or a transaction.
// Statements are written with ? placeholders and rebound for the driver.
type Queries struct {
	db sqlx.ExtContext
}

func New(db sqlx.ExtContext) *Queries {
	return &Queries{db: db}
}

func wrapErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("query %s: %w", op, err)
}
