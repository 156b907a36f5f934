package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager lets services group several repository writes, e.g. an employee row
// and its salary component assignments, into one database transaction.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}
