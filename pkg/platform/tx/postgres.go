package tx

import (
	"context"
	"database/sql"
	"time"

	dErrors "maricheck/pkg/domain-errors"
)

const defaultTxTimeout = 5 * time.Second

// PostgresManager begins a transaction per RunInTx call. Nested calls join the
// outer transaction.
type PostgresManager struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresManager(db *sql.DB, timeout time.Duration) *PostgresManager {
	if timeout <= 0 {
		timeout = defaultTxTimeout
	}
	return &PostgresManager{db: db, timeout: timeout}
}

func (m *PostgresManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := From(ctx); ok {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	sqlTx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = sqlTx.Rollback()
	}()

	if err := fn(WithTx(ctx, sqlTx)); err != nil {
		return err
	}
	return sqlTx.Commit()
}
