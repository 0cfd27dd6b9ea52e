package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"maricheck/internal/admin/models"
	"maricheck/internal/platform/postgres"
	id "maricheck/pkg/domain"
	"maricheck/pkg/platform/sentinel"
	txcontext "maricheck/pkg/platform/tx"
)

const usernameConstraint = "admins_username_key"

// PostgresStore persists admin accounts in the admins table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, admin *models.Admin) error {
	var newID int64
	err := txcontext.Runner(ctx, s.db).QueryRowContext(ctx,
		`INSERT INTO admins (username, password_hash, created_at) VALUES ($1, $2, $3) RETURNING id`,
		admin.Username, admin.PasswordHash, admin.CreatedAt,
	).Scan(&newID)
	if err != nil {
		if postgres.IsUniqueViolation(err, usernameConstraint) {
			return fmt.Errorf("insert admin: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	admin.ID = id.AdminID(newID)
	return nil
}

func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var (
		admin models.Admin
		rawID int64
	)
	err := txcontext.Runner(ctx, s.db).QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM admins WHERE username = $1`, username,
	).Scan(&rawID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	admin.ID = id.AdminID(rawID)
	return &admin, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := txcontext.Runner(ctx, s.db).QueryRowContext(ctx, `SELECT count(*) FROM admins`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}
