package repository

import (
	"context"
	"errors"
	"time"

	"kartly-api/internal/domain/user"
	"kartly-api/internal/infra"
	"kartly-api/internal/infra/db"
	"kartly-api/internal/pkg/pgconv"
	"kartly-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

const createUserSQL = `
INSERT INTO users (id, email, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createUserSQL,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

const findCredentialsByEmailSQL = `
SELECT id, email, password_hash, role, is_active
FROM users
WHERE email = lower($1)`

func (r *UserRepository) FindCredentialsByEmail(ctx context.Context, email string) (*commands.UserCredentials, error) {
	var row commands.UserCredentials
	err := r.db.QueryRow(ctx, findCredentialsByEmailSQL, email).Scan(
		&row.ID,
		&row.Email,
		&row.PasswordHash,
		&row.Role,
		&row.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &row, nil
}

const updateLastLoginSQL = `
UPDATE users SET last_login = $2, updated_at = now() WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	if _, err := r.db.Exec(ctx, updateLastLoginSQL, userID, at); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
