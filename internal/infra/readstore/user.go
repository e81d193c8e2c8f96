package readstore

import (
	"context"

	"kartly-api/internal/infra"
	"kartly-api/internal/infra/db"
	"kartly-api/internal/pkg/pgconv"
	"kartly-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserByIDSQL = `
SELECT id, email, role, is_active, last_login
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	var lastLogin pgtype.Timestamptz
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&v.ID, &v.Email, &v.Role, &v.IsActive, &lastLogin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	if lastLogin.Valid {
		t := lastLogin.Time
		v.LastLogin = &t
	}

	return &v, nil
}
