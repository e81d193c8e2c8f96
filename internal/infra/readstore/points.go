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

type PointsReadStore struct {
	db db.DBTX
}

func NewPointsReadStore(dbtx db.DBTX) *PointsReadStore {
	return &PointsReadStore{db: dbtx}
}

const findBalanceByUserIDSQL = `
SELECT user_id, total_points, updated_at
FROM user_points
WHERE user_id = $1`

func (r *PointsReadStore) FindBalanceByUserID(ctx context.Context, userID uuid.UUID) (*queries.PointsBalanceRow, error) {
	var row queries.PointsBalanceRow
	var updatedAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx, findBalanceByUserIDSQL, userID).Scan(
		&row.UserID, &row.TotalPoints, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("points balance not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find points balance", err)
	}
	row.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &row, nil
}

const listTransactionsByUserIDSQL = `
SELECT id, user_id, order_id, points_change, transaction_type, description, created_at
FROM points_transactions
WHERE user_id = $1
ORDER BY created_at DESC`

func (r *PointsReadStore) ListTransactionsByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.PointsTransactionView, error) {
	rows, err := r.db.Query(ctx, listTransactionsByUserIDSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list points transactions", err)
	}
	defer rows.Close()

	var result []*queries.PointsTransactionView
	for rows.Next() {
		var v queries.PointsTransactionView
		var orderID pgtype.UUID
		if err := rows.Scan(
			&v.ID, &v.UserID, &orderID, &v.PointsChange,
			&v.TransactionType, &v.Description, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan points transaction", err)
		}
		v.OrderID = pgconv.UUIDPtrFromPgtype(orderID)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate points transactions", err)
	}

	return result, nil
}
