package repository

import (
	"context"
	"fmt"

	"kartly-api/internal/infra"
	"kartly-api/internal/infra/db"
	"kartly-api/internal/pkg/pgconv"
	"kartly-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type PointsRepository struct {
	db db.DBTX
}

func NewPointsRepository(dbtx db.DBTX) *PointsRepository {
	return &PointsRepository{db: dbtx}
}

const balanceByUserIDSQL = `
SELECT total_points FROM user_points WHERE user_id = $1`

// BalanceByUserID returns zero for users without a balance row; the row is
// created lazily by Settle.
func (r *PointsRepository) BalanceByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, balanceByUserIDSQL, userID).Scan(&balance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read points balance", err)
	}
	return balance, nil
}

const ensureBalanceRowSQL = `
INSERT INTO user_points (user_id, total_points)
VALUES ($1, 0)
ON CONFLICT (user_id) DO NOTHING`

// Redemptions are applied as a compare-and-set against the balance the
// preview validated: when another settlement moved the balance in between,
// the UPDATE matches no row and the caller sees a conflict. A guard on
// "balance still covers the redemption" would not be enough, since the
// winner's earned points can refill the balance past the redeemed amount.
const redeemBalanceCASSQL = `
UPDATE user_points
SET total_points = total_points - $2 + $3, updated_at = now()
WHERE user_id = $1 AND total_points = $4`

// Earn-only settlements are plain additions; concurrent earns must all
// apply.
const addEarnedPointsSQL = `
UPDATE user_points
SET total_points = total_points + $2, updated_at = now()
WHERE user_id = $1`

const insertPointsTransactionSQL = `
INSERT INTO points_transactions (user_id, order_id, points_change, transaction_type, description)
VALUES ($1, $2, $3, $4, $5)`

// Settle applies the net balance delta and appends the ledger rows as one
// unit inside the caller's transaction. A redeemed row is written iff points
// were redeemed, an earned row iff points were earned; the two are never
// merged.
func (r *PointsRepository) Settle(ctx context.Context, tx db.DBTX, s commands.PointsSettlement) error {
	if _, err := tx.Exec(ctx, ensureBalanceRowSQL, s.UserID); err != nil {
		return infra.WrapRepoErr("failed to ensure points balance row", err)
	}

	if s.PointsRedeemed > 0 {
		tag, err := tx.Exec(ctx, redeemBalanceCASSQL,
			s.UserID, s.PointsRedeemed, s.PointsEarned, s.BalanceAtPreview)
		if err != nil {
			return infra.WrapRepoErr("failed to apply points delta", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("points balance changed since preview", nil, infra.KindConflict)
		}
	} else if s.PointsEarned > 0 {
		if _, err := tx.Exec(ctx, addEarnedPointsSQL, s.UserID, s.PointsEarned); err != nil {
			return infra.WrapRepoErr("failed to apply points delta", err)
		}
	}

	if s.PointsRedeemed > 0 {
		description := fmt.Sprintf("Redeemed %d points", s.PointsRedeemed)
		if _, err := tx.Exec(ctx, insertPointsTransactionSQL,
			s.UserID, s.OrderID, -s.PointsRedeemed, "redeemed", description); err != nil {
			return infra.WrapRepoErr("failed to record redeemed transaction", err)
		}
	}

	if s.PointsEarned > 0 {
		description := fmt.Sprintf("Earned from order %s", s.OrderID)
		if _, err := tx.Exec(ctx, insertPointsTransactionSQL,
			s.UserID, s.OrderID, s.PointsEarned, "earned", description); err != nil {
			return infra.WrapRepoErr("failed to record earned transaction", err)
		}
	}

	return nil
}
