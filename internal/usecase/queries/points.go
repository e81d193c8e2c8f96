package queries

import (
	"context"
	"time"

	"kartly-api/internal/domain/loyalty"
	"kartly-api/internal/infra"
	"kartly-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type PointsBalanceRow struct {
	UserID      uuid.UUID
	TotalPoints int64
	UpdatedAt   time.Time
}

type PointsReadStore interface {
	FindBalanceByUserID(ctx context.Context, userID uuid.UUID) (*PointsBalanceRow, error)
	ListTransactionsByUserID(ctx context.Context, userID uuid.UUID) ([]*PointsTransactionView, error)
}

type PointsQueries interface {
	GetMyPoints(ctx context.Context, userID uuid.UUID) (*PointsView, error)
	ListMyTransactions(ctx context.Context, userID uuid.UUID) ([]*PointsTransactionView, error)
}

type pointsQueriesImpl struct {
	readStore PointsReadStore
}

func NewPointsQueries(readStore PointsReadStore) PointsQueries {
	return &pointsQueriesImpl{readStore: readStore}
}

// GetMyPoints returns the caller's balance with derived tier fields. A user
// without a balance row simply has zero points; the row itself is created
// lazily by the first settlement.
func (q *pointsQueriesImpl) GetMyPoints(ctx context.Context, userID uuid.UUID) (*PointsView, error) {
	row, err := q.readStore.FindBalanceByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			row = &PointsBalanceRow{UserID: userID, TotalPoints: 0}
		} else {
			return nil, errs.Wrap(err, "failed to find points balance")
		}
	}

	return &PointsView{
		UserID:            row.UserID,
		TotalPoints:       row.TotalPoints,
		Tier:              loyalty.TierFor(row.TotalPoints),
		NextTierThreshold: loyalty.NextTierThreshold(row.TotalPoints),
		TierProgress:      loyalty.TierProgress(row.TotalPoints),
		UpdatedAt:         row.UpdatedAt,
	}, nil
}

func (q *pointsQueriesImpl) ListMyTransactions(ctx context.Context, userID uuid.UUID) ([]*PointsTransactionView, error) {
	transactions, err := q.readStore.ListTransactionsByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list points transactions")
	}
	return transactions, nil
}
