package repository

import (
	"context"
	"encoding/json"

	"kartly-api/internal/domain/order"
	"kartly-api/internal/infra"
	"kartly-api/internal/infra/db"
	"kartly-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

const createOrderSQL = `
INSERT INTO orders (
	id, user_id, customer_name, email, phone, address,
	products, total_amount, payment_screenshot_url, transaction_id, status
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	lines, err := json.Marshal(o.Lines())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode order lines", err)
	}

	var id uuid.UUID
	err = tx.QueryRow(ctx, createOrderSQL,
		o.ID(),
		o.UserID(),
		o.CustomerName().Value(),
		o.Email().Value(),
		o.Phone().Value(),
		o.Address().Value(),
		lines,
		o.TotalAmount(),
		pgconv.StringPtrToPgtype(o.ScreenshotURL()),
		pgconv.StringPtrToPgtype(o.TransactionID()),
		o.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	return id, nil
}

const orderStatusByIDSQL = `
SELECT status FROM orders WHERE id = $1`

func (r *OrderRepository) StatusByID(ctx context.Context, id uuid.UUID) (order.Status, error) {
	var raw string
	if err := r.db.QueryRow(ctx, orderStatusByIDSQL, id).Scan(&raw); err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find order status", err)
	}

	status, err := order.NewStatus(raw)
	if err != nil {
		return "", infra.WrapRepoErr("stored order status is invalid", err)
	}
	return status, nil
}

// Guarded on the status the reviewer saw so two concurrent reviews cannot
// both apply: the second one finds the row already moved and gets no rows.
const updateOrderStatusSQL = `
UPDATE orders SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to order.Status) error {
	tag, err := r.db.Exec(ctx, updateOrderStatusSQL, id, from.String(), to.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order status changed during review", nil, infra.KindConflict)
	}
	return nil
}
