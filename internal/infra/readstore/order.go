package readstore

import (
	"context"
	"encoding/json"

	"kartly-api/internal/infra"
	"kartly-api/internal/infra/db"
	"kartly-api/internal/pkg/pgconv"
	"kartly-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const orderViewColumns = `
	id, user_id, customer_name, email, phone, address,
	products, total_amount, payment_screenshot_url, transaction_id, status,
	created_at, updated_at`

const findOrderByIDSQL = `
SELECT` + orderViewColumns + `
FROM orders
WHERE id = $1`

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	view, err := scanOrderView(r.db.QueryRow(ctx, findOrderByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	return view, nil
}

const listOrdersByUserIDSQL = `
SELECT id, total_amount, status, jsonb_array_length(products), created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC`

func (r *OrderReadStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, listOrdersByUserIDSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	defer rows.Close()

	var result []*queries.OrderListItem
	for rows.Next() {
		var item queries.OrderListItem
		if err := rows.Scan(&item.ID, &item.TotalAmount, &item.Status, &item.ItemCount, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list item", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}

	return result, nil
}

const listAllOrdersSQL = `
SELECT` + orderViewColumns + `
FROM orders
ORDER BY created_at DESC`

func (r *OrderReadStore) ListAll(ctx context.Context) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, listAllOrdersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list all orders", err)
	}
	defer rows.Close()

	var result []*queries.OrderView
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}

	return result, nil
}

func scanOrderView(row pgx.Row) (*queries.OrderView, error) {
	var v queries.OrderView
	var lines []byte
	var screenshotURL, transactionID pgtype.Text
	if err := row.Scan(
		&v.ID, &v.UserID, &v.CustomerName, &v.Email, &v.Phone, &v.Address,
		&lines, &v.TotalAmount, &screenshotURL, &transactionID, &v.Status,
		&v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(lines, &v.Lines); err != nil {
		return nil, err
	}
	v.ScreenshotURL = pgconv.StringPtrFromPgtype(screenshotURL)
	v.TransactionID = pgconv.StringPtrFromPgtype(transactionID)

	return &v, nil
}
