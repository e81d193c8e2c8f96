package readstore

import (
	"context"

	"kartly-api/internal/infra"
	"kartly-api/internal/infra/db"
	"kartly-api/internal/pkg/pgconv"
	"kartly-api/internal/usecase/queries"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

const listProductsSQL = `
SELECT id, name, price, short_description, category, in_stock, created_at, updated_at
FROM products
ORDER BY category, name`

func (r *CatalogReadStore) ListProducts(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := r.db.Query(ctx, listProductsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var result []*queries.ProductView
	for rows.Next() {
		var v queries.ProductView
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Price, &v.ShortDescription,
			&v.Category, &v.InStock, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product view", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate products", err)
	}

	return result, nil
}

const findProductByIDSQL = `
SELECT id, name, price, short_description, category, in_stock, created_at, updated_at
FROM products
WHERE id = $1`

func (r *CatalogReadStore) FindProductByID(ctx context.Context, id string) (*queries.ProductView, error) {
	var v queries.ProductView
	err := r.db.QueryRow(ctx, findProductByIDSQL, id).Scan(
		&v.ID, &v.Name, &v.Price, &v.ShortDescription,
		&v.Category, &v.InStock, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	return &v, nil
}
