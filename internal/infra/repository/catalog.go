package repository

import (
	"context"

	"kartly-api/internal/domain/catalog"
	"kartly-api/internal/infra"
	"kartly-api/internal/infra/db"
)

type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(dbtx db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: dbtx}
}

const findProductsByIDsSQL = `
SELECT id, name, price, short_description, category, in_stock, created_at, updated_at
FROM products
WHERE id = ANY($1)`

// FindByIDs returns the products that exist; missing IDs are simply absent
// from the result, detection is the resolver's job.
func (r *CatalogRepository) FindByIDs(ctx context.Context, ids []string) ([]catalog.Product, error) {
	rows, err := r.db.Query(ctx, findProductsByIDsSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products by IDs", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.ShortDescription,
			&p.Category, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate products", err)
	}

	return products, nil
}
