package queries

import (
	"context"

	"kartly-api/internal/infra"
	"kartly-api/internal/pkg/errs"
)

var ErrProductNotFound = errs.New("product not found")

type CatalogReadStore interface {
	ListProducts(ctx context.Context) ([]*ProductView, error)
	FindProductByID(ctx context.Context, id string) (*ProductView, error)
}

type CatalogQueries interface {
	ListProducts(ctx context.Context) ([]*ProductView, error)
	GetProduct(ctx context.Context, id string) (*ProductView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context) ([]*ProductView, error) {
	products, err := q.readStore.ListProducts(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list products")
	}
	return products, nil
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id string) (*ProductView, error) {
	product, err := q.readStore.FindProductByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Wrap(err, "failed to find product")
	}
	return product, nil
}
