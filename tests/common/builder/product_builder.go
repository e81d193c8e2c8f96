//go:build unit || e2e

package builder

import (
	"time"

	"kartly-api/internal/domain/catalog"
	"kartly-api/internal/usecase/queries"
)

type ProductBuilder struct {
	ID               string
	Name             string
	Price            int64
	ShortDescription string
	Category         string
	InStock          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewProductBuilder() *ProductBuilder {
	now := time.Now()
	return &ProductBuilder{
		ID:               "cozycup-premium",
		Name:             "CozyCup Premium",
		Price:            2499,
		ShortDescription: "Double-walled ceramic mug",
		Category:         "drinkware",
		InStock:          true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildDomain() catalog.Product {
	return catalog.Product{
		ID:               b.ID,
		Name:             b.Name,
		Price:            b.Price,
		ShortDescription: b.ShortDescription,
		Category:         b.Category,
		InStock:          b.InStock,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:               b.ID,
		Name:             b.Name,
		Price:            b.Price,
		ShortDescription: b.ShortDescription,
		Category:         b.Category,
		InStock:          b.InStock,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
