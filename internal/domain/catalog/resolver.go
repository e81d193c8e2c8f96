package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart       = errors.New("cart must contain at least one product")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrEmptyProductID  = errors.New("product id must not be empty")
	ErrProductNotFound = errors.New("product not found")
)

// CartLine is a caller-supplied cart entry. Only the id and quantity are
// taken from the caller.
type CartLine struct {
	ProductID string
	Quantity  int64
}

// ResolvedLine snapshots the catalog name and unit price at resolution time,
// decoupled from any later catalog edits.
type ResolvedLine struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type ResolvedCart struct {
	Lines    []ResolvedLine
	Subtotal int64
}

func (l ResolvedLine) LineTotal() int64 {
	return l.UnitPrice * l.Quantity
}

// ResolveCart prices a cart from catalog rows fetched for the cart's distinct
// product ids. Every line must reference a known product; the subtotal is the
// exact integer sum of unit price × quantity.
func ResolveCart(lines []CartLine, products []Product) (*ResolvedCart, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	resolved := make([]ResolvedLine, 0, len(lines))
	var subtotal int64
	for _, line := range lines {
		if line.ProductID == "" {
			return nil, ErrEmptyProductID
		}
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
		}
		resolved = append(resolved, ResolvedLine{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
		subtotal += product.Price * line.Quantity
	}

	return &ResolvedCart{Lines: resolved, Subtotal: subtotal}, nil
}

// DistinctIDs returns the distinct product ids of a cart, preserving first
// occurrence order, for the batch catalog lookup.
func DistinctIDs(lines []CartLine) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	return ids
}
