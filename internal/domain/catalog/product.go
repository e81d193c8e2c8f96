package catalog

import "time"

// Product is a catalog entry. Prices are whole ₹ and are the only trusted
// source for order pricing; caller-supplied prices are never used.
type Product struct {
	ID               string
	Name             string
	Price            int64
	ShortDescription string
	Category         string
	InStock          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
