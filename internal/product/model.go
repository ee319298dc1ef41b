package product

import "github.com/shopspring/decimal"

// Product is catalog data owned by the remote data service. The
// application never mutates it.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
}

// InStock reports whether the product can currently be bought.
func (p Product) InStock() bool {
	return p.Stock > 0
}
