package web

import (
	"net/http"

	"hostel-store/internal/product"
)

type ProductHandler struct {
	products product.Service
}

func NewProductHandler(products product.Service) *ProductHandler {
	return &ProductHandler{products: products}
}

type catalogDTO struct {
	Products   []product.Product `json:"products"`
	Categories []string          `json:"categories"`
}

// List serves the catalog. Category and search narrowing happen over the
// fetched list, the same way the products page filters client-side.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	filtered := product.Filter(products,
		r.URL.Query().Get("category"),
		r.URL.Query().Get("search"),
	)

	respondJSON(w, http.StatusOK, catalogDTO{
		Products:   filtered,
		Categories: product.Categories(products),
	})
}
