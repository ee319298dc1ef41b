package web

import (
	"encoding/json"
	"net/http"

	"hostel-store/internal/cart"
	"hostel-store/internal/product"

	"github.com/go-chi/chi/v5"
)

// CartHandler drives the visitor's cart store. Every mutation answers
// with the full cart view so the page can re-render without a second
// round trip.
type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

type cartViewDTO struct {
	Items     []cart.Item `json:"items"`
	ItemCount int         `json:"item_count"`
	Total     string      `json:"total"`
}

type updateQuantityDTO struct {
	Quantity int `json:"quantity"`
}

func cartView(s *cart.Store) cartViewDTO {
	return cartViewDTO{
		Items:     s.Items(),
		ItemCount: s.ItemCount(),
		Total:     s.Total().String(),
	}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r.Context())
	respondJSON(w, http.StatusOK, cartView(sf.Cart))
}

// AddItem takes the full product the page already holds, like the
// original add-to-cart call.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r.Context())

	var p product.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if p.ID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product", "product id is required")
		return
	}
	if !p.InStock() {
		respondError(w, http.StatusConflict, "out_of_stock", "product is out of stock")
		return
	}

	sf.Cart.AddItem(p)
	respondJSON(w, http.StatusCreated, cartView(sf.Cart))
}

// UpdateQuantity sets a line's quantity; zero or below removes the line.
// Unknown ids are a silent no-op.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r.Context())

	productID := chi.URLParam(r, "productID")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product", "product id is required")
		return
	}

	var req updateQuantityDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sf.Cart.UpdateQuantity(productID, req.Quantity)
	respondJSON(w, http.StatusOK, cartView(sf.Cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r.Context())

	productID := chi.URLParam(r, "productID")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product", "product id is required")
		return
	}

	sf.Cart.RemoveItem(productID)
	respondJSON(w, http.StatusOK, cartView(sf.Cart))
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r.Context())

	sf.Cart.Clear()
	respondJSON(w, http.StatusOK, cartView(sf.Cart))
}
