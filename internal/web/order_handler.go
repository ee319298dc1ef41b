package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hostel-store/internal/order"
)

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type checkoutDTO struct {
	PaymentMethod order.PaymentMethod `json:"payment_method"`
}

// Checkout places the order. On failure the cart is untouched so the
// visitor can simply retry.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r.Context())

	var req checkoutDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	ident, _ := sf.Session.Current()
	placed, err := h.orders.Checkout(r.Context(), ident, sf.Session.AccessToken(), sf.Cart, req.PaymentMethod)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, placed)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	ident, _ := sf.Session.Current()
	orders, err := h.orders.History(r.Context(), ident, sf.Session.AccessToken(), limit)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}
