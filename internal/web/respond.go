package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"hostel-store/internal/logger"
	"hostel-store/internal/order"
	"hostel-store/internal/remote"
	"hostel-store/internal/user"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: message, Code: code})
}

// handleError maps domain and remote errors onto the JSON surface. Remote
// failures come back as 502 with the service's message; the client shows
// them as a transient notification and the user retries manually.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrAuthenticationRequired),
		errors.Is(err, user.ErrAuthenticationRequired):
		respondError(w, http.StatusUnauthorized, "authentication_required", err.Error())
	case errors.Is(err, order.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", err.Error())
	case errors.Is(err, order.ErrInvalidPaymentMethod):
		respondError(w, http.StatusBadRequest, "invalid_payment_method", err.Error())
	case errors.Is(err, user.ErrProfileNotFound):
		respondError(w, http.StatusNotFound, "profile_not_found", err.Error())
	default:
		var authErr *remote.AuthError
		if errors.As(err, &authErr) {
			respondError(w, http.StatusUnauthorized, "auth_failed", authErr.Reason)
			return
		}
		var svcErr *remote.ServiceError
		if errors.As(err, &svcErr) {
			respondError(w, http.StatusBadGateway, "remote_service_error", svcErr.Message)
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
