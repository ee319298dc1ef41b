package web

import (
	"encoding/json"
	"net/http"

	"hostel-store/internal/user"
)

type ProfileHandler struct {
	users user.Service
}

func NewProfileHandler(users user.Service) *ProfileHandler {
	return &ProfileHandler{users: users}
}

type profileDTO struct {
	Email       string  `json:"email"`
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

type updateProfileDTO struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r.Context())

	ident, _ := sf.Session.Current()
	profile, err := h.users.Get(r.Context(), ident, sf.Session.AccessToken())
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profileDTO{
		Email:       ident.Email,
		Name:        profile.Name,
		PhoneNumber: profile.PhoneNumber,
		Address:     profile.Address,
	})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r.Context())

	var req updateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	ident, _ := sf.Session.Current()
	profile, err := h.users.Update(r.Context(), ident, sf.Session.AccessToken(), user.UpdateProfileParams{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profileDTO{
		Email:       ident.Email,
		Name:        profile.Name,
		PhoneNumber: profile.PhoneNumber,
		Address:     profile.Address,
	})
}
