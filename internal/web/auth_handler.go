package web

import (
	"encoding/json"
	"net/http"

	"hostel-store/internal/remote"
	"hostel-store/internal/session"
)

// AuthHandler exposes the session lifecycle. The actual credential
// checks happen on the remote auth service; this only drives the
// visitor's session store.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type credentialsDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionDTO struct {
	State string           `json:"state"`
	User  *remote.Identity `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.signIn(w, r, true)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.signIn(w, r, false)
}

func (h *AuthHandler) signIn(w http.ResponseWriter, r *http.Request, register bool) {
	sf := storefrontFrom(r.Context())

	var req credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_credentials", "email and password are required")
		return
	}

	var ident *remote.Identity
	var err error
	if register {
		ident, err = sf.Session.SignUp(r.Context(), req.Email, req.Password)
	} else {
		ident, err = sf.Session.SignIn(r.Context(), req.Email, req.Password)
	}
	if err != nil {
		handleError(w, err)
		return
	}

	setRefreshCookie(w, sf.Session.RefreshToken())

	status := http.StatusOK
	if register {
		status = http.StatusCreated
	}
	respondJSON(w, status, sessionDTO{State: session.StateSignedIn.String(), User: ident})
}

// Logout always clears the local session; a failed remote revocation is
// logged by the store and not surfaced.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r.Context())

	_ = sf.Session.SignOut(r.Context())
	setRefreshCookie(w, "")

	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r.Context())

	ident, state := sf.Session.Current()
	respondJSON(w, http.StatusOK, sessionDTO{State: state.String(), User: ident})
}

func setRefreshCookie(w http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Name:     refreshCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	http.SetCookie(w, cookie)
}
