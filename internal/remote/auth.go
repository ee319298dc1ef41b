package remote

import (
	"context"
	"errors"
	"net/http"
	"time"

	"hostel-store/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Identity is the authenticated user as the auth service describes it.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is an authenticated session issued by the auth service. The
// access token authorizes table calls; the refresh token outlives it.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         Identity
}

type tokenResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
	User         Identity `json:"user"`
}

// accessClaims mirrors the claims the auth service signs into access
// tokens. The signing key belongs to the service, so the claims are
// decoded without verification; the service itself enforces them.
type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// SignUp registers a new account and returns the session issued for it.
func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return c.authToken(ctx, authPath+"signup", map[string]string{
		"email":    email,
		"password": password,
	})
}

// SignIn exchanges credentials for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return c.authToken(ctx, authPath+"token?grant_type=password", map[string]string{
		"email":    email,
		"password": password,
	})
}

// RefreshSession redeems a refresh token for a fresh session.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		return nil, &AuthError{Reason: "missing refresh token"}
	}
	return c.authToken(ctx, authPath+"token?grant_type=refresh_token", map[string]string{
		"refresh_token": refreshToken,
	})
}

// SignOut revokes the session behind the access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	err := c.do(ctx, http.MethodPost, authPath+"logout", nil, nil, accessToken, nil, nil)
	if err != nil {
		return asAuthError(err)
	}
	return nil
}

func (c *Client) authToken(ctx context.Context, path string, body map[string]string) (*Session, error) {
	log := logger.FromCtx(ctx).With(zap.String("path", path))

	var res tokenResponse
	if err := c.do(ctx, http.MethodPost, path, nil, nil, "", body, &res); err != nil {
		return nil, asAuthError(err)
	}
	if res.AccessToken == "" {
		// Signup with confirmation enabled answers without a session.
		log.Warn("auth endpoint returned no session")
		return nil, &AuthError{Reason: "no session issued; confirm the account first"}
	}

	sess := &Session{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(res.ExpiresIn) * time.Second),
		User:         identityFromToken(res.AccessToken, res.User),
	}

	log.Info("session issued",
		zap.String("user_id", sess.User.ID),
		zap.Time("expires_at", sess.ExpiresAt),
	)

	return sess, nil
}

// identityFromToken reads the identity out of the access token's claims,
// falling back to the user object the endpoint echoed.
func identityFromToken(accessToken string, fallback Identity) Identity {
	var claims accessClaims
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err != nil {
		logger.L().Warn("failed to decode access token claims", zap.Error(err))
		return fallback
	}
	if claims.Subject == "" {
		return fallback
	}

	ident := Identity{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	}
	if ident.Email == "" {
		ident.Email = fallback.Email
	}
	if ident.Role == "" {
		ident.Role = fallback.Role
	}
	return ident
}

func asAuthError(err error) error {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return &AuthError{Reason: svcErr.Message}
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr
	}
	return &AuthError{Reason: err.Error()}
}
