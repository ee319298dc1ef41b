package user

import (
	"context"
	"errors"

	"hostel-store/internal/logger"
	"hostel-store/internal/remote"
	"hostel-store/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrProfileNotFound        = errors.New("profile not found")
)

// Repository is the slice of the remote data service profiles need.
type Repository interface {
	Select(ctx context.Context, table string, q remote.Query, token string, dest any) error
	Update(ctx context.Context, table string, patch any, q remote.Query, token string) error
}

// Service reads and edits the authenticated user's own profile row.
type Service interface {
	Get(ctx context.Context, ident *remote.Identity, token string) (*Profile, error)
	Update(ctx context.Context, ident *remote.Identity, token string, params UpdateProfileParams) (*Profile, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Get fetches name, phone number and address for the signed-in user.
func (s *service) Get(ctx context.Context, ident *remote.Identity, token string) (*Profile, error) {
	if ident == nil {
		return nil, ErrAuthenticationRequired
	}

	log := logger.FromCtx(ctx).With(zap.String("user_id", ident.ID))

	q := remote.NewQuery().
		Columns("name,phone_number,address").
		Eq("id", ident.ID).
		Limit(1)

	var rows []Profile
	if err := s.repo.Select(ctx, "users", q, token, &rows); err != nil {
		log.Error("failed to fetch profile", zap.Error(err))
		return nil, err
	}
	if len(rows) == 0 {
		log.Info("profile not found")
		return nil, ErrProfileNotFound
	}

	return &rows[0], nil
}

// Update writes the whole edit form onto the user's row. Cleared fields
// go back to null.
func (s *service) Update(
	ctx context.Context,
	ident *remote.Identity,
	token string,
	params UpdateProfileParams,
) (*Profile, error) {

	if ident == nil {
		return nil, ErrAuthenticationRequired
	}

	log := logger.FromCtx(ctx).With(zap.String("user_id", ident.ID))

	profile := &Profile{
		Name:        utils.NormalizeOptional(params.Name),
		PhoneNumber: utils.NormalizeOptional(params.PhoneNumber),
		Address:     utils.NormalizeOptional(params.Address),
	}

	q := remote.NewQuery().Eq("id", ident.ID)
	if err := s.repo.Update(ctx, "users", profile, q, token); err != nil {
		log.Error("failed to update profile", zap.Error(err))
		return nil, err
	}

	log.Info("profile updated")
	return profile, nil
}
