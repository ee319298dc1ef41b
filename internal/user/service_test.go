package user

import (
	"context"
	"testing"

	"hostel-store/internal/remote"
	"hostel-store/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Select(ctx context.Context, table string, q remote.Query, token string, dest any) error {
	args := m.Called(ctx, table, q, token, dest)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, table string, patch any, q remote.Query, token string) error {
	args := m.Called(ctx, table, patch, q, token)
	return args.Error(0)
}

func testIdentity() *remote.Identity {
	return &remote.Identity{ID: "user-1", Email: "guest@hostel.test"}
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	token := "access-1"

	t.Run("Missing identity aborts before any remote call", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		profile, err := svc.Get(ctx, nil, "")

		assert.Nil(t, profile)
		assert.Equal(t, ErrAuthenticationRequired, err)
		mockRepo.AssertNotCalled(t, "Select", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Fetches the user's own row", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		expectedQuery := remote.NewQuery().
			Columns("name,phone_number,address").
			Eq("id", "user-1").
			Limit(1)

		mockRepo.On("Select", ctx, "users", expectedQuery, token, mock.Anything).
			Run(func(args mock.Arguments) {
				dest := args.Get(4).(*[]Profile)
				*dest = []Profile{{
					Name:        utils.StrPtr("Asha"),
					PhoneNumber: nil,
					Address:     utils.StrPtr("Room 214, Block B"),
				}}
			}).Return(nil).Once()

		profile, err := svc.Get(ctx, testIdentity(), token)

		assert.NoError(t, err)
		assert.Equal(t, "Asha", utils.PtrString(profile.Name))
		assert.Nil(t, profile.PhoneNumber)
		assert.Equal(t, "Room 214, Block B", utils.PtrString(profile.Address))
		mockRepo.AssertExpectations(t)
	})

	t.Run("No row means profile not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Select", ctx, "users", mock.Anything, token, mock.Anything).Return(nil).Once()

		profile, err := svc.Get(ctx, testIdentity(), token)

		assert.Nil(t, profile)
		assert.Equal(t, ErrProfileNotFound, err)
	})

	t.Run("Remote failure is passed through", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		svcErr := &remote.ServiceError{Status: 403, Message: "permission denied"}
		mockRepo.On("Select", ctx, "users", mock.Anything, token, mock.Anything).Return(svcErr).Once()

		_, err := svc.Get(ctx, testIdentity(), token)

		assert.Equal(t, svcErr, err)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	token := "access-1"

	t.Run("Missing identity aborts before any remote call", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Update(ctx, nil, "", UpdateProfileParams{})

		assert.Equal(t, ErrAuthenticationRequired, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Writes the form onto the user's row", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		expectedQuery := remote.NewQuery().Eq("id", "user-1")
		expectedPatch := &Profile{
			Name:        utils.StrPtr("Asha"),
			PhoneNumber: utils.StrPtr("5550101"),
			Address:     utils.StrPtr("Room 214, Block B"),
		}

		mockRepo.On("Update", ctx, "users", expectedPatch, expectedQuery, token).Return(nil).Once()

		profile, err := svc.Update(ctx, testIdentity(), token, UpdateProfileParams{
			Name:        utils.StrPtr("Asha"),
			PhoneNumber: utils.StrPtr("5550101"),
			Address:     utils.StrPtr("Room 214, Block B"),
		})

		assert.NoError(t, err)
		assert.Equal(t, expectedPatch, profile)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Cleared fields are stored as null, not empty string", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Update", ctx, "users", mock.MatchedBy(func(p *Profile) bool {
			return utils.PtrString(p.Name) == "Asha" && p.PhoneNumber == nil && p.Address == nil
		}), mock.Anything, token).Return(nil).Once()

		profile, err := svc.Update(ctx, testIdentity(), token, UpdateProfileParams{
			Name:        utils.StrPtr("Asha"),
			PhoneNumber: utils.StrPtr(""),
			Address:     utils.StrPtr("   "),
		})

		assert.NoError(t, err)
		assert.Nil(t, profile.PhoneNumber)
		assert.Nil(t, profile.Address)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Remote failure is passed through", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		svcErr := &remote.ServiceError{Status: 500, Message: "boom"}
		mockRepo.On("Update", ctx, "users", mock.Anything, mock.Anything, token).Return(svcErr).Once()

		profile, err := svc.Update(ctx, testIdentity(), token, UpdateProfileParams{})

		assert.Nil(t, profile)
		assert.Equal(t, svcErr, err)
	})
}
