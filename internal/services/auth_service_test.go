package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"promptmart/internal/models/db_models"
	"promptmart/internal/models/request_models"
	"promptmart/pkg/utils"
)

func TestAuthService_Register(t *testing.T) {
	existing := &db_models.User{Email: "taken@example.com", Username: "taken"}

	tests := []struct {
		name      string
		request   request_models.RegisterRequest
		setupMock func(repo *MockUserRepository)
		wantErr   error
		wantRole  string
	}{
		{
			name:    "duplicate email",
			request: request_models.RegisterRequest{Email: "taken@example.com", Username: "fresh", Password: "secret123"},
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "taken@example.com").Return(existing, nil)
			},
			wantErr: utils.ErrEmailAlreadyExists,
		},
		{
			name:    "duplicate username",
			request: request_models.RegisterRequest{Email: "fresh@example.com", Username: "taken", Password: "secret123"},
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "fresh@example.com").Return(nil, nil)
				repo.On("FindByUsername", mock.Anything, "taken").Return(existing, nil)
			},
			wantErr: utils.ErrUsernameAlreadyExists,
		},
		{
			name:    "default role is user",
			request: request_models.RegisterRequest{Email: "fresh@example.com", Username: "fresh", Password: "secret123", Role: "admin"},
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "fresh@example.com").Return(nil, nil)
				repo.On("FindByUsername", mock.Anything, "fresh").Return(nil, nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(uuid.New(), nil)
			},
			wantRole: "user",
		},
		{
			name:    "seller role honoured",
			request: request_models.RegisterRequest{Email: "seller@example.com", Username: "seller", Password: "secret123", Role: "seller"},
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "seller@example.com").Return(nil, nil)
				repo.On("FindByUsername", mock.Anything, "seller").Return(nil, nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(uuid.New(), nil)
			},
			wantRole: "seller",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			service := NewAuthService(repo)

			resp, err := service.Register(context.Background(), tt.request)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, resp.AccessToken)
				assert.NotEmpty(t, resp.RefreshToken)
				assert.Equal(t, tt.wantRole, resp.User.Role)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	assert.NoError(t, err)

	activeUser := &db_models.User{
		Email:        "user@example.com",
		Username:     "user",
		PasswordHash: hash,
		Role:         db_models.RoleUser,
		IsActive:     true,
	}
	disabledUser := &db_models.User{
		Email:        "gone@example.com",
		PasswordHash: hash,
		Role:         db_models.RoleUser,
		IsActive:     false,
	}

	tests := []struct {
		name      string
		request   request_models.LoginRequest
		setupMock func(repo *MockUserRepository)
		wantErr   error
	}{
		{
			name:    "unknown email",
			request: request_models.LoginRequest{Email: "nobody@example.com", Password: "secret123"},
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
			},
			wantErr: utils.ErrInvalidCredentials,
		},
		{
			name:    "wrong password",
			request: request_models.LoginRequest{Email: "user@example.com", Password: "wrong"},
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "user@example.com").Return(activeUser, nil)
			},
			wantErr: utils.ErrInvalidCredentials,
		},
		{
			name:    "disabled account",
			request: request_models.LoginRequest{Email: "gone@example.com", Password: "secret123"},
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "gone@example.com").Return(disabledUser, nil)
			},
			wantErr: utils.ErrAccountDisabled,
		},
		{
			name:    "success",
			request: request_models.LoginRequest{Email: "user@example.com", Password: "secret123"},
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "user@example.com").Return(activeUser, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			service := NewAuthService(repo)

			resp, err := service.Login(context.Background(), tt.request)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "bearer", resp.TokenType)
				assert.Equal(t, "user@example.com", resp.User.Email)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	hash, err := utils.HashPassword("oldpass123")
	assert.NoError(t, err)

	userID := uuid.New()

	t.Run("wrong current password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, userID).Return(&db_models.User{PasswordHash: hash}, nil)
		service := NewAuthService(repo)

		err := service.ChangePassword(context.Background(), userID, request_models.ChangePasswordRequest{
			CurrentPassword: "nope",
			NewPassword:     "newpass123",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("success rehashes", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := &db_models.User{PasswordHash: hash}
		repo.On("FindByID", mock.Anything, userID).Return(user, nil)
		repo.On("Update", mock.Anything, user).Return(nil)
		service := NewAuthService(repo)

		err := service.ChangePassword(context.Background(), userID, request_models.ChangePasswordRequest{
			CurrentPassword: "oldpass123",
			NewPassword:     "newpass123",
		})
		assert.NoError(t, err)
		assert.NoError(t, utils.ComparePasswords(user.PasswordHash, "newpass123"))
		repo.AssertExpectations(t)
	})
}
